package remote

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/clients"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{RemoteStoreURL: server.URL + "/exec"}
	c := New(cfg, clients.NewHTTPClient(time.Second))
	c.backoff = time.Millisecond
	return c, &calls
}

func TestClient_FetchAccounts(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/exec", r.URL.Path)
		assert.Equal(t, "getUsers", r.URL.Query().Get("action"))
		_, _ = w.Write([]byte(`[{"id":"1","name":"Ali","role":"USER","balance":1000,"qrData":"cb_abc","phoneNumber":""}]`))
	})

	accounts, err := c.FetchAccounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "cb_abc", accounts[0].QRToken)
	assert.True(t, decimal.NewFromInt(1000).Equal(accounts[0].Balance))
	assert.EqualValues(t, 1, atomic.LoadInt32(calls))
}

func TestClient_FetchTransactions_Retries(t *testing.T) {
	tests := []struct {
		name          string
		statuses      []int
		expectedCalls int32
		expectedErr   bool
		expectedCode  int
	}{
		{
			name:          "Recovers after transient failures",
			statuses:      []int{http.StatusBadGateway, http.StatusTooManyRequests, http.StatusOK},
			expectedCalls: 3,
		},
		{
			name:          "Gives up after two retries",
			statuses:      []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusOK},
			expectedCalls: 3,
			expectedErr:   true,
			expectedCode:  http.StatusServiceUnavailable,
		},
		{
			name:          "Client error is not retried",
			statuses:      []int{http.StatusNotFound},
			expectedCalls: 1,
			expectedErr:   true,
			expectedCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n int32
			c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				i := atomic.AddInt32(&n, 1) - 1
				status := tt.statuses[i]
				w.WriteHeader(status)
				if status == http.StatusOK {
					_, _ = w.Write([]byte(`[{"id":"t1","userId":"1","amount":2000,"cashbackAmount":20,"type":"EARN","timestamp":"2024-05-01T10:00:00Z","adminId":"admin"}]`))
				}
			})

			txs, err := c.FetchTransactions(context.Background())

			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(calls))
			if tt.expectedErr {
				var netErr *domain.NetworkError
				require.ErrorAs(t, err, &netErr)
				assert.Equal(t, tt.expectedCode, netErr.StatusCode)
				return
			}
			require.NoError(t, err)
			require.Len(t, txs, 1)
			assert.Equal(t, domain.KindEarn, txs[0].Kind)
		})
	}
}

func TestClient_FetchAccounts_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	httpClient.EXPECT().
		Get(gomock.Any(), "http://remote/exec?action=getUsers", gomock.Any()).
		Return(0, nil, nil, errors.New("connection refused")).
		Times(3)

	c := New(&config.Config{RemoteStoreURL: "http://remote/exec"}, httpClient)
	c.backoff = 0

	_, err := c.FetchAccounts(context.Background())

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClient_FetchAccounts_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, http.Header) (int, []byte, http.Header, error) {
			cancel()
			return 0, nil, nil, context.Canceled
		}).
		Times(1)

	c := New(&config.Config{RemoteStoreURL: "http://remote/exec"}, httpClient)

	_, err := c.FetchAccounts(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_FetchAccounts_BadBody(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>login required</html>`))
	})

	_, err := c.FetchAccounts(context.Background())

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.EqualValues(t, 1, atomic.LoadInt32(calls))
}

func TestClient_PersistTransaction(t *testing.T) {
	tx := domain.Transaction{
		ID:            "8a1d6c55-63cb-4c43-a8b4-0f7a18d0f4a2",
		AccountID:     "1",
		GrossAmount:   decimal.NewFromInt(2000),
		CashbackDelta: decimal.NewFromInt(20),
		Kind:          domain.KindEarn,
		OccurredAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		OperatorID:    "admin",
	}

	tests := []struct {
		name        string
		status      int
		response    string
		checkErr    func(t *testing.T, err error)
		expectCalls int32
	}{
		{
			name:     "Saved",
			status:   http.StatusOK,
			response: `{"success":true}`,
			checkErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
			expectCalls: 1,
		},
		{
			name:     "Remote rejects",
			status:   http.StatusOK,
			response: `{"success":false,"error":"sheet is locked"}`,
			checkErr: func(t *testing.T, err error) {
				var remoteErr *domain.RemoteError
				require.ErrorAs(t, err, &remoteErr)
				assert.Equal(t, "sheet is locked", remoteErr.Message)
			},
			expectCalls: 1,
		},
		{
			name:     "Server error is not retried",
			status:   http.StatusInternalServerError,
			response: ``,
			checkErr: func(t *testing.T, err error) {
				var netErr *domain.NetworkError
				require.ErrorAs(t, err, &netErr)
				assert.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
			},
			expectCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "saveTransaction", r.URL.Query().Get("action"))
				assert.Equal(t, "text/plain;charset=utf-8", r.Header.Get("Content-Type"))
				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"id":"8a1d6c55-63cb-4c43-a8b4-0f7a18d0f4a2","userId":"1","amount":2000,"cashbackAmount":20,"type":"EARN","timestamp":"2024-05-01T10:00:00Z","adminId":"admin"}`, string(body))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			})

			err := c.PersistTransaction(context.Background(), tx)

			tt.checkErr(t, err)
			assert.Equal(t, tt.expectCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestClient_PersistAccount_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	httpClient.EXPECT().
		Post(gomock.Any(), "http://remote/exec?action=saveUser", gomock.Any(), gomock.Any()).
		Return(0, nil, nil, errors.New("timeout")).
		Times(1)

	c := New(&config.Config{RemoteStoreURL: "http://remote/exec"}, httpClient)

	err := c.PersistAccount(context.Background(), domain.Account{ID: "1"})

	var netErr *domain.NetworkError
	assert.ErrorAs(t, err, &netErr)
}
