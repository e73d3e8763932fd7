package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/dto"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/sessionservice"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/telegram"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type mocks struct {
	service  *MockService
	verifier *MockVerifier
	tokens   *MockTokenIssuer
}

func NewMock(t *testing.T) (*SessionHandler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		service:  NewMockService(ctrl),
		verifier: NewMockVerifier(ctrl),
		tokens:   NewMockTokenIssuer(ctrl),
	}
	h := New(m.service, m.verifier, m.tokens)
	h.now = func() time.Time { return fixedNow }
	return h, m
}

func holder() *domain.Account {
	return &domain.Account{
		ID:          "42",
		DisplayName: "Ali Valiev",
		Role:        domain.RoleAccountHolder,
		Balance:     decimal.NewFromInt(1020),
		QRToken:     "ext_42",
	}
}

func TestTelegram(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(m mocks)
		expectedCode int
	}{
		{
			name: "Signed in",
			body: `{"init_data":"user=%7B%22id%22%3A42%7D&hash=abc"}`,
			prepareMock: func(m mocks) {
				m.verifier.EXPECT().User("user=%7B%22id%22%3A42%7D&hash=abc").Return(telegram.User{ID: "42", FirstName: "Ali", LastName: "Valiev"}, nil)
				m.service.EXPECT().SignInExternal(gomock.Any(), domain.ExternalIdentity{ExternalID: "42", FirstName: "Ali", LastName: "Valiev"}).Return(holder(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Linking failed but session is usable",
			body: `{"init_data":"signed"}`,
			prepareMock: func(m mocks) {
				m.verifier.EXPECT().User("signed").Return(telegram.User{ID: "42", FirstName: "Ali"}, nil)
				m.service.EXPECT().SignInExternal(gomock.Any(), gomock.Any()).Return(holder(), errors.New("remote rejected"))
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing init data",
			body:         `{}`,
			prepareMock:  func(m mocks) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Bad signature",
			body: `{"init_data":"forged"}`,
			prepareMock: func(m mocks) {
				m.verifier.EXPECT().User("forged").Return(telegram.User{}, telegram.ErrInvalidInitData)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Bot token not configured",
			body: `{"init_data":"signed"}`,
			prepareMock: func(m mocks) {
				m.verifier.EXPECT().User("signed").Return(telegram.User{}, telegram.ErrNotConfigured)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name: "Identity without id",
			body: `{"init_data":"signed"}`,
			prepareMock: func(m mocks) {
				m.verifier.EXPECT().User("signed").Return(telegram.User{}, nil)
				m.service.EXPECT().SignInExternal(gomock.Any(), gomock.Any()).Return(nil, sessionservice.ErrEmptyIdentity)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := NewMock(t)
			tt.prepareMock(m)

			req := httptest.NewRequest(http.MethodPost, "/api/session/telegram", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.Telegram(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.SessionResponseDTO
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "42", resp.Account.ID)
				assert.Equal(t, "ext_42", resp.Account.QRToken)
				assert.Empty(t, resp.Token)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(m mocks)
		expectedCode int
	}{
		{
			name: "Registered",
			body: `{"phone":"+998 90 123 45 67","name":"Ali","password":"secret1"}`,
			prepareMock: func(m mocks) {
				m.service.EXPECT().Register(gomock.Any(), "+998 90 123 45 67", "Ali", "secret1").Return(holder(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Phone taken",
			body: `{"phone":"+998901234567","name":"Ali","password":"secret1"}`,
			prepareMock: func(m mocks) {
				m.service.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, sessionservice.ErrPhoneTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Remote unavailable",
			body: `{"phone":"+998901234567","name":"Ali","password":"secret1"}`,
			prepareMock: func(m mocks) {
				m.service.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, sessionservice.ErrRemoteUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name: "Remote rejected",
			body: `{"phone":"+998901234567","name":"Ali","password":"secret1"}`,
			prepareMock: func(m mocks) {
				m.service.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, &domain.RemoteError{Message: "sheet locked"})
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name:         "Short password",
			body:         `{"phone":"+998901234567","name":"Ali","password":"123"}`,
			prepareMock:  func(m mocks) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Broken JSON",
			body:         `{"phone":`,
			prepareMock:  func(m mocks) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := NewMock(t)
			tt.prepareMock(m)

			req := httptest.NewRequest(http.MethodPost, "/api/session/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(m mocks)
		expectedCode int
	}{
		{
			name: "Signed in",
			body: `{"phone":"+998901234567","password":"secret1"}`,
			prepareMock: func(m mocks) {
				m.service.EXPECT().SignInPhone(gomock.Any(), "+998901234567", "secret1").Return(holder(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong password",
			body: `{"phone":"+998901234567","password":"nope"}`,
			prepareMock: func(m mocks) {
				m.service.EXPECT().SignInPhone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, sessionservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := NewMock(t)
			tt.prepareMock(m)

			req := httptest.NewRequest(http.MethodPost, "/api/session/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestOperator(t *testing.T) {
	operator := &domain.Account{ID: "admin_admin", DisplayName: "Administrator", Role: domain.RoleOperator}

	tests := []struct {
		name         string
		body         string
		prepareMock  func(m mocks)
		expectedCode int
		expectToken  string
	}{
		{
			name: "Token issued",
			body: `{"username":"admin","password":"admin123"}`,
			prepareMock: func(m mocks) {
				m.service.EXPECT().SignInOperator(gomock.Any(), "admin", "admin123").Return(operator, nil)
				m.tokens.EXPECT().GenerateJWT("admin_admin", "ADMIN", fixedNow.Add(operatorTokenTTL)).Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
			expectToken:  "jwt-token",
		},
		{
			name: "Invalid credentials",
			body: `{"username":"admin","password":"guess"}`,
			prepareMock: func(m mocks) {
				m.service.EXPECT().SignInOperator(gomock.Any(), "admin", "guess").Return(nil, sessionservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Token failure",
			body: `{"username":"admin","password":"admin123"}`,
			prepareMock: func(m mocks) {
				m.service.EXPECT().SignInOperator(gomock.Any(), gomock.Any(), gomock.Any()).Return(operator, nil)
				m.tokens.EXPECT().GenerateJWT(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("no key"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := NewMock(t)
			tt.prepareMock(m)

			req := httptest.NewRequest(http.MethodPost, "/api/session/operator", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.Operator(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectToken != "" {
				assert.Equal(t, "Bearer "+tt.expectToken, rec.Header().Get("Authorization"))
				var resp dto.SessionResponseDTO
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectToken, resp.Token)
				assert.Equal(t, domain.RoleOperator, resp.Account.Role)
			}
		})
	}
}

func TestCurrentAndSignOut(t *testing.T) {
	h, m := NewMock(t)

	m.service.EXPECT().Current().Return(holder())
	rec := httptest.NewRecorder()
	h.Current(rec, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	m.service.EXPECT().SignOut(gomock.Any()).Return(nil)
	rec = httptest.NewRecorder()
	h.SignOut(rec, httptest.NewRequest(http.MethodDelete, "/api/session", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	m.service.EXPECT().Current().Return(nil)
	rec = httptest.NewRecorder()
	h.Current(rec, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	m.service.EXPECT().SignOut(gomock.Any()).Return(errors.New("db down"))
	rec = httptest.NewRecorder()
	h.SignOut(rec, httptest.NewRequest(http.MethodDelete, "/api/session", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
