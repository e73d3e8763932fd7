package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/cache"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	holderhandlers "github.com/eshonkulov-asliddin/bonus-shop/internal/handlers/holder"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/repo"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/sessionservice"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/auth"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/clients"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		RemoteStoreURL: "http://localhost:8081/exec",
		CacheTTL:       time.Minute,
		DurableMaxAge:  time.Hour,
		RefreshEvery:   time.Minute,
		JWTSecret:      "secret",
		AllowedOrigins: []string{"*"},
	}
	services := service.New(cfg, &repo.Repositories{
		Durable:  cache.NewMockDurable(ctrl),
		Sessions: sessionservice.NewMockStore(ctrl),
	}, clients.NewMockHTTPClientI(ctrl))
	defer services.Cache.Close()

	h, holder := New(cfg, services, holderhandlers.NewHub())
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, holder)
	assert.Same(t, holder, h.HolderHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionHandler := NewMockSessionHandler(ctrl)
	mockTerminalHandler := NewMockTerminalHandler(ctrl)
	mockHolderHandler := NewMockHolderHandler(ctrl)

	mockSessionHandler.EXPECT().Telegram(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().Operator(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().Current(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().SignOut(gomock.Any(), gomock.Any()).AnyTimes()
	mockHolderHandler.EXPECT().Dashboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockHolderHandler.EXPECT().Visibility(gomock.Any(), gomock.Any()).AnyTimes()
	mockHolderHandler.EXPECT().Refresh(gomock.Any(), gomock.Any()).AnyTimes()
	mockHolderHandler.EXPECT().Stream(gomock.Any(), gomock.Any()).AnyTimes()
	mockTerminalHandler.EXPECT().State(gomock.Any(), gomock.Any()).AnyTimes()
	mockTerminalHandler.EXPECT().Scan(gomock.Any(), gomock.Any()).AnyTimes()
	mockTerminalHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	operatorToken, err := jwtService.GenerateJWT("admin_admin", "ADMIN", time.Now().Add(time.Hour))
	require.NoError(t, err)
	holderToken, err := jwtService.GenerateJWT("42", "USER", time.Now().Add(time.Hour))
	require.NoError(t, err)

	h := &Handlers{
		SessionHandler:  mockSessionHandler,
		TerminalHandler: mockTerminalHandler,
		HolderHandler:   mockHolderHandler,
		JWT:             jwtService,
		AllowedOrigins:  []string{"http://localhost:3000"},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/api/session", "", http.StatusOK},
		{"DELETE", "/api/session", "", http.StatusOK},
		{"POST", "/api/session/telegram", "", http.StatusOK},
		{"POST", "/api/session/register", "", http.StatusOK},
		{"POST", "/api/session/login", "", http.StatusOK},
		{"POST", "/api/session/operator", "", http.StatusOK},
		{"GET", "/api/holder", "", http.StatusOK},
		{"POST", "/api/holder/visibility", "", http.StatusOK},
		{"POST", "/api/holder/refresh", "", http.StatusOK},
		{"GET", "/api/holder/stream", "", http.StatusOK},
		{"GET", "/api/terminal", "", http.StatusUnauthorized},
		{"POST", "/api/terminal/scan", "", http.StatusUnauthorized},
		{"POST", "/api/terminal/submit", holderToken, http.StatusForbidden},
		{"POST", "/api/terminal/submit", "broken", http.StatusUnauthorized},
		{"GET", "/api/terminal", operatorToken, http.StatusOK},
		{"POST", "/api/terminal/scan", operatorToken, http.StatusOK},
		{"POST", "/api/terminal/submit", operatorToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := &Handlers{
		SessionHandler:  NewMockSessionHandler(ctrl),
		TerminalHandler: NewMockTerminalHandler(ctrl),
		HolderHandler:   NewMockHolderHandler(ctrl),
		JWT:             auth.NewJWTService("secret"),
		AllowedOrigins:  []string{"http://localhost:3000"},
	}
	router := chi.NewRouter()
	h.InitRoutes(router)

	req := httptest.NewRequest(http.MethodOptions, "/api/terminal/submit", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
