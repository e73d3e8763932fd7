package service

import (
	"testing"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/cache"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/repo"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/sessionservice"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/clients"
	"github.com/stretchr/testify/assert"
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
		RefreshDelay:   time.Millisecond,
		JWTSecret:      "secret",
	}
	repos := &repo.Repositories{
		Durable:  cache.NewMockDurable(ctrl),
		Sessions: sessionservice.NewMockStore(ctrl),
	}

	services := New(cfg, repos, clients.NewMockHTTPClientI(ctrl))
	defer services.Cache.Close()

	assert.NotNil(t, services.Cache)
	assert.NotNil(t, services.Remote)
	assert.NotNil(t, services.Session)
	assert.NotNil(t, services.Terminal)
	assert.NotNil(t, services.Stats)
	assert.NotNil(t, services.Scheduler)
	assert.NotNil(t, services.Verifier)
	assert.NotNil(t, services.JWT)
}
