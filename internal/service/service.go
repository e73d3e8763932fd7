package service

import (
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/cache"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/refresh"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/remote"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/repo"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/sessionservice"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/statsservice"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/terminalservice"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/auth"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/clients"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/telegram"
	"golang.org/x/crypto/bcrypt"
)

// init data older than this is rejected
const initDataMaxAge = 24 * time.Hour

type Services struct {
	Cache     *cache.Cache
	Remote    *remote.Client
	Session   *sessionservice.Service
	Terminal  *terminalservice.Service
	Stats     *statsservice.Service
	Scheduler *refresh.Scheduler
	Verifier  *telegram.Verifier
	JWT       *auth.JWTService
}

func New(cfg *config.Config, repo *repo.Repositories, client clients.HTTPClientI) *Services {
	remoteClient := remote.New(cfg, client)
	c := cache.New(cfg, remoteClient, repo.Durable)

	sessionService := sessionservice.New(cfg, repo.Sessions, c.Accounts, remoteClient, auth.NewHashService(bcrypt.DefaultCost))
	terminalService := terminalservice.New(c.Accounts, c.Transactions, remoteClient)
	statsService := statsservice.New(c.Accounts, c.Transactions)
	scheduler := refresh.New(cfg, sessionService, c.Transactions)

	return &Services{
		Cache:     c,
		Remote:    remoteClient,
		Session:   sessionService,
		Terminal:  terminalService,
		Stats:     statsService,
		Scheduler: scheduler,
		Verifier:  telegram.NewVerifier(cfg.TelegramToken, initDataMaxAge),
		JWT:       auth.NewJWTService(cfg.JWTSecret),
	}
}
