package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/handlers"
	holderhandlers "github.com/eshonkulov-asliddin/bonus-shop/internal/handlers/holder"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/pg"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/repo"
	redisrepo "github.com/eshonkulov-asliddin/bonus-shop/internal/repo/redis-repo"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/clients"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	hub  *holderhandlers.Hub

	closers []func()
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	repos, err := a.openStore(ctx, cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.repo = repos
	a.srv = service.New(cfg, a.repo, clients.NewHTTPClient(cfg.RemoteTimeout))
	a.hub = holderhandlers.NewHub()

	var holder *holderhandlers.HolderHandler
	a.api, holder = handlers.New(cfg, a.srv, a.hub)
	a.srv.Session.Subscribe(holder.OnSession)
	a.srv.Scheduler.Subscribe(holder.OnRefresh)
	a.closers = append(a.closers, a.hub.Close, a.closeCache)

	a.restoreSession(ctx)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.srv.Scheduler.Start(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// openStore connects the durable backend chosen in the config.
func (a *Application) openStore(ctx context.Context, cfg *config.Config) (*repo.Repositories, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client, err := redisrepo.Open(ctx, cfg.RedisAddr)
		if err != nil {
			zap.L().Error("connect to redis failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't connect to redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		return repo.NewRedis(client, cfg.DurableMaxAge), nil
	case config.BackendPostgres, "":
		pool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			zap.L().Error("migrations failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't run migrations: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		return repo.New(pg.New(pool)), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// restoreSession makes the persisted session current at once and checks it
// against the remote in the background.
func (a *Application) restoreSession(ctx context.Context) {
	account, err := a.srv.Session.Restore(ctx)
	if err != nil || account == nil {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.srv.Session.Reconcile(ctx, false)
	}()
}

func (a *Application) closeCache() {
	if err := a.srv.Cache.Close(); err != nil {
		zap.L().Warn("background cache refreshes failed", zap.Error(err))
	}
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}

	return appErr
}
