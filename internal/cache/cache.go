package cache

//go:generate mockgen -source=cache.go -destination=mock_cache.go -package=cache

import (
	"context"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
)

const refreshWorkers = 2

// Durable is the local store that survives restarts. Get returns nil, nil
// when nothing was stored for the collection.
type Durable interface {
	Get(ctx context.Context, collection domain.Collection) (*domain.CacheEntry, error)
	Put(ctx context.Context, entry domain.CacheEntry) error
}

type RemoteStore interface {
	FetchAccounts(ctx context.Context) ([]domain.Account, error)
	FetchTransactions(ctx context.Context) ([]domain.Transaction, error)
}

type Cache struct {
	Accounts     *Collection[domain.Account]
	Transactions *Collection[domain.Transaction]
	pool         *WorkerPool
}

func New(cfg *config.Config, remote RemoteStore, durable Durable) *Cache {
	pool := NewWorkerPool(refreshWorkers)
	return &Cache{
		Accounts:     NewCollection(domain.CollectionAccounts, remote.FetchAccounts, durable, pool, cfg.CacheTTL, cfg.DurableMaxAge),
		Transactions: NewCollection(domain.CollectionTransactions, remote.FetchTransactions, durable, pool, cfg.CacheTTL, cfg.DurableMaxAge),
		pool:         pool,
	}
}

// InvalidateAll drops the memory tier of both collections.
func (c *Cache) InvalidateAll() {
	c.Accounts.Invalidate()
	c.Transactions.Invalidate()
}

// Wait joins the background refreshes started so far.
func (c *Cache) Wait() error {
	return c.pool.Wait()
}

// Close stops background refreshes and joins the ones still running.
func (c *Cache) Close() error {
	c.pool.Close()
	return c.pool.Wait()
}
