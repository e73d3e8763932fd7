package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Source int

const (
	SourceEmpty Source = iota
	SourceNetwork
	SourceMemory
	SourceDurable
)

func (s Source) String() string {
	switch s {
	case SourceNetwork:
		return "network"
	case SourceMemory:
		return "memory"
	case SourceDurable:
		return "durable"
	default:
		return "empty"
	}
}

type Snapshot[T any] struct {
	Data      []T
	FetchedAt time.Time
	Source    Source
	Stale     bool
}

type Fetcher[T any] func(ctx context.Context) ([]T, error)

type fetchResult[T any] struct {
	data      []T
	fetchedAt time.Time
}

// Collection is the two-tier cache of one remote collection. The memory tier
// decides freshness; the durable tier only serves as a fallback.
type Collection[T any] struct {
	name    domain.Collection
	fetch   Fetcher[T]
	durable Durable
	pool    WorkerPoolI
	ttl     time.Duration
	maxAge  time.Duration
	now     func() time.Time

	group      singleflight.Group
	refreshing atomic.Bool

	mu         sync.RWMutex
	data       []T
	fetchedAt  time.Time
	loaded     bool
	generation uint64
}

func NewCollection[T any](name domain.Collection, fetch Fetcher[T], durable Durable, pool WorkerPoolI, ttl, maxAge time.Duration) *Collection[T] {
	return &Collection[T]{
		name:    name,
		fetch:   fetch,
		durable: durable,
		pool:    pool,
		ttl:     ttl,
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// ReadFast returns the best local data without waiting for the network and
// schedules a background refresh when that data is stale or missing.
func (c *Collection[T]) ReadFast(ctx context.Context) Snapshot[T] {
	snap, ok := c.memory()
	if !ok {
		snap, ok = c.fromDurable(ctx)
	}
	if !ok {
		snap = Snapshot[T]{Data: []T{}, Source: SourceEmpty, Stale: true}
	}
	if snap.Stale {
		c.refreshInBackground()
	}
	return snap
}

// ReadFresh returns memory data while it is within TTL, otherwise fetches.
// A failed fetch degrades to memory, then durable, then an empty snapshot.
func (c *Collection[T]) ReadFresh(ctx context.Context, force bool) Snapshot[T] {
	if !force {
		if snap, ok := c.memory(); ok && !snap.Stale {
			return snap
		}
	}

	ch := c.group.DoChan(string(c.name), func() (any, error) {
		return c.load(context.WithoutCancel(ctx))
	})

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case res := <-ch:
		if res.Err == nil {
			r := res.Val.(fetchResult[T])
			return Snapshot[T]{Data: slices.Clone(r.data), FetchedAt: r.fetchedAt, Source: SourceNetwork}
		}
		err = res.Err
	}

	zap.L().Warn("Falling back to cached data",
		zap.String("collection", string(c.name)),
		zap.Error(err),
	)
	if snap, ok := c.memory(); ok {
		return snap
	}
	if snap, ok := c.fromDurable(ctx); ok {
		return snap
	}
	return Snapshot[T]{Data: []T{}, Source: SourceEmpty, Stale: true}
}

// Invalidate drops the memory tier. The durable tier is kept for instant
// display. A fetch already in flight is not shared with later readers.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	c.data = nil
	c.loaded = false
	c.fetchedAt = time.Time{}
	c.generation++
	c.mu.Unlock()

	c.group.Forget(string(c.name))
}

func (c *Collection[T]) load(ctx context.Context) (fetchResult[T], error) {
	c.mu.RLock()
	generation := c.generation
	c.mu.RUnlock()

	data, err := c.fetch(ctx)
	if err != nil {
		return fetchResult[T]{}, err
	}
	if data == nil {
		data = []T{}
	}
	res := fetchResult[T]{data: data, fetchedAt: c.now()}

	c.mu.Lock()
	current := c.generation == generation
	if current {
		c.data = data
		c.fetchedAt = res.fetchedAt
		c.loaded = true
	}
	c.mu.Unlock()

	// An invalidated fetch may predate a write; it must not reach the
	// durable tier either.
	if !current {
		return res, nil
	}
	if err := c.persist(ctx, res); err != nil {
		zap.L().Error("Failed to write durable cache",
			zap.String("collection", string(c.name)),
			zap.Error(err),
		)
	}
	return res, nil
}

func (c *Collection[T]) refreshInBackground() {
	if !c.refreshing.CompareAndSwap(false, true) {
		return
	}
	err := c.pool.TryAddTask(func() error {
		defer c.refreshing.Store(false)
		_, err, _ := c.group.Do(string(c.name), func() (any, error) {
			return c.load(context.Background())
		})
		if err != nil {
			return fmt.Errorf("refresh %s: %w", c.name, err)
		}
		return nil
	})
	if err != nil {
		c.refreshing.Store(false)
		zap.L().Warn("Background refresh skipped", zap.String("collection", string(c.name)), zap.Error(err))
	}
}

func (c *Collection[T]) memory() (Snapshot[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return Snapshot[T]{}, false
	}
	return Snapshot[T]{
		Data:      slices.Clone(c.data),
		FetchedAt: c.fetchedAt,
		Source:    SourceMemory,
		Stale:     c.now().Sub(c.fetchedAt) > c.ttl,
	}, true
}

func (c *Collection[T]) fromDurable(ctx context.Context) (Snapshot[T], bool) {
	if c.durable == nil {
		return Snapshot[T]{}, false
	}
	entry, err := c.durable.Get(ctx, c.name)
	if err != nil {
		zap.L().Warn("Failed to read durable cache", zap.String("collection", string(c.name)), zap.Error(err))
		return Snapshot[T]{}, false
	}
	if entry == nil {
		return Snapshot[T]{}, false
	}
	age := c.now().Sub(entry.FetchedAt)
	if age > c.maxAge {
		return Snapshot[T]{}, false
	}

	var data []T
	if err := json.Unmarshal(entry.Payload, &data); err != nil {
		zap.L().Warn("Discarding unreadable durable cache entry", zap.String("collection", string(c.name)), zap.Error(err))
		return Snapshot[T]{}, false
	}
	if data == nil {
		data = []T{}
	}
	return Snapshot[T]{
		Data:      data,
		FetchedAt: entry.FetchedAt,
		Source:    SourceDurable,
		Stale:     age > c.ttl,
	}, true
}

func (c *Collection[T]) persist(ctx context.Context, res fetchResult[T]) error {
	if c.durable == nil {
		return nil
	}
	payload, err := json.Marshal(res.data)
	if err != nil {
		return err
	}
	return c.durable.Put(ctx, domain.CacheEntry{
		Collection: c.name,
		Payload:    payload,
		FetchedAt:  res.fetchedAt,
	})
}
