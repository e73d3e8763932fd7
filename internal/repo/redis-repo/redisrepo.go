package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix  = "bonus:"
	sessionKey = keyPrefix + "loyalty_session"
)

type entry struct {
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Repository keeps the durable cache tier and the device session in Redis.
// Cache entries expire on their own once they are too old to be served.
type Repository struct {
	client *redis.Client
	maxAge time.Duration
}

func New(client *redis.Client, maxAge time.Duration) *Repository {
	return &Repository{
		client: client,
		maxAge: maxAge,
	}
}

func Open(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New("empty redis addr")
	}
	c := redis.NewClient(&redis.Options{Addr: addr})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func cacheKey(collection domain.Collection) string {
	return keyPrefix + "cache:" + string(collection)
}

func (r *Repository) Get(ctx context.Context, collection domain.Collection) (*domain.CacheEntry, error) {
	raw, err := r.client.Get(ctx, cacheKey(collection)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		zap.L().Error("can't read cache entry", zap.String("collection", string(collection)), zap.Error(err))
		return nil, err
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("corrupted cache entry %s: %w", collection, err)
	}
	return &domain.CacheEntry{
		Collection: collection,
		Payload:    e.Payload,
		FetchedAt:  e.FetchedAt,
	}, nil
}

func (r *Repository) Put(ctx context.Context, ce domain.CacheEntry) error {
	raw, err := json.Marshal(entry{Payload: ce.Payload, FetchedAt: ce.FetchedAt})
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, cacheKey(ce.Collection), string(raw), r.maxAge).Err(); err != nil {
		zap.L().Error("can't save cache entry", zap.String("collection", string(ce.Collection)), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Load(ctx context.Context) (*domain.Account, error) {
	raw, err := r.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		zap.L().Error("can't load session", zap.Error(err))
		return nil, err
	}

	var account domain.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, fmt.Errorf("corrupted session record: %w", err)
	}
	return &account, nil
}

func (r *Repository) Save(ctx context.Context, account domain.Account) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, sessionKey, string(raw), 0).Err(); err != nil {
		zap.L().Error("can't save session", zap.String("accountID", account.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, sessionKey).Err(); err != nil {
		zap.L().Error("can't clear session", zap.Error(err))
		return err
	}
	return nil
}
