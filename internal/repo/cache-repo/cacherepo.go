package cacherepo

import (
	"context"
	"errors"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, collection domain.Collection) (*domain.CacheEntry, error) {
	query := "SELECT payload, fetched_at FROM cache_entries WHERE collection = $1"

	entry := domain.CacheEntry{Collection: collection}
	err := r.db.QueryRow(ctx, query, string(collection)).Scan(&entry.Payload, &entry.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't read cache entry", zap.String("collection", string(collection)), zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) Put(ctx context.Context, entry domain.CacheEntry) error {
	query := `
		INSERT INTO cache_entries (collection, payload, fetched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection) DO UPDATE
		SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at
	`
	_, err := r.db.Exec(ctx, query, string(entry.Collection), entry.Payload, entry.FetchedAt)
	if err != nil {
		zap.L().Error("can't save cache entry", zap.String("collection", string(entry.Collection)), zap.Error(err))
		return err
	}
	return nil
}
