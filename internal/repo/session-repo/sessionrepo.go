package sessionrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionKey is the fixed key the device session is stored under.
const SessionKey = "loyalty_session"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Load(ctx context.Context) (*domain.Account, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, "SELECT account FROM sessions WHERE key = $1", SessionKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't load session", zap.Error(err))
		return nil, err
	}

	var account domain.Account
	if err := json.Unmarshal(payload, &account); err != nil {
		return nil, fmt.Errorf("corrupted session record: %w", err)
	}
	return &account, nil
}

func (r *Repository) Save(ctx context.Context, account domain.Account) error {
	payload, err := json.Marshal(account)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sessions (key, account, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET account = EXCLUDED.account, updated_at = now()
	`
	if _, err := r.db.Exec(ctx, query, SessionKey, payload); err != nil {
		zap.L().Error("can't save session", zap.String("accountID", account.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM sessions WHERE key = $1", SessionKey); err != nil {
		zap.L().Error("can't clear session", zap.Error(err))
		return err
	}
	return nil
}
