package cacherepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	fetchedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT payload, fetched_at FROM cache_entries WHERE collection = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.CacheEntry
	}{
		{
			name: "Entry found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"payload", "fetched_at"}).
					AddRow([]byte(`[{"id":"1"}]`), fetchedAt)
				mock.ExpectQuery(query).WithArgs("accounts").WillReturnRows(rows)
			},
			result: &domain.CacheEntry{
				Collection: domain.CollectionAccounts,
				Payload:    []byte(`[{"id":"1"}]`),
				FetchedAt:  fetchedAt,
			},
		},
		{
			name: "Nothing cached yet",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("accounts").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("accounts").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), domain.CollectionAccounts)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Put(t *testing.T) {
	repo, mock := NewMock(t)
	entry := domain.CacheEntry{
		Collection: domain.CollectionTransactions,
		Payload:    []byte(`[]`),
		FetchedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	query := regexp.QuoteMeta("INSERT INTO cache_entries (collection, payload, fetched_at)")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Upserted",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("transactions", entry.Payload, entry.FetchedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("transactions", entry.Payload, entry.FetchedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Put(context.Background(), entry)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
