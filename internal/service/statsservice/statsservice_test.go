package statsservice

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/cache"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var base = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func tx(id, accountID string, kind domain.Kind, gross, delta int64, minute int) domain.Transaction {
	return domain.Transaction{
		ID:            id,
		AccountID:     accountID,
		GrossAmount:   decimal.NewFromInt(gross),
		CashbackDelta: decimal.NewFromInt(delta),
		Kind:          kind,
		OccurredAt:    base.Add(time.Duration(minute) * time.Minute),
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		earned string
		want   Tier
	}{
		{earned: "0", want: TierBronze},
		{earned: "20", want: TierBronze},
		{earned: "20.01", want: TierSilver},
		{earned: "50", want: TierSilver},
		{earned: "50.5", want: TierGold},
	}

	for _, tt := range tests {
		t.Run(tt.earned, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFor(decimal.RequireFromString(tt.earned)))
		})
	}
}

func TestForHolder(t *testing.T) {
	txs := []domain.Transaction{
		tx("1", "u1", domain.KindEarn, 2000, 20, 1),
		tx("2", "u2", domain.KindEarn, 9000, 90, 2),
		tx("3", "u1", domain.KindRedeem, 5, 5, 3),
		tx("4", "u1", domain.KindEarn, 1500, 15, 4),
		tx("4", "u1", domain.KindEarn, 1500, 15, 4),
	}

	stats := ForHolder("u1", txs)

	assert.Equal(t, TierSilver, stats.Tier)
	assert.True(t, decimal.NewFromInt(35).Equal(stats.TotalEarned))
	require.Len(t, stats.Recent, 3)
	assert.Equal(t, []string{"4", "3", "1"}, []string{stats.Recent[0].ID, stats.Recent[1].ID, stats.Recent[2].ID})
}

func TestForHolderLimitsRecent(t *testing.T) {
	var txs []domain.Transaction
	for i := 0; i < 15; i++ {
		txs = append(txs, tx(fmt.Sprint(i), "u1", domain.KindEarn, 1000, 10, i))
	}

	stats := ForHolder("u1", txs)

	assert.Equal(t, TierGold, stats.Tier)
	require.Len(t, stats.Recent, RecentLimit)
	assert.Equal(t, "14", stats.Recent[0].ID)
	assert.Equal(t, "5", stats.Recent[RecentLimit-1].ID)
}

func TestForOperator(t *testing.T) {
	accounts := []domain.Account{
		{ID: "admin_admin", DisplayName: "Administrator", Role: domain.RoleOperator},
		{ID: "u1", DisplayName: "Ali", Role: domain.RoleAccountHolder},
		{ID: "u2", DisplayName: "Vali", Role: domain.RoleAccountHolder},
	}
	txs := []domain.Transaction{
		tx("1", "u1", domain.KindEarn, 2000, 20, 1),
		tx("2", "gone", domain.KindEarn, 1000, 10, 2),
		tx("3", "u2", domain.KindRedeem, 5, 5, 3),
	}

	stats := ForOperator(accounts, txs)

	assert.Equal(t, 2, stats.Members)
	assert.True(t, decimal.NewFromInt(3005).Equal(stats.Volume))
	require.Len(t, stats.Recent, 3)
	assert.Equal(t, "Vali", stats.Recent[0].CustomerName)
	assert.Equal(t, DeletedUser, stats.Recent[1].CustomerName)
	assert.Equal(t, "Ali", stats.Recent[2].CustomerName)
}

func TestService_ReadsFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := NewMockAccountReader(ctrl)
	txs := NewMockTransactionReader(ctrl)
	s := New(accounts, txs)

	history := []domain.Transaction{tx("1", "u1", domain.KindEarn, 6000, 60, 1)}
	txs.EXPECT().ReadFast(gomock.Any()).Return(cache.Snapshot[domain.Transaction]{Data: history, Source: cache.SourceDurable}).Times(2)
	accounts.EXPECT().ReadFast(gomock.Any()).Return(cache.Snapshot[domain.Account]{
		Data:   []domain.Account{{ID: "u1", DisplayName: "Ali", Role: domain.RoleAccountHolder}},
		Source: cache.SourceMemory,
	})

	holder := s.Holder(context.Background(), "u1")
	operator := s.Operator(context.Background())

	assert.Equal(t, TierGold, holder.Tier)
	assert.Equal(t, 1, operator.Members)
	require.Len(t, operator.Recent, 1)
	assert.Equal(t, "Ali", operator.Recent[0].CustomerName)
}
