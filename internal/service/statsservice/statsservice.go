package statsservice

//go:generate mockgen -source=statsservice.go -destination=mock_statsservice.go -package=statsservice

import (
	"context"
	"slices"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/cache"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/shopspring/decimal"
)

const RecentLimit = 10

const DeletedUser = "Deleted User"

type Tier string

const (
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

var (
	silverAbove = decimal.NewFromInt(20)
	goldAbove   = decimal.NewFromInt(50)
)

type AccountReader interface {
	ReadFast(ctx context.Context) cache.Snapshot[domain.Account]
}

type TransactionReader interface {
	ReadFast(ctx context.Context) cache.Snapshot[domain.Transaction]
}

type HolderStats struct {
	Tier        Tier                 `json:"tier"`
	TotalEarned decimal.Decimal      `json:"totalEarned"`
	Recent      []domain.Transaction `json:"recent"`
}

type Entry struct {
	domain.Transaction
	CustomerName string `json:"customerName"`
}

type OperatorStats struct {
	Members int             `json:"members"`
	Volume  decimal.Decimal `json:"volume"`
	Recent  []Entry         `json:"recent"`
}

type Service struct {
	accounts AccountReader
	txs      TransactionReader
}

func New(accounts AccountReader, txs TransactionReader) *Service {
	return &Service{accounts: accounts, txs: txs}
}

// Holder reads whatever the cache has right now; a stale answer triggers a
// refresh in the background.
func (s *Service) Holder(ctx context.Context, accountID string) HolderStats {
	return ForHolder(accountID, s.txs.ReadFast(ctx).Data)
}

func (s *Service) Operator(ctx context.Context) OperatorStats {
	return ForOperator(s.accounts.ReadFast(ctx).Data, s.txs.ReadFast(ctx).Data)
}

func TierFor(totalEarned decimal.Decimal) Tier {
	switch {
	case totalEarned.GreaterThan(goldAbove):
		return TierGold
	case totalEarned.GreaterThan(silverAbove):
		return TierSilver
	default:
		return TierBronze
	}
}

func ForHolder(accountID string, txs []domain.Transaction) HolderStats {
	own := make([]domain.Transaction, 0)
	earned := decimal.Zero
	for _, t := range domain.UniqueTransactions(txs) {
		if t.AccountID != accountID {
			continue
		}
		own = append(own, t)
		if t.Kind == domain.KindEarn {
			earned = earned.Add(t.CashbackDelta)
		}
	}
	return HolderStats{
		Tier:        TierFor(earned),
		TotalEarned: earned,
		Recent:      latest(own),
	}
}

func ForOperator(accounts []domain.Account, txs []domain.Transaction) OperatorStats {
	stats := OperatorStats{Volume: decimal.Zero, Recent: make([]Entry, 0, RecentLimit)}
	for _, a := range accounts {
		if a.Role == domain.RoleAccountHolder {
			stats.Members++
		}
	}

	unique := domain.UniqueTransactions(txs)
	for _, t := range unique {
		stats.Volume = stats.Volume.Add(t.GrossAmount)
	}
	for _, t := range latest(unique) {
		name := DeletedUser
		if a, ok := domain.FindAccount(accounts, t.AccountID); ok {
			name = a.DisplayName
		}
		stats.Recent = append(stats.Recent, Entry{Transaction: t, CustomerName: name})
	}
	return stats
}

// latest returns up to RecentLimit transactions, newest first.
func latest(txs []domain.Transaction) []domain.Transaction {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b domain.Transaction) int {
		return b.OccurredAt.Compare(a.OccurredAt)
	})
	if len(sorted) > RecentLimit {
		sorted = sorted[:RecentLimit]
	}
	return sorted
}
