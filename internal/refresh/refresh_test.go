package refresh

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/cache"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T, cfg *config.Config) (*Scheduler, *MockSession, *MockTransactionSource) {
	ctrl := gomock.NewController(t)
	session := NewMockSession(ctrl)
	txs := NewMockTransactionSource(ctrl)
	return New(cfg, session, txs), session, txs
}

func holder(balance int64) *domain.Account {
	return &domain.Account{ID: "42", DisplayName: "Ali", Role: domain.RoleAccountHolder, Balance: decimal.NewFromInt(balance), QRToken: "ext_42"}
}

func history() cache.Snapshot[domain.Transaction] {
	return cache.Snapshot[domain.Transaction]{
		Source: cache.SourceNetwork,
		Data: []domain.Transaction{
			{ID: "t1", AccountID: "42", CashbackDelta: decimal.NewFromInt(20), Kind: domain.KindEarn},
			{ID: "t2", AccountID: "7", CashbackDelta: decimal.NewFromInt(5), Kind: domain.KindEarn},
			{ID: "t3", AccountID: "42", CashbackDelta: decimal.NewFromInt(5), Kind: domain.KindRedeem},
		},
	}
}

func TestScheduler_Cycle(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(session *MockSession, txs *MockTransactionSource)
		expectRun   bool
		expectTxs   []string
		changed     bool
	}{
		{
			name: "Signed out",
			prepareMock: func(session *MockSession, txs *MockTransactionSource) {
				session.EXPECT().Current().Return(nil)
			},
		},
		{
			name: "Operator session is not polled",
			prepareMock: func(session *MockSession, txs *MockTransactionSource) {
				session.EXPECT().Current().Return(&domain.Account{ID: "admin_admin", Role: domain.RoleOperator})
			},
		},
		{
			name: "Holder balance changed",
			prepareMock: func(session *MockSession, txs *MockTransactionSource) {
				session.EXPECT().Current().Return(holder(10))
				session.EXPECT().Reconcile(gomock.Any(), true).Return(holder(25), true)
				txs.EXPECT().ReadFresh(gomock.Any(), true).Return(history())
			},
			expectRun: true,
			expectTxs: []string{"t1", "t3"},
			changed:   true,
		},
		{
			name: "Holder unchanged",
			prepareMock: func(session *MockSession, txs *MockTransactionSource) {
				session.EXPECT().Current().Return(holder(25))
				session.EXPECT().Reconcile(gomock.Any(), true).Return(holder(25), false)
				txs.EXPECT().ReadFresh(gomock.Any(), true).Return(cache.Snapshot[domain.Transaction]{Source: cache.SourceEmpty})
			},
			expectRun: true,
			expectTxs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, session, txs := NewMock(t, &config.Config{RefreshEvery: time.Minute, RefreshDelay: time.Millisecond})
			tt.prepareMock(session, txs)

			var published []Update
			s.Subscribe(func(u Update) { published = append(published, u) })

			update, ran := s.Cycle(context.Background())

			assert.Equal(t, tt.expectRun, ran)
			if !tt.expectRun {
				assert.Empty(t, published)
				return
			}
			require.Len(t, published, 1)
			assert.Equal(t, tt.changed, update.Changed)
			ids := make([]string, 0, len(update.Transactions))
			for _, tx := range update.Transactions {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.expectTxs, ids)
		})
	}
}

func TestScheduler_Unsubscribe(t *testing.T) {
	s, session, txs := NewMock(t, &config.Config{RefreshEvery: time.Minute, RefreshDelay: time.Millisecond})
	session.EXPECT().Current().Return(holder(10))
	session.EXPECT().Reconcile(gomock.Any(), true).Return(holder(10), false)
	txs.EXPECT().ReadFresh(gomock.Any(), true).Return(history())

	calls := 0
	unsubscribe := s.Subscribe(func(Update) { calls++ })
	unsubscribe()
	s.Cycle(context.Background())

	assert.Zero(t, calls)
}

func TestScheduler_Run(t *testing.T) {
	s, session, txs := NewMock(t, &config.Config{RefreshEvery: 30 * time.Millisecond, RefreshDelay: 10 * time.Millisecond})
	session.EXPECT().Current().Return(holder(10)).AnyTimes()
	session.EXPECT().Reconcile(gomock.Any(), true).Return(holder(10), false).AnyTimes()
	txs.EXPECT().ReadFresh(gomock.Any(), true).Return(history()).AnyTimes()

	var cycles atomic.Int32
	ticks := make(chan struct{}, 100)
	s.Subscribe(func(Update) {
		cycles.Add(1)
		ticks <- struct{}{}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	waitTick := func() {
		t.Helper()
		select {
		case <-ticks:
		case <-time.After(time.Second):
			t.Fatal("no refresh cycle")
		}
	}

	waitTick()
	waitTick()

	s.SetVisible(false)
	assert.False(t, s.Visible())
	time.Sleep(50 * time.Millisecond)
	hidden := cycles.Load()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, hidden, cycles.Load())

	for len(ticks) > 0 {
		<-ticks
	}
	s.SetVisible(true)
	waitTick()
}

func TestScheduler_RapidTogglesCoalesce(t *testing.T) {
	s, session, txs := NewMock(t, &config.Config{RefreshEvery: time.Minute, RefreshDelay: 50 * time.Millisecond})
	session.EXPECT().Current().Return(holder(10)).AnyTimes()
	session.EXPECT().Reconcile(gomock.Any(), true).Return(holder(10), false).AnyTimes()
	txs.EXPECT().ReadFresh(gomock.Any(), true).Return(history()).AnyTimes()

	var cycles atomic.Int32
	ticks := make(chan struct{}, 100)
	s.Subscribe(func(Update) {
		cycles.Add(1)
		ticks <- struct{}{}
	})

	s.SetVisible(false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	for i := 0; i < 10; i++ {
		s.SetVisible(false)
		s.SetVisible(true)
	}

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("no refresh cycle after the view became visible")
	}
	time.Sleep(200 * time.Millisecond)
	assert.EqualValues(t, 1, cycles.Load())
}
