package refresh

//go:generate mockgen -source=refresh.go -destination=mock_refresh.go -package=refresh

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/cache"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"go.uber.org/zap"
)

type Session interface {
	Current() *domain.Account
	Reconcile(ctx context.Context, force bool) (*domain.Account, bool)
}

type TransactionSource interface {
	ReadFresh(ctx context.Context, force bool) cache.Snapshot[domain.Transaction]
}

// Update is published after every cycle. Transactions holds only the holder's
// own transactions.
type Update struct {
	Account      *domain.Account
	Transactions []domain.Transaction
	Changed      bool
}

type Listener func(Update)

// Scheduler keeps an account holder's view current while it is visible.
// There is a single timer: it is armed with a short debounce when the view
// becomes visible, re-armed after every cycle and stopped while hidden.
type Scheduler struct {
	session  Session
	txs      TransactionSource
	interval time.Duration
	debounce time.Duration

	visible atomic.Bool
	wake    chan struct{}

	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
}

func New(cfg *config.Config, session Session, txs TransactionSource) *Scheduler {
	s := &Scheduler{
		session:   session,
		txs:       txs,
		interval:  cfg.RefreshEvery,
		debounce:  cfg.RefreshDelay,
		wake:      make(chan struct{}, 1),
		listeners: make(map[int]Listener),
	}
	s.visible.Store(true)
	return s
}

func (s *Scheduler) Start(ctx context.Context) {
	zap.L().Info("Refresh scheduler started",
		zap.Duration("interval", s.interval),
		zap.Duration("debounce", s.debounce),
	)
	go s.run(ctx)
}

// SetVisible reports whether the holder's view is on screen.
func (s *Scheduler) SetVisible(visible bool) {
	if s.visible.Swap(visible) == visible {
		return
	}
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) Visible() bool {
	return s.visible.Load()
}

func (s *Scheduler) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Scheduler) run(ctx context.Context) {
	timer := time.NewTimer(s.debounce)
	if !s.visible.Load() {
		stopTimer(timer)
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping refresh scheduler")
			return
		case <-s.wake:
			stopTimer(timer)
			if s.visible.Load() {
				timer.Reset(s.debounce)
			}
		case <-timer.C:
			s.Cycle(ctx)
			if s.visible.Load() {
				timer.Reset(s.interval)
			}
		}
	}
}

// Cycle refreshes the holder's session and transactions once and publishes
// the result. Nothing happens unless an account holder is signed in.
func (s *Scheduler) Cycle(ctx context.Context) (Update, bool) {
	current := s.session.Current()
	if current == nil || current.IsOperator() {
		return Update{}, false
	}

	account, changed := s.session.Reconcile(ctx, true)
	if account == nil {
		return Update{}, false
	}
	snap := s.txs.ReadFresh(ctx, true)

	own := make([]domain.Transaction, 0)
	for _, t := range domain.UniqueTransactions(snap.Data) {
		if t.AccountID == account.ID {
			own = append(own, t)
		}
	}

	update := Update{Account: account, Transactions: own, Changed: changed}
	if changed {
		zap.L().Info("Holder balance updated", zap.String("accountID", account.ID), zap.Stringer("balance", account.Balance))
	}
	s.publish(update)
	return update, true
}

func (s *Scheduler) publish(u Update) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(u)
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
