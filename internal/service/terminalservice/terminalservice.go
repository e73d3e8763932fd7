package terminalservice

//go:generate mockgen -source=terminalservice.go -destination=mock_terminalservice.go -package=terminalservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/cache"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/ids"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type State string

const (
	StateIdle             State = "IDLE"
	StateIdentitySelected State = "IDENTITY_SELECTED"
	StateAmountEntry      State = "AMOUNT_ENTRY"
	StateSubmitting       State = "SUBMITTING"
)

type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomeCommitted  Outcome = "COMMITTED"
	OutcomeRolledBack Outcome = "ROLLED_BACK"
)

var EarnRate = decimal.RequireFromString("0.01")

var (
	ErrBusy              = errors.New("a transaction is being submitted")
	ErrInvalidTransition = errors.New("action not allowed in the current state")
	ErrNoSelection       = errors.New("no account selected")
	ErrKindRequired      = errors.New("transaction kind not chosen")
	ErrStaleRead         = errors.New("remote data unavailable")
)

type AccountSource interface {
	ReadFresh(ctx context.Context, force bool) cache.Snapshot[domain.Account]
	Invalidate()
}

type TransactionSource interface {
	ReadFresh(ctx context.Context, force bool) cache.Snapshot[domain.Transaction]
	Invalidate()
}

type Writer interface {
	PersistTransaction(ctx context.Context, tx domain.Transaction) error
}

type Preview struct {
	Kind             domain.Kind             `json:"kind"`
	GrossAmount      decimal.Decimal         `json:"grossAmount"`
	CashbackDelta    decimal.Decimal         `json:"cashbackDelta"`
	CurrentBalance   decimal.Decimal         `json:"currentBalance"`
	PredictedBalance decimal.Decimal         `json:"predictedBalance"`
	CanSubmit        bool                    `json:"canSubmit"`
	Error            *domain.ValidationError `json:"-"`
}

// View is a copy of the engine state; changing it has no effect on the engine.
type View struct {
	State        State
	Kind         domain.Kind
	Selected     *domain.Account
	Amount       decimal.Decimal
	Preview      *Preview
	Accounts     []domain.Account
	Transactions []domain.Transaction
	LastOutcome  Outcome
	LastError    error
}

// staged is an optimistic transaction waiting for the remote write, with the
// account exactly as it was before the transaction was applied.
type staged struct {
	tx     domain.Transaction
	before domain.Account
}

// Service is the operator terminal. The optimistic state lives in its own
// working views; the cache is only read, invalidated after a commit and read
// again.
type Service struct {
	accounts AccountSource
	txs      TransactionSource
	remote   Writer
	newID    func() string
	now      func() time.Time

	mu          sync.Mutex
	state       State
	kind        domain.Kind
	selectedID  string
	amount      decimal.Decimal
	pending     *staged
	accountView []domain.Account
	txView      []domain.Transaction
	accountsAt  time.Time
	txsAt       time.Time
	lastOutcome Outcome
	lastErr     error
}

func New(accounts AccountSource, txs TransactionSource, remote Writer) *Service {
	return &Service{
		accounts: accounts,
		txs:      txs,
		remote:   remote,
		newID:    ids.NewTransactionID,
		now:      time.Now,
		state:    StateIdle,
	}
}

// CashbackDelta is the unsigned balance change of a transaction.
func CashbackDelta(kind domain.Kind, gross decimal.Decimal) decimal.Decimal {
	if kind == domain.KindRedeem {
		return gross
	}
	return gross.Mul(EarnRate)
}

// Load fills the working views from the cache.
func (s *Service) Load(ctx context.Context) View {
	accSnap, txSnap, err := s.readBoth(ctx, false, func(src cache.Source) bool { return src != cache.SourceEmpty })
	if err != nil {
		zap.L().Warn("terminal loaded without data", zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceViews(accSnap, txSnap, false)
	return s.viewLocked()
}

func (s *Service) ChooseKind(kind domain.Kind) (View, error) {
	if !kind.Valid() {
		return s.State(), &domain.ValidationError{Field: "kind", Reason: "must be EARN or REDEEM"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateSubmitting:
		return s.viewLocked(), ErrBusy
	case StateIdentitySelected:
		s.state = StateAmountEntry
	}
	s.kind = kind
	return s.viewLocked(), nil
}

// Scan resolves a scanned payload against a freshly fetched account list,
// qr token first, account id second.
func (s *Service) Scan(ctx context.Context, payload string) (View, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return s.State(), ErrBusy
	}
	s.mu.Unlock()

	snap := s.accounts.ReadFresh(ctx, true)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return s.viewLocked(), ErrBusy
	}
	s.replaceAccounts(snap, true)

	candidates := snap.Data
	if len(candidates) == 0 {
		candidates = s.accountView
	}
	scanned := strings.TrimSpace(payload)
	account, ok := matchAccount(candidates, scanned)
	if !ok {
		err := &domain.UnknownIdentityError{Scanned: scanned, Known: knownTokens(candidates)}
		zap.L().Warn("scanned code matches no account", zap.String("scanned", scanned), zap.Int("known", len(err.Known)))
		s.resetLocked()
		s.lastErr = err
		return s.viewLocked(), err
	}

	s.selectLocked(account)
	zap.L().Info("account identified by scan", zap.String("accountID", account.ID))
	return s.viewLocked(), nil
}

// Select picks an account from the working view by id.
func (s *Service) Select(accountID string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return s.viewLocked(), ErrBusy
	}

	account, ok := domain.FindAccount(s.accountView, accountID)
	if !ok {
		err := &domain.UnknownIdentityError{Scanned: accountID, Known: knownTokens(s.accountView)}
		s.resetLocked()
		s.lastErr = err
		return s.viewLocked(), err
	}
	s.selectLocked(account)
	return s.viewLocked(), nil
}

func (s *Service) EnterAmount(amount decimal.Decimal) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateSubmitting:
		return s.viewLocked(), ErrBusy
	case StateAmountEntry:
		s.amount = amount
		return s.viewLocked(), nil
	case StateIdentitySelected:
		return s.viewLocked(), ErrKindRequired
	default:
		return s.viewLocked(), ErrNoSelection
	}
}

// Preview computes what submitting now would do. CanSubmit is false when the
// amount is not positive or a redemption exceeds the balance.
func (s *Service) Preview() (Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewLocked()
}

// Submit records the drafted transaction. The working views change before the
// remote write starts; a failed write restores them exactly. The write is not
// cancelled with ctx.
func (s *Service) Submit(ctx context.Context, operatorID string) (domain.Transaction, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return domain.Transaction{}, ErrBusy
	}
	if s.state != StateAmountEntry {
		s.mu.Unlock()
		return domain.Transaction{}, ErrInvalidTransition
	}
	preview, err := s.previewLocked()
	if err != nil {
		s.mu.Unlock()
		return domain.Transaction{}, err
	}
	if preview.Error != nil {
		s.mu.Unlock()
		return domain.Transaction{}, preview.Error
	}

	tx := domain.Transaction{
		ID:            s.newID(),
		AccountID:     s.selectedID,
		GrossAmount:   preview.GrossAmount,
		CashbackDelta: preview.CashbackDelta,
		Kind:          preview.Kind,
		OccurredAt:    s.now().UTC(),
		OperatorID:    operatorID,
	}
	s.stageLocked(tx)
	s.state = StateSubmitting
	s.mu.Unlock()

	zap.L().Info("submitting transaction",
		zap.String("transactionID", tx.ID),
		zap.String("accountID", tx.AccountID),
		zap.String("kind", string(tx.Kind)),
		zap.Stringer("cashback", tx.CashbackDelta),
	)

	writeCtx := context.WithoutCancel(ctx)
	if err := s.remote.PersistTransaction(writeCtx, tx); err != nil {
		s.mu.Lock()
		s.rollbackLocked()
		s.resetLocked()
		writeErr := &domain.WriteError{TransactionID: tx.ID, Err: err}
		s.lastOutcome = OutcomeRolledBack
		s.lastErr = writeErr
		s.mu.Unlock()

		zap.L().Error("transaction rolled back", zap.String("transactionID", tx.ID), zap.Error(err))
		return tx, writeErr
	}

	s.mu.Lock()
	s.pending = nil
	s.resetLocked()
	s.lastOutcome = OutcomeCommitted
	s.mu.Unlock()
	zap.L().Info("transaction committed", zap.String("transactionID", tx.ID))

	s.reconcile(writeCtx)
	return tx, nil
}

// Cancel abandons the draft and returns to IDLE.
func (s *Service) Cancel() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return s.viewLocked(), ErrBusy
	}
	s.resetLocked()
	s.lastErr = nil
	return s.viewLocked(), nil
}

func (s *Service) State() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// reconcile drops both cache collections and replaces the working views with
// what the remote now says.
func (s *Service) reconcile(ctx context.Context) {
	s.accounts.Invalidate()
	s.txs.Invalidate()

	accSnap, txSnap, err := s.readBoth(ctx, true, func(src cache.Source) bool { return src == cache.SourceNetwork })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceViews(accSnap, txSnap, true)
	if err != nil {
		zap.L().Warn("reconciliation incomplete, keeping optimistic state", zap.Error(err))
	}
}

// readBoth reads both collections concurrently. A read from a source accept
// rejects is reported but does not cut the other read short.
func (s *Service) readBoth(ctx context.Context, force bool, accept func(cache.Source) bool) (cache.Snapshot[domain.Account], cache.Snapshot[domain.Transaction], error) {
	var (
		g       errgroup.Group
		accSnap cache.Snapshot[domain.Account]
		txSnap  cache.Snapshot[domain.Transaction]
	)
	g.Go(func() error {
		accSnap = s.accounts.ReadFresh(ctx, force)
		if !accept(accSnap.Source) {
			return fmt.Errorf("%s served from %s: %w", domain.CollectionAccounts, accSnap.Source, ErrStaleRead)
		}
		return nil
	})
	g.Go(func() error {
		txSnap = s.txs.ReadFresh(ctx, force)
		if !accept(txSnap.Source) {
			return fmt.Errorf("%s served from %s: %w", domain.CollectionTransactions, txSnap.Source, ErrStaleRead)
		}
		return nil
	})
	return accSnap, txSnap, g.Wait()
}

func (s *Service) replaceViews(accSnap cache.Snapshot[domain.Account], txSnap cache.Snapshot[domain.Transaction], networkOnly bool) {
	s.replaceAccounts(accSnap, networkOnly)
	s.replaceTransactions(txSnap, networkOnly)
}

// replaceAccounts swaps in fresh accounts. An in-flight transaction is not
// known to them yet, so its balance change is applied again.
func (s *Service) replaceAccounts(snap cache.Snapshot[domain.Account], networkOnly bool) {
	if !usable(snap.Source, snap.FetchedAt, s.accountsAt, networkOnly) {
		return
	}
	s.accountView = domain.CloneAccounts(snap.Data)
	s.accountsAt = snap.FetchedAt
	if s.pending != nil {
		s.applyLocked(s.pending)
	}
}

func (s *Service) replaceTransactions(snap cache.Snapshot[domain.Transaction], networkOnly bool) {
	if !usable(snap.Source, snap.FetchedAt, s.txsAt, networkOnly) {
		return
	}
	s.txView = domain.UniqueTransactions(snap.Data)
	s.txsAt = snap.FetchedAt
	if s.pending == nil {
		return
	}
	id := s.pending.tx.ID
	if !slices.ContainsFunc(s.txView, func(t domain.Transaction) bool { return t.ID == id }) {
		s.txView = append([]domain.Transaction{s.pending.tx}, s.txView...)
	}
}

func usable(source cache.Source, fetchedAt, viewAt time.Time, networkOnly bool) bool {
	if networkOnly {
		return source == cache.SourceNetwork
	}
	return source != cache.SourceEmpty && !fetchedAt.Before(viewAt)
}

func (s *Service) stageLocked(tx domain.Transaction) {
	st := &staged{tx: tx}
	s.applyLocked(st)
	s.txView = append([]domain.Transaction{tx}, s.txView...)
	s.pending = st
}

// applyLocked records the account as it is now and moves its balance.
func (s *Service) applyLocked(st *staged) {
	for i := range s.accountView {
		if s.accountView[i].ID == st.tx.AccountID {
			st.before = s.accountView[i]
			s.accountView[i].Balance = s.accountView[i].Balance.Add(st.tx.SignedDelta())
			return
		}
	}
}

func (s *Service) rollbackLocked() {
	if s.pending == nil {
		return
	}
	id := s.pending.tx.ID
	s.txView = slices.DeleteFunc(s.txView, func(t domain.Transaction) bool { return t.ID == id })
	for i := range s.accountView {
		if s.accountView[i].ID == s.pending.before.ID {
			s.accountView[i] = s.pending.before
			break
		}
	}
	s.pending = nil
}

func (s *Service) selectLocked(account domain.Account) {
	s.selectedID = account.ID
	s.amount = decimal.Zero
	s.lastErr = nil
	if s.kind != "" {
		s.state = StateAmountEntry
	} else {
		s.state = StateIdentitySelected
	}
}

func (s *Service) resetLocked() {
	s.state = StateIdle
	s.kind = ""
	s.selectedID = ""
	s.amount = decimal.Zero
}

func (s *Service) previewLocked() (Preview, error) {
	if s.selectedID == "" {
		return Preview{}, ErrNoSelection
	}
	if s.kind == "" {
		return Preview{}, ErrKindRequired
	}
	account, ok := domain.FindAccount(s.accountView, s.selectedID)
	if !ok {
		return Preview{}, ErrNoSelection
	}

	p := Preview{
		Kind:           s.kind,
		GrossAmount:    s.amount,
		CashbackDelta:  CashbackDelta(s.kind, s.amount),
		CurrentBalance: account.Balance,
	}
	if s.kind == domain.KindRedeem {
		p.PredictedBalance = account.Balance.Sub(p.CashbackDelta)
	} else {
		p.PredictedBalance = account.Balance.Add(p.CashbackDelta)
	}

	switch {
	case !s.amount.IsPositive():
		p.Error = &domain.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	case s.kind == domain.KindRedeem && p.CashbackDelta.GreaterThan(account.Balance):
		p.Error = &domain.ValidationError{Field: "amount", Reason: "exceeds available balance"}
	}
	p.CanSubmit = p.Error == nil
	return p, nil
}

func (s *Service) viewLocked() View {
	v := View{
		State:        s.state,
		Kind:         s.kind,
		Amount:       s.amount,
		Accounts:     domain.CloneAccounts(s.accountView),
		Transactions: domain.CloneTransactions(s.txView),
		LastOutcome:  s.lastOutcome,
		LastError:    s.lastErr,
	}
	if account, ok := domain.FindAccount(s.accountView, s.selectedID); ok {
		v.Selected = &account
	}
	if p, err := s.previewLocked(); err == nil {
		v.Preview = &p
	}
	return v
}

func matchAccount(accounts []domain.Account, scanned string) (domain.Account, bool) {
	if scanned == "" {
		return domain.Account{}, false
	}
	for _, a := range accounts {
		if strings.TrimSpace(a.QRToken) == scanned {
			return a, true
		}
	}
	for _, a := range accounts {
		if a.ID == scanned {
			return a, true
		}
	}
	return domain.Account{}, false
}

func knownTokens(accounts []domain.Account) []string {
	known := make([]string, 0, len(accounts))
	for _, a := range accounts {
		if token := strings.TrimSpace(a.QRToken); token != "" {
			known = append(known, token)
		}
	}
	return known
}
