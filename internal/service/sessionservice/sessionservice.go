package sessionservice

//go:generate mockgen -source=sessionservice.go -destination=mock_sessionservice.go -package=sessionservice

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/cache"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/auth"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/ids"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRemoteUnavailable  = errors.New("remote store is unavailable")
	ErrEmptyIdentity      = errors.New("external identity has no id")
)

// Store keeps the session record of this device.
type Store interface {
	Load(ctx context.Context) (*domain.Account, error)
	Save(ctx context.Context, account domain.Account) error
	Clear(ctx context.Context) error
}

type AccountReader interface {
	ReadFresh(ctx context.Context, force bool) cache.Snapshot[domain.Account]
	Invalidate()
}

type AccountWriter interface {
	PersistAccount(ctx context.Context, account domain.Account) error
}

type Listener func(account *domain.Account)

type Service struct {
	store    Store
	accounts AccountReader
	remote   AccountWriter
	hash     auth.HashServiceInterface

	operatorLogin string
	operatorHash  string
	now           func() time.Time

	mu      sync.RWMutex
	current *domain.Account

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

func New(cfg *config.Config, store Store, accounts AccountReader, remote AccountWriter, hash auth.HashServiceInterface) *Service {
	return &Service{
		store:         store,
		accounts:      accounts,
		remote:        remote,
		hash:          hash,
		operatorLogin: cfg.OperatorLogin,
		operatorHash:  cfg.OperatorHash,
		now:           time.Now,
		listeners:     make(map[int]Listener),
	}
}

// Restore makes the persisted session current without asking the remote.
func (s *Service) Restore(ctx context.Context) (*domain.Account, error) {
	account, err := s.store.Load(ctx)
	if err != nil {
		zap.L().Error("can't restore session", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	s.setCurrent(account)
	zap.L().Info("session restored", zap.String("accountID", account.ID))
	return s.Current(), nil
}

// Reconcile replaces the current session with the authoritative record when
// they differ. The local session stays when the remote can't be reached or no
// longer knows the account.
func (s *Service) Reconcile(ctx context.Context, force bool) (*domain.Account, bool) {
	current := s.Current()
	if current == nil {
		return nil, false
	}

	snap := s.accounts.ReadFresh(ctx, force)
	if !authoritative(snap) {
		zap.L().Warn("session kept, remote data unavailable", zap.String("accountID", current.ID), zap.Stringer("source", snap.Source))
		return current, false
	}
	remote, ok := domain.FindAccount(snap.Data, current.ID)
	if !ok {
		zap.L().Warn("session account not found remotely", zap.String("accountID", current.ID))
		return current, false
	}
	remote = sanitize(remote)
	if sameAccount(*current, remote) {
		return current, false
	}

	s.setSession(ctx, &remote)
	zap.L().Info("session reconciled",
		zap.String("accountID", remote.ID),
		zap.Stringer("balance", remote.Balance),
	)
	return s.Current(), true
}

// SignInExternal signs in with a chat-platform identity. The new session is
// current before the remote is consulted; linking to an existing account
// follows.
func (s *Service) SignInExternal(ctx context.Context, ident domain.ExternalIdentity) (*domain.Account, error) {
	ident.ExternalID = strings.TrimSpace(ident.ExternalID)
	if ident.ExternalID == "" {
		return nil, ErrEmptyIdentity
	}

	token := ids.ExternalQRToken(ident.ExternalID)
	optimistic := domain.Account{
		ID:          ident.ExternalID,
		DisplayName: ident.DisplayName(),
		Role:        domain.RoleAccountHolder,
		Balance:     decimal.Zero,
		QRToken:     token,
		CreatedAt:   s.now().UTC(),
	}
	s.setSession(ctx, &optimistic)

	snap := s.accounts.ReadFresh(ctx, true)
	existing, found := domain.FindAccount(snap.Data, ident.ExternalID)
	if !found {
		if snap.Source != cache.SourceNetwork {
			zap.L().Warn("identity linking deferred, remote data unavailable", zap.String("accountID", optimistic.ID))
			return s.Current(), nil
		}
		if err := s.remote.PersistAccount(ctx, optimistic); err != nil {
			zap.L().Error("can't save new account", zap.String("accountID", optimistic.ID), zap.Error(err))
			return s.Current(), err
		}
		s.accounts.Invalidate()
		zap.L().Info("account created", zap.String("accountID", optimistic.ID))
		return s.Current(), nil
	}

	var persistErr error
	if existing.QRToken == "" || existing.QRToken == ident.ExternalID {
		existing.QRToken = token
		if err := s.remote.PersistAccount(ctx, existing); err != nil {
			zap.L().Error("can't backfill qr token", zap.String("accountID", existing.ID), zap.Error(err))
			persistErr = err
		} else {
			s.accounts.Invalidate()
			zap.L().Info("qr token backfilled", zap.String("accountID", existing.ID))
		}
	}

	linked := sanitize(existing)
	s.setSession(ctx, &linked)
	return s.Current(), persistErr
}

// Register creates an account holder for the phone flow.
func (s *Service) Register(ctx context.Context, phone, name, password string) (*domain.Account, error) {
	id := ids.PhoneAccountID(phone)

	snap := s.accounts.ReadFresh(ctx, true)
	if snap.Source != cache.SourceNetwork {
		return nil, ErrRemoteUnavailable
	}
	if _, taken := findByPhone(snap.Data, id); taken {
		zap.L().Info("phone already registered", zap.String("accountID", id))
		return nil, ErrPhoneTaken
	}

	hashedPassword, err := s.hash.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	account := domain.Account{
		ID:           id,
		ContactPhone: strings.TrimSpace(phone),
		DisplayName:  strings.TrimSpace(name),
		Role:         domain.RoleAccountHolder,
		Balance:      decimal.Zero,
		QRToken:      ids.NewQRToken(),
		CreatedAt:    s.now().UTC(),
		PasswordHash: hashedPassword,
	}
	if err := s.remote.PersistAccount(ctx, account); err != nil {
		zap.L().Error("can't save new account", zap.String("accountID", id), zap.Error(err))
		return nil, err
	}
	s.accounts.Invalidate()

	session := sanitize(account)
	s.setSession(ctx, &session)
	zap.L().Info("account registered", zap.String("accountID", id))
	return s.Current(), nil
}

func (s *Service) SignInPhone(ctx context.Context, phone, password string) (*domain.Account, error) {
	id := ids.PhoneAccountID(phone)

	account, found := findByPhone(s.accounts.ReadFresh(ctx, false).Data, id)
	if !found {
		account, found = findByPhone(s.accounts.ReadFresh(ctx, true).Data, id)
	}
	if !found || !s.hash.ComparePassword(account.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("accountID", id))
		return nil, ErrInvalidCredentials
	}

	session := sanitize(account)
	s.setSession(ctx, &session)
	zap.L().Info("account holder signed in", zap.String("accountID", account.ID))
	return s.Current(), nil
}

// SignInOperator checks the configured operator credentials and binds the
// session to the operator record, creating one when the remote has none.
func (s *Service) SignInOperator(ctx context.Context, username, password string) (*domain.Account, error) {
	if username != s.operatorLogin || !s.hash.ComparePassword(s.operatorHash, password) {
		zap.L().Info("invalid operator credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	snap := s.accounts.ReadFresh(ctx, false)
	for _, a := range snap.Data {
		if a.IsOperator() {
			session := sanitize(a)
			s.setSession(ctx, &session)
			zap.L().Info("operator signed in", zap.String("accountID", a.ID))
			return s.Current(), nil
		}
	}

	operator := domain.Account{
		ID:          "admin_" + username,
		DisplayName: "Administrator",
		Role:        domain.RoleOperator,
		Balance:     decimal.Zero,
		QRToken:     "admin_" + username,
		CreatedAt:   s.now().UTC(),
	}
	if snap.Source == cache.SourceNetwork {
		if err := s.remote.PersistAccount(ctx, operator); err != nil {
			zap.L().Error("can't save operator account", zap.Error(err))
		} else {
			s.accounts.Invalidate()
		}
	}
	s.setSession(ctx, &operator)
	zap.L().Info("operator signed in", zap.String("accountID", operator.ID))
	return s.Current(), nil
}

func (s *Service) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.notify(nil)
	if err := s.store.Clear(ctx); err != nil {
		zap.L().Error("can't clear session", zap.Error(err))
		return err
	}
	return nil
}

// Current returns a copy of the current session account, nil when signed out.
func (s *Service) Current() *domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	account := *s.current
	return &account
}

// Subscribe registers a listener for session changes and returns a func
// that removes it.
func (s *Service) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Service) setSession(ctx context.Context, account *domain.Account) {
	s.setCurrent(account)
	if err := s.store.Save(ctx, *account); err != nil {
		zap.L().Error("can't persist session", zap.String("accountID", account.ID), zap.Error(err))
	}
}

func (s *Service) setCurrent(account *domain.Account) {
	copied := *account
	s.mu.Lock()
	s.current = &copied
	s.mu.Unlock()
	s.notify(s.Current())
}

func (s *Service) notify(account *domain.Account) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		if account == nil {
			l(nil)
			continue
		}
		copied := *account
		l(&copied)
	}
}

func authoritative(snap cache.Snapshot[domain.Account]) bool {
	switch snap.Source {
	case cache.SourceNetwork:
		return true
	case cache.SourceMemory:
		return !snap.Stale
	default:
		return false
	}
}

func sanitize(a domain.Account) domain.Account {
	a.PasswordHash = ""
	return a
}

func findByPhone(accounts []domain.Account, id string) (domain.Account, bool) {
	for _, a := range accounts {
		if a.ID == id || (a.ContactPhone != "" && ids.PhoneAccountID(a.ContactPhone) == id) {
			return a, true
		}
	}
	return domain.Account{}, false
}

func sameAccount(a, b domain.Account) bool {
	return a.ID == b.ID &&
		a.DisplayName == b.DisplayName &&
		a.ContactPhone == b.ContactPhone &&
		a.Role == b.Role &&
		a.QRToken == b.QRToken &&
		a.Balance.Equal(b.Balance)
}
