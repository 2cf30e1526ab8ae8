package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gamenews/internal/client/accounts"
	"github.com/dmitrijs2005/gamenews/internal/client/identity"
	"github.com/dmitrijs2005/gamenews/internal/client/securestore"
	"github.com/dmitrijs2005/gamenews/internal/logging"
)

// Listener receives state snapshots.
type Listener func(State)

type listenerEntry struct {
	id int
	fn Listener
}

// Manager is the session handle. Construct it with New or Open and pass it
// to whatever needs the current user.
type Manager struct {
	store     securestore.Store
	accounts  accounts.Service
	providers map[identity.Kind]identity.Provider
	platform  identity.Platform
	log       logging.Logger
	now       func() time.Time
	newID     func() string

	mu        sync.Mutex
	state     State
	listeners []listenerEntry
	nextID    int
}

type Option func(*Manager)

// WithProvider registers p for its Kind, replacing any earlier one.
func WithProvider(p identity.Provider) Option {
	return func(m *Manager) { m.providers[p.Kind()] = p }
}

func WithPlatform(p identity.Platform) Option {
	return func(m *Manager) { m.platform = p }
}

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator replaces the uuid-based generator for new user ids.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) { m.newID = fn }
}

// New returns a manager with no user and IsLoading set; call Restore next.
func New(store securestore.Store, accts accounts.Service, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		accounts:  accts,
		providers: make(map[identity.Kind]identity.Provider),
		platform:  identity.PlatformIOS,
		log:       logging.Nop(),
		now:       time.Now,
		newID:     uuid.NewString,
		state:     State{IsLoading: true},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With("component", "session")
	return m
}

// Open is New followed by Restore.
func Open(ctx context.Context, store securestore.Store, accts accounts.Service, opts ...Option) *Manager {
	m := New(store, accts, opts...)
	m.Restore(ctx)
	return m
}

// State returns a snapshot of the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

func (m *Manager) IsAuthenticated() bool {
	return m.State().IsAuthenticated()
}

// Subscribe registers fn for every later state change and returns a
// function that removes it.
func (m *Manager) Subscribe(fn Listener) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners = append(m.listeners, listenerEntry{id: id, fn: fn})
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, l := range m.listeners {
				if l.id == id {
					m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// update applies fn under the lock, then notifies listeners outside it.
func (m *Manager) update(fn func(*State)) {
	m.mu.Lock()
	fn(&m.state)
	snapshot := m.state.clone()
	listeners := make([]listenerEntry, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, l := range listeners {
		l.fn(snapshot.clone())
	}
}

func (m *Manager) setLoading(v bool) {
	m.update(func(s *State) { s.IsLoading = v })
}

func (m *Manager) setUser(u *User) {
	m.update(func(s *State) { s.User = u })
}

// begin marks an operation in flight; the returned func ends it and must be
// deferred.
func (m *Manager) begin() func() {
	m.setLoading(true)
	return func() { m.setLoading(false) }
}

func (m *Manager) timestamp() string {
	return m.now().UTC().Format(timestampLayout)
}

// Restore loads the persisted session. A token without a profile (or the
// reverse, or an unreadable profile) is treated as no session and both keys
// are removed. Read errors are logged and leave the manager signed out.
func (m *Manager) Restore(ctx context.Context) {
	defer m.begin()()

	user := m.loadSession(ctx)
	m.setUser(user)

	if user != nil {
		m.log.Info(ctx, "session restored", "provider", user.Provider)
	}
}

// SignIn authenticates an email identity. Input shape is the caller's
// concern.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	defer m.begin()()

	acct, token, err := m.accounts.Authenticate(ctx, email, password)
	if errors.Is(err, accounts.ErrInvalidCredentials) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	user := &User{
		ID:        acct.ID,
		Email:     acct.Email,
		Name:      acct.Name,
		Avatar:    acct.AvatarURL,
		Provider:  identity.KindEmail,
		CreatedAt: m.timestamp(),
	}
	if err := m.commitSession(ctx, token, user); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	m.setUser(user)
	m.log.Info(ctx, "signed in", "provider", identity.KindEmail)
	return nil
}

// SignUp registers a new email account and signs it in.
func (m *Manager) SignUp(ctx context.Context, name, email, password string) error {
	defer m.begin()()

	user := &User{
		ID:        m.newID(),
		Email:     email,
		Name:      name,
		Provider:  identity.KindEmail,
		CreatedAt: m.timestamp(),
	}

	token, err := m.accounts.Register(ctx, accounts.Account{ID: user.ID, Email: email, Name: name}, password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	if err := m.commitSession(ctx, token, user); err != nil {
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	m.setUser(user)
	m.log.Info(ctx, "account created", "user_id", user.ID)
	return nil
}

func (m *Manager) SignInWithGoogle(ctx context.Context) error {
	return m.signInWith(ctx, identity.KindGoogle, ErrGoogleSignInFailed)
}

// SignInWithApple fails with ErrProviderUnsupported (wrapped in
// ErrAppleSignInFailed) on platforms without Apple sign-in, before the
// provider is called.
func (m *Manager) SignInWithApple(ctx context.Context) error {
	return m.signInWith(ctx, identity.KindApple, ErrAppleSignInFailed)
}

func (m *Manager) SignInWithFacebook(ctx context.Context) error {
	return m.signInWith(ctx, identity.KindFacebook, ErrFacebookSignInFailed)
}

func (m *Manager) signInWith(ctx context.Context, kind identity.Kind, kindErr error) error {
	defer m.begin()()

	if kind == identity.KindApple && !m.platform.SupportsApple() {
		return fmt.Errorf("%w: %w", kindErr, ErrProviderUnsupported)
	}

	p, ok := m.providers[kind]
	if !ok {
		return fmt.Errorf("%w: %w", kindErr, ErrProviderNotConfigured)
	}

	res := p.Initiate(ctx)
	switch res.Outcome {
	case identity.Success:
	case identity.Cancelled:
		m.log.Info(ctx, "sign-in cancelled", "provider", kind)
		return nil
	default:
		cause := res.Err
		if cause == nil {
			cause = errProviderFlowFailed
		}
		return fmt.Errorf("%w: %w", kindErr, cause)
	}

	token := res.AccessToken
	if token == "" {
		token = string(kind) + "-token"
	}

	user := m.providerUser(kind, res.Profile)
	if err := m.commitSession(ctx, token, user); err != nil {
		return fmt.Errorf("%w: %w", kindErr, err)
	}

	m.setUser(user)
	m.log.Info(ctx, "signed in", "provider", kind)
	return nil
}

// providerUser builds the profile for a provider sign-in, filling anything
// the provider did not return from the kind's template. The provider's
// subject keeps the id stable across sign-ins.
func (m *Manager) providerUser(kind identity.Kind, p *identity.Profile) *User {
	u := providerTemplates[kind]
	u.ID = string(kind) + "-" + m.newID()
	if p != nil && p.Subject != "" {
		u.ID = string(kind) + "-" + p.Subject
	}
	u.Provider = kind
	u.CreatedAt = m.timestamp()

	if p != nil {
		if p.Email != "" {
			u.Email = p.Email
		}
		if p.Name != "" {
			u.Name = p.Name
		}
		if p.AvatarURL != "" {
			u.Avatar = p.AvatarURL
		}
	}
	return &u
}

// SignOut removes the persisted session and clears the user. Storage errors
// are logged; the user is cleared regardless. Cancelling ctx does not stop
// the stored session from being removed.
func (m *Manager) SignOut(ctx context.Context) {
	defer m.begin()()

	if err := m.clearSession(context.WithoutCancel(ctx)); err != nil {
		m.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
	m.setUser(nil)
}

// ResetPassword asks the backend to send a reset email. The session is not
// touched.
func (m *Manager) ResetPassword(ctx context.Context, email string) error {
	defer m.begin()()

	if err := m.accounts.RequestPasswordReset(ctx, email); err != nil {
		return fmt.Errorf("%w: %w", ErrResetRequestFailed, err)
	}
	return nil
}
