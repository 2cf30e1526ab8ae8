package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/gamenews/internal/client/accounts"
	"github.com/dmitrijs2005/gamenews/internal/client/identity"
	"github.com/dmitrijs2005/gamenews/internal/client/securestore"
)

// plainStore exposes only securestore.Store, so the manager takes the
// two-call path, and lets tests inject failures.
type plainStore struct {
	mem       *securestore.MemoryStore
	getErr    error
	setErr    map[string]error
	deleteErr error
	writes    int
}

func newPlainStore() *plainStore {
	return &plainStore{mem: securestore.NewMemoryStore(), setErr: map[string]error{}}
}

func (s *plainStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.mem.Get(ctx, key)
}

func (s *plainStore) Set(ctx context.Context, key, value string) error {
	s.writes++
	if err := s.setErr[key]; err != nil {
		return err
	}
	return s.mem.Set(ctx, key, value)
}

func (s *plainStore) Delete(ctx context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	return s.mem.Delete(ctx, key)
}

// providerFunc adapts a function to identity.Provider.
type providerFunc struct {
	kind identity.Kind
	fn   func(ctx context.Context) identity.Result
}

func (p providerFunc) Kind() identity.Kind                          { return p.kind }
func (p providerFunc) Initiate(ctx context.Context) identity.Result { return p.fn(ctx) }

// fakeAccounts records calls and runs during inside each of them.
type fakeAccounts struct {
	during   func()
	authErr  error
	regErr   error
	resetErr error
	resets   []string
}

func (f *fakeAccounts) Authenticate(_ context.Context, email, _ string) (accounts.Account, string, error) {
	if f.during != nil {
		f.during()
	}
	if f.authErr != nil {
		return accounts.Account{}, "", f.authErr
	}
	return accounts.Account{ID: "7", Email: email, Name: "Fake"}, "fake-token", nil
}

func (f *fakeAccounts) Register(_ context.Context, _ accounts.Account, _ string) (string, error) {
	if f.during != nil {
		f.during()
	}
	return "fake-token", f.regErr
}

func (f *fakeAccounts) RequestPasswordReset(_ context.Context, email string) error {
	if f.during != nil {
		f.during()
	}
	f.resets = append(f.resets, email)
	return f.resetErr
}

func newDemoAccounts(t *testing.T) *accounts.Mock {
	t.Helper()
	m, err := accounts.NewMock([]byte("test-secret"),
		accounts.WithDelays(0, 0),
		accounts.WithBcryptCost(bcrypt.MinCost),
	)
	require.NoError(t, err)
	return m
}

func defaultProviders() []Option {
	return []Option{
		WithProvider(identity.NewMockProvider(identity.KindGoogle)),
		WithProvider(identity.NewMockProvider(identity.KindApple)),
		WithProvider(identity.NewMockProvider(identity.KindFacebook)),
	}
}

func openManager(t *testing.T, store securestore.Store, opts ...Option) *Manager {
	t.Helper()
	return Open(context.Background(), store, newDemoAccounts(t), append(defaultProviders(), opts...)...)
}

func requireKeys(t *testing.T, store securestore.Store, present bool) {
	t.Helper()
	for _, k := range []string{TokenKey, ProfileKey} {
		_, ok, err := store.Get(context.Background(), k)
		require.NoError(t, err)
		require.Equal(t, present, ok, "key %s", k)
	}
}
