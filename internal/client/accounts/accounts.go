// Package accounts is the email/password identity backend used by the
// session manager. The Mock implementation stands in for a remote auth API:
// it waits a fixed latency, accepts a single demo identity, and issues
// HS256 session tokens.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gamenews/internal/cryptox"
	"github.com/dmitrijs2005/gamenews/internal/logging"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Account is the profile the backend knows for an email identity.
type Account struct {
	ID        string
	Email     string
	Name      string
	AvatarURL string
}

// Service is the remote auth API as seen by the client.
type Service interface {
	// Authenticate checks the credentials and returns the account and a
	// session token.
	Authenticate(ctx context.Context, email, password string) (Account, string, error)
	// Register creates acct with password and returns a session token.
	Register(ctx context.Context, acct Account, password string) (string, error)
	// RequestPasswordReset asks the backend to mail a reset link.
	RequestPasswordReset(ctx context.Context, email string) error
}

const (
	DemoEmail    = "demo@gaming.com"
	DemoPassword = "password"
	DemoAvatar   = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=200"
)

// Mock implements Service without a network.
type Mock struct {
	secret      []byte
	tokenTTL    time.Duration
	signInDelay time.Duration
	resetDelay  time.Duration
	bcryptCost  int
	now         func() time.Time
	log         logging.Logger

	demo     Account
	demoHash []byte

	// FailRegister and FailReset force the corresponding call to fail.
	FailRegister error
	FailReset    error
}

var _ Service = (*Mock)(nil)

type Option func(*Mock)

func WithDelays(signIn, reset time.Duration) Option {
	return func(m *Mock) {
		m.signInDelay = signIn
		m.resetDelay = reset
	}
}

func WithTokenTTL(ttl time.Duration) Option {
	return func(m *Mock) { m.tokenTTL = ttl }
}

func WithBcryptCost(cost int) Option {
	return func(m *Mock) { m.bcryptCost = cost }
}

func WithClock(now func() time.Time) Option {
	return func(m *Mock) { m.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(m *Mock) { m.log = l }
}

// NewMock builds the mock backend. The demo password is kept only as a
// bcrypt hash.
func NewMock(secret []byte, opts ...Option) (*Mock, error) {
	if len(secret) == 0 {
		return nil, errors.New("accounts: empty token secret")
	}

	m := &Mock{
		secret:      secret,
		tokenTTL:    24 * time.Hour,
		signInDelay: 1500 * time.Millisecond,
		resetDelay:  time.Second,
		now:         time.Now,
		log:         logging.Nop(),
		demo: Account{
			ID:        "1",
			Email:     DemoEmail,
			Name:      "Gaming Enthusiast",
			AvatarURL: DemoAvatar,
		},
	}
	for _, opt := range opts {
		opt(m)
	}

	hash, err := cryptox.HashPassword([]byte(DemoPassword), m.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	m.demoHash = hash
	return m, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Mock) Authenticate(ctx context.Context, email, password string) (Account, string, error) {
	if err := wait(ctx, m.signInDelay); err != nil {
		return Account{}, "", err
	}

	if email != m.demo.Email || !cryptox.CheckPassword(m.demoHash, []byte(password)) {
		return Account{}, "", ErrInvalidCredentials
	}

	token, err := IssueToken(m.demo.ID, m.demo.Email, m.secret, m.tokenTTL, m.now())
	if err != nil {
		return Account{}, "", fmt.Errorf("issue token: %w", err)
	}
	return m.demo, token, nil
}

func (m *Mock) Register(ctx context.Context, acct Account, password string) (string, error) {
	if err := wait(ctx, m.signInDelay); err != nil {
		return "", err
	}
	if m.FailRegister != nil {
		return "", m.FailRegister
	}

	token, err := IssueToken(acct.ID, acct.Email, m.secret, m.tokenTTL, m.now())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (m *Mock) RequestPasswordReset(ctx context.Context, email string) error {
	if err := wait(ctx, m.resetDelay); err != nil {
		return err
	}
	if m.FailReset != nil {
		return m.FailReset
	}
	m.log.Info(ctx, "password reset email sent", "email", email)
	return nil
}
