package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gamenews/internal/client/accounts"
	"github.com/dmitrijs2005/gamenews/internal/client/config"
	"github.com/dmitrijs2005/gamenews/internal/client/identity"
	"github.com/dmitrijs2005/gamenews/internal/client/news"
	"github.com/dmitrijs2005/gamenews/internal/client/repositories/bookmarks"
	"github.com/dmitrijs2005/gamenews/internal/client/securestore"
	"github.com/dmitrijs2005/gamenews/internal/client/session"
	"github.com/dmitrijs2005/gamenews/internal/client/storage"
	"github.com/dmitrijs2005/gamenews/internal/common"
	"github.com/dmitrijs2005/gamenews/internal/filex"
	"github.com/dmitrijs2005/gamenews/internal/logging"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	session   *session.Manager
	catalog   *news.Catalog
	bookmarks *news.Bookmarks
	reader    *bufio.Reader
	out       io.Writer

	db          *sql.DB
	unsubscribe func()
}

// NewApp opens local storage, restores the persisted session and returns a
// ready App. Log output goes to stderr so it does not mix with the REPL.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:  c,
		log:     logger,
		catalog: news.Default(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	store, db, err := openStorage(ctx, c)
	if err != nil {
		return nil, err
	}
	a.db = db

	accts, err := newAccounts(c, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a.wire(ctx, store, accts)
	return a, nil
}

// wire builds the session and bookmark services on top of already opened
// storage.
func (a *App) wire(ctx context.Context, store securestore.Store, accts accounts.Service) {
	platform, err := identity.ParsePlatform(a.config.Platform)
	if err != nil {
		platform = identity.PlatformIOS
	}

	opts := append(a.providerOptions(),
		session.WithPlatform(platform),
		session.WithLogger(a.log),
	)
	a.session = session.Open(ctx, store, accts, opts...)
	a.unsubscribe = a.session.Subscribe(a.onStateChange)
	a.bookmarks = news.NewBookmarks(bookmarks.NewSQLiteRepository(a.db), a.catalog, a.log)
}

// openStorage returns the secure store for the session and the database for
// bookmarks. Ephemeral configs get a memory store and an in-memory database.
func openStorage(ctx context.Context, c *config.Config) (securestore.Store, *sql.DB, error) {
	if c.Ephemeral {
		db, err := storage.Open(ctx, storage.MemoryDSN)
		if err != nil {
			return nil, nil, err
		}
		return securestore.NewMemoryStore(), db, nil
	}

	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, nil, fmt.Errorf("prepare data dir: %w", err)
	}

	secret, err := securestore.LoadOrCreateDeviceSecret(c.DeviceKeyPath())
	if err != nil {
		return nil, nil, err
	}
	defer common.WipeByteArray(secret)

	db, err := storage.Open(ctx, c.DatabasePath())
	if err != nil {
		return nil, nil, err
	}

	store, err := securestore.NewSQLiteStore(ctx, db, secret)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return store, db, nil
}

func newAccounts(c *config.Config, logger logging.Logger) (*accounts.Mock, error) {
	secret := c.TokenSecret
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, err
		}
		secret = s
	}

	return accounts.NewMock([]byte(secret),
		accounts.WithDelays(c.SignInDelay, c.ResetDelay),
		accounts.WithTokenTTL(c.TokenTTL),
		accounts.WithLogger(logger),
	)
}

// providerOptions registers a simulated flow for every provider, then real
// OAuth flows for the providers that have a client id when OAuth mode is
// on. Apple has no web flow and stays simulated.
func (a *App) providerOptions() []session.Option {
	c := a.config
	var opts []session.Option
	for _, kind := range []identity.Kind{identity.KindGoogle, identity.KindApple, identity.KindFacebook} {
		opts = append(opts, session.WithProvider(identity.NewMockProvider(kind, identity.WithDelay(c.ProviderDelay))))
	}

	if c.OAuthMode != config.OAuthModeReal {
		return opts
	}
	if c.GoogleClientID != "" {
		opts = append(opts, session.WithProvider(
			identity.NewOAuthProvider(identity.GoogleConfig(c.GoogleClientID, c.RedirectScheme), a.promptCallback, nil)))
	}
	if c.FacebookClientID != "" {
		opts = append(opts, session.WithProvider(
			identity.NewOAuthProvider(identity.FacebookConfig(c.FacebookClientID, c.RedirectScheme), a.promptCallback, nil)))
	}
	return opts
}

func (a *App) onStateChange(s session.State) {
	a.log.Debug(context.Background(), "session state changed",
		"loading", s.IsLoading, "authenticated", s.IsAuthenticated())
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus renders the prompt status: the signed-in email and a star while
// an operation is running.
func (a *App) getStatus() string {
	s := a.session.State()
	status := ""
	if s.User != nil {
		status = s.User.Email
	}
	if s.IsLoading {
		status += "*"
	}
	if status != "" {
		status = fmt.Sprintf("(%s)", status)
	}
	return status
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// Run starts the REPL and blocks until it exits, then releases storage.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Gaming News CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		printlnFn("Signed in as", a.session.State().User.Email)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close detaches from the session and closes the database.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
