package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/gamenews/internal/client/identity"
	"github.com/dmitrijs2005/gamenews/internal/logging"
)

// OAuth modes.
const (
	OAuthModeMock = "mock"
	OAuthModeReal = "oauth"
)

// Config holds runtime settings for the gamenews CLI.
//
// Relative DatabaseFile and DeviceKeyFile paths are resolved against
// DataDir. With Ephemeral set nothing is written to disk.
type Config struct {
	DataDir       string `env:"DATA_DIR"`
	DatabaseFile  string `env:"DATABASE_FILE"`
	DeviceKeyFile string `env:"DEVICE_KEY_FILE"`
	Ephemeral     bool   `env:"EPHEMERAL"`

	Platform string `env:"PLATFORM"`
	LogLevel string `env:"LOG_LEVEL"`

	SignInDelay   time.Duration `env:"SIGN_IN_DELAY"`
	ResetDelay    time.Duration `env:"RESET_DELAY"`
	ProviderDelay time.Duration `env:"PROVIDER_DELAY"`

	TokenTTL    time.Duration `env:"TOKEN_TTL"`
	TokenSecret string        `env:"TOKEN_SECRET"`

	OAuthMode        string `env:"OAUTH_MODE"`
	GoogleClientID   string `env:"GOOGLE_CLIENT_ID"`
	FacebookClientID string `env:"FACEBOOK_CLIENT_ID"`
	RedirectScheme   string `env:"REDIRECT_SCHEME"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = defaultDataDir()
	c.DatabaseFile = "gamenews.db"
	c.DeviceKeyFile = "device.key"
	c.Ephemeral = false
	c.Platform = string(identity.PlatformIOS)
	c.LogLevel = "info"
	c.SignInDelay = 1500 * time.Millisecond
	c.ResetDelay = time.Second
	c.ProviderDelay = 1500 * time.Millisecond
	c.TokenTTL = 24 * time.Hour
	c.TokenSecret = ""
	c.OAuthMode = OAuthModeMock
	c.GoogleClientID = ""
	c.FacebookClientID = ""
	c.RedirectScheme = identity.DefaultRedirectScheme
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gamenews")
	}
	return ".gamenews"
}

// DatabasePath is DatabaseFile resolved against DataDir.
func (c *Config) DatabasePath() string {
	return c.resolve(c.DatabaseFile)
}

// DeviceKeyPath is DeviceKeyFile resolved against DataDir.
func (c *Config) DeviceKeyPath() string {
	return c.resolve(c.DeviceKeyFile)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataDir, p)
}

// Validate checks the fields that have a closed set of values.
func (c *Config) Validate() error {
	var errs []error

	if _, err := identity.ParsePlatform(c.Platform); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.OAuthMode {
	case OAuthModeMock:
	case OAuthModeReal:
		if c.GoogleClientID == "" && c.FacebookClientID == "" {
			errs = append(errs, errors.New("oauth mode needs at least one client id"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown oauth mode %q", c.OAuthMode))
	}
	if !c.Ephemeral && c.DataDir == "" {
		errs = append(errs, errors.New("data dir is required unless ephemeral"))
	}
	for name, d := range map[string]time.Duration{
		"sign-in delay":  c.SignInDelay,
		"reset delay":    c.ResetDelay,
		"provider delay": c.ProviderDelay,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", name))
		}
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token ttl must be positive"))
	}

	return errors.Join(errs...)
}

// Load builds a Config from defaults, then the JSON file named by -c/-config
// in args, then environ (GAMENEWS_ prefixed; nil means the process
// environment), then the flags in args. Later sources win.
func Load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args and the process environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], nil)
}
