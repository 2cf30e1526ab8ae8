package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "ios", c.Platform)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 1500*time.Millisecond, c.SignInDelay)
	assert.Equal(t, time.Second, c.ResetDelay)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, OAuthModeMock, c.OAuthMode)
	assert.Equal(t, "gaming-news-app", c.RedirectScheme)
	assert.NotEmpty(t, c.DataDir)
	require.NoError(t, c.Validate())
}

func TestPaths(t *testing.T) {
	c := defaults()
	c.DataDir = filepath.Join("var", "gn")

	assert.Equal(t, filepath.Join("var", "gn", "gamenews.db"), c.DatabasePath())
	assert.Equal(t, filepath.Join("var", "gn", "device.key"), c.DeviceKeyPath())

	abs, err := filepath.Abs("device.key")
	require.NoError(t, err)
	c.DeviceKeyFile = abs
	assert.Equal(t, abs, c.DeviceKeyPath())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{name: "platform", modify: func(c *Config) { c.Platform = "symbian" }, want: "unknown platform"},
		{name: "log level", modify: func(c *Config) { c.LogLevel = "loud" }, want: "loud"},
		{name: "oauth mode", modify: func(c *Config) { c.OAuthMode = "magic" }, want: "unknown oauth mode"},
		{name: "oauth without clients", modify: func(c *Config) { c.OAuthMode = OAuthModeReal }, want: "client id"},
		{name: "negative delay", modify: func(c *Config) { c.ResetDelay = -time.Second }, want: "reset delay"},
		{name: "ttl", modify: func(c *Config) { c.TokenTTL = 0 }, want: "token ttl"},
		{name: "data dir", modify: func(c *Config) { c.DataDir = "" }, want: "data dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.modify(&c)
			require.ErrorContains(t, c.Validate(), tt.want)
		})
	}

	c := defaults()
	c.DataDir = ""
	c.Ephemeral = true
	require.NoError(t, c.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"platform":       "android",
		"log_level":      "warn",
		"sign_in_delay":  "200ms",
		"token_secret":   "from-file",
		"database_file":  "other.db",
		"provider_delay": 1000,
	})

	environ := map[string]string{
		"GAMENEWS_LOG_LEVEL":     "error",
		"GAMENEWS_SIGN_IN_DELAY": "50ms",
		"UNRELATED":              "x",
	}
	args := []string{"-c", path, "-l", "debug", "-e", "-d", "/data"}

	cfg, err := Load(args, environ)
	require.NoError(t, err)

	want := defaults()
	want.DataDir = "/data"
	want.DatabaseFile = "other.db"
	want.Ephemeral = true
	want.Platform = "android"
	want.LogLevel = "debug"
	want.SignInDelay = 50 * time.Millisecond
	want.ProviderDelay = time.Microsecond
	want.TokenSecret = "from-file"

	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := Load(nil, map[string]string{})
	require.NoError(t, err)

	want := defaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		environ map[string]string
		want    string
	}{
		{name: "missing file", args: []string{"-config", filepath.Join(t.TempDir(), "nope.json")}, want: "failed to read config file"},
		{name: "bad env duration", environ: map[string]string{"GAMENEWS_RESET_DELAY": "later"}, want: "failed to read environment"},
		{name: "bad flag value", args: []string{"-e=maybe"}, want: "failed to parse flags"},
		{name: "invalid result", args: []string{"-p", "web", "-l", "chatty"}, want: "invalid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			environ := tt.environ
			if environ == nil {
				environ = map[string]string{}
			}
			_, err := Load(tt.args, environ)
			require.ErrorContains(t, err, tt.want)
		})
	}
}
