package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gamenews/internal/flagx"
	"github.com/dmitrijs2005/gamenews/internal/timex"
)

// JsonConfig is the on-disk form of Config. Pointer fields distinguish
// "absent" from the zero value, so a file only overrides what it names.
type JsonConfig struct {
	DataDir       *string `json:"data_dir"`
	DatabaseFile  *string `json:"database_file"`
	DeviceKeyFile *string `json:"device_key_file"`
	Ephemeral     *bool   `json:"ephemeral"`

	Platform *string `json:"platform"`
	LogLevel *string `json:"log_level"`

	SignInDelay   *timex.Duration `json:"sign_in_delay"`
	ResetDelay    *timex.Duration `json:"reset_delay"`
	ProviderDelay *timex.Duration `json:"provider_delay"`

	TokenTTL    *timex.Duration `json:"token_ttl"`
	TokenSecret *string         `json:"token_secret"`

	OAuthMode        *string `json:"oauth_mode"`
	GoogleClientID   *string `json:"google_client_id"`
	FacebookClientID *string `json:"facebook_client_id"`
	RedirectScheme   *string `json:"redirect_scheme"`
}

// parseJSON overlays cfg with the JSON file named by -c or -config in args.
// Without either flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.DatabaseFile, jc.DatabaseFile)
	setString(&cfg.DeviceKeyFile, jc.DeviceKeyFile)
	if jc.Ephemeral != nil {
		cfg.Ephemeral = *jc.Ephemeral
	}
	setString(&cfg.Platform, jc.Platform)
	setString(&cfg.LogLevel, jc.LogLevel)
	setDuration(&cfg.SignInDelay, jc.SignInDelay)
	setDuration(&cfg.ResetDelay, jc.ResetDelay)
	setDuration(&cfg.ProviderDelay, jc.ProviderDelay)
	setDuration(&cfg.TokenTTL, jc.TokenTTL)
	setString(&cfg.TokenSecret, jc.TokenSecret)
	setString(&cfg.OAuthMode, jc.OAuthMode)
	setString(&cfg.GoogleClientID, jc.GoogleClientID)
	setString(&cfg.FacebookClientID, jc.FacebookClientID)
	setString(&cfg.RedirectScheme, jc.RedirectScheme)
}
