package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/gamenews/internal/flagx"
	"github.com/dmitrijs2005/gamenews/internal/timex"
)

// parseFlags overlays cfg with command-line flags. Arguments that belong to
// other flag sets are ignored.
//
//	-d string   data directory
//	-p string   platform: ios, android or web
//	-l string   log level
//	-e          ephemeral: keep the session in memory only
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.Platform, "p", cfg.Platform, "platform (ios, android, web)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Ephemeral, "e", cfg.Ephemeral, "keep the session in memory only")

	if err := flagx.Parse(fs, args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
