// Package config loads runtime configuration for the gamenews CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables prefixed with GAMENEWS_ (GAMENEWS_PLATFORM,
//     GAMENEWS_SIGN_IN_DELAY, ...), read with github.com/caarlos0/env.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   data directory
//	-p string   platform: ios, android or web
//	-l string   log level
//	-e          keep the session in memory only
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "1.5s" or
// integer nanoseconds. Keys that are absent keep their earlier value:
//
//	{
//	  "data_dir": "/home/me/.config/gamenews",
//	  "platform": "android",
//	  "sign_in_delay": "200ms",
//	  "oauth_mode": "oauth",
//	  "google_client_id": "1234.apps.googleusercontent.com"
//	}
package config
