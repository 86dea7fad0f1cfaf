package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment.
type Config struct {
	Port                string
	CORSOrigins         []string
	PasswordChangeDelay time.Duration
	DefaultTheme        string
	SessionSignedIn     bool
	NoticeFeedSize      int
	SeedFile            string
}

// Load reads .env and .env.local when present, then the process environment.
// Variables already set in the environment win over file values.
func Load() (*Config, error) {
	for _, f := range []string{".env", ".env.local"} {
		_ = godotenv.Load(f)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Port:         get("PORT", "8081"),
		CORSOrigins:  []string{"http://localhost:5173"},
		DefaultTheme: get("DEFAULT_THEME", "light"),
		SeedFile:     get("SEED_FILE", ""),
	}

	if extra := get("CORS_ORIGINS", ""); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	delay, err := time.ParseDuration(get("PASSWORD_CHANGE_DELAY", "1200ms"))
	if err != nil || delay < 0 {
		return nil, fmt.Errorf("invalid PASSWORD_CHANGE_DELAY: %q", get("PASSWORD_CHANGE_DELAY", ""))
	}
	cfg.PasswordChangeDelay = delay

	signedIn, err := strconv.ParseBool(get("SESSION_AUTHENTICATED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_AUTHENTICATED: %w", err)
	}
	cfg.SessionSignedIn = signedIn

	size, err := strconv.Atoi(get("NOTICE_FEED_SIZE", "20"))
	if err != nil || size <= 0 {
		return nil, fmt.Errorf("invalid NOTICE_FEED_SIZE: %q", get("NOTICE_FEED_SIZE", ""))
	}
	cfg.NoticeFeedSize = size

	return cfg, nil
}
