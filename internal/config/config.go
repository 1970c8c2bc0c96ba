package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// APIBaseURL is the loan backend root, no trailing slash.
	APIBaseURL string

	// HTTPTimeoutSecs bounds every backend call; there is no retry.
	HTTPTimeoutSecs int

	// StatePath is the local sqlite database holding the persisted
	// token, identity and draft autosaves.
	StatePath string

	// NoticeTTLSecs is how long dashboard success/error notices stay
	// visible before auto-clearing.
	NoticeTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	c := &Config{
		APIBaseURL:      getenv("LOANAPP_API_URL", "http://localhost:8080"),
		HTTPTimeoutSecs: 10,
		StatePath:       getenv("LOANAPP_STATE_PATH", defaultStatePath()),
		NoticeTTLSecs:   5,
	}
	if v := os.Getenv("LOANAPP_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.HTTPTimeoutSecs = n
		}
	}
	if v := os.Getenv("LOANAPP_NOTICE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.NoticeTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("missing LOANAPP_API_URL")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid LOANAPP_API_URL %q", c.APIBaseURL)
	}
	if c.HTTPTimeoutSecs <= 0 {
		return errors.New("LOANAPP_HTTP_TIMEOUT_SECONDS must be positive")
	}
	if c.StatePath == "" {
		return errors.New("missing LOANAPP_STATE_PATH")
	}
	return nil
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "loanapp.db"
	}
	return filepath.Join(home, ".loanapp", "state.db")
}
