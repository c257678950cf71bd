package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	APIBaseURL     string        `env:"DIARY_API_URL"`
	RequestTimeout time.Duration `env:"DIARY_TIMEOUT"`
	PageSize       int           `env:"DIARY_PAGE_SIZE"`
	HistoryFile    string        `env:"DIARY_HISTORY_FILE"`
	LogLevel       string        `env:"DIARY_LOG_LEVEL"`
}

func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.RequestTimeout = 5 * time.Second
	c.PageSize = 5
	c.HistoryFile = defaultHistoryFile()
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then the JSON file at path (skipped when
// path is empty), then the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot work with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api url %q: %w", c.APIBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api url %q: scheme must be http or https", c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.PageSize <= 0 {
		return errors.New("page size must be positive")
	}
	return nil
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".diary_history")
}
