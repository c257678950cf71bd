package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/diary/internal/timex"
	"github.com/tailscale/hujson"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero values
// leave the current setting untouched.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	PageSize       int            `json:"page_size"`
	HistoryFile    string         `json:"history_file"`
	LogLevel       string         `json:"log_level"`
}

func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	data, err = hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.HistoryFile != "" {
		cfg.HistoryFile = jc.HistoryFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
