package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", c.APIBaseURL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, 5, c.PageSize)
	assert.Equal(t, "warn", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_url":         "http://json:3000",
		"request_timeout": "2s",
		"page_size":       10,
	})
	t.Setenv("DIARY_API_URL", "http://env:3000")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env:3000", cfg.APIBaseURL, "env overrides json")
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout, "json overrides defaults")
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.PageSize)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		_, err := LoadConfig(bad)
		assert.ErrorContains(t, err, "parse config")
	})

	t.Run("bad env", func(t *testing.T) {
		t.Setenv("DIARY_PAGE_SIZE", "many")
		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "parse environment")
	})
}

func TestParseJson_HuJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.hujson")
	require.NoError(t, os.WriteFile(p, []byte(`{
		// staging backend
		"api_url": "https://diary.example.com",
		"request_timeout": 3000000000,
	}`), 0o600))

	cfg := &Config{PageSize: 7}
	require.NoError(t, parseJson(cfg, p))
	assert.Equal(t, "https://diary.example.com", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 7, cfg.PageSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"bad scheme", func(c *Config) { c.APIBaseURL = "ftp://x" }, "scheme must be http or https"},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }, "request timeout must be positive"},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, "page size must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}
