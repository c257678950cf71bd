package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/diary/internal/flagx"
	"github.com/dmitrijs2005/diary/internal/timex"
	"github.com/tailscale/hujson"
)

// JsonConfig is the on-disk shape of the server config file. Durations use
// timex.Duration so both "10s" and integer nanoseconds are accepted. The
// file may contain comments and trailing commas.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	DatabaseDriver   string         `json:"database_driver"`
	DatabaseDSN      string         `json:"database_dsn"`
	LogLevel         string         `json:"log_level"`
	LogFormat        string         `json:"log_format"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
	ServiceName      string         `json:"service_name"`
	TracingEnabled   *bool          `json:"tracing_enabled"`
	MetricsEnabled   *bool          `json:"metrics_enabled"`
	OTLPEndpoint     string         `json:"otlp_endpoint"`
}

// parseJson overlays values from the file named by -c/-config. Keys missing
// from the file leave the current values untouched. An unreadable or invalid
// file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	std, err := hujson.Standardize(file)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(std, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.ServiceName, c.ServiceName)
	setString(&config.OTLPEndpoint, c.OTLPEndpoint)
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.TracingEnabled != nil {
		config.TracingEnabled = *c.TracingEnabled
	}
	if c.MetricsEnabled != nil {
		config.MetricsEnabled = *c.MetricsEnabled
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
