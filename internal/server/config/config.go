// Package config handles configuration for the diary server, including
// defaults, a JSON overlay, environment variables and command-line flags.
package config

import "time"

// Supported values of Config.DatabaseDriver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
	DriverMemory   = "memory"
)

// Config holds runtime settings for the diary server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the REST endpoint.
//   - DatabaseDriver: "sqlite", "pgx" (PostgreSQL) or "memory".
//   - DatabaseDSN: SQLite file path or PostgreSQL DSN, depending on the driver.
//   - LogLevel / LogFormat: see logging.New.
//   - ShutdownTimeout: grace period for in-flight requests on SIGINT/SIGTERM.
//   - ServiceName, TracingEnabled, MetricsEnabled, OTLPEndpoint: OpenTelemetry export.
type Config struct {
	EndpointAddrHTTP string        `env:"HTTP_ADDR"`
	DatabaseDriver   string        `env:"DB_DRIVER"`
	DatabaseDSN      string        `env:"DB_PATH"`
	LogLevel         string        `env:"LOG_LEVEL"`
	LogFormat        string        `env:"LOG_FORMAT"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"`
	ServiceName      string        `env:"SERVICE_NAME"`
	TracingEnabled   bool          `env:"TRACING_ENABLED"`
	MetricsEnabled   bool          `env:"METRICS_ENABLED"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// LoadDefaults populates Config with development defaults: a SQLite file
// next to the working directory and telemetry export switched off.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.DatabaseDriver = DriverSQLite
	c.DatabaseDSN = "diary.db"
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.ShutdownTimeout = 10 * time.Second
	c.ServiceName = "diary"
	c.TracingEnabled = false
	c.MetricsEnabled = false
	c.OTLPEndpoint = "localhost:4318"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (and an optional .env file)
// and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
