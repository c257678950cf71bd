package observability

import "time"

// Config selects which OpenTelemetry signals are exported and where.
type Config struct {
	ServiceName    string
	ServiceVersion string
	TracingEnabled bool
	MetricsEnabled bool
	// OTLPEndpoint is host:port of an OTLP/HTTP collector.
	OTLPEndpoint string
	SamplingRate float64

	TraceBatchTimeout time.Duration
	MetricInterval    time.Duration
}

// DefaultConfig returns a config with both signals switched off.
func DefaultConfig(serviceName string) Config {
	return Config{
		ServiceName:       serviceName,
		ServiceVersion:    "dev",
		OTLPEndpoint:      "localhost:4318",
		SamplingRate:      1.0,
		TraceBatchTimeout: 5 * time.Second,
		MetricInterval:    15 * time.Second,
	}
}
