// Package telemetry wires OpenTelemetry tracing and metrics for the filter API.
// Traces are exported over OTLP/HTTP; metrics go to OTLP/HTTP, to a Prometheus
// scrape endpoint, or both.
package telemetry

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultServiceName identifies the service in exported telemetry
	DefaultServiceName = "filter-api"

	// DefaultEndpoint is the OTLP/HTTP collector address
	DefaultEndpoint = "localhost:4318"

	// DefaultSampling is the trace sampling ratio used when none is configured
	DefaultSampling = 0.05

	// DefaultMetricsInterval is how often metrics are pushed over OTLP
	DefaultMetricsInterval = 60 * time.Second
)

// Config is the telemetry section of the configuration file.
type Config struct {
	// Enabled switches every telemetry provider on or off
	Enabled bool `yaml:"enabled"`

	ServiceName    string `yaml:"serviceName,omitempty"`
	ServiceVersion string `yaml:"serviceVersion,omitempty"`

	// Endpoint is the OTLP collector as "host:port"
	Endpoint string `yaml:"endpoint,omitempty"`

	// Insecure sends OTLP over plain HTTP. Development only.
	Insecure bool `yaml:"insecure,omitempty"`

	Tracing *TracingConfig `yaml:"tracing,omitempty"`
	Metrics *MetricsConfig `yaml:"metrics,omitempty"`
}

// TracingConfig configures trace export.
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`

	// Sampling is the ratio of sampled traces in [0, 1]; zero selects DefaultSampling
	Sampling float64 `yaml:"sampling,omitempty"`
}

// MetricsConfig configures metric export.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`

	// Prometheus exposes metrics for scraping on /metrics
	Prometheus bool `yaml:"prometheus,omitempty"`

	// OTLP pushes metrics to the collector. Defaults to true unless Prometheus is set.
	OTLP *bool `yaml:"otlp,omitempty"`

	// Interval is the OTLP push interval, e.g. "30s"
	Interval string `yaml:"interval,omitempty"`
}

// GetServiceName returns the service name or DefaultServiceName.
func (c *Config) GetServiceName() string {
	if c.ServiceName == "" {
		return DefaultServiceName
	}
	return c.ServiceName
}

// GetServiceVersion returns the service version or "unknown".
func (c *Config) GetServiceVersion() string {
	if c.ServiceVersion == "" {
		return "unknown"
	}
	return c.ServiceVersion
}

// GetEndpoint returns the collector endpoint or DefaultEndpoint.
func (c *Config) GetEndpoint() string {
	if c.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.Endpoint
}

// GetSampling returns the sampling ratio. Zero means unset and yields
// DefaultSampling, so a configured ratio of exactly zero is not expressible.
func (c *TracingConfig) GetSampling() float64 {
	if c.Sampling == 0 {
		return DefaultSampling
	}
	return c.Sampling
}

// PushOTLP reports whether metrics are pushed to the collector.
func (c *MetricsConfig) PushOTLP() bool {
	if c.OTLP != nil {
		return *c.OTLP
	}
	return !c.Prometheus
}

// GetInterval returns the OTLP push interval or DefaultMetricsInterval.
func (c *MetricsConfig) GetInterval() time.Duration {
	if c.Interval == "" {
		return DefaultMetricsInterval
	}
	d, err := time.ParseDuration(c.Interval)
	if err != nil || d <= 0 {
		return DefaultMetricsInterval
	}
	return d
}

// Validate checks the telemetry configuration. A nil or disabled config is valid.
func (c *Config) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}

	var errs []error
	if err := c.Tracing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tracing: %w", err))
	}
	if err := c.Metrics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("metrics: %w", err))
	}
	return errors.Join(errs...)
}

// Validate checks the tracing configuration.
func (c *TracingConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}
	if c.Sampling < 0 || c.Sampling > 1.0 {
		return fmt.Errorf("sampling must be between 0.0 and 1.0, got %f", c.Sampling)
	}
	return nil
}

// Validate checks the metrics configuration.
func (c *MetricsConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}
	if c.Interval != "" {
		d, err := time.ParseDuration(c.Interval)
		if err != nil {
			return fmt.Errorf("invalid interval %q: %w", c.Interval, err)
		}
		if d <= 0 {
			return fmt.Errorf("interval must be positive, got %s", c.Interval)
		}
	}
	if !c.Prometheus && !c.PushOTLP() {
		return errors.New("at least one of prometheus or otlp must be enabled")
	}
	return nil
}
