// Package config provides configuration loading and management for the filter server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ktane-web/filter-server/internal/telemetry"
)

const (
	// EnvPrefix is the prefix of every environment variable the server reads
	EnvPrefix = "FILTER_API"

	// DefaultLanguage is used when translations.defaultLanguage is unset
	DefaultLanguage = "en"

	// DefaultRequestTimeout bounds the handling time of a single request
	DefaultRequestTimeout = 10 * time.Second
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	Catalog      CatalogConfig       `yaml:"catalog"`
	Translations *TranslationsConfig `yaml:"translations,omitempty"`
	Server       *ServerConfig       `yaml:"server,omitempty"`
	Telemetry    *telemetry.Config   `yaml:"telemetry,omitempty"`
}

// CatalogConfig locates the module catalog
type CatalogConfig struct {
	// Path is the catalog JSON file, absolute or relative to the working directory
	Path string `yaml:"path"`

	// Watch reloads the catalog whenever the file changes
	Watch bool `yaml:"watch,omitempty"`
}

// TranslationsConfig locates the translation tables
type TranslationsConfig struct {
	// Dir holds one <lang>.yaml file per language. Without it only the
	// built-in English table is served.
	Dir string `yaml:"dir,omitempty"`

	DefaultLanguage string `yaml:"defaultLanguage,omitempty"`
}

// ServerConfig holds HTTP server settings. Command line flags take precedence.
// The address is validated when the server is built.
type ServerConfig struct {
	Address        string `yaml:"address,omitempty"`
	RequestTimeout string `yaml:"requestTimeout,omitempty"`
}

// LoadConfig loads and validates the configuration
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}
	if loaderCfg.path == "" {
		return nil, fmt.Errorf("config path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML configuration document
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// GetTranslationsDir returns the translation directory, or "" when none is configured
func (c *Config) GetTranslationsDir() string {
	if c.Translations == nil {
		return ""
	}
	return c.Translations.Dir
}

// GetDefaultLanguage returns the fallback language of the translation bundle
func (c *Config) GetDefaultLanguage() string {
	if c.Translations == nil || c.Translations.DefaultLanguage == "" {
		return DefaultLanguage
	}
	return c.Translations.DefaultLanguage
}

// GetAddress returns the configured listen address, or "" to keep the server default
func (c *Config) GetAddress() string {
	if c.Server == nil {
		return ""
	}
	return c.Server.Address
}

// GetRequestTimeout returns the per-request timeout
func (c *Config) GetRequestTimeout() time.Duration {
	if c.Server == nil || c.Server.RequestTimeout == "" {
		return DefaultRequestTimeout
	}
	d, err := time.ParseDuration(c.Server.RequestTimeout)
	if err != nil || d <= 0 {
		return DefaultRequestTimeout
	}
	return d
}

func (c *Config) validate() error {
	var errs []error

	if c.Catalog.Path == "" {
		errs = append(errs, fmt.Errorf("catalog.path is required"))
	}

	if c.Translations != nil && c.Translations.DefaultLanguage != "" {
		if _, err := language.Parse(c.Translations.DefaultLanguage); err != nil {
			errs = append(errs, fmt.Errorf("translations.defaultLanguage %q is not a language tag: %w",
				c.Translations.DefaultLanguage, err))
		}
	}

	if c.Server != nil {
		if c.Server.RequestTimeout != "" {
			d, err := time.ParseDuration(c.Server.RequestTimeout)
			if err != nil {
				errs = append(errs, fmt.Errorf("server.requestTimeout: %w", err))
			} else if d <= 0 {
				errs = append(errs, fmt.Errorf("server.requestTimeout must be positive"))
			}
		}
	}

	if c.Telemetry != nil {
		if err := c.Telemetry.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("telemetry: %w", err))
		}
	}

	return errors.Join(errs...)
}
