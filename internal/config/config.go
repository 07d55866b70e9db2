package config

import (
	"time"
)

// Config represents the tool configuration
type Config struct {
	Concurrency  ConcurrencyConfig  `mapstructure:"concurrency" yaml:"concurrency"`
	Polyfill     PolyfillConfig     `mapstructure:"polyfill" yaml:"polyfill"`
	BuildService BuildServiceConfig `mapstructure:"build_service" yaml:"build_service"`
	Compilers    CompilersConfig    `mapstructure:"compilers" yaml:"compilers"`
	Fetch        FetchConfig        `mapstructure:"fetch" yaml:"fetch"`
	Logging      LoggingConfig      `mapstructure:"logging" yaml:"logging"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	Workers int           `mapstructure:"workers" yaml:"workers"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// PolyfillConfig contains polyfill service settings
type PolyfillConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// BuildServiceConfig contains settings for dependency bundle URLs
type BuildServiceConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// CompilersConfig names the external compiler binaries
type CompilersConfig struct {
	Sass string `mapstructure:"sass" yaml:"sass"`
	JS   string `mapstructure:"js" yaml:"js"`
}

// FetchConfig contains remote demo data settings
type FetchConfig struct {
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// ProxyURL routes remote demo data requests through a proxy
	ProxyURL string `mapstructure:"proxy_url" yaml:"proxy_url"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, replacing out-of-range values with defaults
func (c *Config) Validate() error {
	if c.Concurrency.Workers < 1 {
		c.Concurrency.Workers = DefaultWorkers
	}
	if c.Concurrency.Timeout < time.Second {
		c.Concurrency.Timeout = DefaultTimeout
	}
	if c.Polyfill.BaseURL == "" {
		c.Polyfill.BaseURL = DefaultPolyfillBaseURL
	}
	if c.BuildService.BaseURL == "" {
		c.BuildService.BaseURL = DefaultBuildServiceBaseURL
	}
	if c.Compilers.Sass == "" {
		c.Compilers.Sass = DefaultSassCommand
	}
	if c.Compilers.JS == "" {
		c.Compilers.JS = DefaultJSCommand
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = DefaultUserAgent
	}
	return nil
}
