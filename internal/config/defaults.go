package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// Concurrency defaults
	DefaultWorkers = 8
	DefaultTimeout = 30 * time.Second

	// Service defaults
	DefaultPolyfillBaseURL     = "https://cdnjs.cloudflare.com/polyfill/v3/polyfill.min.js"
	DefaultBuildServiceBaseURL = "https://www.ft.com/__origami/service/build/v2"

	// Compiler defaults
	DefaultSassCommand = "sass"
	DefaultJSCommand   = "esbuild"

	DefaultUserAgent = "demobuild"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".demobuild"
	}
	return filepath.Join(home, ".demobuild")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Concurrency: ConcurrencyConfig{
			Workers: DefaultWorkers,
			Timeout: DefaultTimeout,
		},
		Polyfill: PolyfillConfig{
			BaseURL: DefaultPolyfillBaseURL,
		},
		BuildService: BuildServiceConfig{
			BaseURL: DefaultBuildServiceBaseURL,
		},
		Compilers: CompilersConfig{
			Sass: DefaultSassCommand,
			JS:   DefaultJSCommand,
		},
		Fetch: FetchConfig{
			UserAgent: DefaultUserAgent,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
