package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Validate tests configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		check  func(*testing.T, *Config)
	}{
		{
			name: "valid config is left alone",
			modify: func(c *Config) {
				*c = *Default()
				c.Concurrency.Workers = 2
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 2, c.Concurrency.Workers)
			},
		},
		{
			name: "workers below minimum use default",
			modify: func(c *Config) {
				c.Concurrency.Workers = 0
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultWorkers, c.Concurrency.Workers)
			},
		},
		{
			name: "timeout below minimum uses default",
			modify: func(c *Config) {
				c.Concurrency.Timeout = 100 * time.Millisecond
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultTimeout, c.Concurrency.Timeout)
			},
		},
		{
			name:   "empty service URLs use defaults",
			modify: func(c *Config) {},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultPolyfillBaseURL, c.Polyfill.BaseURL)
				assert.Equal(t, DefaultBuildServiceBaseURL, c.BuildService.BaseURL)
			},
		},
		{
			name:   "empty compiler commands use defaults",
			modify: func(c *Config) {},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultSassCommand, c.Compilers.Sass)
				assert.Equal(t, DefaultJSCommand, c.Compilers.JS)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.modify(cfg)

			require.NoError(t, cfg.Validate())
			tt.check(t, cfg)
		})
	}
}

// TestDefault tests default configuration
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultWorkers, cfg.Concurrency.Workers)
	assert.Equal(t, DefaultTimeout, cfg.Concurrency.Timeout)
	assert.Equal(t, DefaultPolyfillBaseURL, cfg.Polyfill.BaseURL)
	assert.Equal(t, DefaultBuildServiceBaseURL, cfg.BuildService.BaseURL)
	assert.Equal(t, "sass", cfg.Compilers.Sass)
	assert.Equal(t, "esbuild", cfg.Compilers.JS)
	assert.Equal(t, DefaultUserAgent, cfg.Fetch.UserAgent)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

// TestConfigFilePath tests config file path
func TestConfigFilePath(t *testing.T) {
	assert.Contains(t, ConfigDir(), ".demobuild")
	assert.Contains(t, ConfigFilePath(), "config.yaml")
}


// isolate points HOME and the working directory at fresh temp dirs
func isolate(t *testing.T) string {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	tmpDir := t.TempDir()

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(originalWd) })

	return tmpDir
}

// TestLoad_WithMissingConfig tests loading with no config file
func TestLoad_WithMissingConfig(t *testing.T) {
	isolate(t)

	cfg, v, err := LoadWithViper()
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Equal(t, DefaultWorkers, cfg.Concurrency.Workers)
	assert.Equal(t, DefaultPolyfillBaseURL, cfg.Polyfill.BaseURL)
}

// TestLoad_WithInvalidConfigFile tests loading with invalid config file
func TestLoad_WithInvalidConfigFile(t *testing.T) {
	tmpDir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("invalid: yaml: content: ["), 0644))

	cfg, _, err := LoadWithViper()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoad_WithValidConfigFile tests loading with valid config file
func TestLoad_WithValidConfigFile(t *testing.T) {
	tmpDir := isolate(t)
	configContent := `
concurrency:
  workers: 3
  timeout: 10s
polyfill:
  base_url: "https://polyfill.example.test/v3/polyfill.js"
compilers:
  sass: "/opt/bin/sass"
logging:
  level: "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(configContent), 0644))

	cfg, _, err := LoadWithViper()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Concurrency.Workers)
	assert.Equal(t, 10*time.Second, cfg.Concurrency.Timeout)
	assert.Equal(t, "https://polyfill.example.test/v3/polyfill.js", cfg.Polyfill.BaseURL)
	assert.Equal(t, "/opt/bin/sass", cfg.Compilers.Sass)
	assert.Equal(t, DefaultJSCommand, cfg.Compilers.JS)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

// TestLoad_WithEnvironmentVariable tests loading with environment variable
func TestLoad_WithEnvironmentVariable(t *testing.T) {
	isolate(t)
	t.Setenv("DEMOBUILD_BUILD_SERVICE_BASE_URL", "https://build.example.test/v3")
	t.Setenv("DEMOBUILD_FETCH_PROXY_URL", "http://proxy.example.test:8080")

	cfg, _, err := LoadWithViper()
	require.NoError(t, err)

	assert.Equal(t, "https://build.example.test/v3", cfg.BuildService.BaseURL)
	assert.Equal(t, "http://proxy.example.test:8080", cfg.Fetch.ProxyURL)
}
