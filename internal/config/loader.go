package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	cfg, _, err := load(viper.GetViper())
	return cfg, err
}

// LoadWithViper loads configuration into a fresh viper instance and returns it
func LoadWithViper() (*Config, *viper.Viper, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, *viper.Viper, error) {
	setDefaults(v)

	// Config file settings, unless a file was set explicitly
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, nil, err
		}
	}

	// Environment variables (DEMOBUILD_*)
	v.SetEnvPrefix("DEMOBUILD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, v, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("concurrency.workers", DefaultWorkers)
	v.SetDefault("concurrency.timeout", DefaultTimeout)

	v.SetDefault("polyfill.base_url", DefaultPolyfillBaseURL)
	v.SetDefault("build_service.base_url", DefaultBuildServiceBaseURL)

	v.SetDefault("compilers.sass", DefaultSassCommand)
	v.SetDefault("compilers.js", DefaultJSCommand)

	v.SetDefault("fetch.user_agent", DefaultUserAgent)
	v.SetDefault("fetch.proxy_url", "")

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

