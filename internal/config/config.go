// Package config provides configuration management for the academic API
// client and its CLI.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the client.
type Config struct {
	// API contains Academic Knowledge API settings.
	API APIConfig `mapstructure:"api"`
	// Logging contains structured logging settings.
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds Academic Knowledge API settings.
type APIConfig struct {
	// BaseURL is the API endpoint root.
	BaseURL string `mapstructure:"base_url"`
	// SubscriptionKey authenticates requests. Also read from the
	// MAKA_SUBSCRIPTION_KEY environment variable.
	SubscriptionKey string `mapstructure:"subscription_key"`
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `mapstructure:"timeout"`
	// RateLimit is the maximum requests per second.
	RateLimit float64 `mapstructure:"rate_limit"`
	// BurstSize is the maximum burst of requests allowed.
	BurstSize int `mapstructure:"burst_size"`
	// UserAgent is the User-Agent header sent with requests.
	UserAgent string `mapstructure:"user_agent"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level (trace, debug, info, warn, error, fatal, panic).
	Level string `mapstructure:"level"`
	// Format is the log format (json, console).
	Format string `mapstructure:"format"`
	// Output is the log output destination (stdout, stderr).
	Output string `mapstructure:"output"`
}

// Load reads configuration from an optional YAML file and MAKA_* environment
// variables. An empty path skips the file and uses defaults plus environment
// overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("MAKA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The subscription key keeps its historical variable name.
	_ = v.BindEnv("api.subscription_key", "MAKA_SUBSCRIPTION_KEY")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://westus.api.cognitive.microsoft.com/academic/v1.0")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.rate_limit", 5.0)
	v.SetDefault("api.burst_size", 5)
	v.SetDefault("api.user_agent", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")
}

// Validate checks the configuration for missing or malformed values.
func (c *Config) Validate() error {
	if c.API.SubscriptionKey == "" {
		return errors.New("api.subscription_key is required (set MAKA_SUBSCRIPTION_KEY)")
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api.base_url %q is not a valid URL", c.API.BaseURL)
	}
	if c.API.RateLimit < 0 {
		return errors.New("api.rate_limit must not be negative")
	}
	return nil
}
