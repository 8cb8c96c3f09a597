package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("environment key with defaults", func(t *testing.T) {
		t.Setenv("MAKA_SUBSCRIPTION_KEY", "test-key")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "test-key", cfg.API.SubscriptionKey)
		assert.Equal(t, "https://westus.api.cognitive.microsoft.com/academic/v1.0", cfg.API.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.API.Timeout)
		assert.Equal(t, 5.0, cfg.API.RateLimit)
		assert.Equal(t, 5, cfg.API.BurstSize)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("missing subscription key fails", func(t *testing.T) {
		t.Setenv("MAKA_SUBSCRIPTION_KEY", "")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "subscription_key")
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		t.Setenv("MAKA_SUBSCRIPTION_KEY", "test-key")

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: https://eastus.api.cognitive.microsoft.com/academic/v1.0
  timeout: 10s
  rate_limit: 2.5
logging:
  level: debug
  format: console
`), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "https://eastus.api.cognitive.microsoft.com/academic/v1.0", cfg.API.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, 2.5, cfg.API.RateLimit)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Setenv("MAKA_SUBSCRIPTION_KEY", "env-key")
		t.Setenv("MAKA_API_RATE_LIMIT", "9")

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api:\n  rate_limit: 2\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9.0, cfg.API.RateLimit)
	})

	t.Run("unreadable file fails", func(t *testing.T) {
		t.Setenv("MAKA_SUBSCRIPTION_KEY", "test-key")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{API: APIConfig{
			SubscriptionKey: "k",
			BaseURL:         "https://api.example.com/v1",
			RateLimit:       5,
		}}
	}

	t.Run("accepts a complete config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("rejects malformed base url", func(t *testing.T) {
		cfg := valid()
		cfg.API.BaseURL = "not a url"
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects negative rate limit", func(t *testing.T) {
		cfg := valid()
		cfg.API.RateLimit = -1
		require.Error(t, cfg.Validate())
	})
}
