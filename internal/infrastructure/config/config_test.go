package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, ".storefront", cfg.Storage.Dir)
	assert.Equal(t, "localhost", cfg.Storage.Redis.Host)
	assert.Equal(t, 6379, cfg.Storage.Redis.Port)
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_APP_ENV", "production")
	t.Setenv("STOREFRONT_STORAGE_BACKEND", "redis")
	t.Setenv("STOREFRONT_STORAGE_REDIS_HOST", "redis.internal")
	t.Setenv("STOREFRONT_API_BASE_URL", "https://shop.example.com")
	t.Setenv("STOREFRONT_API_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "redis.internal", cfg.Storage.Redis.Host)
	assert.Equal(t, "https://shop.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STOREFRONT_STORAGE_BACKEND", "s3")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.backend")
}

func TestLoadRejectsNonHTTPBaseURL(t *testing.T) {
	t.Setenv("STOREFRONT_API_BASE_URL", "ftp://shop.example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.base_url")
}

func TestValidateNegativeTimeout(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.API.Timeout = -time.Second

	require.Error(t, cfg.validate())
}
