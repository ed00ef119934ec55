package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.API.RateLimitPerSecond)
	assert.Equal(t, 20, cfg.API.RateLimitBurst)
	assert.Equal(t, 5, cfg.Security.BreakerMaxFailures)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PLUTUSGRIP_API_URL", "https://api.plutusgrip.example/api")
	t.Setenv("PLUTUSGRIP_API_TIMEOUT", "5s")
	t.Setenv("PLUTUSGRIP_RATE_LIMIT_PER_SECOND", "3")
	t.Setenv("PLUTUSGRIP_STORE_PATH", "/tmp/plutusgrip-test.db")

	cfg := Load()

	assert.Equal(t, "https://api.plutusgrip.example/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.RateLimitPerSecond)
	assert.Equal(t, "/tmp/plutusgrip-test.db", cfg.Storage.Path)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PLUTUSGRIP_API_TIMEOUT", "not-a-duration")
	t.Setenv("PLUTUSGRIP_RATE_LIMIT_PER_SECOND", "not-a-number")

	cfg := Load()

	require.Equal(t, 30*time.Second, cfg.API.Timeout)
	require.Equal(t, 10, cfg.API.RateLimitPerSecond)
}
