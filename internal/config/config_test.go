package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AI_UPSTREAM_BASE_URL", "")
	t.Setenv("AI_UPSTREAM_API_KEY", "")
	t.Setenv("AI_UPSTREAM_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Duration(0), cfg.Server.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 0, cfg.Server.ThrottleLimit)

	assert.Empty(t, cfg.Upstream.BaseURL)
	assert.Empty(t, cfg.Upstream.APIKey)
	assert.Empty(t, cfg.Upstream.Model)
	assert.InDelta(t, 0.4, cfg.Upstream.Temperature, 1e-9)

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_TIMEOUT", "45s")
	t.Setenv("AI_UPSTREAM_BASE_URL", "https://llm.example.com/v1")
	t.Setenv("AI_UPSTREAM_API_KEY", "sk-test")
	t.Setenv("AI_UPSTREAM_MODEL", "qwen-max")
	t.Setenv("AI_UPSTREAM_TEMPERATURE", "0.9")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://draw.example.com")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "https://llm.example.com/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, "sk-test", cfg.Upstream.APIKey)
	assert.Equal(t, "qwen-max", cfg.Upstream.Model)
	assert.InDelta(t, 0.9, cfg.Upstream.Temperature, 1e-9)
	assert.Equal(t, []string{"http://localhost:3000", "https://draw.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("SERVER_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
