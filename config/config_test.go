package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "http://localhost:9090", cfg.BackendURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "riego_token", cfg.CookieName)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PANEL_LISTEN_ADDR", ":3000")
	t.Setenv("PANEL_BACKEND_URL", "https://riego.example.com")
	t.Setenv("PANEL_CACHE_TTL", "5m")
	t.Setenv("PANEL_REQUEST_TIMEOUT", "garbage")

	cfg := Load()

	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, "https://riego.example.com", cfg.BackendURL)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	// 非法的时长回退到默认值
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
