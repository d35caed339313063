package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "BetMasterX", cfg.AppName)
	assert.Equal(t, "HS256", cfg.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Len(t, cfg.AllowedOrigins, 4)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://example.com , https://other.example.com,")
	t.Setenv("DEBUG", "false")
	t.Setenv("HTTP_PORT", "9000")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, []string{"https://example.com", "https://other.example.com"}, cfg.AllowedOrigins)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "9000", cfg.HTTPPort)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "not-a-number")
	t.Setenv("DEBUG", "not-a-bool")

	cfg := Load()

	assert.Equal(t, 30*time.Minute, cfg.TokenExpiry)
	assert.True(t, cfg.Debug)
}
