package config_test

import (
	"testing"

	"storefront/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8000", cfg.AppPort)
	assert.Equal(t, "storefront.db", cfg.DatabaseURL)
	assert.Equal(t, config.DefaultSecret, cfg.SecretKey)
	assert.Equal(t, "HS256", cfg.Algorithm)
	assert.Equal(t, 30, cfg.TokenTTLMinutes)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.PublicBaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SECRET_KEY", "prod-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "60")
	t.Setenv("PUBLIC_BASE_URL", "https://shop.example.com/")

	cfg := config.Load()

	assert.Equal(t, "prod-secret", cfg.SecretKey)
	assert.Equal(t, 60, cfg.TokenTTLMinutes)
	// Trailing slashes are trimmed so URL joins stay clean.
	assert.Equal(t, "https://shop.example.com", cfg.PublicBaseURL)
}

func TestLoadInvalidTTLFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "-5")

	cfg := config.Load()
	assert.Equal(t, 30, cfg.TokenTTLMinutes)
}
