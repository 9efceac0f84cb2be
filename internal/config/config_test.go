package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:           "8390",
		JWTSecret:      "test-secret-key-12345678901234567890123456789012",
		JWTExpiryHours: 100,
		DBPassword:     "strong-password",
		DBSSLMode:      "require",
		Env:            "development",
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_MissingPort(t *testing.T) {
	cfg := validConfig()
	cfg.Port = ""
	assert.EqualError(t, cfg.Validate(), "PORT is required")
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""
	assert.EqualError(t, cfg.Validate(), "JWT_SECRET is required")
}

func TestValidate_BadExpiry(t *testing.T) {
	cfg := validConfig()
	cfg.JWTExpiryHours = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_ProductionRules(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"

	cfg.JWTSecret = "your-secret-key-change-in-production"
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "test-secret-key-12345678901234567890123456789012"
	cfg.DBPassword = "password"
	assert.Error(t, cfg.Validate())

	cfg.DBPassword = "strong-password"
	assert.NoError(t, cfg.Validate())
}
