package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_RequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsShortSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "short")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AdminCredentialsMustPair(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef")
	t.Setenv("ADMIN_EMAIL", "admin@gov.example")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("ADMIN_PASSWORD", "Admin@123")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "admin@gov.example", cfg.AdminEmail)
}
