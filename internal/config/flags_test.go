package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagSet(t *testing.T) {
	cfg, err := parseFlagSet([]string{
		"-a", "localhost:9090",
		"-d", "postgres://flags/accounts",
		"-token-sign-key", "flag-sign-key",
		"-token-issuer", "flag-issuer",
		"-token-duration", "10m",
		"-bcrypt-cost", "12",
		"-api-key", "flag-api-key",
		"-request-timeout", "1m",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://flags/accounts", cfg.Storage.DB.DSN)
	assert.Equal(t, "flag-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 10*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "flag-api-key", cfg.Security.APIKey)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

func TestParseFlagSet_NoFlags(t *testing.T) {
	cfg, err := parseFlagSet(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Auth.TokenSignKey)
}

func TestParseFlagSet_ConfigAlias(t *testing.T) {
	cfg, err := parseFlagSet([]string{"-config", "/etc/accounts.json"})

	require.NoError(t, err)
	assert.Equal(t, "/etc/accounts.json", cfg.JSONFilePath)
}

func TestNetAddress_Set(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 8080, addr.Port)
	assert.Equal(t, "localhost:8080", addr.String())
}

func TestNetAddress_SetInvalid(t *testing.T) {
	var addr NetAddress

	assert.Error(t, addr.Set("no-port"))
	assert.Error(t, addr.Set("host:not-a-number"))
}
