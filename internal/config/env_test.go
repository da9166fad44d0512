package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_FullSet verifies that every supported environment variable is
// mapped to its ClientConfig field.
func TestParseEnv_FullSet(t *testing.T) {
	t.Setenv("VAULT_PATH", "/data/clients.json")
	t.Setenv("VAULT_LEGACY_PATH", "/data/old.json")
	t.Setenv("CLIENT_COMMAND", "xfreerdp")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CONFIG", "/etc/rdp-keeper.json")

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/data/clients.json", cfg.Vault.Path)
	assert.Equal(t, "/data/old.json", cfg.Vault.LegacyPath)
	assert.Equal(t, "xfreerdp", cfg.Client.Command)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/etc/rdp-keeper.json", cfg.JSONFilePath)
}

// TestParseEnv_Empty verifies that parseEnv leaves fields zero when no
// environment variables are set.
func TestParseEnv_Empty(t *testing.T) {
	for _, v := range []string{"VAULT_PATH", "VAULT_LEGACY_PATH", "CLIENT_COMMAND", "LOG_LEVEL", "CONFIG"} {
		t.Setenv(v, "")
	}

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, ClientConfig{}, *cfg)
}
