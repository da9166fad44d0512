package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestParseJSON_FullConfig verifies that a complete JSON file maps onto
// every ClientConfig field.
func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"vault": {"path": "/srv/clients.json", "legacy_path": "/srv/old.json"},
		"client": {"command": "wfreerdp"},
		"log": {"level": "warn"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/clients.json", cfg.Vault.Path)
	assert.Equal(t, "/srv/old.json", cfg.Vault.LegacyPath)
	assert.Equal(t, "wfreerdp", cfg.Client.Command)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath, "a JSON config must not chain to another JSON config")
}

// TestParseJSON_PartialConfig verifies that omitted sections stay zero.
func TestParseJSON_PartialConfig(t *testing.T) {
	path := writeTempJSON(t, `{"vault": {"path": "only-vault.json"}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "only-vault.json", cfg.Vault.Path)
	assert.Empty(t, cfg.Client.Command)
	assert.Empty(t, cfg.Log.Level)
}

// TestParseJSON_Errors verifies error reporting for missing and malformed files.
func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	path := writeTempJSON(t, `{not json`)
	_, err = parseJSON(path)
	assert.Error(t, err)
}
