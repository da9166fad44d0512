package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder_DefaultsOnly verifies that building from defaults alone yields
// a valid configuration.
func TestBuilder_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "clients.json", cfg.Vault.Path)
	assert.Equal(t, "mstsc", cfg.Client.Command)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestBuilder_FirstNonZeroSourceWins verifies the merge priority: earlier
// appended sources win over later ones for non-zero fields.
func TestBuilder_FirstNonZeroSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &ClientConfig{
		Vault: Vault{Path: "/env/clients.json"},
	})
	b.configs = append(b.configs, &ClientConfig{
		Vault:  Vault{Path: "/flag/clients.json", LegacyPath: "/flag/old.json"},
		Client: Client{Command: "xfreerdp"},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "/env/clients.json", cfg.Vault.Path, "env wins over flags")
	assert.Equal(t, "/flag/old.json", cfg.Vault.LegacyPath, "flags fill fields env left empty")
	assert.Equal(t, "xfreerdp", cfg.Client.Command)
	assert.Equal(t, "info", cfg.Log.Level, "defaults fill the rest")
}

// TestBuilder_EnvSource verifies that withEnv picks values up from the
// process environment.
func TestBuilder_EnvSource(t *testing.T) {
	t.Setenv("VAULT_PATH", "/from-env/clients.json")

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "/from-env/clients.json", cfg.Vault.Path)
	assert.Equal(t, "mstsc", cfg.Client.Command)
}

// TestValidate verifies the invariants checked on the merged config.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				Vault:  Vault{Path: "clients.json"},
				Client: Client{Command: "mstsc"},
			},
			wantErr: nil,
		},
		{
			name: "missing vault path",
			cfg: ClientConfig{
				Client: Client{Command: "mstsc"},
			},
			wantErr: ErrInvalidVaultConfigs,
		},
		{
			name: "missing client command",
			cfg: ClientConfig{
				Vault: Vault{Path: "clients.json"},
			},
			wantErr: ErrInvalidClientConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
