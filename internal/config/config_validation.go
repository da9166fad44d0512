// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [ClientConfig] satisfies all
// application invariants before it is used at startup. Defaults are merged
// in before validation, so failures here mean a source explicitly supplied
// an unusable value.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Vault.Path == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Client.Command == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}
