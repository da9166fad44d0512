package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates invalid vault settings
	// (for example, an empty container file path).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidClientConfigs indicates invalid remote-desktop client
	// settings (for example, an empty client command).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
