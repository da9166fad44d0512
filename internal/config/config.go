// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// ClientConfig is the top-level configuration container for the rdp-keeper
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// Vault holds the encrypted container file settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Client holds settings for the external remote-desktop client that
	// is spawned on connect.
	Client Client `envPrefix:"CLIENT_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds the settings of the encrypted container on disk.
type Vault struct {
	// Path is the container file's fixed, well-known location. The file's
	// mere existence at this path is what identifies it as a vault.
	// Env: VAULT_PATH
	Path string `env:"PATH"`

	// LegacyPath is the default source file for the legacy import flow
	// (containers sealed under the degenerate all-zero key by early
	// builds). Env: VAULT_LEGACY_PATH
	LegacyPath string `env:"LEGACY_PATH"`
}

// Client holds settings for spawning the remote-desktop client.
type Client struct {
	// Command is the remote-desktop client executable. It is invoked as
	// `<command> /v <address> /prompt` (mstsc argument convention).
	// Env: CLIENT_COMMAND
	Command string `env:"COMMAND"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Built-in defaults, applied with the lowest priority.
func defaultConfig() *ClientConfig {
	return &ClientConfig{
		Vault: Vault{
			Path: "clients.json",
		},
		Client: Client{
			Command: "mstsc",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetClientConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *ClientConfig or an error if any source fails
// to load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
