package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-vault vault container file path
//	-legacy-import default source file for legacy import
//	-client-command remote-desktop client executable
//	-log-level log level name (debug, info, warn, ...)
//	-c/-config json file path with configs
func ParseFlags() *ClientConfig {
	var vaultPath string
	var legacyPath string
	var clientCommand string
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&vaultPath, "vault", "", "Vault container file path")
	flag.StringVar(&legacyPath, "legacy-import", "", "Legacy import source file path")
	flag.StringVar(&clientCommand, "client-command", "", "Remote-desktop client executable")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, ...)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &ClientConfig{
		Vault: Vault{
			Path:       vaultPath,
			LegacyPath: legacyPath,
		},
		Client: Client{
			Command: clientCommand,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}
}
