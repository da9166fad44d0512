package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type structuredJSONConfig struct {
	Vault struct {
		Path       string `json:"path"`
		LegacyPath string `json:"legacy_path"`
	} `json:"vault,omitempty"`

	Client struct {
		Command string `json:"command"`
	} `json:"client,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &ClientConfig{
		Vault: Vault{
			Path:       jsonCfg.Vault.Path,
			LegacyPath: jsonCfg.Vault.LegacyPath,
		},
		Client: Client{
			Command: jsonCfg.Client.Command,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
