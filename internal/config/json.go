package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	Bitwarden struct {
		Session string `json:"session"`
		Path    string `json:"path"`
	} `json:"bitwarden,omitempty"`

	Database struct {
		Path     string `json:"path"`
		Password string `json:"password"`
		Keyfile  string `json:"keyfile"`
	} `json:"database,omitempty"`

	TOTPDatabase struct {
		Path     string `json:"path"`
		Password string `json:"password"`
		Keyfile  string `json:"keyfile"`
	} `json:"totp_database,omitempty"`

	Converter struct {
		SensitiveOnProtected bool `json:"sensitive_on_protected"`
	} `json:"converter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Bitwarden: Bitwarden{
			Session: jsonCfg.Bitwarden.Session,
			Path:    jsonCfg.Bitwarden.Path,
		},
		Database: Database{
			Path:     jsonCfg.Database.Path,
			Password: jsonCfg.Database.Password,
			Keyfile:  jsonCfg.Database.Keyfile,
		},
		TOTPDatabase: Database{
			Path:     jsonCfg.TOTPDatabase.Path,
			Password: jsonCfg.TOTPDatabase.Password,
			Keyfile:  jsonCfg.TOTPDatabase.Keyfile,
		},
		Converter: Converter{
			SensitiveOnProtected: jsonCfg.Converter.SensitiveOnProtected,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
