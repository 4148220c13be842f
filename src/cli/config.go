// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// FileConfig names the material files an inspection run should load. It can
// be supplied instead of individual flags; flags win where both are set.
// Supported file extensions: .json, .yaml, .yml
type FileConfig struct {
	// Chain: path to the PEM, DER, or PKCS#7 certificate chain bundle
	Chain string `json:"chain" yaml:"chain"`
	// Key: path to the PEM private key
	Key string `json:"key" yaml:"key"`
	// DHParams: optional path to PEM PKCS#3 DH parameters
	DHParams string `json:"dhParams,omitempty" yaml:"dhParams,omitempty"`
}

// detectConfigFormat determines the configuration file format based on file
// extension, case-insensitively.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// loadFileConfig reads and parses a JSON or YAML configuration file.
func loadFileConfig(configPath string) (*FileConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("cli: read config file: %w", err)
	}

	config := new(FileConfig)
	switch detectConfigFormat(configPath) {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("cli: failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("cli: failed to parse JSON config file: %w", err)
		}
	}

	return config, nil
}
