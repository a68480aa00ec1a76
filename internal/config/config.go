// Package config reads and writes the lifexp CLI configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat lifexp configuration
type Config struct {
	Version          string `json:"version"`
	DisplayName      string `json:"display_name,omitempty"`
	SuggestionLimit  int    `json:"suggestion_limit,omitempty"`  // default 5
	ShowSecretBadges bool   `json:"show_secret_badges,omitempty"`
	NoColor          bool   `json:"no_color,omitempty"`
}

// Default returns a config with all defaults applied.
func Default() *Config {
	return &Config{
		Version:         "1",
		SuggestionLimit: 5,
	}
}

// LoadConfig reads ~/.lifexp/config.json. A missing file is not an error;
// defaults are returned instead.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = 5
	}

	return cfg, nil
}

// SaveConfig writes config.json to ~/.lifexp
func SaveConfig(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".lifexp", "config.json"), nil
}
