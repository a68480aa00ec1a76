package config

import "testing"

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SuggestionLimit != 5 {
		t.Errorf("SuggestionLimit = %d, want default 5", cfg.SuggestionLimit)
	}
	if cfg.Version != "1" {
		t.Errorf("Version = %s, want 1", cfg.Version)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.DisplayName = "Ada"
	cfg.SuggestionLimit = 8
	cfg.ShowSecretBadges = true

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.DisplayName != "Ada" || loaded.SuggestionLimit != 8 || !loaded.ShowSecretBadges {
		t.Errorf("loaded = %+v, want saved values", loaded)
	}
}

func TestLoadConfigClampsSuggestionLimit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.SuggestionLimit = -3
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.SuggestionLimit != 5 {
		t.Errorf("SuggestionLimit = %d, want clamped to 5", loaded.SuggestionLimit)
	}
}
