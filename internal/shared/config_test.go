package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Agent.Program != "finnotify" {
			t.Errorf("expected agent program finnotify, got %s", config.Agent.Program)
		}

		if config.Database.Path != "./finance.db" {
			t.Errorf("expected database path ./finance.db, got %s", config.Database.Path)
		}

		if config.Notify.LookaheadDays != 7 {
			t.Errorf("expected lookahead of 7 days, got %d", config.Notify.LookaheadDays)
		}

		if config.Notify.MaxListed != 5 {
			t.Errorf("expected 5 listed payments, got %d", config.Notify.MaxListed)
		}

		if config.Notify.Currency != "£" {
			t.Errorf("expected currency £, got %s", config.Notify.Currency)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "finnotify.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "finnotify.toml")

		testConfig := `[agent]
program = "finnotify-dev"

[database]
path = "/custom/finance.db"
max_open_conns = 3
max_idle_conns = 1

[notify]
lookahead_days = 14
max_listed = 10
currency = "$"
rate_per_second = 1.0
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Agent.Program != "finnotify-dev" {
			t.Errorf("expected agent program finnotify-dev, got %s", config.Agent.Program)
		}

		if config.Database.Path != "/custom/finance.db" {
			t.Errorf("expected database path /custom/finance.db, got %s", config.Database.Path)
		}

		if config.Notify.LookaheadDays != 14 {
			t.Errorf("expected lookahead of 14 days, got %d", config.Notify.LookaheadDays)
		}

		if config.Notify.RatePerSecond != 1.0 {
			t.Errorf("expected rate of 1.0/s, got %v", config.Notify.RatePerSecond)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("loading a missing config should fail")
		}
	})
}
