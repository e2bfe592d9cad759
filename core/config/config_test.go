package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"example.com/frame-time/core/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frametime.toml")
	err := os.WriteFile(path, []byte(contents), 0644)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if !cfg.Enabled || cfg.Debug || !cfg.MetricsEnabled {
		t.Errorf("Default = %+v, want enabled, no debug, metrics enabled", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
enabled = false
debug = true
metrics_enabled = false
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.Enabled || !cfg.Debug || cfg.MetricsEnabled {
		t.Errorf("Load = %+v, want disabled, debug, no metrics", cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
debug = true
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}
	if !cfg.Enabled || !cfg.Debug || !cfg.MetricsEnabled {
		t.Errorf("Load = %+v, want defaults with debug set", cfg)
	}
}

func TestLoadUnknownField(t *testing.T) {
	path := writeConfig(t, `
enabled = true
frame_rate = 60
`)
	_, err := config.Load(path)
	if err == nil {
		t.Error("Load accepted an unknown field")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("Load of missing file succeeded")
	}
}
