package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != DefaultOutputFormat {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutputFormat)
	}
	if !cfg.Manifest.Enabled {
		t.Error("Manifest.Enabled should default to true")
	}
	if cfg.Manifest.RetentionDays != DefaultRetentionDays {
		t.Errorf("RetentionDays = %d, want %d", cfg.Manifest.RetentionDays, DefaultRetentionDays)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, DefaultLogLevel)
	}
}

func TestLoad_FromFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "scrub")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "output: json\nkeep:\n  - \"*.log\"\nmanifest:\n  retention_days: 7\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Output = %q, want %q", cfg.Output, "json")
	}
	if len(cfg.Keep) != 1 || cfg.Keep[0] != "*.log" {
		t.Errorf("Keep = %v, want [*.log]", cfg.Keep)
	}
	if cfg.Manifest.RetentionDays != 7 {
		t.Errorf("RetentionDays = %d, want 7", cfg.Manifest.RetentionDays)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/projects")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	want := filepath.Join(home, "projects")
	if got != want {
		t.Errorf("ExpandPath(~/projects) = %q, want %q", got, want)
	}

	got, err = ExpandPath("/absolute/path")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/absolute/path" {
		t.Errorf("ExpandPath should leave absolute paths untouched, got %q", got)
	}
}
