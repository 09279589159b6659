package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadDefaults verifies a missing config file yields defaults
// rather than an error.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COLLAB_SERVER_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want %q", cfg.ServerURL, DefaultServerURL)
	}
	if cfg.Theme != "default" {
		t.Errorf("Theme = %q, want \"default\"", cfg.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("COLLAB_SERVER_URL", "")

	path := filepath.Join(dir, "collab", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("server_url: https://collab.example.org\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "https://collab.example.org" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	// Unset values still get defaults.
	if cfg.Theme != "default" {
		t.Errorf("Theme = %q, want \"default\"", cfg.Theme)
	}
}

// TestEnvOverridesFile verifies COLLAB_SERVER_URL wins over the file.
func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "collab", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("server_url: https://from-file.example.org\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("COLLAB_SERVER_URL", "https://from-env.example.org")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "https://from-env.example.org" {
		t.Errorf("ServerURL = %q, want env value", cfg.ServerURL)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COLLAB_SERVER_URL", "")

	cfg := &Config{ServerURL: "https://saved.example.org", Theme: "dark"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ServerURL != cfg.ServerURL || loaded.Theme != cfg.Theme {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}
