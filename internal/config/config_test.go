package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SUMAS_DB", "")
	t.Setenv("SUMAS_API_URL", "")
	t.Setenv("SUMAS_PLAYER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Player != "invitado" {
		t.Errorf("Player = %q, want invitado", cfg.Player)
	}
	if cfg.DBPath != "" || cfg.APIURL != "" {
		t.Errorf("expected empty paths, got %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SUMAS_DB", "")
	t.Setenv("SUMAS_API_URL", "")
	t.Setenv("SUMAS_PLAYER", "")

	cfgDir := filepath.Join(dir, "sumasrestas")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "db_path: /tmp/test.db\napi_url: http://localhost:8000\nplayer: lucia\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.APIURL != "http://localhost:8000" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Player != "lucia" {
		t.Errorf("Player = %q", cfg.Player)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "sumasrestas")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("player: lucia\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SUMAS_PLAYER", "mateo")
	t.Setenv("SUMAS_DB", "")
	t.Setenv("SUMAS_API_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Player != "mateo" {
		t.Errorf("Player = %q, want env value mateo", cfg.Player)
	}
}
