package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() failed on a missing file: %v", err)
	}
	if cfg.Game.Name != nil || cfg.Game.Top != nil || cfg.Game.Corpus != nil {
		t.Fatalf("missing file produced non-empty config: %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("LoadConfig(\"\") succeeded, want error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[game]
name = "지민"
top = 25
corpus = "/tmp/custom.toml"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Game.Name == nil || *cfg.Game.Name != "지민" {
		t.Fatalf("Name = %v", cfg.Game.Name)
	}
	if cfg.Game.Top == nil || *cfg.Game.Top != 25 {
		t.Fatalf("Top = %v", cfg.Game.Top)
	}
	if cfg.Game.Corpus == nil || *cfg.Game.Corpus != "/tmp/custom.toml" {
		t.Fatalf("Corpus = %v", cfg.Game.Corpus)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[game]
top = 5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Game.Name != nil {
		t.Fatalf("Name = %v, want nil for an unset key", cfg.Game.Name)
	}
	if cfg.Game.Top == nil || *cfg.Game.Top != 5 {
		t.Fatalf("Top = %v", cfg.Game.Top)
	}
}

func TestLoadConfigRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\nname="), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("LoadConfig() succeeded on malformed TOML")
	}
}

func TestXDGPathsHonorEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdgconf")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdgdata")

	if got := DefaultConfigPath(); got != "/tmp/xdgconf/lyricbeat/config.toml" {
		t.Fatalf("DefaultConfigPath() = %q", got)
	}
	if got := DefaultCorpusPath(); got != "/tmp/xdgconf/lyricbeat/lyrics.toml" {
		t.Fatalf("DefaultCorpusPath() = %q", got)
	}
	if got := DefaultDBPath(); got != "/tmp/xdgdata/lyricbeat/lyricbeat.db" {
		t.Fatalf("DefaultDBPath() = %q", got)
	}
}
