package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Game.Lang != nil || cfg.Game.DurationSec != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `[game]
lang = "de"
duration = 30.5
tick-ms = 20
focus-weak = true

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Game.Lang == nil || *cfg.Game.Lang != "de" {
		t.Fatalf("unexpected lang: %v", cfg.Game.Lang)
	}
	if cfg.Game.DurationSec == nil || *cfg.Game.DurationSec != 30.5 {
		t.Fatalf("unexpected duration: %v", cfg.Game.DurationSec)
	}
	if cfg.Game.TickMs == nil || *cfg.Game.TickMs != 20 {
		t.Fatalf("unexpected tick: %v", cfg.Game.TickMs)
	}
	if cfg.Game.FocusWeak == nil || !*cfg.Game.FocusWeak {
		t.Fatalf("expected focus-weak")
	}
	if cfg.Game.MissFlashMs != nil {
		t.Fatalf("expected unset miss flash")
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nwords = 25\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "game.words") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "wordrush", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "wordrush", "wordrush.db") {
		t.Fatalf("unexpected db path %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/tmp/data", "wordrush", "wordrush.log") {
		t.Fatalf("unexpected log path %s", got)
	}
}
