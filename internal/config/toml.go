// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
	Log  LogConfig  `toml:"log"`
}

// GameConfig maps game-related settings. Nil fields were not set in the file.
type GameConfig struct {
	Lang        *string  `toml:"lang"`
	WordList    *string  `toml:"wordlist"`
	DurationSec *float64 `toml:"duration"`
	TickMs      *int     `toml:"tick-ms"`
	MissFlashMs *int     `toml:"miss-flash-ms"`
	FocusWeak   *bool    `toml:"focus-weak"`
	WeakTop     *int     `toml:"weak-top"`
	WeakFactor  *float64 `toml:"weak-factor"`
	WeakWindow  *int     `toml:"weak-window"`
	NoSave      *bool    `toml:"no-save"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
