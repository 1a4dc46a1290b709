// Package config provides configuration loading for ledit using TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Editor settings
type Editor struct {
	MaxLen int    `toml:"maxLen"` // line length cap; -1 means unbounded
	Prompt string `toml:"prompt"`
}

// Config is the top-level configuration.
type Config struct {
	Editor Editor `toml:"editor"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: Editor{
			MaxLen: -1,
			Prompt: "> ",
		},
	}
}

// DefaultPath returns the per-user configuration file location, or ""
// when the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ledit", "config.toml")
}

// Load reads the configuration at path. A missing file is not an
// error; defaults are returned, with any fields present in the file
// overriding them.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
