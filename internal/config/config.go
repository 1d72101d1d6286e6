// Package config loads evmdis settings from an optional JSON file and the
// environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents configuration for the evmdis tool
type Config struct {
	Debug    bool   `json:"debug" jsonschema:"title=Debug,description=Enable debug logging"`
	NoColor  bool   `json:"noColor" jsonschema:"title=No Color,description=Disable listing colorization"`
	Style    string `json:"style,omitempty" jsonschema:"title=Style,description=Chroma style used for listings,default=evm-dark"`
	Width    int    `json:"width,omitempty" jsonschema:"title=Width,description=Word wrap width for rendered summaries,minimum=20"`
	LogLevel string `json:"logLevel,omitempty" jsonschema:"title=Log Level,enum=debug,enum=info,enum=warn,enum=error"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Style:    "evm-dark",
		Width:    80,
		LogLevel: "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/evmdis/config.json or the platform
// equivalent. It returns "" when no config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "evmdis", "config.json")
}

// Load reads path on top of the defaults and then applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("EVMDIS_NO_COLOR"); v != "" {
		c.NoColor = true
	}
	if v := os.Getenv("EVMDIS_STYLE"); v != "" {
		c.Style = v
	}
	if v := os.Getenv("EVMDIS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("EVMDIS_WIDTH"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			c.Width = w
		}
	}
	if c.Debug {
		c.LogLevel = "debug"
	}
}
