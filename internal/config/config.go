// Package config loads user preferences for peon-ping.
//
// Preferences live in <peon dir>/config.json and can be overridden with
// PEON_* environment variables. Every key is optional and loading never
// fails: a missing, malformed, or out-of-range config degrades to the
// documented defaults so a broken config file can never break the hook.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the preferences file inside the peon directory.
const ConfigFileName = "config.json"

// Config holds the recognized user preferences. Unknown keys in the config
// file are ignored.
type Config struct {
	Enabled              bool            `koanf:"enabled"`
	Volume               float64         `koanf:"volume" validate:"min=0,max=1"`
	ActivePack           string          `koanf:"active_pack" validate:"required"`
	PackRotation         []string        `koanf:"pack_rotation"`
	AnnoyedThreshold     int             `koanf:"annoyed_threshold" validate:"min=1"`
	AnnoyedWindowSeconds float64         `koanf:"annoyed_window_seconds" validate:"gt=0"`
	Categories           map[string]bool `koanf:"categories"`
}

// CategoryEnabled reports whether a sound category is enabled. Categories
// absent from the config default to enabled.
func (c Config) CategoryEnabled(category string) bool {
	enabled, ok := c.Categories[category]
	if !ok {
		return true
	}
	return enabled
}

// Load reads preferences from peonDir.
// Priority: environment variables > config.json > defaults.
// Any failure along the way degrades to Default(); Load never errors.
func Load(peonDir string) Config {
	k := koanf.New(".")

	for key, value := range defaults() {
		k.Set(key, value)
	}

	configPath := filepath.Join(peonDir, ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), koanfjson.Parser()); err != nil {
			return Default()
		}
	}

	k.Load(env.Provider("PEON_", ".", envTransform), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Default()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Default()
	}

	return cfg
}

// SetActivePack rewrites active_pack in config.json, preserving any other
// keys already present (including keys this version does not recognize).
func SetActivePack(peonDir, packName string) error {
	configPath := filepath.Join(peonDir, ConfigFileName)

	raw := map[string]interface{}{}
	if data, err := os.ReadFile(configPath); err == nil {
		_ = json.Unmarshal(data, &raw)
	}
	raw["active_pack"] = packName

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// envTransform converts environment variable names to config keys.
// Example: PEON_ACTIVE_PACK -> active_pack
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PEON_"))
}
