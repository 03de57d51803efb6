// Package config tests fail-open preference loading: defaults, file and
// environment overrides, and degradation on malformed or invalid config.
// Related: internal/config/config.go
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonyyont/peon-ping/internal/testutil"
)

// readRaw reads config.json back as a raw key map.
func readRaw(dir string) (map[string]interface{}, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, err
	}
	var raw map[string]interface{}
	err = json.Unmarshal(data, &raw)
	return raw, err
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg := Load(t.TempDir())

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0.5, cfg.Volume)
	assert.Equal(t, "peon", cfg.ActivePack)
	assert.Empty(t, cfg.PackRotation)
	assert.Equal(t, 3, cfg.AnnoyedThreshold)
	assert.Equal(t, 10.0, cfg.AnnoyedWindowSeconds)
	assert.True(t, cfg.CategoryEnabled(CategoryGreeting))
	assert.True(t, cfg.CategoryEnabled(CategoryAnnoyed))
}

func TestLoad_FileOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteConfig(t, dir, `{
		"volume": 0.8,
		"active_pack": "sc_peasant",
		"pack_rotation": ["peon", "sc_peasant"],
		"annoyed_threshold": 5,
		"categories": {"greeting": false}
	}`)

	cfg := Load(dir)
	assert.Equal(t, 0.8, cfg.Volume)
	assert.Equal(t, "sc_peasant", cfg.ActivePack)
	assert.Equal(t, []string{"peon", "sc_peasant"}, cfg.PackRotation)
	assert.Equal(t, 5, cfg.AnnoyedThreshold)
	assert.False(t, cfg.CategoryEnabled(CategoryGreeting))
	// Unset keys keep their defaults.
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 10.0, cfg.AnnoyedWindowSeconds)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PEON_VOLUME", "0.25")
	t.Setenv("PEON_ACTIVE_PACK", "dota2_peon")

	dir := t.TempDir()
	testutil.WriteConfig(t, dir, `{"volume": 0.9}`)

	cfg := Load(dir)
	assert.Equal(t, 0.25, cfg.Volume, "environment beats file")
	assert.Equal(t, "dota2_peon", cfg.ActivePack)
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteConfig(t, dir, `{"volume": 0.9, nope`)

	cfg := Load(dir)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"volume above one":  `{"volume": 1.5}`,
		"negative volume":   `{"volume": -0.1}`,
		"zero threshold":    `{"annoyed_threshold": 0}`,
		"negative window":   `{"annoyed_window_seconds": -2}`,
		"empty active pack": `{"active_pack": ""}`,
	}

	for name, raw := range tests {
		raw := raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			testutil.WriteConfig(t, dir, raw)
			assert.Equal(t, Default(), Load(dir), "invalid config degrades to defaults")
		})
	}
}

func TestLoad_UnknownKeysIgnored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteConfig(t, dir, `{"volume": 0.7, "future_option": {"deep": true}}`)

	cfg := Load(dir)
	assert.Equal(t, 0.7, cfg.Volume)
}

func TestCategoryEnabled_UnknownDefaultsTrue(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.True(t, cfg.CategoryEnabled("brand_new_category"))
}

func TestSetActivePack_PreservesOtherKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteConfig(t, dir, `{"volume": 0.7, "custom_key": "kept"}`)

	require.NoError(t, SetActivePack(dir, "sc_peasant"))

	cfg := Load(dir)
	assert.Equal(t, "sc_peasant", cfg.ActivePack)
	assert.Equal(t, 0.7, cfg.Volume)

	// Unrecognized keys survive the rewrite.
	raw, err := readRaw(dir)
	require.NoError(t, err)
	assert.Equal(t, "kept", raw["custom_key"])
}

func TestSetActivePack_NoExistingConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, SetActivePack(dir, "sc_peasant"))
	assert.Equal(t, "sc_peasant", Load(dir).ActivePack)
}

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv("CLAUDE_PEON_DIR", "/custom/peon")
	assert.Equal(t, "/custom/peon", Dir())
}
