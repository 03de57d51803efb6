// Package testutil provides test fixtures for peon-ping tests: temporary
// peon directories, sound packs, and hook payloads.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TempPeonDir creates an isolated peon directory and points
// CLAUDE_PEON_DIR at it for the duration of the test.
func TempPeonDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CLAUDE_PEON_DIR", dir)
	return dir
}

// WriteConfig writes raw JSON as the directory's config.json.
func WriteConfig(t *testing.T, peonDir, rawJSON string) {
	t.Helper()
	path := filepath.Join(peonDir, "config.json")
	if err := os.WriteFile(path, []byte(rawJSON), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

// WritePack creates a pack directory with a manifest listing the given
// sound files per category, and touches each sound file so existence
// checks pass.
func WritePack(t *testing.T, peonDir, packName string, categories map[string][]string) {
	t.Helper()

	packDir := filepath.Join(peonDir, "packs", packName)
	soundsDir := filepath.Join(packDir, "sounds")
	if err := os.MkdirAll(soundsDir, 0755); err != nil {
		t.Fatalf("creating pack directory: %v", err)
	}

	manifest := map[string]interface{}{
		"name":         packName,
		"display_name": packName + " display",
	}
	cats := map[string]interface{}{}
	for category, files := range categories {
		sounds := make([]map[string]string, 0, len(files))
		for _, f := range files {
			sounds = append(sounds, map[string]string{"file": f})
			soundPath := filepath.Join(soundsDir, f)
			if err := os.WriteFile(soundPath, []byte("RIFF"), 0644); err != nil {
				t.Fatalf("writing sound file: %v", err)
			}
		}
		cats[category] = map[string]interface{}{"sounds": sounds}
	}
	manifest["categories"] = cats

	data, err := json.Marshal(manifest)
	if err != nil {
		t.Fatalf("marshaling manifest: %v", err)
	}
	if err := os.WriteFile(filepath.Join(packDir, "manifest.json"), data, 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
}

// HookPayload builds a hook JSON payload from the given fields.
func HookPayload(t *testing.T, fields map[string]string) []byte {
	t.Helper()
	data, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("marshaling payload: %v", err)
	}
	return data
}

// ReadState returns the raw persisted state document, or "" when no state
// file exists.
func ReadState(t *testing.T, peonDir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(peonDir, ".state.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("reading state: %v", err)
	}
	return string(data)
}
