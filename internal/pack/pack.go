// Package pack reads sound pack manifests and selects sounds to play.
//
// A pack lives in <peon dir>/packs/<name>/ with a manifest.json describing
// its categories and a sounds/ directory holding the files. Packs are
// external read-only data: a missing or malformed manifest simply means no
// sound is selected.
package pack

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
)

// Manifest describes one sound pack.
type Manifest struct {
	Name        string              `json:"name"`
	DisplayName string              `json:"display_name"`
	Categories  map[string]Category `json:"categories"`
}

// Category holds the sounds for one category.
type Category struct {
	Sounds []Sound `json:"sounds"`
}

// Sound is a single sound entry. Line is the spoken voice line, kept for
// pack listings and debugging.
type Sound struct {
	File string `json:"file"`
	Line string `json:"line"`
}

// Display returns the manifest's display name, falling back to its name.
func (m Manifest) Display() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.Name
}

// Library resolves pack names against the packs directory of one peon
// installation.
type Library struct {
	root string
}

// NewLibrary returns a Library rooted at peonDir's packs directory.
func NewLibrary(peonDir string) *Library {
	return &Library{root: filepath.Join(peonDir, "packs")}
}

// Manifest loads the manifest for a named pack.
func (l *Library) Manifest(packName string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(l.root, packName, "manifest.json"))
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// List returns the manifests of all installed packs, sorted by name.
// Packs with unreadable manifests are skipped. A pack whose manifest omits
// a name takes its directory name.
func (l *Library) List() ([]Manifest, error) {
	matches, err := filepath.Glob(filepath.Join(l.root, "*", "manifest.json"))
	if err != nil {
		return nil, err
	}

	var packs []Manifest
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var m Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		if m.Name == "" {
			m.Name = filepath.Base(filepath.Dir(path))
		}
		packs = append(packs, m)
	}

	sort.Slice(packs, func(i, j int) bool { return packs[i].Name < packs[j].Name })
	return packs, nil
}

// SoundPath returns the full path of a sound file inside a pack.
func (l *Library) SoundPath(packName, file string) string {
	return filepath.Join(l.root, packName, "sounds", file)
}

// Select picks one sound for a category from a pack, avoiding an immediate
// repeat of lastPlayed when the category has more than one sound. It
// returns the full file path and the chosen filename, or empty strings when
// the pack, category, or sound list is missing — none of which is an error.
func (l *Library) Select(packName, category, lastPlayed string) (path, file string) {
	manifest, err := l.Manifest(packName)
	if err != nil {
		return "", ""
	}

	sounds := manifest.Categories[category].Sounds
	if len(sounds) == 0 {
		return "", ""
	}

	candidates := sounds
	if len(sounds) > 1 {
		filtered := make([]Sound, 0, len(sounds))
		for _, s := range sounds {
			if s.File != lastPlayed {
				filtered = append(filtered, s)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	pick := candidates[rand.Intn(len(candidates))]
	return l.SoundPath(packName, pick.File), pick.File
}

// PickRotation resolves the active pack for a session under rotation:
// a pinned pack still in the rotation is reused, anything else triggers a
// fresh uniform pick. repinned reports whether the caller should store the
// returned pack as the session's new pin.
func PickRotation(rotation []string, pinned string) (packName string, repinned bool) {
	for _, name := range rotation {
		if name == pinned {
			return pinned, false
		}
	}
	return rotation[rand.Intn(len(rotation))], true
}
