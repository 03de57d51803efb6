// Package pause manages the pause marker: a sentinel file whose presence
// mutes sounds and desktop notifications without touching the config.
package pause

import (
	"os"
	"path/filepath"
)

// MarkerFileName is the sentinel file inside the peon directory.
const MarkerFileName = ".paused"

func markerPath(peonDir string) string {
	return filepath.Join(peonDir, MarkerFileName)
}

// Paused reports whether the pause marker is present.
func Paused(peonDir string) bool {
	_, err := os.Stat(markerPath(peonDir))
	return err == nil
}

// Pause creates the pause marker.
func Pause(peonDir string) error {
	f, err := os.Create(markerPath(peonDir))
	if err != nil {
		return err
	}
	return f.Close()
}

// Resume removes the pause marker. Resuming when not paused is a no-op.
func Resume(peonDir string) error {
	err := os.Remove(markerPath(peonDir))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Toggle flips the marker and reports the resulting paused status.
func Toggle(peonDir string) (paused bool, err error) {
	if Paused(peonDir) {
		return false, Resume(peonDir)
	}
	return true, Pause(peonDir)
}
