//go:build darwin

package audio

import "fmt"

func playPlatform(file string, volume float64) {
	start("afplay", "-v", fmt.Sprintf("%g", volume), file)
}
