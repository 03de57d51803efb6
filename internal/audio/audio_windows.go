//go:build windows

package audio

func playPlatform(file string, volume float64) {
	start("powershell", "-NoProfile", "-NonInteractive", "-Command",
		mediaPlayerScript(file, volume))
}
