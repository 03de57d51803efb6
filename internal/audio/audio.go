// Package audio starts sound playback for hook decisions.
//
// Playback is fire-and-forget: the player process is started detached and
// never awaited, so the hook returns to Claude Code immediately while the
// sound keeps playing. Playback failures are silent — a missing player tool
// just means no sound.
package audio

import (
	"fmt"
	"os/exec"
	"strings"
)

// Play starts playback of file at volume (0..1) and returns immediately.
func Play(file string, volume float64) {
	playPlatform(file, volume)
}

// start launches a player command without waiting for it.
func start(name string, args ...string) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return
	}
	// Detach so process teardown never waits on playback.
	_ = cmd.Process.Release()
}

// mediaPlayerScript builds the PowerShell MediaPlayer one-liner used on
// Windows and WSL. The 200ms pre-roll gives MediaPlayer time to open the
// file; the 3s sleep covers the longest voice lines.
func mediaPlayerScript(windowsPath string, volume float64) string {
	uriPath := strings.ReplaceAll(windowsPath, `\`, "/")
	return fmt.Sprintf(
		"Add-Type -AssemblyName PresentationCore; "+
			"$p = New-Object System.Windows.Media.MediaPlayer; "+
			"$p.Open([Uri]::new('file:///%s')); "+
			"$p.Volume = %g; "+
			"Start-Sleep -Milliseconds 200; "+
			"$p.Play(); "+
			"Start-Sleep -Seconds 3; "+
			"$p.Close()",
		uriPath, volume)
}
