//go:build linux

package audio

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/tonyyont/peon-ping/internal/platform"
)

func playPlatform(file string, volume float64) {
	if platform.IsWSL() {
		start("powershell.exe", "-NoProfile", "-NonInteractive", "-Command",
			mediaPlayerScript(toWindowsPath(file), volume))
		return
	}

	// paplay volume is linear 0..65536.
	start("paplay", fmt.Sprintf("--volume=%d", int(volume*65536)), file)
}

// toWindowsPath converts a WSL path for the Windows-side player.
func toWindowsPath(linuxPath string) string {
	out, err := exec.Command("wslpath", "-w", linuxPath).Output()
	if err != nil {
		return linuxPath
	}
	return strings.TrimSpace(string(out))
}
