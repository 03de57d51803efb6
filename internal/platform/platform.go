// Package platform detects where the hook is running. WSL matters because
// audio and popups must cross into Windows via powershell.exe there.
package platform

import (
	"os"
	"runtime"
	"strings"
	"sync"
)

var wslOnce = sync.OnceValue(func() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
})

// IsWSL reports whether this linux process is running under the Windows
// Subsystem for Linux.
func IsWSL() bool {
	return wslOnce()
}

// Name returns the platform name used in user-facing output: "mac",
// "windows", "wsl", "linux", or "unknown".
func Name() string {
	switch runtime.GOOS {
	case "darwin":
		return "mac"
	case "windows":
		return "windows"
	case "linux":
		if IsWSL() {
			return "wsl"
		}
		return "linux"
	}
	return "unknown"
}
