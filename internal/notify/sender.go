package notify

import (
	"os/exec"
	"runtime"
)

// Sender renders a notification on one platform.
type Sender interface {
	// Send renders the notification and blocks until the platform tool
	// returns. Callers bound the wait; senders do not.
	Send(n Notification) error

	// Available reports whether this platform can render notifications
	// at all.
	Available() bool
}

// NewSender returns the sender for the current platform, or a no-op sender
// where desktop notifications are not supported.
func NewSender() Sender {
	switch runtime.GOOS {
	case "darwin":
		return newDarwinSender()
	case "linux":
		return newLinuxSender()
	case "windows":
		return newWindowsSender()
	default:
		return &noopSender{}
	}
}

// toolAvailable checks if a command-line tool is available in PATH.
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// noopSender is used on platforms without notification support.
type noopSender struct{}

func (s *noopSender) Send(_ Notification) error { return nil }
func (s *noopSender) Available() bool           { return false }

// popupRGB maps notification colors to the RGB used by the PowerShell
// popup. Unknown colors render red.
func popupRGB(color string) (r, g, b int) {
	switch color {
	case "blue":
		return 30, 80, 180
	case "yellow":
		return 200, 160, 0
	default:
		return 180, 0, 0
	}
}
