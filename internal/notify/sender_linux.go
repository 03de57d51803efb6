//go:build linux

package notify

import (
	"os"
	"os/exec"

	"github.com/tonyyont/peon-ping/internal/platform"
)

// linuxSender renders notifications with notify-send, or with the
// PowerShell popup when running under WSL (where notify-send has no
// desktop to land on).
type linuxSender struct {
	wsl       bool
	available bool
}

func newLinuxSender() Sender {
	if platform.IsWSL() {
		return &linuxSender{
			wsl:       true,
			available: toolAvailable("powershell.exe"),
		}
	}
	return &linuxSender{
		available: toolAvailable("notify-send") && hasDisplay(),
	}
}

func newDarwinSender() Sender  { return &noopSender{} }
func newWindowsSender() Sender { return &noopSender{} }

// hasDisplay checks for an X11 or Wayland session.
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func (s *linuxSender) Send(n Notification) error {
	if !s.available {
		return nil
	}

	if s.wsl {
		slotPath, slot := claimPopupSlot()
		defer releasePopupSlot(slotPath)
		script := buildPopupScript(n.Message, n.Color, slot)
		return exec.Command("powershell.exe", "-NoProfile", "-NonInteractive", "-Command", script).Run()
	}

	urgency := "normal"
	if n.Color == "red" {
		urgency = "critical"
	}
	return exec.Command("notify-send", "-u", urgency, n.Title, n.Message).Run()
}

func (s *linuxSender) Available() bool {
	return s.available
}
