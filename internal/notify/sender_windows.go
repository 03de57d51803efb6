//go:build windows

package notify

import "os/exec"

// windowsSender renders the PowerShell popup banner.
type windowsSender struct {
	available bool
}

func newWindowsSender() Sender {
	return &windowsSender{available: toolAvailable("powershell")}
}

func newDarwinSender() Sender { return &noopSender{} }
func newLinuxSender() Sender  { return &noopSender{} }

func (s *windowsSender) Send(n Notification) error {
	if !s.available {
		return nil
	}
	slotPath, slot := claimPopupSlot()
	defer releasePopupSlot(slotPath)
	script := buildPopupScript(n.Message, n.Color, slot)
	return exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script).Run()
}

func (s *windowsSender) Available() bool {
	return s.available
}
