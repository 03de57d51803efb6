//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

// darwinSender renders notifications with osascript.
type darwinSender struct {
	available bool
}

func newDarwinSender() Sender {
	return &darwinSender{available: toolAvailable("osascript")}
}

func newLinuxSender() Sender   { return &noopSender{} }
func newWindowsSender() Sender { return &noopSender{} }

// Send shows a Notification Center banner. macOS picks its own styling, so
// Color is ignored here.
func (s *darwinSender) Send(n Notification) error {
	if !s.available {
		return nil
	}
	script := fmt.Sprintf("display notification %q with title %q", n.Message, n.Title)
	return exec.Command("osascript", "-e", script).Run()
}

func (s *darwinSender) Available() bool {
	return s.available
}
