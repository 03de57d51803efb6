//go:build darwin

package terminal

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// terminalApps are the process names treated as "the terminal" when
// checking focus. Notifications are suppressed while one of these is
// frontmost, since the user is already looking at the session.
var terminalApps = map[string]struct{}{
	"Terminal":  {},
	"iTerm2":    {},
	"Warp":      {},
	"Alacritty": {},
	"kitty":     {},
	"WezTerm":   {},
	"Ghostty":   {},
}

// Focused asks System Events for the frontmost process. The short timeout
// keeps a hung osascript from delaying the hook; on any failure the
// terminal is reported as not focused, so the notification still goes out.
func Focused() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "osascript", "-e",
		`tell application "System Events" to get name of first process whose frontmost is true`).Output()
	if err != nil {
		return false
	}

	_, ok := terminalApps[strings.TrimSpace(string(out))]
	return ok
}
