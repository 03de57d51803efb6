// Package terminal handles the hook's interaction with the hosting
// terminal: retitling the tab and probing whether the terminal currently
// has the user's attention.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// SetTitle writes the OSC 0 escape that retitles the hosting tab or
// window. The escape goes to the hook's stdout, which Claude Code passes
// through to the terminal.
func SetTitle(w io.Writer, title string) {
	fmt.Fprintf(w, "\033]0;%s\007", title)
}

// Interactive reports whether the process is attached to a terminal.
// Stdout is checked before stderr and stdin because hook processes
// typically run with stdin piped while stdout stays on the terminal.
func Interactive() bool {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return true
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}
