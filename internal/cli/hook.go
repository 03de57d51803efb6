package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tonyyont/peon-ping/internal/audio"
	"github.com/tonyyont/peon-ping/internal/config"
	"github.com/tonyyont/peon-ping/internal/engine"
	"github.com/tonyyont/peon-ping/internal/hook"
	"github.com/tonyyont/peon-ping/internal/notify"
	"github.com/tonyyont/peon-ping/internal/pack"
	"github.com/tonyyont/peon-ping/internal/pause"
	"github.com/tonyyont/peon-ping/internal/platform"
	"github.com/tonyyont/peon-ping/internal/state"
	"github.com/tonyyont/peon-ping/internal/terminal"
	"github.com/tonyyont/peon-ping/internal/update"
)

// installCommand is what the update notice tells the user to run. Native
// Windows has no bash, so the installer runs through Python there.
func installCommand() string {
	return installCommandFor(platform.Name())
}

func installCommandFor(platformName string) string {
	if platformName == "windows" {
		return "python install.py"
	}
	return "curl -fsSL https://raw.githubusercontent.com/tonyyont/peon-ping/main/install.sh | bash"
}

// runHook handles one hook invocation end to end: parse the event, run the
// decision engine, then fan out the side effects (tab title, sound,
// notification). It always exits zero — a broken hook must never fail the
// host's hook pipeline.
func runHook(cmd *cobra.Command, _ []string) error {
	// Hook runners pipe the event on stdin; a terminal there means a
	// human typed `peon` and wants help, not a blocking read.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return cmd.Help()
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	ev, err := hook.Parse(raw)
	if err != nil || ev.Name == "" {
		return nil
	}

	peonDir := config.Dir()
	cfg := config.Load(peonDir)
	paused := pause.Paused(peonDir)
	store := state.Open(peonDir)

	eng := engine.New(cfg, store, pack.NewLibrary(peonDir), paused)
	d := eng.Decide(ev)
	if d == nil {
		return nil
	}

	if ev.Name == hook.SessionStart {
		sessionStartExtras(cmd.ErrOrStderr(), peonDir, paused)
	}

	title := d.Marker + d.Project + ": " + d.Status
	if d.Status != "" {
		terminal.SetTitle(cmd.OutOrStdout(), title)
	}

	if d.SoundFile != "" {
		if _, err := os.Stat(d.SoundFile); err == nil {
			audio.Play(d.SoundFile, cfg.Volume)
		}
	}

	// The notification render is the only side effect the hook waits
	// for, and only up to the handler's timeout. Skipped when the
	// terminal is frontmost: the user is already looking at it.
	if d.Notify && !paused && !terminal.Focused() {
		notify.NewHandler(notify.DefaultTimeout).Deliver(notify.Notification{
			Title:   title,
			Message: d.Message,
			Color:   d.NotifyColor,
		})
	}

	return nil
}

// sessionStartExtras handles the once-per-session chores: kick off the
// daily update check, surface a pending update notice, and remind the user
// when sounds are paused.
func sessionStartExtras(stderr io.Writer, peonDir string, paused bool) {
	checker := update.NewChecker(peonDir, 0)
	checker.MaybeCheckAsync()

	if current, latest, ok := checker.Notice(); ok {
		fmt.Fprintf(stderr, "peon-ping update available: %s → %s — run: %s\n",
			current, latest, installCommand())
	}

	if paused {
		fmt.Fprintln(stderr, "peon-ping: sounds paused — run 'peon resume' or '/peon-ping-toggle' to unpause")
	}
}
