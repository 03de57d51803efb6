// Package cli provides the cobra commands for peon-ping: the default hook
// dispatch mode that Claude Code invokes with a JSON event on stdin, plus
// the user-facing pause/resume/pack/update commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "peon",
	Short: "Warcraft Peon voice lines for Claude Code hooks",
	Long: `peon-ping plays themed sound packs and raises desktop notifications for
Claude Code lifecycle events.

Invoked with no arguments it runs in hook mode: it reads one JSON event
from stdin, retitles the terminal tab, and decides whether to play a sound
or notify. Claude Code wires this up during installation; you normally only
run the subcommands.`,
	Example: `  # Mute sounds for a meeting
  peon pause

  # See installed sound packs and the active one
  peon packs

  # Switch packs, or cycle to the next one
  peon pack sc_peasant
  peon pack`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runHook,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
