package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonyyont/peon-ping/internal/config"
	"github.com/tonyyont/peon-ping/internal/pause"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Mute sounds and notifications",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := pause.Pause(config.Dir()); err != nil {
			return fmt.Errorf("creating pause marker: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: sounds paused")
		return nil
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Unmute sounds and notifications",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := pause.Resume(config.Dir()); err != nil {
			return fmt.Errorf("removing pause marker: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: sounds resumed")
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle mute on or off",
	RunE: func(cmd *cobra.Command, _ []string) error {
		paused, err := pause.Toggle(config.Dir())
		if err != nil {
			return fmt.Errorf("toggling pause marker: %w", err)
		}
		if paused {
			fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: sounds paused")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: sounds resumed")
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether sounds are paused or active",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if pause.Paused(config.Dir()) {
			fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: paused")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: active")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pauseCmd, resumeCmd, toggleCmd, statusCmd)
}
