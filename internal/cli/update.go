package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tonyyont/peon-ping/internal/config"
	"github.com/tonyyont/peon-ping/internal/terminal"
	"github.com/tonyyont/peon-ping/internal/update"
)

// updateHTTPTimeout is more generous than the hook-side timeout: the user
// asked for this check and is waiting on it.
const updateHTTPTimeout = 30 * time.Second

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer peon-ping release",
	Long: `Check for a newer peon-ping release.

This only checks and reports; installing the update runs the installer
script, which also refreshes the bundled sound packs.`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	checker := update.NewChecker(config.Dir(), updateHTTPTimeout)

	var spin *spinner.Spinner
	if terminal.Interactive() {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Writer = os.Stderr
		spin.Suffix = " Checking for updates..."
		spin.Start()
	}

	check, err := checker.Check(cmd.Context())
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return fmt.Errorf("checking for update: %w", err)
	}

	if check.CurrentVersion == "" {
		fmt.Fprintf(out, "%s Installed version unknown; latest is %s\n",
			yellow("!"), check.LatestVersion)
		return nil
	}

	if !check.UpdateAvailable {
		fmt.Fprintf(out, "%s Already running the latest version (%s)\n",
			green("✓"), check.CurrentVersion)
		return nil
	}

	fmt.Fprintf(out, "%s New version available: %s → %s\n",
		green("→"), check.CurrentVersion, green(check.LatestVersion))
	fmt.Fprintf(out, "Run: %s\n", installCommand())
	return nil
}
