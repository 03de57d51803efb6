package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tonyyont/peon-ping/internal/config"
	"github.com/tonyyont/peon-ping/internal/pack"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List installed sound packs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		peonDir := config.Dir()
		cfg := config.Load(peonDir)

		packs, err := pack.NewLibrary(peonDir).List()
		if err != nil {
			return fmt.Errorf("listing packs: %w", err)
		}

		// Color goes on the trailing marker, not the name, so the
		// %-24s column stays aligned.
		activeMark := color.New(color.FgGreen, color.Bold).Sprint(" *")
		for _, p := range packs {
			marker := ""
			if p.Name == cfg.ActivePack {
				marker = activeMark
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %s%s\n", p.Name, p.Display(), marker)
		}
		return nil
	},
}

var packCmd = &cobra.Command{
	Use:   "pack [name]",
	Short: "Switch the active sound pack",
	Long: `Switch the active sound pack.

With a pack name, switches to that pack. Without one, cycles alphabetically
to the next installed pack.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPack,
}

func runPack(cmd *cobra.Command, args []string) error {
	peonDir := config.Dir()
	cfg := config.Load(peonDir)

	packs, err := pack.NewLibrary(peonDir).List()
	if err != nil || len(packs) == 0 {
		return fmt.Errorf("no packs found in %s", peonDir)
	}

	names := make([]string, len(packs))
	displays := make(map[string]string, len(packs))
	for i, p := range packs {
		names[i] = p.Name
		displays[p.Name] = p.Display()
	}

	var target string
	if len(args) == 1 {
		target = args[0]
		if _, ok := displays[target]; !ok {
			return fmt.Errorf("pack %q not found. Available packs: %s",
				target, strings.Join(names, ", "))
		}
	} else {
		// Cycle to the pack after the active one; an active pack that
		// is not installed cycles to the first.
		next := 0
		for i, name := range names {
			if name == cfg.ActivePack {
				next = (i + 1) % len(names)
				break
			}
		}
		target = names[next]
	}

	if err := config.SetActivePack(peonDir, target); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "peon-ping: switched to %s (%s)\n", target, displays[target])
	return nil
}

func init() {
	rootCmd.AddCommand(packsCmd, packCmd)
}
