package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/wire"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	var scope string
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset progress data",
		Long: `Reset a slice of progress data.

Scopes:
  all      completions, streaks, and arc start dates
  arcs     arc start dates plus quest completions in those arcs
  streaks  current/best streak and last active day
  stats    completions only (streaks and arc dates survive)

Examples:
  lifexp reset --scope streaks
  lifexp reset --scope all --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resetScope := primary.ResetScope(scope)
			switch resetScope {
			case primary.ResetScopeAll, primary.ResetScopeArcs, primary.ResetScopeStreaks, primary.ResetScopeStats:
			default:
				return fmt.Errorf("unknown reset scope: %s (want all, arcs, streaks, or stats)", scope)
			}

			if !force {
				fmt.Printf("Reset scope %q cannot be undone. Continue? [y/N] ", scope)
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Println("Aborted")
					return nil
				}
			}

			if err := wire.ProgressService().Reset(cmd.Context(), resetScope); err != nil {
				return err
			}

			fmt.Printf("✓ Reset complete (scope: %s)\n", scope)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scope, "scope", "s", "all", "What to reset: all, arcs, streaks, or stats")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
