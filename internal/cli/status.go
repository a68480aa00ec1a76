package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streaks, and dimension standings",
		Long: `Display the current progress snapshot:
- Level and total XP with progress toward the next level
- Current and best streak
- Per-dimension XP standings with the weakest dimension marked

This provides a focused view of "where am I right now?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.StatusAdapter().Show(cmd.Context())
		},
	}
}
