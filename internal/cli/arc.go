package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

var arcCmd = &cobra.Command{
	Use:   "arc",
	Short: "Manage story arcs",
	Long:  "List arcs and start working on them (at most two in progress at a time)",
}

var arcListCmd = &cobra.Command{
	Use:   "list",
	Short: "List arcs with chapter progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.StatusAdapter().ListArcs(cmd.Context())
	},
}

var arcStartCmd = &cobra.Command{
	Use:   "start [arc-id]",
	Short: "Start an arc",
	Long: `Start an arc, recording today as its start date.

Starting an already-started arc keeps the original date. A new arc can
only start while fewer than two arcs are in progress.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.StatusAdapter().StartArc(cmd.Context(), args[0])
	},
}

// ArcCmd returns the arc command
func ArcCmd() *cobra.Command {
	arcCmd.AddCommand(arcListCmd)
	arcCmd.AddCommand(arcStartCmd)
	return arcCmd
}
