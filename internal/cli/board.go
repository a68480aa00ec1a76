package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/config"
	"github.com/example/lifexp/internal/wire"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the suggestion board",
		Long: `Show ranked next-step suggestions from the remaining items.

Items touching your weakest dimension rank first (marked with *), then
dailies before habits before tasks before quests, then higher XP, then
shorter estimated time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				if cfg, err := config.LoadConfig(); err == nil {
					limit = cfg.SuggestionLimit
				}
			}
			return wire.StatusAdapter().Board(cmd.Context(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Maximum number of suggestions")

	return cmd
}
