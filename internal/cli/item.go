package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage checklist items",
	Long:  "List and toggle checklist items, habits, tasks, and quests",
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items with completion state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.StatusAdapter().ListItems(cmd.Context())
	},
}

var itemToggleCmd = &cobra.Command{
	Use:   "toggle [item-id]",
	Short: "Toggle an item's completion",
	Long: `Toggle an item's completion state.

Completing an item awards its XP, counts as streak activity for today,
and may unlock achievements. Toggling again takes the completion back.

Examples:
  lifexp item toggle mind-read-20
  lifexp item toggle quest-foundations-wake`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.StatusAdapter().Toggle(cmd.Context(), args[0])
	},
}

// ItemCmd returns the item command
func ItemCmd() *cobra.Command {
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemToggleCmd)
	return itemCmd
}
