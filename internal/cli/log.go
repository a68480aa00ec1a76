package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect the activity log",
	Long:  "The activity log is the append-only audit trail of completions, unlocks, and resets",
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent activity, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		entries, err := wire.ActivityService().List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No activity recorded yet")
			return nil
		}

		fmt.Println()
		for _, e := range entries {
			detail := ""
			if e.Detail != "" {
				detail = " " + e.Detail
			}
			fmt.Printf("%s  %-12s %s/%s%s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Action, e.EntityType, e.EntityID, detail)
		}
		fmt.Println()

		return nil
	},
}

var logPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old activity entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		deleted, err := wire.ActivityService().Prune(cmd.Context(), days)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Pruned %d entries older than %d days\n", deleted, days)
		return nil
	},
}

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	logListCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show")
	logPruneCmd.Flags().Int("days", 90, "Delete entries older than this many days")

	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logPruneCmd)
	return logCmd
}
