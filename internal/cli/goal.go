package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Track personal goals",
	Long:  "Create count-based personal goals and bump them as you make progress",
}

var goalAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a goal with a target count",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		dimension, _ := cmd.Flags().GetString("dimension")
		target, _ := cmd.Flags().GetInt("target")

		goal, err := wire.GoalService().Add(cmd.Context(), title, dimension, target)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Created goal %s: %s (0/%d)\n", goal.ID, goal.Title, goal.TargetCount)
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals, incomplete first",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := wire.GoalService().List(cmd.Context())
		if err != nil {
			return err
		}

		if len(goals) == 0 {
			fmt.Println("No goals yet")
			return nil
		}

		fmt.Println()
		for _, g := range goals {
			mark := "[ ]"
			if g.Completed {
				mark = "[x]"
			}
			dim := ""
			if g.Dimension != "" {
				dim = fmt.Sprintf(" (%s)", g.Dimension)
			}
			fmt.Printf("%s %s — %s%s %d/%d\n", mark, g.ID, g.Title, dim, g.CurrentCount, g.TargetCount)
		}
		fmt.Println()

		return nil
	},
}

var goalBumpCmd = &cobra.Command{
	Use:   "bump [goal-id]",
	Short: "Increment a goal's counter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := wire.GoalService().Bump(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if goal.Completed {
			fmt.Printf("✓ Goal %s complete: %s (%d/%d)\n", goal.ID, goal.Title, goal.CurrentCount, goal.TargetCount)
		} else {
			fmt.Printf("✓ Goal %s: %d/%d\n", goal.ID, goal.CurrentCount, goal.TargetCount)
		}
		return nil
	},
}

// GoalCmd returns the goal command
func GoalCmd() *cobra.Command {
	goalAddCmd.Flags().StringP("dimension", "d", "", "Life dimension the goal belongs to")
	goalAddCmd.Flags().IntP("target", "t", 1, "Target count to reach")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalBumpCmd)
	return goalCmd
}
