package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Weekly reviews",
	Long:  "Record one review per week with a frozen stats snapshot",
}

var reviewAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record this week's review",
	Long: `Record a review for the current week (Monday-based).

A second review in the same week replaces the text but keeps the stats
snapshot taken when the week's review was first recorded.

Examples:
  lifexp review add --wins "Shipped v2" --struggles "Sleep" --intention "Earlier nights"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wins, _ := cmd.Flags().GetString("wins")
		struggles, _ := cmd.Flags().GetString("struggles")
		intention, _ := cmd.Flags().GetString("intention")

		review, err := wire.ReviewService().Add(cmd.Context(), wins, struggles, intention)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Review %s recorded for week of %s (level %d, %d XP)\n",
			review.ID, review.WeekStart, review.Level, review.TotalXP)
		return nil
	},
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weekly reviews, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		reviews, err := wire.ReviewService().List(cmd.Context())
		if err != nil {
			return err
		}

		if len(reviews) == 0 {
			fmt.Println("No reviews yet")
			return nil
		}

		fmt.Println()
		for _, r := range reviews {
			fmt.Printf("%s  week of %s — level %d, %d XP, streak %d, %d items\n",
				r.ID, r.WeekStart, r.Level, r.TotalXP, r.CurrentStreak, r.ItemsCompleted)
			if r.Wins != "" {
				fmt.Printf("    wins: %s\n", r.Wins)
			}
			if r.Struggles != "" {
				fmt.Printf("    struggles: %s\n", r.Struggles)
			}
			if r.Intention != "" {
				fmt.Printf("    intention: %s\n", r.Intention)
			}
		}
		fmt.Println()

		return nil
	},
}

// ReviewCmd returns the review command
func ReviewCmd() *cobra.Command {
	reviewAddCmd.Flags().String("wins", "", "What went well this week")
	reviewAddCmd.Flags().String("struggles", "", "What was hard this week")
	reviewAddCmd.Flags().String("intention", "", "Intention for next week")

	reviewCmd.AddCommand(reviewAddCmd)
	reviewCmd.AddCommand(reviewListCmd)
	return reviewCmd
}
