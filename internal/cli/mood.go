package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log and review mood",
	Long:  "Track one mood score (1-5) per day with an optional note",
}

var moodLogCmd = &cobra.Command{
	Use:   "log [score]",
	Short: "Log today's mood (1-5)",
	Long: `Log today's mood on a 1-5 scale. Logging twice in one day replaces
the earlier entry.

Examples:
  lifexp mood log 4
  lifexp mood log 2 --note "rough morning"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("score must be a number 1-5: %q", args[0])
		}
		note, _ := cmd.Flags().GetString("note")

		entry, err := wire.MoodService().Log(cmd.Context(), score, note)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Mood logged for %s: %d/5\n", entry.Day, entry.Score)
		return nil
	},
}

var moodHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent mood entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		entries, err := wire.MoodService().History(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No mood entries yet")
			return nil
		}

		fmt.Println()
		for _, e := range entries {
			note := ""
			if e.Note != "" {
				note = " — " + e.Note
			}
			fmt.Printf("%s  %d/5%s\n", e.Day, e.Score, note)
		}
		fmt.Println()

		return nil
	},
}

var moodSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the last seven days",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := wire.MoodService().Summary(cmd.Context())
		if err != nil {
			return err
		}

		if summary.Entries == 0 {
			fmt.Println("No mood entries yet")
			return nil
		}

		fmt.Printf("\nEntries: %d\n", summary.Entries)
		fmt.Printf("7-day average: %.1f/5\n", summary.WeekAverage)
		if summary.LatestDay != "" {
			fmt.Printf("Latest: %s (%d/5)\n", summary.LatestDay, summary.LatestScore)
		}
		if !summary.HasMoodToday {
			fmt.Println("No entry for today yet")
		}
		fmt.Println()

		return nil
	},
}

// MoodCmd returns the mood command
func MoodCmd() *cobra.Command {
	moodLogCmd.Flags().StringP("note", "m", "", "Optional note for the entry")
	moodHistoryCmd.Flags().IntP("limit", "n", 14, "Maximum entries to show")

	moodCmd.AddCommand(moodLogCmd)
	moodCmd.AddCommand(moodHistoryCmd)
	moodCmd.AddCommand(moodSummaryCmd)
	return moodCmd
}
