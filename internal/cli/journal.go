package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Keep a journal",
}

var journalAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a journal entry",
	Long: `Add a journal entry with an optional body and mood score.

Examples:
  lifexp journal add "Shipped the thing"
  lifexp journal add "Long day" --body "..." --mood 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		body, _ := cmd.Flags().GetString("body")
		mood, _ := cmd.Flags().GetInt("mood")

		entry, err := wire.JournalService().Add(cmd.Context(), title, body, mood)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Journal entry %s added\n", entry.ID)
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		entries, err := wire.JournalService().List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No journal entries yet")
			return nil
		}

		fmt.Println()
		for _, e := range entries {
			mood := ""
			if e.MoodScore > 0 {
				mood = fmt.Sprintf(" (mood %d/5)", e.MoodScore)
			}
			fmt.Printf("%s  %s — %s%s\n", e.ID, e.CreatedAt.Format("2006-01-02 15:04"), e.Title, mood)
			if e.Body != "" {
				fmt.Printf("    %s\n", e.Body)
			}
		}
		fmt.Println()

		return nil
	},
}

// JournalCmd returns the journal command
func JournalCmd() *cobra.Command {
	journalAddCmd.Flags().StringP("body", "b", "", "Entry body text")
	journalAddCmd.Flags().Int("mood", 0, "Optional mood score 1-5")
	journalListCmd.Flags().IntP("limit", "n", 10, "Maximum entries to show")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	return journalCmd
}
