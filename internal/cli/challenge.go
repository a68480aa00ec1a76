package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Daily challenges",
	Long:  "Show and complete the three challenges drawn for today",
}

var challengeTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's challenges",
	RunE: func(cmd *cobra.Command, args []string) error {
		views, err := wire.ChallengeService().Today(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load today's challenges: %w", err)
		}

		fmt.Println()
		for _, v := range views {
			mark := "[ ]"
			if v.Completed {
				mark = color.New(color.FgHiGreen).Sprint("[x]")
			}
			fmt.Printf("%s %s — %s (+%d XP, %s)\n", mark, v.ID, v.Title, v.XP, v.Dimension)
		}
		fmt.Println()

		return nil
	},
}

var challengeDoneCmd = &cobra.Command{
	Use:   "done [challenge-id]",
	Short: "Complete one of today's challenges",
	Long: `Complete one of today's challenges by record or template ID.

Completing a challenge counts as streak activity for today.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := wire.ChallengeService().Complete(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Challenge complete: %s (+%d XP)\n", view.Title, view.XP)
		return nil
	},
}

// ChallengeCmd returns the challenge command
func ChallengeCmd() *cobra.Command {
	challengeCmd.AddCommand(challengeTodayCmd)
	challengeCmd.AddCommand(challengeDoneCmd)
	return challengeCmd
}
