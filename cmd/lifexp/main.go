package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/cli"
	"github.com/example/lifexp/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "lifexp",
		Short:   "Life XP - level up your real life",
		Version: version.String(),
		Long: `Life XP is a CLI tool that turns self-improvement into a game.
Complete items and quests to earn XP across six life dimensions, keep
streaks alive, unlock achievements, and work through story arcs.`,
	}

	// Core progress commands
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.BoardCmd())
	rootCmd.AddCommand(cli.ItemCmd())
	rootCmd.AddCommand(cli.ArcCmd())
	rootCmd.AddCommand(cli.AchievementCmd())

	// Tracker commands
	rootCmd.AddCommand(cli.ChallengeCmd())
	rootCmd.AddCommand(cli.MoodCmd())
	rootCmd.AddCommand(cli.FocusCmd())
	rootCmd.AddCommand(cli.JournalCmd())
	rootCmd.AddCommand(cli.GoalCmd())
	rootCmd.AddCommand(cli.SkillCmd())
	rootCmd.AddCommand(cli.ReviewCmd())

	// Maintenance
	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.ResetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
