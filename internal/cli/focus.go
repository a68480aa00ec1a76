package cli

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Focus timer sessions",
	Long:  "Run focus timer sessions and track them against a daily goal",
}

var focusStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Run a focus session countdown",
	Long: `Run a focus session countdown in the terminal.

The work duration comes from the stored settings unless --minutes is
given. Letting the timer run out records a completed session; Ctrl-C
records an abandoned one with the minutes elapsed so far.

Examples:
  lifexp focus start
  lifexp focus start --minutes 15`,
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("minutes")
		if minutes <= 0 {
			settings, err := wire.FocusService().Settings(cmd.Context())
			if err != nil {
				return err
			}
			minutes = settings.WorkMinutes
		}

		fmt.Printf("Focus session: %d minutes. Ctrl-C to abandon.\n", minutes)

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)

		remaining := time.Duration(minutes) * time.Minute
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		completed := true
	countdown:
		for remaining > 0 {
			fmt.Printf("\r  %02d:%02d remaining ", int(remaining.Minutes()), int(remaining.Seconds())%60)
			select {
			case <-ticker.C:
				remaining -= time.Second
			case <-interrupt:
				completed = false
				break countdown
			}
		}
		fmt.Println()

		elapsed := minutes - int(remaining.Minutes())
		if elapsed <= 0 {
			fmt.Println("Session abandoned before the first minute — nothing recorded")
			return nil
		}

		session, err := wire.FocusService().Record(cmd.Context(), elapsed, completed)
		if err != nil {
			return err
		}

		if session.Completed {
			color.New(color.FgHiGreen).Printf("✓ Focus session complete: %d minutes\n", session.Minutes)
		} else {
			fmt.Printf("Session abandoned after %d minute(s) — recorded\n", session.Minutes)
		}

		return nil
	},
}

var focusRecordCmd = &cobra.Command{
	Use:   "record [minutes]",
	Short: "Record a session done away from the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var minutes int
		if _, err := fmt.Sscanf(args[0], "%d", &minutes); err != nil {
			return fmt.Errorf("minutes must be a number: %q", args[0])
		}
		abandoned, _ := cmd.Flags().GetBool("abandoned")

		session, err := wire.FocusService().Record(cmd.Context(), minutes, !abandoned)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Recorded %d-minute session (%s)\n", session.Minutes, sessionState(session.Completed))
		return nil
	},
}

var focusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := wire.FocusService().Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("\nSessions: %d total, %d completed\n", stats.TotalSessions, stats.CompletedSessions)
		fmt.Printf("Total focused time: %d minutes\n", stats.TotalMinutes)
		fmt.Printf("Today: %d/%d sessions toward the daily goal\n\n", stats.CompletedToday, stats.DailyGoal)

		return nil
	},
}

var focusConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update focus timer settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		work, _ := cmd.Flags().GetInt("work")
		brk, _ := cmd.Flags().GetInt("break")
		goal, _ := cmd.Flags().GetInt("goal")

		if cmd.Flags().Changed("work") || cmd.Flags().Changed("break") || cmd.Flags().Changed("goal") {
			current, err := wire.FocusService().Settings(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("work") {
				work = current.WorkMinutes
			}
			if !cmd.Flags().Changed("break") {
				brk = current.BreakMinutes
			}
			if !cmd.Flags().Changed("goal") {
				goal = current.DailyGoal
			}

			updated, err := wire.FocusService().UpdateSettings(cmd.Context(), work, brk, goal)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Focus settings updated: %d min work, %d min break, %d/day goal\n",
				updated.WorkMinutes, updated.BreakMinutes, updated.DailyGoal)
			return nil
		}

		settings, err := wire.FocusService().Settings(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Work: %d min, Break: %d min, Daily goal: %d sessions\n",
			settings.WorkMinutes, settings.BreakMinutes, settings.DailyGoal)
		return nil
	},
}

func sessionState(completed bool) string {
	if completed {
		return "completed"
	}
	return "abandoned"
}

// FocusCmd returns the focus command
func FocusCmd() *cobra.Command {
	focusStartCmd.Flags().IntP("minutes", "t", 0, "Override the work duration")
	focusRecordCmd.Flags().Bool("abandoned", false, "Record the session as abandoned")
	focusConfigCmd.Flags().Int("work", 0, "Work minutes per session")
	focusConfigCmd.Flags().Int("break", 0, "Break minutes between sessions")
	focusConfigCmd.Flags().Int("goal", 0, "Completed sessions per day goal")

	focusCmd.AddCommand(focusStartCmd)
	focusCmd.AddCommand(focusRecordCmd)
	focusCmd.AddCommand(focusStatsCmd)
	focusCmd.AddCommand(focusConfigCmd)
	return focusCmd
}
