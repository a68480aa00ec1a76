package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/wire"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse and unlock the skill tree",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skill nodes with availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		views, err := wire.SkillService().List(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println()
		for _, v := range views {
			mark := "[ ]"
			switch {
			case v.Unlocked:
				mark = color.New(color.FgHiGreen).Sprint("[x]")
			case v.Available:
				mark = color.New(color.FgHiCyan).Sprint("[+]")
			}
			prereqs := ""
			if len(v.Prerequisites) > 0 {
				prereqs = fmt.Sprintf(" after %s", strings.Join(v.Prerequisites, ", "))
			}
			fmt.Printf("%s %s — %s (%s, lvl %d%s)\n", mark, v.ID, v.Title, v.Dimension, v.RequiredLevel, prereqs)
		}
		fmt.Println()

		return nil
	},
}

var skillUnlockCmd = &cobra.Command{
	Use:   "unlock [node-id]",
	Short: "Unlock a skill node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := wire.SkillService().Unlock(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if !result.Unlocked {
			fmt.Printf("Cannot unlock: %s\n", result.Reason)
			return nil
		}

		fmt.Printf("✓ Skill %s unlocked\n", result.NodeID)
		return nil
	},
}

// SkillCmd returns the skill command
func SkillCmd() *cobra.Command {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillUnlockCmd)
	return skillCmd
}
