package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/lifexp/internal/config"
	"github.com/example/lifexp/internal/wire"
)

var achievementCmd = &cobra.Command{
	Use:     "achievement",
	Aliases: []string{"ach"},
	Short:   "Browse and check achievements",
}

var achievementListCmd = &cobra.Command{
	Use:   "list",
	Short: "List achievements with unlock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		includeSecret, _ := cmd.Flags().GetBool("secret")
		if !cmd.Flags().Changed("secret") {
			if cfg, err := config.LoadConfig(); err == nil {
				includeSecret = cfg.ShowSecretBadges
			}
		}
		return wire.AchievementAdapter().List(cmd.Context(), includeSecret)
	},
}

var achievementCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Re-scan achievements and report new unlocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AchievementAdapter().Check(cmd.Context())
	},
}

// AchievementCmd returns the achievement command
func AchievementCmd() *cobra.Command {
	achievementListCmd.Flags().Bool("secret", false, "Include locked secret achievements")

	achievementCmd.AddCommand(achievementListCmd)
	achievementCmd.AddCommand(achievementCheckCmd)
	return achievementCmd
}
