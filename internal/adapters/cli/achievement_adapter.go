package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/lifexp/internal/ports/primary"
)

// AchievementAdapter is a thin adapter that translates CLI operations to
// AchievementService calls.
type AchievementAdapter struct {
	service primary.AchievementService
	out     io.Writer
}

// NewAchievementAdapter creates a new AchievementAdapter with the given service.
func NewAchievementAdapter(service primary.AchievementService, out io.Writer) *AchievementAdapter {
	return &AchievementAdapter{
		service: service,
		out:     out,
	}
}

// List renders all achievements with unlock state and progress.
func (a *AchievementAdapter) List(ctx context.Context, includeSecret bool) error {
	views, err := a.service.List(ctx, includeSecret)
	if err != nil {
		return err
	}

	if len(views) == 0 {
		fmt.Fprintln(a.out, "No achievements found")
		return nil
	}

	unlocked := 0
	fmt.Fprintf(a.out, "\n%-3s %-24s %-10s %5s  %s\n", "", "ID", "TIER", "XP", "TITLE")
	fmt.Fprintln(a.out, strings.Repeat("─", 72))
	for _, v := range views {
		mark := "[ ]"
		if v.Unlocked {
			mark = "[x]"
			unlocked++
		}
		progress := ""
		if !v.Unlocked && v.Threshold > 0 {
			progress = fmt.Sprintf(" (%d/%d)", v.Progress, v.Threshold)
		}
		secret := ""
		if v.Secret {
			secret = " (secret)"
		}
		fmt.Fprintf(a.out, "%-3s %-24s %-10s %5d  %s %s%s%s\n", mark, v.ID, v.Tier, v.XPReward, v.Icon, v.Title, progress, secret)
	}
	fmt.Fprintf(a.out, "\n%d/%d unlocked\n\n", unlocked, len(views))

	return nil
}

// Check runs an evaluator scan, reports new unlocks, and marks them notified.
func (a *AchievementAdapter) Check(ctx context.Context) error {
	result, err := a.service.Check(ctx)
	if err != nil {
		return err
	}

	if len(result.NewUnlocks) == 0 {
		fmt.Fprintf(a.out, "Scanned %d achievements — nothing new\n", result.Scanned)
		return nil
	}

	var ids []string
	for _, u := range result.NewUnlocks {
		fmt.Fprintf(a.out, "🏆 Unlocked %s %s (+%d XP)\n", u.Icon, u.Title, u.XPAwarded)
		ids = append(ids, u.UnlockID)
	}

	if err := a.service.MarkNotified(ctx, ids); err != nil {
		return fmt.Errorf("failed to mark unlocks notified: %w", err)
	}

	return nil
}
