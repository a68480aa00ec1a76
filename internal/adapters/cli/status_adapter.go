// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/lifexp/internal/ports/primary"
)

// StatusAdapter is a thin adapter that translates CLI operations to
// ProgressService calls. It depends only on the ProgressService interface,
// enabling easy testing with mocks.
type StatusAdapter struct {
	service primary.ProgressService
	out     io.Writer
}

// NewStatusAdapter creates a new StatusAdapter with the given service.
func NewStatusAdapter(service primary.ProgressService, out io.Writer) *StatusAdapter {
	return &StatusAdapter{
		service: service,
		out:     out,
	}
}

// Show renders the full status report.
func (a *StatusAdapter) Show(ctx context.Context) error {
	report, err := a.service.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nLevel %d — %d XP total\n", report.Level, report.TotalXP)
	fmt.Fprintf(a.out, "Level progress: %s %.0f%%\n", progressBar(report.LevelProgress, 20), report.LevelProgress*100)
	fmt.Fprintf(a.out, "Streak: %d day(s) (best: %d)\n", report.CurrentStreak, report.BestStreak)
	if report.LastActiveDay != nil {
		fmt.Fprintf(a.out, "Last active: %s\n", report.LastActiveDay.Format("2006-01-02"))
	}
	fmt.Fprintf(a.out, "Completed: %d items, %d quests, %d arcs\n", report.ItemsCompleted, report.QuestsDone, report.ArcsDone)

	if len(report.Dimensions) > 0 {
		fmt.Fprintln(a.out, "\nDimensions:")
		for _, d := range report.Dimensions {
			marker := ""
			if d.Weakest {
				marker = " ← weakest"
			}
			fmt.Fprintf(a.out, "  %-10s %s %4d/%d XP%s\n", d.Dimension, progressBar(d.Ratio, 12), d.EarnedXP, d.PossibleXP, marker)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// Board renders the ranked suggestion list.
func (a *StatusAdapter) Board(ctx context.Context, limit int) error {
	items, err := a.service.Suggestions(ctx, limit)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "Nothing to suggest — everything is done")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-24s %-8s %5s %6s  %s\n", "ID", "KIND", "XP", "MIN", "TITLE")
	fmt.Fprintln(a.out, strings.Repeat("─", 72))
	for _, it := range items {
		marker := ""
		if it.MatchesWeakest {
			marker = " *"
		}
		fmt.Fprintf(a.out, "%-24s %-8s %5d %6d  %s%s\n", it.ID, it.Kind, it.XP, it.EstimatedMinutes, it.Title, marker)
	}
	fmt.Fprintln(a.out)

	return nil
}

// ListItems renders the full checklist with completion markers.
func (a *StatusAdapter) ListItems(ctx context.Context) error {
	items, err := a.service.ListItems(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%-3s %-24s %-8s %5s  %s\n", "", "ID", "KIND", "XP", "TITLE")
	fmt.Fprintln(a.out, strings.Repeat("─", 72))
	for _, it := range items {
		mark := "[ ]"
		if it.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(a.out, "%-3s %-24s %-8s %5d  %s\n", mark, it.ID, it.Kind, it.XP, it.Title)
	}
	fmt.Fprintln(a.out)

	return nil
}

// ListArcs renders every arc with chapter progress.
func (a *StatusAdapter) ListArcs(ctx context.Context) error {
	arcs, err := a.service.ListArcs(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	for _, arc := range arcs {
		state := "not started"
		switch {
		case arc.Completed:
			state = "complete"
		case arc.Started:
			state = fmt.Sprintf("in progress (started %s)", arc.StartedAt.Format("2006-01-02"))
		}
		fmt.Fprintf(a.out, "%s — %s [%s] %.0f%%\n", arc.ID, arc.Title, state, arc.Progress*100)
		for _, ch := range arc.Chapters {
			fmt.Fprintf(a.out, "  %s: %d/%d quests\n", ch.Title, ch.Done, ch.Total)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// Toggle flips an item and reports XP, level, and unlock effects.
func (a *StatusAdapter) Toggle(ctx context.Context, itemID string) error {
	result, err := a.service.ToggleItem(ctx, itemID)
	if err != nil {
		return err
	}

	if result.Completed {
		fmt.Fprintf(a.out, "✓ Completed %s — %d XP total, streak %d\n", result.ItemID, result.TotalXP, result.CurrentStreak)
	} else {
		fmt.Fprintf(a.out, "✗ Uncompleted %s — %d XP total\n", result.ItemID, result.TotalXP)
	}
	if result.LevelUp {
		fmt.Fprintf(a.out, "★ Level up! You are now level %d\n", result.Level)
	}
	for _, u := range result.NewUnlocks {
		fmt.Fprintf(a.out, "🏆 Unlocked %s %s (+%d XP)\n", u.Icon, u.Title, u.XPAwarded)
	}

	return nil
}

// StartArc attempts to start an arc, printing the guard reason when blocked.
func (a *StatusAdapter) StartArc(ctx context.Context, arcID string) error {
	result, err := a.service.StartArc(ctx, arcID)
	if err != nil {
		return err
	}

	if !result.Started {
		fmt.Fprintf(a.out, "Cannot start arc: %s\n", result.Reason)
		return nil
	}

	fmt.Fprintf(a.out, "✓ Arc %s started\n", result.ArcID)
	return nil
}

// progressBar renders a fixed-width unicode bar for a 0..1 ratio.
func progressBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
