package app

import (
	"context"
	"strings"
	"testing"
)

func TestTodayDrawsAndPersists(t *testing.T) {
	s := newTestServices()
	ctx := context.Background()

	views, err := s.challenge.Today(ctx)
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("len = %d, want 3 challenges per day", len(views))
	}
	for _, v := range views {
		if v.Day != "2026-03-02" {
			t.Errorf("challenge %s day = %s, want 2026-03-02", v.ID, v.Day)
		}
		if v.Completed {
			t.Errorf("fresh challenge %s already completed", v.ID)
		}
	}

	// A second call returns the persisted set, not a new draw.
	again, err := s.challenge.Today(ctx)
	if err != nil {
		t.Fatalf("Today() second call error = %v", err)
	}
	for i := range views {
		if again[i].ID != views[i].ID {
			t.Errorf("draw changed between calls: %s vs %s", again[i].ID, views[i].ID)
		}
	}
}

func TestCompleteRegistersStreakActivity(t *testing.T) {
	s := newTestServices()
	ctx := context.Background()

	views, err := s.challenge.Today(ctx)
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}

	done, err := s.challenge.Complete(ctx, views[0].ID)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if !done.Completed {
		t.Error("challenge should be completed")
	}

	report, err := s.progress.Status(ctx)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if report.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 (challenge counts as activity)", report.CurrentStreak)
	}

	// Completing twice is idempotent.
	if _, err := s.challenge.Complete(ctx, views[0].ID); err != nil {
		t.Fatalf("Complete() repeat error = %v", err)
	}
	count, err := s.challenge.CompletedCount(ctx)
	if err != nil {
		t.Fatalf("CompletedCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CompletedCount = %d, want 1", count)
	}
}

func TestCompleteByTemplateID(t *testing.T) {
	s := newTestServices()
	ctx := context.Background()

	views, err := s.challenge.Today(ctx)
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}

	// Record IDs are "<day>:<templateID>"; the bare template ID works too.
	templateID := strings.TrimPrefix(views[0].ID, views[0].Day+":")
	done, err := s.challenge.Complete(ctx, templateID)
	if err != nil {
		t.Fatalf("Complete(template) error = %v", err)
	}
	if !done.Completed {
		t.Error("challenge should be completed via template ID")
	}
}

func TestCompleteOutsideTodaySet(t *testing.T) {
	s := newTestServices()

	if _, err := s.challenge.Complete(context.Background(), "not-drawn-today"); err == nil {
		t.Error("completing a challenge outside today's set should error")
	}
}
