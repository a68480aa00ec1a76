package app

import (
	"context"
	"testing"
)

func TestGoalAddValidation(t *testing.T) {
	s := newTestServices()
	ctx := context.Background()

	if _, err := s.goal.Add(ctx, "  ", "mind", 3); err == nil {
		t.Error("blank title should be rejected")
	}
	if _, err := s.goal.Add(ctx, "Read books", "mind", 0); err == nil {
		t.Error("non-positive target should be rejected")
	}
}

func TestGoalBumpClampsAtTarget(t *testing.T) {
	s := newTestServices()
	ctx := context.Background()

	goal, err := s.goal.Add(ctx, "Read books", "mind", 2)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	view, err := s.goal.Bump(ctx, goal.ID)
	if err != nil {
		t.Fatalf("Bump() error = %v", err)
	}
	if view.CurrentCount != 1 || view.Completed {
		t.Errorf("after 1 bump: count=%d completed=%v, want 1/false", view.CurrentCount, view.Completed)
	}

	view, err = s.goal.Bump(ctx, goal.ID)
	if err != nil {
		t.Fatalf("Bump() error = %v", err)
	}
	if view.CurrentCount != 2 || !view.Completed || view.CompletedAt == nil {
		t.Errorf("after 2 bumps: %+v, want completed with timestamp", view)
	}
	completedAt := *view.CompletedAt

	// A bump past the target is a no-op.
	view, err = s.goal.Bump(ctx, goal.ID)
	if err != nil {
		t.Fatalf("Bump() past target error = %v", err)
	}
	if view.CurrentCount != 2 {
		t.Errorf("count = %d, want clamped at 2", view.CurrentCount)
	}
	if !view.CompletedAt.Equal(completedAt) {
		t.Error("completion timestamp should not move")
	}
}

func TestGoalBumpUnknownID(t *testing.T) {
	s := newTestServices()

	if _, err := s.goal.Bump(context.Background(), "GOAL-999"); err == nil {
		t.Error("unknown goal ID should error")
	}
}

func TestGoalListIncompleteFirst(t *testing.T) {
	s := newTestServices()
	ctx := context.Background()

	done, err := s.goal.Add(ctx, "Done goal", "", 1)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := s.goal.Add(ctx, "Open goal", "", 3); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := s.goal.Bump(ctx, done.ID); err != nil {
		t.Fatalf("Bump() error = %v", err)
	}

	views, err := s.goal.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("len = %d, want 2", len(views))
	}
	if views[0].Title != "Open goal" || views[1].Title != "Done goal" {
		t.Errorf("order = [%s %s], want incomplete first", views[0].Title, views[1].Title)
	}
}
