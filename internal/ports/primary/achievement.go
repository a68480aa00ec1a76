package primary

import (
	"context"
	"time"
)

// AchievementService is the primary port for badges.
type AchievementService interface {
	// Check runs the evaluator scan and persists its results.
	Check(ctx context.Context) (*CheckResult, error)

	// List returns all achievements with unlock state and progress. Secret
	// achievements that are still locked are omitted unless includeSecret.
	List(ctx context.Context, includeSecret bool) ([]*AchievementView, error)

	// MarkNotified flips the notified flag on the given unlock record IDs
	// after the presentation layer has shown them.
	MarkNotified(ctx context.Context, unlockIDs []string) error
}

// CheckResult reports one evaluator pass.
type CheckResult struct {
	Scanned    int
	NewUnlocks []*UnlockView
}

// UnlockView is one unlocked achievement for display.
type UnlockView struct {
	UnlockID      string
	AchievementID string
	Title         string
	Icon          string
	Tier          string
	XPAwarded     int
	UnlockedAt    time.Time
}

// AchievementView is an achievement definition with runtime state.
type AchievementView struct {
	ID        string
	Title     string
	Detail    string
	Icon      string
	Category  string
	Tier      string
	XPReward  int
	Secret    bool
	Unlocked  bool
	Progress  int
	Threshold int
}
