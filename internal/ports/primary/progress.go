// Package primary defines the primary ports (driving interfaces) for lifexp.
// The CLI drives the application exclusively through these interfaces.
package primary

import (
	"context"
	"time"
)

// ProgressService is the primary port for checklist/quest progress.
type ProgressService interface {
	// ListItems returns every catalog item with its completion state.
	ListItems(ctx context.Context) ([]*ItemView, error)

	// ToggleItem flips completion of an item and runs the downstream pipeline
	// (streak registration, achievement scan, persistence).
	ToggleItem(ctx context.Context, itemID string) (*ToggleItemResult, error)

	// ListArcs returns every arc with progress and start state.
	ListArcs(ctx context.Context) ([]*ArcView, error)

	// StartArc records today as the arc's start date. Started reports whether
	// the arc is (now) started; false means the concurrency cap was hit.
	StartArc(ctx context.Context, arcID string) (*StartArcResult, error)

	// Status returns the full derived-metrics report.
	Status(ctx context.Context) (*StatusReport, error)

	// Suggestions returns the ranked quest board.
	Suggestions(ctx context.Context, limit int) ([]*ItemView, error)

	// Reset clears the field subset selected by scope.
	Reset(ctx context.Context, scope ResetScope) error
}

// ResetScope selects which clearing policy Reset applies.
type ResetScope string

const (
	ResetScopeAll     ResetScope = "all"
	ResetScopeArcs    ResetScope = "arcs"
	ResetScopeStreaks ResetScope = "streaks"
	ResetScopeStats   ResetScope = "stats"
)

// ItemView is a catalog item with runtime completion state.
type ItemView struct {
	ID               string
	Title            string
	Detail           string
	XP               int
	Dimensions       []string
	Kind             string
	EstimatedMinutes int
	Premium          bool
	Completed        bool
	MatchesWeakest   bool
}

// ToggleItemResult reports the outcome of a completion toggle.
type ToggleItemResult struct {
	ItemID        string
	Completed     bool
	TotalXP       int
	Level         int
	LevelUp       bool
	CurrentStreak int
	NewUnlocks    []*UnlockView
}

// ChapterView is a chapter with completion progress.
type ChapterView struct {
	ID       string
	Title    string
	Total    int
	Done     int
	Progress float64
}

// ArcView is an arc with progress and start state.
type ArcView struct {
	ID        string
	Title     string
	Accent    string
	Started   bool
	StartedAt *time.Time
	Progress  float64
	Completed bool
	Chapters  []*ChapterView
}

// StartArcResult reports the outcome of an arc start.
type StartArcResult struct {
	ArcID   string
	Started bool
	Reason  string // set when Started is false
}

// DimensionView is one dimension's balance standing.
type DimensionView struct {
	Dimension  string
	EarnedXP   int
	PossibleXP int
	Ratio      float64
	Weakest    bool
}

// StatusReport is the full derived-metrics snapshot for display.
type StatusReport struct {
	TotalXP        int
	Level          int
	LevelProgress  float64
	CurrentStreak  int
	BestStreak     int
	LastActiveDay  *time.Time
	ItemsCompleted int
	QuestsDone     int
	ArcsDone       int
	Dimensions     []*DimensionView
}
