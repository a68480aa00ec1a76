package primary

import (
	"context"
	"time"
)

// ChallengeService is the primary port for daily challenges.
type ChallengeService interface {
	// Today ensures today's challenge set exists and returns it.
	Today(ctx context.Context) ([]*ChallengeView, error)

	// Complete marks one of today's challenges done and registers activity.
	Complete(ctx context.Context, challengeID string) (*ChallengeView, error)

	// CompletedCount returns the all-time number of completed challenges.
	CompletedCount(ctx context.Context) (int, error)
}

// ChallengeView is one daily challenge for display.
type ChallengeView struct {
	ID        string
	Title     string
	Dimension string
	XP        int
	Day       string
	Completed bool
}

// MoodService is the primary port for the mood log.
type MoodService interface {
	// Log records today's mood, replacing any earlier entry for the day.
	Log(ctx context.Context, score int, note string) (*MoodEntryView, error)

	// History returns the most recent entries, newest first.
	History(ctx context.Context, limit int) ([]*MoodEntryView, error)

	// Summary aggregates the last seven days.
	Summary(ctx context.Context) (*MoodSummary, error)
}

// MoodEntryView is one mood log entry.
type MoodEntryView struct {
	ID    string
	Day   string
	Score int
	Note  string
}

// MoodSummary aggregates recent mood entries.
type MoodSummary struct {
	Entries      int
	WeekAverage  float64
	ScoreCounts  map[int]int
	LatestDay    string
	LatestScore  int
	HasMoodToday bool
}

// FocusService is the primary port for the focus timer tracker.
type FocusService interface {
	// Settings returns the focus configuration with defaults applied.
	Settings(ctx context.Context) (*FocusSettingsView, error)

	// UpdateSettings overwrites the focus configuration.
	UpdateSettings(ctx context.Context, workMinutes, breakMinutes, dailyGoal int) (*FocusSettingsView, error)

	// Record stores a finished (or abandoned) session.
	Record(ctx context.Context, minutes int, completed bool) (*FocusSessionView, error)

	// Stats summarizes sessions.
	Stats(ctx context.Context) (*FocusStats, error)
}

// FocusSettingsView is the focus timer configuration.
type FocusSettingsView struct {
	WorkMinutes  int
	BreakMinutes int
	DailyGoal    int
}

// FocusSessionView is one recorded focus session.
type FocusSessionView struct {
	ID        string
	StartedAt time.Time
	Minutes   int
	Completed bool
}

// FocusStats summarizes the session history.
type FocusStats struct {
	TotalSessions     int
	CompletedSessions int
	CompletedToday    int
	TotalMinutes      int
	DailyGoal         int
}

// JournalService is the primary port for the journal tracker.
type JournalService interface {
	// Add appends a journal entry.
	Add(ctx context.Context, title, body string, moodScore int) (*JournalEntryView, error)

	// List returns the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]*JournalEntryView, error)

	// Count returns the all-time entry count.
	Count(ctx context.Context) (int, error)
}

// JournalEntryView is one journal entry.
type JournalEntryView struct {
	ID        string
	CreatedAt time.Time
	Title     string
	Body      string
	MoodScore int
}

// GoalService is the primary port for personal goals.
type GoalService interface {
	// Add creates a goal with a target count.
	Add(ctx context.Context, title, dimension string, targetCount int) (*GoalView, error)

	// List returns all goals, incomplete first.
	List(ctx context.Context) ([]*GoalView, error)

	// Bump increments a goal's counter, clamping at the target.
	Bump(ctx context.Context, goalID string) (*GoalView, error)
}

// GoalView is one personal goal.
type GoalView struct {
	ID           string
	Title        string
	Dimension    string
	TargetCount  int
	CurrentCount int
	Completed    bool
	CompletedAt  *time.Time
}

// SkillService is the primary port for the skill tree.
type SkillService interface {
	// List returns every node with unlock and availability state.
	List(ctx context.Context) ([]*SkillView, error)

	// Unlock attempts to unlock a node. Unlocked=false carries a reason.
	Unlock(ctx context.Context, nodeID string) (*SkillUnlockResult, error)
}

// SkillView is one skill node with runtime state.
type SkillView struct {
	ID            string
	Title         string
	Dimension     string
	RequiredLevel int
	Prerequisites []string
	Unlocked      bool
	Available     bool
}

// SkillUnlockResult reports a skill unlock attempt.
type SkillUnlockResult struct {
	NodeID   string
	Unlocked bool
	Reason   string // set when Unlocked is false
}

// ReviewService is the primary port for weekly reviews.
type ReviewService interface {
	// Add records a review for the current week with a frozen stats snapshot.
	Add(ctx context.Context, wins, struggles, intention string) (*ReviewView, error)

	// List returns all reviews, newest first.
	List(ctx context.Context) ([]*ReviewView, error)
}

// ReviewView is one weekly review.
type ReviewView struct {
	ID             string
	WeekStart      string
	Wins           string
	Struggles      string
	Intention      string
	TotalXP        int
	Level          int
	CurrentStreak  int
	ItemsCompleted int
}

// ActivityService is the primary port for the audit log.
type ActivityService interface {
	// List returns recent activity, newest first.
	List(ctx context.Context, limit int) ([]*ActivityView, error)

	// Prune deletes entries older than the given number of days.
	Prune(ctx context.Context, days int) (int, error)
}

// ActivityView is one audit entry for display.
type ActivityView struct {
	ID         int64
	Timestamp  time.Time
	Action     string
	EntityType string
	EntityID   string
	Detail     string
}
