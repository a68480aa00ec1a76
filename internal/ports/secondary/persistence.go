// Package secondary defines the secondary ports (driven adapters) for lifexp.
// These are the interfaces through which the application drives local storage.
package secondary

import (
	"context"
	"time"
)

// KeyValueStore is the generic blob store: one JSON document per logical key.
type KeyValueStore interface {
	// Get returns the blob for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set writes the blob for key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists all stored keys.
	Keys(ctx context.Context) ([]string, error)
}

// Storage keys. One JSON blob per logical key.
const (
	KeyProgress             = "lifeXP.progress"
	KeyUnlockedAchievements = "lifeXP.unlockedAchievements"
	KeyAchievementProgress  = "lifeXP.achievementProgress"
	KeyDailyChallenges      = "lifeXP.dailyChallenges"
	KeyMoodHistory          = "lifeXP.moodHistory"
	KeyFocusSessions        = "lifeXP.focusSessions"
	KeyFocusSettings        = "lifeXP.focusSettings"
	KeyJournalEntries       = "lifeXP.journalEntries"
	KeyPersonalGoals        = "lifeXP.personalGoals"
	KeySkillTree            = "lifeXP.skillTree"
	KeyWeeklyReviews        = "lifeXP.weeklyReviews"
)

// SnapshotVersion is stamped into the progress snapshot on save. Loads never
// gate on it; schema evolution is best-effort field defaulting at decode time.
const SnapshotVersion = 1

// ProgressSnapshot is the persisted progress+settings pair.
type ProgressSnapshot struct {
	Version  int            `json:"version"`
	Progress ProgressRecord `json:"progress"`
	Settings UserSettings   `json:"settings"`
}

// ProgressRecord is the serialized ProgressState. Dates use day-granularity
// YYYY-MM-DD strings; LastActiveDay is empty before any activity.
type ProgressRecord struct {
	CompletedItemIDs []string          `json:"completedItemIDs"`
	CurrentStreak    int               `json:"currentStreak"`
	BestStreak       int               `json:"bestStreak"`
	LastActiveDay    string            `json:"lastActiveDay,omitempty"`
	ArcStartDates    map[string]string `json:"arcStartDates,omitempty"`
}

// UserSettings is the user preference record. Every field has a documented
// default applied by Normalize, so snapshots from older schemas always load.
type UserSettings struct {
	DisplayName       string `json:"displayName,omitempty"`
	ReminderHour      int    `json:"reminderHour"`      // 0 means "unset", default 9
	ShowSecretBadges  bool   `json:"showSecretBadges"`  // default false
	ReducedMotion     bool   `json:"reducedMotion"`     // default false
	MaxConcurrentArcs int    `json:"maxConcurrentArcs"` // policy field, forced on load
}

// Normalize applies field defaults and policy overrides. MaxConcurrentArcs is
// forced back to the fixed cap regardless of what was persisted; the override
// list lives here so the policy is visible in one place.
func (s *UserSettings) Normalize(maxConcurrentArcs int) {
	if s.ReminderHour <= 0 || s.ReminderHour > 23 {
		s.ReminderHour = 9
	}
	s.MaxConcurrentArcs = maxConcurrentArcs
}

// UnlockedAchievementRecord is one unlock. Created exactly once per
// achievement ID, appended, never mutated (except the notified flag).
type UnlockedAchievementRecord struct {
	ID            string    `json:"id"`
	AchievementID string    `json:"achievementID"`
	UnlockedAt    time.Time `json:"unlockedAt"`
	XPAwarded     int       `json:"xpAwarded"`
	WasNotified   bool      `json:"wasNotified"`
}

// AchievementProgressRecord is the upserted counter for one achievement.
type AchievementProgressRecord struct {
	ID           string    `json:"id"`
	CurrentValue int       `json:"currentValue"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// DailyChallengeRecord is one offered challenge for one day.
type DailyChallengeRecord struct {
	ID          string     `json:"id"`
	TemplateID  string     `json:"templateID"`
	Day         string     `json:"day"` // YYYY-MM-DD
	Title       string     `json:"title"`
	Dimension   string     `json:"dimension"`
	XP          int        `json:"xp"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// MoodEntryRecord is one mood log entry; at most one per calendar day.
type MoodEntryRecord struct {
	ID    string `json:"id"`
	Day   string `json:"day"` // YYYY-MM-DD
	Score int    `json:"score"`
	Note  string `json:"note,omitempty"`
}

// FocusSessionRecord is one focus timer session.
type FocusSessionRecord struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"startedAt"`
	Minutes   int       `json:"minutes"`
	Completed bool      `json:"completed"`
}

// FocusSettingsRecord holds the focus timer configuration.
type FocusSettingsRecord struct {
	WorkMinutes  int `json:"workMinutes"`  // default 25
	BreakMinutes int `json:"breakMinutes"` // default 5
	DailyGoal    int `json:"dailyGoal"`    // default 4
}

// Normalize applies focus settings defaults for missing/invalid fields.
func (s *FocusSettingsRecord) Normalize() {
	if s.WorkMinutes <= 0 {
		s.WorkMinutes = 25
	}
	if s.BreakMinutes <= 0 {
		s.BreakMinutes = 5
	}
	if s.DailyGoal <= 0 {
		s.DailyGoal = 4
	}
}

// JournalEntryRecord is one journal entry.
type JournalEntryRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	MoodScore int       `json:"moodScore,omitempty"` // 0 means not recorded
}

// PersonalGoalRecord is one personal goal with a completion counter.
type PersonalGoalRecord struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Dimension    string     `json:"dimension,omitempty"`
	TargetCount  int        `json:"targetCount"`
	CurrentCount int        `json:"currentCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// SkillTreeRecord is the persisted skill tree state.
type SkillTreeRecord struct {
	UnlockedNodeIDs []string `json:"unlockedNodeIDs"`
}

// ReviewSnapshot is the stats snapshot frozen into a weekly review.
type ReviewSnapshot struct {
	TotalXP        int `json:"totalXP"`
	Level          int `json:"level"`
	CurrentStreak  int `json:"currentStreak"`
	ItemsCompleted int `json:"itemsCompleted"`
}

// WeeklyReviewRecord is one weekly review entry.
type WeeklyReviewRecord struct {
	ID        string         `json:"id"`
	WeekStart string         `json:"weekStart"` // YYYY-MM-DD, Monday
	Wins      string         `json:"wins,omitempty"`
	Struggles string         `json:"struggles,omitempty"`
	Intention string         `json:"intention,omitempty"`
	Snapshot  ReviewSnapshot `json:"snapshot"`
}
