// Package achievement evaluates badge definitions against current metrics:
// per-kind progress projection, reward derivation, and the unlock scan.
package achievement

import (
	"time"

	"github.com/example/lifexp/internal/catalog"
)

// Inputs is the read-only metrics snapshot the evaluator projects requirement
// values from. It is assembled once per scan; the evaluator never mutates it.
type Inputs struct {
	TotalXP       int
	Level         int
	CurrentStreak int
	BestStreak    int

	ItemsCompleted   int
	QuestsCompleted  int
	ArcsCompleted    int
	CompletedItemIDs map[string]bool
	DimensionCounts  map[catalog.Dimension]int

	// Tracker-fed counts.
	ChallengesCompleted int
	JournalEntries      int
	FocusSessions       int
}

// Progress projects the current value for a requirement from the inputs.
func Progress(req catalog.Requirement, in Inputs) int {
	switch req.Kind {
	case catalog.RequireTotalXP:
		return in.TotalXP
	case catalog.RequireLevel:
		return in.Level
	case catalog.RequireStreak:
		if in.BestStreak > in.CurrentStreak {
			return in.BestStreak
		}
		return in.CurrentStreak
	case catalog.RequireItemsCompleted:
		return in.ItemsCompleted
	case catalog.RequireDimensionCompleted:
		return in.DimensionCounts[req.Dimension]
	case catalog.RequireArcsCompleted:
		return in.ArcsCompleted
	case catalog.RequireQuestsCompleted:
		return in.QuestsCompleted
	case catalog.RequireSpecificItems:
		count := 0
		for _, id := range req.ItemIDs {
			if in.CompletedItemIDs[id] {
				count++
			}
		}
		return count
	case catalog.RequireChallengesCompleted:
		return in.ChallengesCompleted
	case catalog.RequireJournalEntries:
		return in.JournalEntries
	case catalog.RequireFocusSessions:
		return in.FocusSessions
	case catalog.RequireHabitsCompleted, catalog.RequirePerfectDays:
		// Known gap: no habit tracker exists and "perfect day" is undefined.
		return 0
	default:
		return 0
	}
}

// Reward returns the XP awarded for unlocking the achievement: the explicit
// reward when set, otherwise base(category) x multiplier(tier) rounded down.
func Reward(a catalog.Achievement) int {
	if a.XPReward > 0 {
		return a.XPReward
	}
	return int(float64(a.Category.BaseXP()) * a.Tier.Multiplier())
}

// ProgressUpdate is the upserted counter value for one achievement.
type ProgressUpdate struct {
	AchievementID string
	CurrentValue  int
	LastUpdated   time.Time
}

// Unlock records one newly qualified achievement.
type Unlock struct {
	AchievementID string
	UnlockedAt    time.Time
	XPAwarded     int
}

// Evaluate scans defs in order, skipping already-unlocked IDs. It returns a
// progress update for every not-yet-unlocked achievement (always overwritten,
// even when unchanged) and an unlock for each one whose value reached its
// threshold. All unlocks from one pass are returned; queueing them for display
// is the caller's concern.
func Evaluate(defs []catalog.Achievement, unlocked map[string]bool, in Inputs, now time.Time) ([]ProgressUpdate, []Unlock) {
	var updates []ProgressUpdate
	var unlocks []Unlock

	for _, def := range defs {
		if unlocked[def.ID] {
			continue
		}

		value := Progress(def.Requirement, in)
		updates = append(updates, ProgressUpdate{
			AchievementID: def.ID,
			CurrentValue:  value,
			LastUpdated:   now,
		})

		if value >= def.Requirement.Threshold {
			unlocks = append(unlocks, Unlock{
				AchievementID: def.ID,
				UnlockedAt:    now,
				XPAwarded:     Reward(def),
			})
		}
	}

	return updates, unlocks
}
