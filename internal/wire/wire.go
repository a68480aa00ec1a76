// Package wire provides dependency injection for the lifexp application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/lifexp/internal/adapters/cli"
	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/adapters/sqlite"
	"github.com/example/lifexp/internal/app"
	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/db"
	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

var (
	progressService    primary.ProgressService
	achievementService primary.AchievementService
	challengeService   primary.ChallengeService
	moodService        primary.MoodService
	focusService       primary.FocusService
	journalService     primary.JournalService
	goalService        primary.GoalService
	skillService       primary.SkillService
	reviewService      primary.ReviewService
	activityService    primary.ActivityService
	once               sync.Once
)

// ProgressService returns the singleton ProgressService instance.
func ProgressService() primary.ProgressService {
	once.Do(initServices)
	return progressService
}

// AchievementService returns the singleton AchievementService instance.
func AchievementService() primary.AchievementService {
	once.Do(initServices)
	return achievementService
}

// ChallengeService returns the singleton ChallengeService instance.
func ChallengeService() primary.ChallengeService {
	once.Do(initServices)
	return challengeService
}

// MoodService returns the singleton MoodService instance.
func MoodService() primary.MoodService {
	once.Do(initServices)
	return moodService
}

// FocusService returns the singleton FocusService instance.
func FocusService() primary.FocusService {
	once.Do(initServices)
	return focusService
}

// JournalService returns the singleton JournalService instance.
func JournalService() primary.JournalService {
	once.Do(initServices)
	return journalService
}

// GoalService returns the singleton GoalService instance.
func GoalService() primary.GoalService {
	once.Do(initServices)
	return goalService
}

// SkillService returns the singleton SkillService instance.
func SkillService() primary.SkillService {
	once.Do(initServices)
	return skillService
}

// ReviewService returns the singleton ReviewService instance.
func ReviewService() primary.ReviewService {
	once.Do(initServices)
	return reviewService
}

// ActivityService returns the singleton ActivityService instance.
func ActivityService() primary.ActivityService {
	once.Do(initServices)
	return activityService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	cat := catalog.Default()

	// Create storage adapters (secondary ports) with injected DB
	kv := sqlite.NewKVStore(database)
	activityLog := sqlite.NewActivityLogRepository(database)

	// One typed repository per logical storage key
	snapshots := persistence.NewRepository[secondary.ProgressSnapshot](kv, secondary.KeyProgress)
	unlocked := persistence.NewRepository[[]secondary.UnlockedAchievementRecord](kv, secondary.KeyUnlockedAchievements)
	achProgress := persistence.NewRepository[map[string]secondary.AchievementProgressRecord](kv, secondary.KeyAchievementProgress)
	challenges := persistence.NewRepository[[]secondary.DailyChallengeRecord](kv, secondary.KeyDailyChallenges)
	moods := persistence.NewRepository[[]secondary.MoodEntryRecord](kv, secondary.KeyMoodHistory)
	focusSessions := persistence.NewRepository[[]secondary.FocusSessionRecord](kv, secondary.KeyFocusSessions)
	focusSettings := persistence.NewRepository[secondary.FocusSettingsRecord](kv, secondary.KeyFocusSettings)
	journalEntries := persistence.NewRepository[[]secondary.JournalEntryRecord](kv, secondary.KeyJournalEntries)
	goals := persistence.NewRepository[[]secondary.PersonalGoalRecord](kv, secondary.KeyPersonalGoals)
	skillTree := persistence.NewRepository[secondary.SkillTreeRecord](kv, secondary.KeySkillTree)
	reviews := persistence.NewRepository[[]secondary.WeeklyReviewRecord](kv, secondary.KeyWeeklyReviews)

	// Create services (primary ports implementation). The achievement service
	// is built first so mutating services can trigger evaluator scans.
	achievements := app.NewAchievementService(cat, snapshots, unlocked, achProgress, challenges, journalEntries, focusSessions, activityLog)

	achievementService = achievements
	progressService = app.NewProgressService(cat, snapshots, achievements, activityLog)
	challengeService = app.NewChallengeService(cat, challenges, snapshots, achievements, activityLog)
	moodService = app.NewMoodService(moods)
	focusService = app.NewFocusService(focusSessions, focusSettings, achievements, activityLog)
	journalService = app.NewJournalService(journalEntries, achievements)
	goalService = app.NewGoalService(goals)
	skillService = app.NewSkillService(cat, skillTree, snapshots)
	reviewService = app.NewReviewService(cat, reviews, snapshots)
	activityService = app.NewActivityService(activityLog)
}

// StatusAdapter returns a new StatusAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func StatusAdapter() *cliadapter.StatusAdapter {
	return StatusAdapterWithOutput(os.Stdout)
}

// StatusAdapterWithOutput returns a new StatusAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func StatusAdapterWithOutput(out io.Writer) *cliadapter.StatusAdapter {
	once.Do(initServices)
	return cliadapter.NewStatusAdapter(progressService, out)
}

// AchievementAdapter returns a new AchievementAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func AchievementAdapter() *cliadapter.AchievementAdapter {
	return AchievementAdapterWithOutput(os.Stdout)
}

// AchievementAdapterWithOutput returns a new AchievementAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func AchievementAdapterWithOutput(out io.Writer) *cliadapter.AchievementAdapter {
	once.Do(initServices)
	return cliadapter.NewAchievementAdapter(achievementService, out)
}
