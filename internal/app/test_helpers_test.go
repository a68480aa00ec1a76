package app

import (
	"context"
	"time"

	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/ports/secondary"
)

// mockKV is an in-memory KeyValueStore for service tests.
type mockKV struct {
	data map[string][]byte
}

func newMockKV() *mockKV {
	return &mockKV{data: make(map[string][]byte)}
}

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mockKV) Set(ctx context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *mockKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockKV) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

// Ensure mockKV implements the interface
var _ secondary.KeyValueStore = (*mockKV)(nil)

// testDay is the fixed "today" for service tests: Monday, March 2nd.
var testDay = time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

// testCatalog builds a small fixture catalog: three checklist items, one arc
// with two quests, four achievements, a two-node skill chain, and a challenge
// pool one larger than the daily draw.
func testCatalog() *catalog.Catalog {
	items := []catalog.Item{
		{ID: "it-walk", Title: "Walk", XP: 30, Dimensions: []catalog.Dimension{catalog.DimensionBody}, Kind: catalog.KindDaily, EstimatedMinutes: 10},
		{ID: "it-read", Title: "Read", XP: 40, Dimensions: []catalog.Dimension{catalog.DimensionMind}, Kind: catalog.KindHabit, EstimatedMinutes: 20},
		{ID: "it-save", Title: "Save", XP: 50, Dimensions: []catalog.Dimension{catalog.DimensionMoney}, Kind: catalog.KindTask, EstimatedMinutes: 15},
		{ID: "q-a1", Title: "Quest One", XP: 60, Dimensions: []catalog.Dimension{catalog.DimensionMind}, Kind: catalog.KindQuest, EstimatedMinutes: 45},
		{ID: "q-a2", Title: "Quest Two", XP: 60, Dimensions: []catalog.Dimension{catalog.DimensionBody}, Kind: catalog.KindQuest, EstimatedMinutes: 45},
	}
	arcs := []catalog.Arc{
		{
			ID:    "arc-one",
			Title: "Arc One",
			Chapters: []catalog.Chapter{
				{ID: "ch-1", Title: "Chapter One", QuestIDs: []string{"q-a1", "q-a2"}},
			},
		},
	}
	achievements := []catalog.Achievement{
		{
			ID: "ach-first", Title: "First Step", Icon: "👣",
			Category: catalog.CategoryProgress, Tier: catalog.TierBronze,
			Requirement: catalog.Requirement{Kind: catalog.RequireItemsCompleted, Threshold: 1},
		},
		{
			ID: "ach-streak3", Title: "Three In A Row", Icon: "🔥",
			Category: catalog.CategoryStreak, Tier: catalog.TierSilver,
			Requirement: catalog.Requirement{Kind: catalog.RequireStreak, Threshold: 3},
		},
		{
			ID: "ach-journal", Title: "Dear Diary", Icon: "📓",
			Category: catalog.CategoryExploration, Tier: catalog.TierBronze,
			Requirement: catalog.Requirement{Kind: catalog.RequireJournalEntries, Threshold: 1},
			XPReward:    10,
		},
		{
			ID: "ach-secret", Title: "Hidden Grind", Icon: "🗝",
			Category: catalog.CategorySpecial, Tier: catalog.TierGold,
			Requirement: catalog.Requirement{Kind: catalog.RequireTotalXP, Threshold: 1000},
			Secret:      true,
		},
	}
	skills := []catalog.SkillNode{
		{ID: "sk-root", Title: "Foundations", Dimension: catalog.DimensionMind, RequiredLevel: 1},
		{ID: "sk-next", Title: "Deep Work", Dimension: catalog.DimensionMind, RequiredLevel: 2, Prerequisites: []string{"sk-root"}},
	}
	pool := []catalog.ChallengeTemplate{
		{ID: "c-stretch", Title: "Stretch", Dimension: catalog.DimensionBody, XP: 15},
		{ID: "c-note", Title: "Write a note", Dimension: catalog.DimensionLove, XP: 15},
		{ID: "c-budget", Title: "Check budget", Dimension: catalog.DimensionMoney, XP: 15},
		{ID: "c-sketch", Title: "Sketch", Dimension: catalog.DimensionCraft, XP: 15},
	}
	return catalog.Build(items, arcs, achievements, skills, pool)
}

// testServices wires every service against a shared in-memory store with a
// fixed clock, mirroring the production wiring minus the database.
type testServices struct {
	kv  *mockKV
	cat *catalog.Catalog

	snapshots  *persistence.Repository[secondary.ProgressSnapshot]
	unlocked   *persistence.Repository[[]secondary.UnlockedAchievementRecord]
	challenges *persistence.Repository[[]secondary.DailyChallengeRecord]

	progress    *ProgressServiceImpl
	achievement *AchievementServiceImpl
	challenge   *ChallengeServiceImpl
	mood        *MoodServiceImpl
	focus       *FocusServiceImpl
	journal     *JournalServiceImpl
	goal        *GoalServiceImpl
	skill       *SkillServiceImpl
	review      *ReviewServiceImpl
}

func newTestServices() *testServices {
	kv := newMockKV()
	cat := testCatalog()

	snapshots := persistence.NewRepository[secondary.ProgressSnapshot](kv, secondary.KeyProgress)
	unlocked := persistence.NewRepository[[]secondary.UnlockedAchievementRecord](kv, secondary.KeyUnlockedAchievements)
	achProgress := persistence.NewRepository[map[string]secondary.AchievementProgressRecord](kv, secondary.KeyAchievementProgress)
	challenges := persistence.NewRepository[[]secondary.DailyChallengeRecord](kv, secondary.KeyDailyChallenges)
	moods := persistence.NewRepository[[]secondary.MoodEntryRecord](kv, secondary.KeyMoodHistory)
	focusSessions := persistence.NewRepository[[]secondary.FocusSessionRecord](kv, secondary.KeyFocusSessions)
	focusSettings := persistence.NewRepository[secondary.FocusSettingsRecord](kv, secondary.KeyFocusSettings)
	journalEntries := persistence.NewRepository[[]secondary.JournalEntryRecord](kv, secondary.KeyJournalEntries)
	goals := persistence.NewRepository[[]secondary.PersonalGoalRecord](kv, secondary.KeyPersonalGoals)
	tree := persistence.NewRepository[secondary.SkillTreeRecord](kv, secondary.KeySkillTree)
	reviews := persistence.NewRepository[[]secondary.WeeklyReviewRecord](kv, secondary.KeyWeeklyReviews)

	achievement := NewAchievementService(cat, snapshots, unlocked, achProgress, challenges, journalEntries, focusSessions, nil)
	progress := NewProgressService(cat, snapshots, achievement, nil)
	challenge := NewChallengeService(cat, challenges, snapshots, achievement, nil)
	mood := NewMoodService(moods)
	focus := NewFocusService(focusSessions, focusSettings, achievement, nil)
	journal := NewJournalService(journalEntries, achievement)
	goal := NewGoalService(goals)
	skill := NewSkillService(cat, tree, snapshots)
	review := NewReviewService(cat, reviews, snapshots)

	s := &testServices{
		kv:          kv,
		cat:         cat,
		snapshots:   snapshots,
		unlocked:    unlocked,
		challenges:  challenges,
		progress:    progress,
		achievement: achievement,
		challenge:   challenge,
		mood:        mood,
		focus:       focus,
		journal:     journal,
		goal:        goal,
		skill:       skill,
		review:      review,
	}
	s.setNow(testDay)
	return s
}

// setNow pins every service clock to the given time.
func (s *testServices) setNow(t time.Time) {
	now := func() time.Time { return t }
	s.progress.now = now
	s.achievement.now = now
	s.challenge.now = now
	s.mood.now = now
	s.focus.now = now
	s.journal.now = now
	s.goal.now = now
	s.review.now = now
}
