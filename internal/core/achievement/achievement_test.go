package achievement

import (
	"testing"
	"time"

	"github.com/example/lifexp/internal/catalog"
)

var scanTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestProgress(t *testing.T) {
	in := Inputs{
		TotalXP:             500,
		Level:               5,
		CurrentStreak:       3,
		BestStreak:          9,
		ItemsCompleted:      12,
		QuestsCompleted:     4,
		ArcsCompleted:       1,
		CompletedItemIDs:    map[string]bool{"a": true, "b": true},
		DimensionCounts:     map[catalog.Dimension]int{catalog.DimensionMind: 7},
		ChallengesCompleted: 2,
		JournalEntries:      6,
		FocusSessions:       11,
	}

	tests := []struct {
		name string
		req  catalog.Requirement
		want int
	}{
		{"total xp", catalog.Requirement{Kind: catalog.RequireTotalXP}, 500},
		{"level", catalog.Requirement{Kind: catalog.RequireLevel}, 5},
		{"streak uses best", catalog.Requirement{Kind: catalog.RequireStreak}, 9},
		{"items", catalog.Requirement{Kind: catalog.RequireItemsCompleted}, 12},
		{"dimension", catalog.Requirement{Kind: catalog.RequireDimensionCompleted, Dimension: catalog.DimensionMind}, 7},
		{"dimension missing", catalog.Requirement{Kind: catalog.RequireDimensionCompleted, Dimension: catalog.DimensionBody}, 0},
		{"arcs", catalog.Requirement{Kind: catalog.RequireArcsCompleted}, 1},
		{"quests", catalog.Requirement{Kind: catalog.RequireQuestsCompleted}, 4},
		{"specific items", catalog.Requirement{Kind: catalog.RequireSpecificItems, ItemIDs: []string{"a", "b", "c"}}, 2},
		{"challenges", catalog.Requirement{Kind: catalog.RequireChallengesCompleted}, 2},
		{"journal", catalog.Requirement{Kind: catalog.RequireJournalEntries}, 6},
		{"focus", catalog.Requirement{Kind: catalog.RequireFocusSessions}, 11},
		{"habits stub", catalog.Requirement{Kind: catalog.RequireHabitsCompleted}, 0},
		{"perfect days stub", catalog.Requirement{Kind: catalog.RequirePerfectDays}, 0},
		{"unknown kind", catalog.Requirement{Kind: "nonsense"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.req, in); got != tt.want {
				t.Errorf("Progress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReward(t *testing.T) {
	tests := []struct {
		name string
		a    catalog.Achievement
		want int
	}{
		{
			name: "explicit reward wins",
			a:    catalog.Achievement{XPReward: 42, Category: catalog.CategoryProgress, Tier: catalog.TierGold},
			want: 42,
		},
		{
			name: "derived progress bronze",
			a:    catalog.Achievement{Category: catalog.CategoryProgress, Tier: catalog.TierBronze},
			want: 25, // 25 x 1.0
		},
		{
			name: "derived streak silver rounds down",
			a:    catalog.Achievement{Category: catalog.CategoryStreak, Tier: catalog.TierSilver},
			want: 45, // 30 x 1.5
		},
		{
			name: "derived mastery diamond",
			a:    catalog.Achievement{Category: catalog.CategoryMastery, Tier: catalog.TierDiamond},
			want: 250, // 50 x 5.0
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reward(tt.a); got != tt.want {
				t.Errorf("Reward() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluateSkipsUnlocked(t *testing.T) {
	defs := []catalog.Achievement{
		{ID: "a1", Requirement: catalog.Requirement{Kind: catalog.RequireTotalXP, Threshold: 100}},
		{ID: "a2", Requirement: catalog.Requirement{Kind: catalog.RequireTotalXP, Threshold: 200}},
	}
	in := Inputs{TotalXP: 300}

	updates, unlocks := Evaluate(defs, map[string]bool{"a1": true}, in, scanTime)

	if len(updates) != 1 || updates[0].AchievementID != "a2" {
		t.Errorf("updates = %+v, want only a2", updates)
	}
	if len(unlocks) != 1 || unlocks[0].AchievementID != "a2" {
		t.Errorf("unlocks = %+v, want only a2", unlocks)
	}
}

func TestEvaluateThreshold(t *testing.T) {
	defs := []catalog.Achievement{
		{ID: "exact", Requirement: catalog.Requirement{Kind: catalog.RequireLevel, Threshold: 5}},
		{ID: "above", Requirement: catalog.Requirement{Kind: catalog.RequireLevel, Threshold: 4}},
		{ID: "below", Requirement: catalog.Requirement{Kind: catalog.RequireLevel, Threshold: 6}},
	}
	in := Inputs{Level: 5}

	updates, unlocks := Evaluate(defs, nil, in, scanTime)

	if len(updates) != 3 {
		t.Fatalf("len(updates) = %d, want 3 (progress upserted even without unlock)", len(updates))
	}
	if len(unlocks) != 2 {
		t.Fatalf("len(unlocks) = %d, want 2", len(unlocks))
	}
	// Catalog order is preserved.
	if unlocks[0].AchievementID != "exact" || unlocks[1].AchievementID != "above" {
		t.Errorf("unlock order = [%s %s], want [exact above]", unlocks[0].AchievementID, unlocks[1].AchievementID)
	}
}

func TestEvaluateStampsTimeAndReward(t *testing.T) {
	defs := []catalog.Achievement{
		{
			ID:          "a1",
			Category:    catalog.CategorySpecial,
			Tier:        catalog.TierBronze,
			Requirement: catalog.Requirement{Kind: catalog.RequireItemsCompleted, Threshold: 1},
		},
	}
	in := Inputs{ItemsCompleted: 1}

	_, unlocks := Evaluate(defs, nil, in, scanTime)

	if len(unlocks) != 1 {
		t.Fatal("expected one unlock")
	}
	if !unlocks[0].UnlockedAt.Equal(scanTime) {
		t.Errorf("UnlockedAt = %v, want scan time", unlocks[0].UnlockedAt)
	}
	if unlocks[0].XPAwarded != 100 { // special base 100 x bronze 1.0
		t.Errorf("XPAwarded = %d, want 100", unlocks[0].XPAwarded)
	}
}
