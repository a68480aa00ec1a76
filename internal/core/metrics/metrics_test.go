package metrics

import (
	"testing"
	"time"

	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/core/progress"
)

// testCatalog builds a small fixture: two dimensions with items, one arc with
// two quests, and one dimension (love) with no items at all.
func testCatalog() *catalog.Catalog {
	items := []catalog.Item{
		{ID: "mind-a", XP: 30, Dimensions: []catalog.Dimension{catalog.DimensionMind}, Kind: catalog.KindTask, EstimatedMinutes: 20},
		{ID: "mind-b", XP: 10, Dimensions: []catalog.Dimension{catalog.DimensionMind}, Kind: catalog.KindDaily, EstimatedMinutes: 5},
		{ID: "body-a", XP: 50, Dimensions: []catalog.Dimension{catalog.DimensionBody}, Kind: catalog.KindHabit, EstimatedMinutes: 30},
		{ID: "quest-1", XP: 40, Dimensions: []catalog.Dimension{catalog.DimensionBody}, Kind: catalog.KindQuest, EstimatedMinutes: 60},
		{ID: "quest-2", XP: 40, Dimensions: []catalog.Dimension{catalog.DimensionMind}, Kind: catalog.KindQuest, EstimatedMinutes: 60},
	}
	arcs := []catalog.Arc{
		{
			ID: "arc-1",
			Chapters: []catalog.Chapter{
				{ID: "ch-1", QuestIDs: []string{"quest-1"}},
				{ID: "ch-2", QuestIDs: []string{"quest-2"}},
			},
		},
	}
	return catalog.Build(items, arcs, nil, nil, nil)
}

func TestTotalXP(t *testing.T) {
	cat := testCatalog()
	st := progress.NewState()

	if got := TotalXP(st, cat); got != 0 {
		t.Errorf("TotalXP(empty) = %d, want 0", got)
	}

	st.CompletedItemIDs["mind-a"] = true
	st.CompletedItemIDs["body-a"] = true
	st.CompletedItemIDs["ghost"] = true // not in catalog, contributes nothing

	if got := TotalXP(st, cat); got != 80 {
		t.Errorf("TotalXP = %d, want 80", got)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{0, 1},
		{119, 1},
		{120, 2},
		{240, 3},
		{-50, 1},
	}
	for _, tt := range tests {
		if got := Level(tt.totalXP); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	if got := LevelProgress(0); got != 0 {
		t.Errorf("LevelProgress(0) = %v, want 0", got)
	}
	if got := LevelProgress(60); got != 0.5 {
		t.Errorf("LevelProgress(60) = %v, want 0.5", got)
	}
	if got := LevelProgress(120); got != 0 {
		t.Errorf("LevelProgress(120) = %v, want 0 (fresh level)", got)
	}
}

func TestDimensionStandingsExcludesEmptyDimensions(t *testing.T) {
	cat := testCatalog()
	st := progress.NewState()

	standings := DimensionStandings(st, cat)
	for _, s := range standings {
		if s.Dimension == catalog.DimensionLove {
			t.Error("dimension with zero possible XP should be excluded")
		}
		if s.PossibleXP == 0 {
			t.Errorf("standing %s has zero possible XP", s.Dimension)
		}
	}
	// mind and body both carry items
	if len(standings) != 2 {
		t.Errorf("len(standings) = %d, want 2", len(standings))
	}
}

func TestLowestDimension(t *testing.T) {
	cat := testCatalog()
	st := progress.NewState()

	// All at 0: first in declaration order wins the tie.
	dim, ok := LowestDimension(st, cat)
	if !ok || dim != catalog.DimensionMind {
		t.Errorf("LowestDimension(empty) = %v/%v, want mind/true", dim, ok)
	}

	// Complete all mind items; body becomes weakest.
	st.CompletedItemIDs["mind-a"] = true
	st.CompletedItemIDs["mind-b"] = true
	st.CompletedItemIDs["quest-2"] = true
	dim, ok = LowestDimension(st, cat)
	if !ok || dim != catalog.DimensionBody {
		t.Errorf("LowestDimension = %v/%v, want body/true", dim, ok)
	}
}

func TestLowestDimensionEmptyCatalog(t *testing.T) {
	cat := catalog.Build(nil, nil, nil, nil, nil)
	if _, ok := LowestDimension(progress.NewState(), cat); ok {
		t.Error("LowestDimension on empty catalog should report ok=false")
	}
}

func TestArcProgressAndCompletion(t *testing.T) {
	cat := testCatalog()
	arc := cat.Arcs[0]
	st := progress.NewState()

	if got := ArcProgress(st, arc); got != 0 {
		t.Errorf("ArcProgress(empty) = %v, want 0", got)
	}
	if ArcCompleted(st, arc) {
		t.Error("empty arc should not be complete")
	}

	st.CompletedItemIDs["quest-1"] = true
	if got := ArcProgress(st, arc); got != 0.5 {
		t.Errorf("ArcProgress = %v, want 0.5", got)
	}

	st.CompletedItemIDs["quest-2"] = true
	if !ArcCompleted(st, arc) {
		t.Error("arc with all quests done should be complete")
	}
	if got := CompletedArcCount(st, cat); got != 1 {
		t.Errorf("CompletedArcCount = %d, want 1", got)
	}
	if got := CompletedQuestCount(st, cat); got != 2 {
		t.Errorf("CompletedQuestCount = %d, want 2", got)
	}
}

func TestArcCompletedEmptyArcNeverCompletes(t *testing.T) {
	arc := catalog.Arc{ID: "arc-empty"}
	if ArcCompleted(progress.NewState(), arc) {
		t.Error("arc with no quests must not count as complete")
	}
}

func TestInProgressArcCount(t *testing.T) {
	cat := testCatalog()
	st := progress.NewState()

	if got := InProgressArcCount(st, cat); got != 0 {
		t.Errorf("InProgressArcCount(nothing started) = %d, want 0", got)
	}

	st.StartArc("arc-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if got := InProgressArcCount(st, cat); got != 1 {
		t.Errorf("InProgressArcCount(started) = %d, want 1", got)
	}

	// Finishing the arc frees its slot.
	st.CompletedItemIDs["quest-1"] = true
	st.CompletedItemIDs["quest-2"] = true
	if got := InProgressArcCount(st, cat); got != 0 {
		t.Errorf("InProgressArcCount(finished) = %d, want 0", got)
	}
}

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		num, den int
		want     float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 2, 0.5},
		{3, 2, 1},  // clamped high
		{-1, 2, 0}, // clamped low
	}
	for _, tt := range tests {
		if got := safeRatio(tt.num, tt.den); got != tt.want {
			t.Errorf("safeRatio(%d, %d) = %v, want %v", tt.num, tt.den, got, tt.want)
		}
	}
}
