// Package metrics computes derived values from progress state and the content
// catalog. Every function is pure and recomputed on demand; callers tolerate
// O(catalog) work per call instead of a cache layer.
package metrics

import (
	"math"

	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/core/progress"
)

// XPPerLevel is the fixed-width leveling curve: 120 XP per level.
const XPPerLevel = 120

// TotalXP sums the XP of all completed catalog items.
func TotalXP(st *progress.State, cat *catalog.Catalog) int {
	total := 0
	for _, it := range cat.Items {
		if st.IsCompleted(it.ID) {
			total += it.XP
		}
	}
	return total
}

// Level returns the level for a total XP amount. Level is always >= 1.
func Level(totalXP int) int {
	lvl := totalXP/XPPerLevel + 1
	if lvl < 1 {
		return 1
	}
	return lvl
}

// LevelProgress returns progress through the current level in [0, 1].
func LevelProgress(totalXP int) float64 {
	lvl := Level(totalXP)
	return safeRatio(totalXP-(lvl-1)*XPPerLevel, XPPerLevel)
}

// DimensionStanding is the earned/possible XP position of one dimension.
type DimensionStanding struct {
	Dimension  catalog.Dimension
	EarnedXP   int
	PossibleXP int
	Ratio      float64
}

// DimensionStandings returns standings in catalog dimension order. Dimensions
// with zero possible XP are excluded from the result rather than reported as 0%.
func DimensionStandings(st *progress.State, cat *catalog.Catalog) []DimensionStanding {
	var standings []DimensionStanding
	for _, dim := range catalog.Dimensions() {
		earned, possible := 0, 0
		for _, it := range cat.Items {
			if !it.HasDimension(dim) {
				continue
			}
			possible += it.XP
			if st.IsCompleted(it.ID) {
				earned += it.XP
			}
		}
		if possible == 0 {
			continue
		}
		standings = append(standings, DimensionStanding{
			Dimension:  dim,
			EarnedXP:   earned,
			PossibleXP: possible,
			Ratio:      safeRatio(earned, possible),
		})
	}
	return standings
}

// LowestDimension returns the dimension with the lowest earned/possible ratio.
// Ties resolve to the first match in catalog dimension order; that tie-break is
// incidental, only its determinism is guaranteed. ok is false when no dimension
// has possible XP.
func LowestDimension(st *progress.State, cat *catalog.Catalog) (catalog.Dimension, bool) {
	standings := DimensionStandings(st, cat)
	if len(standings) == 0 {
		return "", false
	}
	lowest := standings[0]
	for _, s := range standings[1:] {
		if s.Ratio < lowest.Ratio {
			lowest = s
		}
	}
	return lowest.Dimension, true
}

// ChapterProgress returns completed/total quests for a chapter in [0, 1].
func ChapterProgress(st *progress.State, ch catalog.Chapter) float64 {
	done := 0
	for _, qid := range ch.QuestIDs {
		if st.IsCompleted(qid) {
			done++
		}
	}
	return safeRatio(done, len(ch.QuestIDs))
}

// ArcProgress returns completed/total quests across all chapters of an arc.
func ArcProgress(st *progress.State, arc catalog.Arc) float64 {
	done, total := 0, 0
	for _, ch := range arc.Chapters {
		total += len(ch.QuestIDs)
		for _, qid := range ch.QuestIDs {
			if st.IsCompleted(qid) {
				done++
			}
		}
	}
	return safeRatio(done, total)
}

// ArcCompleted reports whether every quest of the arc is completed.
func ArcCompleted(st *progress.State, arc catalog.Arc) bool {
	ids := arc.QuestIDs()
	if len(ids) == 0 {
		return false
	}
	return ArcProgress(st, arc) >= 1.0
}

// CompletedArcCount counts fully completed arcs.
func CompletedArcCount(st *progress.State, cat *catalog.Catalog) int {
	count := 0
	for _, arc := range cat.Arcs {
		if ArcCompleted(st, arc) {
			count++
		}
	}
	return count
}

// CompletedQuestCount counts completed items that belong to some arc.
func CompletedQuestCount(st *progress.State, cat *catalog.Catalog) int {
	count := 0
	for _, arc := range cat.Arcs {
		for _, qid := range arc.QuestIDs() {
			if st.IsCompleted(qid) {
				count++
			}
		}
	}
	return count
}

// InProgressArcCount counts started arcs whose progress is below 1.0.
// This is the number the arc slot cap applies to.
func InProgressArcCount(st *progress.State, cat *catalog.Catalog) int {
	count := 0
	for _, arc := range cat.Arcs {
		if !st.ArcStarted(arc.ID) {
			continue
		}
		if ArcProgress(st, arc) < 1.0 {
			count++
		}
	}
	return count
}

// DimensionCompletedCounts returns completed-item counts per dimension.
func DimensionCompletedCounts(st *progress.State, cat *catalog.Catalog) map[catalog.Dimension]int {
	counts := make(map[catalog.Dimension]int)
	for _, it := range cat.Items {
		if !st.IsCompleted(it.ID) {
			continue
		}
		for _, dim := range it.Dimensions {
			counts[dim]++
		}
	}
	return counts
}

// safeRatio divides num by den, returning 0 for an empty denominator and
// clamping the result to [0, 1]. Non-finite results collapse to 0.
func safeRatio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	r := float64(num) / float64(den)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
