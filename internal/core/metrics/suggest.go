package metrics

import (
	"sort"

	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/core/progress"
)

// SuggestNext ranks uncompleted items for the quest board: what should the
// user do next. The key order is contractual:
//
//  1. items matching the weakest dimension first
//  2. kind priority ascending
//  3. XP descending
//  4. estimated minutes ascending
//
// The sort is stable, so remaining ties fall back to catalog declaration order.
// limit <= 0 returns the full ranking.
func SuggestNext(st *progress.State, cat *catalog.Catalog, limit int) []catalog.Item {
	weakest, hasWeakest := LowestDimension(st, cat)

	var candidates []catalog.Item
	for _, it := range cat.Items {
		if st.IsCompleted(it.ID) {
			continue
		}
		candidates = append(candidates, it)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if hasWeakest {
			am, bm := a.HasDimension(weakest), b.HasDimension(weakest)
			if am != bm {
				return am
			}
		}
		if ap, bp := a.Kind.Priority(), b.Kind.Priority(); ap != bp {
			return ap < bp
		}
		if a.XP != b.XP {
			return a.XP > b.XP
		}
		return a.EstimatedMinutes < b.EstimatedMinutes
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
