// Package challenge draws the daily challenge set from the template pool.
// The draw is seeded by the calendar day so repeated calls on the same day
// produce the same set.
package challenge

import (
	"math/rand"
	"time"

	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/core/progress"
)

// PerDay is how many challenges are offered each day.
const PerDay = 3

// DrawForDay picks PerDay templates from the pool for the given day.
// Smaller pools are returned whole, in pool order.
func DrawForDay(pool []catalog.ChallengeTemplate, day time.Time) []catalog.ChallengeTemplate {
	if len(pool) <= PerDay {
		out := make([]catalog.ChallengeTemplate, len(pool))
		copy(out, pool)
		return out
	}

	rng := rand.New(rand.NewSource(daySeed(day)))
	picked := rng.Perm(len(pool))[:PerDay]

	out := make([]catalog.ChallengeTemplate, 0, PerDay)
	for _, idx := range picked {
		out = append(out, pool[idx])
	}
	return out
}

// DayKey formats the day as the stable YYYY-MM-DD key used in records.
func DayKey(t time.Time) string {
	return progress.StartOfDay(t).Format("2006-01-02")
}

func daySeed(t time.Time) int64 {
	d := progress.StartOfDay(t)
	return int64(d.Year())*10000 + int64(d.Month())*100 + int64(d.Day())
}
