// Package app implements the primary ports: services orchestrating the core
// domain logic, the content catalog, and persistence.
package app

import (
	"fmt"
	"time"

	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/core/progress"
	"github.com/example/lifexp/internal/ports/secondary"
)

// dayFormat is the day-granularity date layout used in persisted records.
const dayFormat = "2006-01-02"

// stateFromSnapshot rebuilds the progress aggregate from a persisted snapshot,
// sanitizing against the live catalog and normalizing settings. A zero-value
// snapshot (fresh install, corrupt blob) yields an empty state with defaults.
func stateFromSnapshot(snap secondary.ProgressSnapshot, cat *catalog.Catalog) (*progress.State, secondary.UserSettings) {
	st := progress.NewState()

	for _, id := range snap.Progress.CompletedItemIDs {
		st.CompletedItemIDs[id] = true
	}
	st.CurrentStreak = snap.Progress.CurrentStreak
	st.BestStreak = snap.Progress.BestStreak

	if snap.Progress.LastActiveDay != "" {
		if day, err := time.ParseInLocation(dayFormat, snap.Progress.LastActiveDay, time.Local); err == nil {
			st.LastActiveDay = &day
		}
	}

	for arcID, raw := range snap.Progress.ArcStartDates {
		if date, err := time.ParseInLocation(dayFormat, raw, time.Local); err == nil {
			st.ArcStartDates[arcID] = date
		}
	}

	st.Sanitize(cat.HasItem, cat.HasArc)

	settings := snap.Settings
	settings.Normalize(progress.MaxConcurrentArcs)

	return st, settings
}

// snapshotFromState serializes the aggregate back into the persisted form.
func snapshotFromState(st *progress.State, settings secondary.UserSettings) secondary.ProgressSnapshot {
	record := secondary.ProgressRecord{
		CompletedItemIDs: make([]string, 0, len(st.CompletedItemIDs)),
		CurrentStreak:    st.CurrentStreak,
		BestStreak:       st.BestStreak,
	}

	for id := range st.CompletedItemIDs {
		record.CompletedItemIDs = append(record.CompletedItemIDs, id)
	}

	if st.LastActiveDay != nil {
		record.LastActiveDay = st.LastActiveDay.Format(dayFormat)
	}

	if len(st.ArcStartDates) > 0 {
		record.ArcStartDates = make(map[string]string, len(st.ArcStartDates))
		for arcID, date := range st.ArcStartDates {
			record.ArcStartDates[arcID] = date.Format(dayFormat)
		}
	}

	return secondary.ProgressSnapshot{
		Version:  secondary.SnapshotVersion,
		Progress: record,
		Settings: settings,
	}
}

// nextSeqID generates sequential record IDs like "JRN-004" from a count.
func nextSeqID(prefix string, count int) string {
	return fmt.Sprintf("%s-%03d", prefix, count+1)
}

// weekStart returns the Monday of t's week at day granularity.
func weekStart(t time.Time) time.Time {
	day := progress.StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}
