package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

// MoodServiceImpl implements the MoodService interface.
type MoodServiceImpl struct {
	moods *persistence.Repository[[]secondary.MoodEntryRecord]
	now   func() time.Time
}

// NewMoodService creates a new MoodService with injected dependencies.
func NewMoodService(moods *persistence.Repository[[]secondary.MoodEntryRecord]) *MoodServiceImpl {
	return &MoodServiceImpl{moods: moods, now: time.Now}
}

// Log records today's mood. A second log on the same day replaces the first;
// the day keeps at most one entry.
func (s *MoodServiceImpl) Log(ctx context.Context, score int, note string) (*primary.MoodEntryView, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("mood score must be between 1 and 5, got %d", score)
	}

	records, err := s.moods.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}

	today := s.now().Format(dayFormat)

	var entry *secondary.MoodEntryRecord
	for i := range records {
		if records[i].Day == today {
			entry = &records[i]
			break
		}
	}
	if entry == nil {
		records = append(records, secondary.MoodEntryRecord{
			ID:  nextSeqID("MOOD", len(records)),
			Day: today,
		})
		entry = &records[len(records)-1]
	}
	entry.Score = score
	entry.Note = note

	_ = s.moods.Save(ctx, records)

	return moodView(*entry), nil
}

// History returns the most recent entries, newest first. limit <= 0 means all.
func (s *MoodServiceImpl) History(ctx context.Context, limit int) ([]*primary.MoodEntryView, error) {
	records, err := s.moods.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}

	var views []*primary.MoodEntryView
	for i := len(records) - 1; i >= 0; i-- {
		if limit > 0 && len(views) >= limit {
			break
		}
		views = append(views, moodView(records[i]))
	}
	return views, nil
}

// Summary aggregates the last seven days of entries.
func (s *MoodServiceImpl) Summary(ctx context.Context) (*primary.MoodSummary, error) {
	records, err := s.moods.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}

	summary := &primary.MoodSummary{ScoreCounts: make(map[int]int)}

	today := s.now().Format(dayFormat)
	weekAgo := s.now().AddDate(0, 0, -6).Format(dayFormat)

	weekSum, weekCount := 0, 0
	for _, r := range records {
		summary.Entries++
		summary.ScoreCounts[r.Score]++
		if r.Day > summary.LatestDay {
			summary.LatestDay = r.Day
			summary.LatestScore = r.Score
		}
		if r.Day == today {
			summary.HasMoodToday = true
		}
		if r.Day >= weekAgo {
			weekSum += r.Score
			weekCount++
		}
	}
	if weekCount > 0 {
		summary.WeekAverage = float64(weekSum) / float64(weekCount)
	}

	return summary, nil
}

func moodView(r secondary.MoodEntryRecord) *primary.MoodEntryView {
	return &primary.MoodEntryView{
		ID:    r.ID,
		Day:   r.Day,
		Score: r.Score,
		Note:  r.Note,
	}
}

// Ensure MoodServiceImpl implements the interface
var _ primary.MoodService = (*MoodServiceImpl)(nil)
