package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

// JournalServiceImpl implements the JournalService interface.
type JournalServiceImpl struct {
	entries      *persistence.Repository[[]secondary.JournalEntryRecord]
	achievements *AchievementServiceImpl // optional
	now          func() time.Time
}

// NewJournalService creates a new JournalService with injected dependencies.
// achievements may be nil.
func NewJournalService(
	entries *persistence.Repository[[]secondary.JournalEntryRecord],
	achievements *AchievementServiceImpl,
) *JournalServiceImpl {
	return &JournalServiceImpl{entries: entries, achievements: achievements, now: time.Now}
}

// Add appends a journal entry. moodScore 0 means "not recorded".
func (s *JournalServiceImpl) Add(ctx context.Context, title, body string, moodScore int) (*primary.JournalEntryView, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("journal entry title is required")
	}
	if moodScore != 0 && (moodScore < 1 || moodScore > 5) {
		return nil, fmt.Errorf("mood score must be between 1 and 5, got %d", moodScore)
	}

	records, err := s.entries.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}

	record := secondary.JournalEntryRecord{
		ID:        nextSeqID("JRN", len(records)),
		CreatedAt: s.now(),
		Title:     title,
		Body:      strings.TrimSpace(body),
		MoodScore: moodScore,
	}
	records = append(records, record)
	_ = s.entries.Save(ctx, records)

	if s.achievements != nil {
		if _, err := s.achievements.Check(ctx); err != nil {
			return nil, fmt.Errorf("failed to check achievements: %w", err)
		}
	}

	return journalView(record), nil
}

// List returns the most recent entries, newest first. limit <= 0 means all.
func (s *JournalServiceImpl) List(ctx context.Context, limit int) ([]*primary.JournalEntryView, error) {
	records, err := s.entries.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}

	var views []*primary.JournalEntryView
	for i := len(records) - 1; i >= 0; i-- {
		if limit > 0 && len(views) >= limit {
			break
		}
		views = append(views, journalView(records[i]))
	}
	return views, nil
}

// Count returns the all-time entry count.
func (s *JournalServiceImpl) Count(ctx context.Context) (int, error) {
	records, err := s.entries.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load journal entries: %w", err)
	}
	return len(records), nil
}

func journalView(r secondary.JournalEntryRecord) *primary.JournalEntryView {
	return &primary.JournalEntryView{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Title:     r.Title,
		Body:      r.Body,
		MoodScore: r.MoodScore,
	}
}

// Ensure JournalServiceImpl implements the interface
var _ primary.JournalService = (*JournalServiceImpl)(nil)
