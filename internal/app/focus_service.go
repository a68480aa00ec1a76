package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/core/progress"
	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

// FocusServiceImpl implements the FocusService interface.
type FocusServiceImpl struct {
	sessions     *persistence.Repository[[]secondary.FocusSessionRecord]
	settings     *persistence.Repository[secondary.FocusSettingsRecord]
	achievements *AchievementServiceImpl // optional
	activityLog  secondary.ActivityLogRepository
	now          func() time.Time
}

// NewFocusService creates a new FocusService with injected dependencies.
// achievements and activityLog may be nil.
func NewFocusService(
	sessions *persistence.Repository[[]secondary.FocusSessionRecord],
	settings *persistence.Repository[secondary.FocusSettingsRecord],
	achievements *AchievementServiceImpl,
	activityLog secondary.ActivityLogRepository,
) *FocusServiceImpl {
	return &FocusServiceImpl{
		sessions:     sessions,
		settings:     settings,
		achievements: achievements,
		activityLog:  activityLog,
		now:          time.Now,
	}
}

// Settings returns the focus configuration with defaults applied.
func (s *FocusServiceImpl) Settings(ctx context.Context) (*primary.FocusSettingsView, error) {
	record, err := s.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load focus settings: %w", err)
	}
	record.Normalize()
	return focusSettingsView(record), nil
}

// UpdateSettings overwrites the focus configuration. Out-of-range values fall
// back to the defaults via normalization.
func (s *FocusServiceImpl) UpdateSettings(ctx context.Context, workMinutes, breakMinutes, dailyGoal int) (*primary.FocusSettingsView, error) {
	record := secondary.FocusSettingsRecord{
		WorkMinutes:  workMinutes,
		BreakMinutes: breakMinutes,
		DailyGoal:    dailyGoal,
	}
	record.Normalize()

	if err := s.settings.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save focus settings: %w", err)
	}
	return focusSettingsView(record), nil
}

// Record stores a finished (or abandoned) session.
func (s *FocusServiceImpl) Record(ctx context.Context, minutes int, completed bool) (*primary.FocusSessionView, error) {
	if minutes <= 0 {
		return nil, fmt.Errorf("session minutes must be positive, got %d", minutes)
	}

	records, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load focus sessions: %w", err)
	}

	record := secondary.FocusSessionRecord{
		ID:        nextSeqID("FOCUS", len(records)),
		StartedAt: s.now(),
		Minutes:   minutes,
		Completed: completed,
	}
	records = append(records, record)
	_ = s.sessions.Save(ctx, records)

	if completed && s.activityLog != nil {
		_ = s.activityLog.Append(ctx, &secondary.ActivityRecord{
			Action:     secondary.ActionFocus,
			EntityType: "focus",
			EntityID:   record.ID,
			Detail:     fmt.Sprintf("%d min", minutes),
		})
	}

	if completed && s.achievements != nil {
		if _, err := s.achievements.Check(ctx); err != nil {
			return nil, fmt.Errorf("failed to check achievements: %w", err)
		}
	}

	return focusSessionView(record), nil
}

// Stats summarizes the session history.
func (s *FocusServiceImpl) Stats(ctx context.Context) (*primary.FocusStats, error) {
	records, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load focus sessions: %w", err)
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load focus settings: %w", err)
	}
	settings.Normalize()

	today := progress.StartOfDay(s.now())

	stats := &primary.FocusStats{
		TotalSessions: len(records),
		DailyGoal:     settings.DailyGoal,
	}
	for _, r := range records {
		stats.TotalMinutes += r.Minutes
		if !r.Completed {
			continue
		}
		stats.CompletedSessions++
		if progress.StartOfDay(r.StartedAt).Equal(today) {
			stats.CompletedToday++
		}
	}
	return stats, nil
}

func focusSettingsView(r secondary.FocusSettingsRecord) *primary.FocusSettingsView {
	return &primary.FocusSettingsView{
		WorkMinutes:  r.WorkMinutes,
		BreakMinutes: r.BreakMinutes,
		DailyGoal:    r.DailyGoal,
	}
}

func focusSessionView(r secondary.FocusSessionRecord) *primary.FocusSessionView {
	return &primary.FocusSessionView{
		ID:        r.ID,
		StartedAt: r.StartedAt,
		Minutes:   r.Minutes,
		Completed: r.Completed,
	}
}

// Ensure FocusServiceImpl implements the interface
var _ primary.FocusService = (*FocusServiceImpl)(nil)
