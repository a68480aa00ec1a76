package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/core/challenge"
	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

// ChallengeServiceImpl implements the ChallengeService interface.
type ChallengeServiceImpl struct {
	cat          *catalog.Catalog
	challenges   *persistence.Repository[[]secondary.DailyChallengeRecord]
	snapshots    *persistence.Repository[secondary.ProgressSnapshot]
	achievements *AchievementServiceImpl // optional
	activityLog  secondary.ActivityLogRepository
	now          func() time.Time
}

// NewChallengeService creates a new ChallengeService with injected
// dependencies. achievements and activityLog may be nil.
func NewChallengeService(
	cat *catalog.Catalog,
	challenges *persistence.Repository[[]secondary.DailyChallengeRecord],
	snapshots *persistence.Repository[secondary.ProgressSnapshot],
	achievements *AchievementServiceImpl,
	activityLog secondary.ActivityLogRepository,
) *ChallengeServiceImpl {
	return &ChallengeServiceImpl{
		cat:          cat,
		challenges:   challenges,
		snapshots:    snapshots,
		achievements: achievements,
		activityLog:  activityLog,
		now:          time.Now,
	}
}

// ensureToday returns the full record list plus the indices of today's set,
// drawing and persisting a new set when none exists for the current day.
// Records from past days are kept for the all-time completion count.
func (s *ChallengeServiceImpl) ensureToday(ctx context.Context) ([]secondary.DailyChallengeRecord, []int, error) {
	records, err := s.challenges.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	today := challenge.DayKey(s.now())

	var todayIdx []int
	for i, r := range records {
		if r.Day == today {
			todayIdx = append(todayIdx, i)
		}
	}
	if len(todayIdx) > 0 {
		return records, todayIdx, nil
	}

	for _, tpl := range challenge.DrawForDay(s.cat.ChallengePool, s.now()) {
		records = append(records, secondary.DailyChallengeRecord{
			ID:         fmt.Sprintf("%s:%s", today, tpl.ID),
			TemplateID: tpl.ID,
			Day:        today,
			Title:      tpl.Title,
			Dimension:  string(tpl.Dimension),
			XP:         tpl.XP,
		})
		todayIdx = append(todayIdx, len(records)-1)
	}

	_ = s.challenges.Save(ctx, records)
	return records, todayIdx, nil
}

// Today ensures today's challenge set exists and returns it.
func (s *ChallengeServiceImpl) Today(ctx context.Context) ([]*primary.ChallengeView, error) {
	records, todayIdx, err := s.ensureToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily challenges: %w", err)
	}

	views := make([]*primary.ChallengeView, 0, len(todayIdx))
	for _, i := range todayIdx {
		views = append(views, challengeView(records[i]))
	}
	return views, nil
}

// Complete marks one of today's challenges done. Completion counts as streak
// activity, so the progress snapshot is touched too.
func (s *ChallengeServiceImpl) Complete(ctx context.Context, challengeID string) (*primary.ChallengeView, error) {
	records, todayIdx, err := s.ensureToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily challenges: %w", err)
	}

	var target *secondary.DailyChallengeRecord
	for _, i := range todayIdx {
		if records[i].ID == challengeID || records[i].TemplateID == challengeID {
			target = &records[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("challenge %s is not in today's set", challengeID)
	}

	if !target.Completed {
		now := s.now()
		target.Completed = true
		target.CompletedAt = &now
		_ = s.challenges.Save(ctx, records)

		snap, err := s.snapshots.Load(ctx)
		if err == nil {
			st, settings := stateFromSnapshot(snap, s.cat)
			st.RegisterActivity(now)
			_ = s.snapshots.Save(ctx, snapshotFromState(st, settings))
		}

		if s.activityLog != nil {
			_ = s.activityLog.Append(ctx, &secondary.ActivityRecord{
				Action:     secondary.ActionChallenge,
				EntityType: "challenge",
				EntityID:   target.TemplateID,
				Detail:     fmt.Sprintf("+%d XP", target.XP),
			})
		}

		if s.achievements != nil {
			if _, err := s.achievements.Check(ctx); err != nil {
				return nil, fmt.Errorf("failed to check achievements: %w", err)
			}
		}
	}

	return challengeView(*target), nil
}

// CompletedCount returns the all-time number of completed challenges.
func (s *ChallengeServiceImpl) CompletedCount(ctx context.Context) (int, error) {
	records, err := s.challenges.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load daily challenges: %w", err)
	}
	count := 0
	for _, r := range records {
		if r.Completed {
			count++
		}
	}
	return count, nil
}

func challengeView(r secondary.DailyChallengeRecord) *primary.ChallengeView {
	return &primary.ChallengeView{
		ID:        r.ID,
		Title:     r.Title,
		Dimension: r.Dimension,
		XP:        r.XP,
		Day:       r.Day,
		Completed: r.Completed,
	}
}

// Ensure ChallengeServiceImpl implements the interface
var _ primary.ChallengeService = (*ChallengeServiceImpl)(nil)
