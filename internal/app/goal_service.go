package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

// GoalServiceImpl implements the GoalService interface.
type GoalServiceImpl struct {
	goals *persistence.Repository[[]secondary.PersonalGoalRecord]
	now   func() time.Time
}

// NewGoalService creates a new GoalService with injected dependencies.
func NewGoalService(goals *persistence.Repository[[]secondary.PersonalGoalRecord]) *GoalServiceImpl {
	return &GoalServiceImpl{goals: goals, now: time.Now}
}

// Add creates a goal with a target count.
func (s *GoalServiceImpl) Add(ctx context.Context, title, dimension string, targetCount int) (*primary.GoalView, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("goal title is required")
	}
	if targetCount <= 0 {
		return nil, fmt.Errorf("goal target must be positive, got %d", targetCount)
	}

	records, err := s.goals.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	record := secondary.PersonalGoalRecord{
		ID:          nextSeqID("GOAL", len(records)),
		Title:       title,
		Dimension:   dimension,
		TargetCount: targetCount,
		CreatedAt:   s.now(),
	}
	records = append(records, record)
	_ = s.goals.Save(ctx, records)

	return goalView(record), nil
}

// List returns all goals, incomplete first, then by creation order.
func (s *GoalServiceImpl) List(ctx context.Context) ([]*primary.GoalView, error) {
	records, err := s.goals.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	sorted := make([]secondary.PersonalGoalRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		iDone := sorted[i].CompletedAt != nil
		jDone := sorted[j].CompletedAt != nil
		return !iDone && jDone
	})

	views := make([]*primary.GoalView, 0, len(sorted))
	for _, r := range sorted {
		views = append(views, goalView(r))
	}
	return views, nil
}

// Bump increments a goal's counter, clamping at the target. Reaching the
// target stamps the completion time.
func (s *GoalServiceImpl) Bump(ctx context.Context, goalID string) (*primary.GoalView, error) {
	records, err := s.goals.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	var target *secondary.PersonalGoalRecord
	for i := range records {
		if records[i].ID == goalID {
			target = &records[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("goal %s not found", goalID)
	}

	if target.CurrentCount < target.TargetCount {
		target.CurrentCount++
		if target.CurrentCount >= target.TargetCount && target.CompletedAt == nil {
			now := s.now()
			target.CompletedAt = &now
		}
		_ = s.goals.Save(ctx, records)
	}

	return goalView(*target), nil
}

func goalView(r secondary.PersonalGoalRecord) *primary.GoalView {
	return &primary.GoalView{
		ID:           r.ID,
		Title:        r.Title,
		Dimension:    r.Dimension,
		TargetCount:  r.TargetCount,
		CurrentCount: r.CurrentCount,
		Completed:    r.CompletedAt != nil,
		CompletedAt:  r.CompletedAt,
	}
}

// Ensure GoalServiceImpl implements the interface
var _ primary.GoalService = (*GoalServiceImpl)(nil)
