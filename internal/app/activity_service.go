package app

import (
	"context"
	"fmt"

	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

// ActivityServiceImpl implements the ActivityService interface.
type ActivityServiceImpl struct {
	log secondary.ActivityLogRepository
}

// NewActivityService creates a new ActivityService with injected dependencies.
func NewActivityService(log secondary.ActivityLogRepository) *ActivityServiceImpl {
	return &ActivityServiceImpl{log: log}
}

// List returns recent activity, newest first.
func (s *ActivityServiceImpl) List(ctx context.Context, limit int) ([]*primary.ActivityView, error) {
	records, err := s.log.List(ctx, secondary.ActivityFilters{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	views := make([]*primary.ActivityView, 0, len(records))
	for _, r := range records {
		views = append(views, &primary.ActivityView{
			ID:         r.ID,
			Timestamp:  r.Timestamp,
			Action:     r.Action,
			EntityType: r.EntityType,
			EntityID:   r.EntityID,
			Detail:     r.Detail,
		})
	}
	return views, nil
}

// Prune deletes entries older than the given number of days.
func (s *ActivityServiceImpl) Prune(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("prune days must be positive, got %d", days)
	}
	deleted, err := s.log.PruneOlderThan(ctx, days)
	if err != nil {
		return 0, fmt.Errorf("failed to prune activity log: %w", err)
	}
	return deleted, nil
}

// Ensure ActivityServiceImpl implements the interface
var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
