package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/core/metrics"
	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

// ReviewServiceImpl implements the ReviewService interface.
type ReviewServiceImpl struct {
	cat       *catalog.Catalog
	reviews   *persistence.Repository[[]secondary.WeeklyReviewRecord]
	snapshots *persistence.Repository[secondary.ProgressSnapshot]
	now       func() time.Time
}

// NewReviewService creates a new ReviewService with injected dependencies.
func NewReviewService(
	cat *catalog.Catalog,
	reviews *persistence.Repository[[]secondary.WeeklyReviewRecord],
	snapshots *persistence.Repository[secondary.ProgressSnapshot],
) *ReviewServiceImpl {
	return &ReviewServiceImpl{cat: cat, reviews: reviews, snapshots: snapshots, now: time.Now}
}

// Add records a review for the current week. A second review in the same week
// replaces the text but keeps the original frozen stats snapshot.
func (s *ReviewServiceImpl) Add(ctx context.Context, wins, struggles, intention string) (*primary.ReviewView, error) {
	records, err := s.reviews.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly reviews: %w", err)
	}

	week := weekStart(s.now()).Format(dayFormat)

	var entry *secondary.WeeklyReviewRecord
	for i := range records {
		if records[i].WeekStart == week {
			entry = &records[i]
			break
		}
	}
	if entry == nil {
		snap, err := s.snapshots.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load progress: %w", err)
		}
		st, _ := stateFromSnapshot(snap, s.cat)
		totalXP := metrics.TotalXP(st, s.cat)

		records = append(records, secondary.WeeklyReviewRecord{
			ID:        nextSeqID("REV", len(records)),
			WeekStart: week,
			Snapshot: secondary.ReviewSnapshot{
				TotalXP:        totalXP,
				Level:          metrics.Level(totalXP),
				CurrentStreak:  st.CurrentStreak,
				ItemsCompleted: st.CompletedCount(),
			},
		})
		entry = &records[len(records)-1]
	}
	entry.Wins = wins
	entry.Struggles = struggles
	entry.Intention = intention

	_ = s.reviews.Save(ctx, records)

	return reviewView(*entry), nil
}

// List returns all reviews, newest first.
func (s *ReviewServiceImpl) List(ctx context.Context) ([]*primary.ReviewView, error) {
	records, err := s.reviews.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly reviews: %w", err)
	}

	views := make([]*primary.ReviewView, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		views = append(views, reviewView(records[i]))
	}
	return views, nil
}

func reviewView(r secondary.WeeklyReviewRecord) *primary.ReviewView {
	return &primary.ReviewView{
		ID:             r.ID,
		WeekStart:      r.WeekStart,
		Wins:           r.Wins,
		Struggles:      r.Struggles,
		Intention:      r.Intention,
		TotalXP:        r.Snapshot.TotalXP,
		Level:          r.Snapshot.Level,
		CurrentStreak:  r.Snapshot.CurrentStreak,
		ItemsCompleted: r.Snapshot.ItemsCompleted,
	}
}

// Ensure ReviewServiceImpl implements the interface
var _ primary.ReviewService = (*ReviewServiceImpl)(nil)
