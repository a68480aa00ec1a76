package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/core/metrics"
	"github.com/example/lifexp/internal/core/progress"
	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

// ProgressServiceImpl implements the ProgressService interface.
type ProgressServiceImpl struct {
	cat          *catalog.Catalog
	snapshots    *persistence.Repository[secondary.ProgressSnapshot]
	achievements *AchievementServiceImpl // optional; scans after mutations when set
	activityLog  secondary.ActivityLogRepository
	now          func() time.Time
}

// NewProgressService creates a new ProgressService with injected dependencies.
// achievements and activityLog may be nil.
func NewProgressService(
	cat *catalog.Catalog,
	snapshots *persistence.Repository[secondary.ProgressSnapshot],
	achievements *AchievementServiceImpl,
	activityLog secondary.ActivityLogRepository,
) *ProgressServiceImpl {
	return &ProgressServiceImpl{
		cat:          cat,
		snapshots:    snapshots,
		achievements: achievements,
		activityLog:  activityLog,
		now:          time.Now,
	}
}

// loadState loads, sanitizes, and normalizes the progress aggregate.
func (s *ProgressServiceImpl) loadState(ctx context.Context) (*progress.State, secondary.UserSettings, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, secondary.UserSettings{}, err
	}
	st, settings := stateFromSnapshot(snap, s.cat)
	return st, settings, nil
}

// persist writes the snapshot through. Write failures are swallowed: the
// in-memory state stays authoritative for the session, per the best-effort
// persistence policy.
func (s *ProgressServiceImpl) persist(ctx context.Context, st *progress.State, settings secondary.UserSettings) {
	_ = s.snapshots.Save(ctx, snapshotFromState(st, settings))
}

func (s *ProgressServiceImpl) logActivity(ctx context.Context, action, entityType, entityID, detail string) {
	if s.activityLog == nil {
		return
	}
	_ = s.activityLog.Append(ctx, &secondary.ActivityRecord{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	})
}

// ListItems returns every catalog item with its completion state.
func (s *ProgressServiceImpl) ListItems(ctx context.Context) ([]*primary.ItemView, error) {
	st, _, err := s.loadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	weakest, hasWeakest := metrics.LowestDimension(st, s.cat)

	views := make([]*primary.ItemView, 0, len(s.cat.Items))
	for _, it := range s.cat.Items {
		views = append(views, itemView(it, st.IsCompleted(it.ID), hasWeakest && it.HasDimension(weakest)))
	}
	return views, nil
}

// ToggleItem flips completion of an item. Completing registers streak activity
// before persisting, then the achievement evaluator re-scans.
func (s *ProgressServiceImpl) ToggleItem(ctx context.Context, itemID string) (*primary.ToggleItemResult, error) {
	st, settings, err := s.loadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle item: %w", err)
	}

	levelBefore := metrics.Level(metrics.TotalXP(st, s.cat))

	// Unknown IDs are accepted: they become orphans dropped by the next
	// load's sanitation pass.
	completed := st.ToggleCompletion(itemID, s.now())
	s.persist(ctx, st, settings)

	action := secondary.ActionUncomplete
	if completed {
		action = secondary.ActionComplete
	}
	s.logActivity(ctx, action, "item", itemID, "")

	totalXP := metrics.TotalXP(st, s.cat)
	level := metrics.Level(totalXP)

	result := &primary.ToggleItemResult{
		ItemID:        itemID,
		Completed:     completed,
		TotalXP:       totalXP,
		Level:         level,
		LevelUp:       level > levelBefore,
		CurrentStreak: st.CurrentStreak,
	}

	if s.achievements != nil {
		check, err := s.achievements.Check(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check achievements: %w", err)
		}
		result.NewUnlocks = check.NewUnlocks
	}

	return result, nil
}

// ListArcs returns every arc with progress and start state.
func (s *ProgressServiceImpl) ListArcs(ctx context.Context) ([]*primary.ArcView, error) {
	st, _, err := s.loadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list arcs: %w", err)
	}

	views := make([]*primary.ArcView, 0, len(s.cat.Arcs))
	for _, arc := range s.cat.Arcs {
		views = append(views, arcView(st, arc))
	}
	return views, nil
}

// StartArc records today as the arc's start date, respecting the slot cap.
func (s *ProgressServiceImpl) StartArc(ctx context.Context, arcID string) (*primary.StartArcResult, error) {
	st, settings, err := s.loadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start arc: %w", err)
	}

	guard := progress.CanStartArc(progress.StartArcContext{
		ArcID:           arcID,
		ArcExists:       s.cat.HasArc(arcID),
		AlreadyStarted:  st.ArcStarted(arcID),
		InProgressCount: metrics.InProgressArcCount(st, s.cat),
		MaxConcurrent:   settings.MaxConcurrentArcs,
	})
	if !guard.Allowed {
		return &primary.StartArcResult{ArcID: arcID, Started: false, Reason: guard.Reason}, nil
	}

	alreadyStarted := st.ArcStarted(arcID)
	st.StartArc(arcID, s.now())
	s.persist(ctx, st, settings)

	if !alreadyStarted {
		s.logActivity(ctx, secondary.ActionArcStart, "arc", arcID, "")
	}

	return &primary.StartArcResult{ArcID: arcID, Started: true}, nil
}

// Status returns the full derived-metrics report.
func (s *ProgressServiceImpl) Status(ctx context.Context) (*primary.StatusReport, error) {
	st, _, err := s.loadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute status: %w", err)
	}

	totalXP := metrics.TotalXP(st, s.cat)
	weakest, hasWeakest := metrics.LowestDimension(st, s.cat)

	report := &primary.StatusReport{
		TotalXP:        totalXP,
		Level:          metrics.Level(totalXP),
		LevelProgress:  metrics.LevelProgress(totalXP),
		CurrentStreak:  st.CurrentStreak,
		BestStreak:     st.BestStreak,
		LastActiveDay:  st.LastActiveDay,
		ItemsCompleted: st.CompletedCount(),
		QuestsDone:     metrics.CompletedQuestCount(st, s.cat),
		ArcsDone:       metrics.CompletedArcCount(st, s.cat),
	}

	for _, standing := range metrics.DimensionStandings(st, s.cat) {
		report.Dimensions = append(report.Dimensions, &primary.DimensionView{
			Dimension:  string(standing.Dimension),
			EarnedXP:   standing.EarnedXP,
			PossibleXP: standing.PossibleXP,
			Ratio:      standing.Ratio,
			Weakest:    hasWeakest && standing.Dimension == weakest,
		})
	}

	return report, nil
}

// Suggestions returns the ranked quest board.
func (s *ProgressServiceImpl) Suggestions(ctx context.Context, limit int) ([]*primary.ItemView, error) {
	st, _, err := s.loadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute suggestions: %w", err)
	}

	weakest, hasWeakest := metrics.LowestDimension(st, s.cat)

	var views []*primary.ItemView
	for _, it := range metrics.SuggestNext(st, s.cat, limit) {
		views = append(views, itemView(it, false, hasWeakest && it.HasDimension(weakest)))
	}
	return views, nil
}

// Reset clears the field subset selected by scope.
func (s *ProgressServiceImpl) Reset(ctx context.Context, scope primary.ResetScope) error {
	st, settings, err := s.loadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}

	switch scope {
	case primary.ResetScopeAll:
		st.ResetAll()
	case primary.ResetScopeArcs:
		st.ResetArcsOnly(s.cat.QuestIDs())
	case primary.ResetScopeStreaks:
		st.ResetStreaksOnly()
	case primary.ResetScopeStats:
		st.ResetStatsOnly()
	default:
		return fmt.Errorf("unknown reset scope: %s", scope)
	}

	s.persist(ctx, st, settings)
	s.logActivity(ctx, secondary.ActionReset, "progress", string(scope), "")
	return nil
}

func itemView(it catalog.Item, completed, matchesWeakest bool) *primary.ItemView {
	dims := make([]string, 0, len(it.Dimensions))
	for _, d := range it.Dimensions {
		dims = append(dims, string(d))
	}
	return &primary.ItemView{
		ID:               it.ID,
		Title:            it.Title,
		Detail:           it.Detail,
		XP:               it.XP,
		Dimensions:       dims,
		Kind:             string(it.Kind),
		EstimatedMinutes: it.EstimatedMinutes,
		Premium:          it.Premium,
		Completed:        completed,
		MatchesWeakest:   matchesWeakest,
	}
}

func arcView(st *progress.State, arc catalog.Arc) *primary.ArcView {
	view := &primary.ArcView{
		ID:        arc.ID,
		Title:     arc.Title,
		Accent:    arc.Accent,
		Started:   st.ArcStarted(arc.ID),
		Progress:  metrics.ArcProgress(st, arc),
		Completed: metrics.ArcCompleted(st, arc),
	}
	if date, ok := st.ArcStartDates[arc.ID]; ok {
		view.StartedAt = &date
	}
	for _, ch := range arc.Chapters {
		done := 0
		for _, qid := range ch.QuestIDs {
			if st.IsCompleted(qid) {
				done++
			}
		}
		view.Chapters = append(view.Chapters, &primary.ChapterView{
			ID:       ch.ID,
			Title:    ch.Title,
			Total:    len(ch.QuestIDs),
			Done:     done,
			Progress: metrics.ChapterProgress(st, ch),
		})
	}
	return view
}

// Ensure ProgressServiceImpl implements the interface
var _ primary.ProgressService = (*ProgressServiceImpl)(nil)
