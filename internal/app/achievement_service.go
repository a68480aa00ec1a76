package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/core/achievement"
	"github.com/example/lifexp/internal/core/metrics"
	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

// AchievementServiceImpl implements the AchievementService interface.
type AchievementServiceImpl struct {
	cat          *catalog.Catalog
	snapshots    *persistence.Repository[secondary.ProgressSnapshot]
	unlocked     *persistence.Repository[[]secondary.UnlockedAchievementRecord]
	progressRepo *persistence.Repository[map[string]secondary.AchievementProgressRecord]
	challenges   *persistence.Repository[[]secondary.DailyChallengeRecord]
	journal      *persistence.Repository[[]secondary.JournalEntryRecord]
	focus        *persistence.Repository[[]secondary.FocusSessionRecord]
	activityLog  secondary.ActivityLogRepository
	now          func() time.Time
}

// NewAchievementService creates a new AchievementService with injected
// dependencies. The tracker repositories feed the journalEntries,
// focusSessions, and challengesCompleted requirement kinds; any of them (and
// activityLog) may be nil, in which case the corresponding count reads 0.
func NewAchievementService(
	cat *catalog.Catalog,
	snapshots *persistence.Repository[secondary.ProgressSnapshot],
	unlocked *persistence.Repository[[]secondary.UnlockedAchievementRecord],
	progressRepo *persistence.Repository[map[string]secondary.AchievementProgressRecord],
	challenges *persistence.Repository[[]secondary.DailyChallengeRecord],
	journal *persistence.Repository[[]secondary.JournalEntryRecord],
	focus *persistence.Repository[[]secondary.FocusSessionRecord],
	activityLog secondary.ActivityLogRepository,
) *AchievementServiceImpl {
	return &AchievementServiceImpl{
		cat:          cat,
		snapshots:    snapshots,
		unlocked:     unlocked,
		progressRepo: progressRepo,
		challenges:   challenges,
		journal:      journal,
		focus:        focus,
		activityLog:  activityLog,
		now:          time.Now,
	}
}

// buildInputs assembles the evaluator's read-only metrics snapshot.
func (s *AchievementServiceImpl) buildInputs(ctx context.Context) (achievement.Inputs, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return achievement.Inputs{}, err
	}
	st, _ := stateFromSnapshot(snap, s.cat)

	totalXP := metrics.TotalXP(st, s.cat)

	in := achievement.Inputs{
		TotalXP:          totalXP,
		Level:            metrics.Level(totalXP),
		CurrentStreak:    st.CurrentStreak,
		BestStreak:       st.BestStreak,
		ItemsCompleted:   st.CompletedCount(),
		QuestsCompleted:  metrics.CompletedQuestCount(st, s.cat),
		ArcsCompleted:    metrics.CompletedArcCount(st, s.cat),
		CompletedItemIDs: st.CompletedItemIDs,
		DimensionCounts:  metrics.DimensionCompletedCounts(st, s.cat),
	}

	if s.challenges != nil {
		records, err := s.challenges.Load(ctx)
		if err != nil {
			return achievement.Inputs{}, err
		}
		for _, r := range records {
			if r.Completed {
				in.ChallengesCompleted++
			}
		}
	}

	if s.journal != nil {
		entries, err := s.journal.Load(ctx)
		if err != nil {
			return achievement.Inputs{}, err
		}
		in.JournalEntries = len(entries)
	}

	if s.focus != nil {
		sessions, err := s.focus.Load(ctx)
		if err != nil {
			return achievement.Inputs{}, err
		}
		for _, sess := range sessions {
			if sess.Completed {
				in.FocusSessions++
			}
		}
	}

	return in, nil
}

// Check runs the evaluator scan in catalog order, upserts progress counters,
// appends unlock records for newly qualified achievements (exactly once per
// achievement ID, ever), and persists the (unlocked, progress) pair.
func (s *AchievementServiceImpl) Check(ctx context.Context) (*primary.CheckResult, error) {
	in, err := s.buildInputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build achievement inputs: %w", err)
	}

	unlockedRecords, err := s.unlocked.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}

	unlockedSet := make(map[string]bool, len(unlockedRecords))
	for _, r := range unlockedRecords {
		unlockedSet[r.AchievementID] = true
	}

	progressMap, err := s.progressRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement progress: %w", err)
	}
	if progressMap == nil {
		progressMap = make(map[string]secondary.AchievementProgressRecord)
	}

	now := s.now()
	updates, unlocks := achievement.Evaluate(s.cat.Achievements, unlockedSet, in, now)

	for _, u := range updates {
		progressMap[u.AchievementID] = secondary.AchievementProgressRecord{
			ID:           u.AchievementID,
			CurrentValue: u.CurrentValue,
			LastUpdated:  u.LastUpdated,
		}
	}

	result := &primary.CheckResult{Scanned: len(updates)}
	for _, u := range unlocks {
		record := secondary.UnlockedAchievementRecord{
			ID:            nextSeqID("UNLK", len(unlockedRecords)),
			AchievementID: u.AchievementID,
			UnlockedAt:    u.UnlockedAt,
			XPAwarded:     u.XPAwarded,
			WasNotified:   false,
		}
		unlockedRecords = append(unlockedRecords, record)

		def, _ := s.cat.AchievementByID(u.AchievementID)
		result.NewUnlocks = append(result.NewUnlocks, &primary.UnlockView{
			UnlockID:      record.ID,
			AchievementID: u.AchievementID,
			Title:         def.Title,
			Icon:          def.Icon,
			Tier:          string(def.Tier),
			XPAwarded:     u.XPAwarded,
			UnlockedAt:    u.UnlockedAt,
		})

		if s.activityLog != nil {
			_ = s.activityLog.Append(ctx, &secondary.ActivityRecord{
				Action:     secondary.ActionUnlock,
				EntityType: "achievement",
				EntityID:   u.AchievementID,
				Detail:     fmt.Sprintf("+%d XP", u.XPAwarded),
			})
		}
	}

	// Best-effort persistence of the scan results.
	_ = s.unlocked.Save(ctx, unlockedRecords)
	_ = s.progressRepo.Save(ctx, progressMap)

	return result, nil
}

// List returns all achievements with unlock state and progress.
func (s *AchievementServiceImpl) List(ctx context.Context, includeSecret bool) ([]*primary.AchievementView, error) {
	unlockedRecords, err := s.unlocked.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}
	unlockedSet := make(map[string]bool, len(unlockedRecords))
	for _, r := range unlockedRecords {
		unlockedSet[r.AchievementID] = true
	}

	progressMap, err := s.progressRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement progress: %w", err)
	}

	var views []*primary.AchievementView
	for _, def := range s.cat.Achievements {
		isUnlocked := unlockedSet[def.ID]
		if def.Secret && !isUnlocked && !includeSecret {
			continue
		}
		views = append(views, &primary.AchievementView{
			ID:        def.ID,
			Title:     def.Title,
			Detail:    def.Detail,
			Icon:      def.Icon,
			Category:  string(def.Category),
			Tier:      string(def.Tier),
			XPReward:  achievement.Reward(def),
			Secret:    def.Secret,
			Unlocked:  isUnlocked,
			Progress:  progressMap[def.ID].CurrentValue,
			Threshold: def.Requirement.Threshold,
		})
	}
	return views, nil
}

// MarkNotified flips the notified flag on the given unlock record IDs.
func (s *AchievementServiceImpl) MarkNotified(ctx context.Context, unlockIDs []string) error {
	if len(unlockIDs) == 0 {
		return nil
	}

	records, err := s.unlocked.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load unlocked achievements: %w", err)
	}

	wanted := make(map[string]bool, len(unlockIDs))
	for _, id := range unlockIDs {
		wanted[id] = true
	}

	for i := range records {
		if wanted[records[i].ID] {
			records[i].WasNotified = true
		}
	}

	_ = s.unlocked.Save(ctx, records)
	return nil
}

// Ensure AchievementServiceImpl implements the interface
var _ primary.AchievementService = (*AchievementServiceImpl)(nil)
