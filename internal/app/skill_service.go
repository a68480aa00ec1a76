package app

import (
	"context"
	"fmt"

	"github.com/example/lifexp/internal/adapters/persistence"
	"github.com/example/lifexp/internal/catalog"
	"github.com/example/lifexp/internal/core/metrics"
	"github.com/example/lifexp/internal/core/progress"
	"github.com/example/lifexp/internal/ports/primary"
	"github.com/example/lifexp/internal/ports/secondary"
)

// SkillServiceImpl implements the SkillService interface.
type SkillServiceImpl struct {
	cat       *catalog.Catalog
	tree      *persistence.Repository[secondary.SkillTreeRecord]
	snapshots *persistence.Repository[secondary.ProgressSnapshot]
}

// NewSkillService creates a new SkillService with injected dependencies.
func NewSkillService(
	cat *catalog.Catalog,
	tree *persistence.Repository[secondary.SkillTreeRecord],
	snapshots *persistence.Repository[secondary.ProgressSnapshot],
) *SkillServiceImpl {
	return &SkillServiceImpl{cat: cat, tree: tree, snapshots: snapshots}
}

// level derives the current level from the progress snapshot.
func (s *SkillServiceImpl) level(ctx context.Context) (int, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return 0, err
	}
	st, _ := stateFromSnapshot(snap, s.cat)
	return metrics.Level(metrics.TotalXP(st, s.cat)), nil
}

// unlockedSet loads the unlocked node IDs, dropping IDs the catalog no longer
// knows about.
func (s *SkillServiceImpl) unlockedSet(ctx context.Context) (map[string]bool, error) {
	record, err := s.tree.Load(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(record.UnlockedNodeIDs))
	for _, id := range record.UnlockedNodeIDs {
		if _, ok := s.cat.SkillByID(id); ok {
			set[id] = true
		}
	}
	return set, nil
}

// List returns every node with unlock and availability state.
func (s *SkillServiceImpl) List(ctx context.Context) ([]*primary.SkillView, error) {
	unlocked, err := s.unlockedSet(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill tree: %w", err)
	}

	level, err := s.level(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	views := make([]*primary.SkillView, 0, len(s.cat.Skills))
	for _, node := range s.cat.Skills {
		guard := progress.CanUnlockSkill(progress.UnlockSkillContext{
			NodeID:           node.ID,
			NodeExists:       true,
			AlreadyUnlocked:  unlocked[node.ID],
			Level:            level,
			RequiredLevel:    node.RequiredLevel,
			MissingPrereqIDs: missingPrereqs(node, unlocked),
		})
		views = append(views, &primary.SkillView{
			ID:            node.ID,
			Title:         node.Title,
			Dimension:     string(node.Dimension),
			RequiredLevel: node.RequiredLevel,
			Prerequisites: node.Prerequisites,
			Unlocked:      unlocked[node.ID],
			Available:     guard.Allowed,
		})
	}
	return views, nil
}

// Unlock attempts to unlock a node. A blocked attempt is not an error; the
// result carries the guard's reason.
func (s *SkillServiceImpl) Unlock(ctx context.Context, nodeID string) (*primary.SkillUnlockResult, error) {
	unlocked, err := s.unlockedSet(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill tree: %w", err)
	}

	level, err := s.level(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	node, exists := s.cat.SkillByID(nodeID)

	guard := progress.CanUnlockSkill(progress.UnlockSkillContext{
		NodeID:           nodeID,
		NodeExists:       exists,
		AlreadyUnlocked:  unlocked[nodeID],
		Level:            level,
		RequiredLevel:    node.RequiredLevel,
		MissingPrereqIDs: missingPrereqs(node, unlocked),
	})
	if !guard.Allowed {
		return &primary.SkillUnlockResult{NodeID: nodeID, Unlocked: false, Reason: guard.Reason}, nil
	}

	unlocked[nodeID] = true

	record := secondary.SkillTreeRecord{UnlockedNodeIDs: make([]string, 0, len(unlocked))}
	// Persist in catalog order for stable output.
	for _, n := range s.cat.Skills {
		if unlocked[n.ID] {
			record.UnlockedNodeIDs = append(record.UnlockedNodeIDs, n.ID)
		}
	}
	_ = s.tree.Save(ctx, record)

	return &primary.SkillUnlockResult{NodeID: nodeID, Unlocked: true}, nil
}

func missingPrereqs(node catalog.SkillNode, unlocked map[string]bool) []string {
	var missing []string
	for _, id := range node.Prerequisites {
		if !unlocked[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// Ensure SkillServiceImpl implements the interface
var _ primary.SkillService = (*SkillServiceImpl)(nil)
