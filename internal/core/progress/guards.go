package progress

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// StartArcContext provides context for the arc-start guard.
type StartArcContext struct {
	ArcID           string
	ArcExists       bool
	AlreadyStarted  bool
	InProgressCount int // started arcs with progress < 1.0, excluding this one
	MaxConcurrent   int
}

// CanStartArc evaluates whether an arc can be started.
// Rules:
// - Arc must exist in the catalog
// - Already-started arcs may always "start" again (idempotent)
// - Otherwise the in-progress count must be below the cap
func CanStartArc(ctx StartArcContext) GuardResult {
	if !ctx.ArcExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("arc %s not found", ctx.ArcID),
		}
	}

	if ctx.AlreadyStarted {
		return GuardResult{Allowed: true}
	}

	if ctx.InProgressCount >= ctx.MaxConcurrent {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("already %d arcs in progress (max %d). Finish one before starting %s", ctx.InProgressCount, ctx.MaxConcurrent, ctx.ArcID),
		}
	}

	return GuardResult{Allowed: true}
}

// UnlockSkillContext provides context for the skill-unlock guard.
type UnlockSkillContext struct {
	NodeID           string
	NodeExists       bool
	AlreadyUnlocked  bool
	Level            int
	RequiredLevel    int
	MissingPrereqIDs []string
}

// CanUnlockSkill evaluates whether a skill node can be unlocked.
// Rules:
// - Node must exist and not already be unlocked
// - All prerequisite nodes must be unlocked
// - Level must meet the node's requirement
func CanUnlockSkill(ctx UnlockSkillContext) GuardResult {
	if !ctx.NodeExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("skill node %s not found", ctx.NodeID),
		}
	}

	if ctx.AlreadyUnlocked {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("skill node %s is already unlocked", ctx.NodeID),
		}
	}

	if len(ctx.MissingPrereqIDs) > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("skill node %s requires %v first", ctx.NodeID, ctx.MissingPrereqIDs),
		}
	}

	if ctx.Level < ctx.RequiredLevel {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("skill node %s requires level %d (current: %d)", ctx.NodeID, ctx.RequiredLevel, ctx.Level),
		}
	}

	return GuardResult{Allowed: true}
}
