package progress

import (
	"testing"
)

func TestCanStartArc(t *testing.T) {
	tests := []struct {
		name        string
		ctx         StartArcContext
		wantAllowed bool
	}{
		{
			name: "unknown arc is rejected",
			ctx: StartArcContext{
				ArcID:         "arc-ghost",
				ArcExists:     false,
				MaxConcurrent: 2,
			},
			wantAllowed: false,
		},
		{
			name: "fresh arc with free slot",
			ctx: StartArcContext{
				ArcID:           "arc-a",
				ArcExists:       true,
				InProgressCount: 1,
				MaxConcurrent:   2,
			},
			wantAllowed: true,
		},
		{
			name: "fresh arc with slots full",
			ctx: StartArcContext{
				ArcID:           "arc-a",
				ArcExists:       true,
				InProgressCount: 2,
				MaxConcurrent:   2,
			},
			wantAllowed: false,
		},
		{
			name: "already-started arc passes even when full",
			ctx: StartArcContext{
				ArcID:           "arc-a",
				ArcExists:       true,
				AlreadyStarted:  true,
				InProgressCount: 2,
				MaxConcurrent:   2,
			},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanStartArc(tt.ctx)

			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanStartArc() Allowed = %v, want %v (reason: %q)", result.Allowed, tt.wantAllowed, result.Reason)
			}
			if !tt.wantAllowed && result.Reason == "" {
				t.Error("blocked guard should carry a reason")
			}

			err := result.Error()
			if tt.wantAllowed && err != nil {
				t.Errorf("CanStartArc().Error() = %v, want nil", err)
			}
			if !tt.wantAllowed && err == nil {
				t.Error("CanStartArc().Error() = nil, want error")
			}
		})
	}
}

func TestCanUnlockSkill(t *testing.T) {
	tests := []struct {
		name        string
		ctx         UnlockSkillContext
		wantAllowed bool
	}{
		{
			name: "unknown node is rejected",
			ctx: UnlockSkillContext{
				NodeID:     "skill-ghost",
				NodeExists: false,
			},
			wantAllowed: false,
		},
		{
			name: "already unlocked is rejected",
			ctx: UnlockSkillContext{
				NodeID:          "skill-a",
				NodeExists:      true,
				AlreadyUnlocked: true,
				Level:           10,
			},
			wantAllowed: false,
		},
		{
			name: "missing prerequisites block",
			ctx: UnlockSkillContext{
				NodeID:           "skill-b",
				NodeExists:       true,
				Level:            10,
				RequiredLevel:    2,
				MissingPrereqIDs: []string{"skill-a"},
			},
			wantAllowed: false,
		},
		{
			name: "level too low blocks",
			ctx: UnlockSkillContext{
				NodeID:        "skill-b",
				NodeExists:    true,
				Level:         1,
				RequiredLevel: 3,
			},
			wantAllowed: false,
		},
		{
			name: "all conditions met",
			ctx: UnlockSkillContext{
				NodeID:        "skill-b",
				NodeExists:    true,
				Level:         3,
				RequiredLevel: 3,
			},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanUnlockSkill(tt.ctx)

			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanUnlockSkill() Allowed = %v, want %v (reason: %q)", result.Allowed, tt.wantAllowed, result.Reason)
			}
		})
	}
}
