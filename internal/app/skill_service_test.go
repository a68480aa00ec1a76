package app

import (
	"context"
	"testing"

	"github.com/example/lifexp/internal/ports/secondary"
)

func TestSkillListAvailability(t *testing.T) {
	s := newTestServices()

	views, err := s.skill.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("len = %d, want 2", len(views))
	}

	// At level 1, only the root node is reachable.
	if !views[0].Available || views[0].Unlocked {
		t.Errorf("sk-root: available=%v unlocked=%v, want available and locked", views[0].Available, views[0].Unlocked)
	}
	if views[1].Available {
		t.Error("sk-next should be blocked by level and prerequisite")
	}
}

func TestSkillUnlockChain(t *testing.T) {
	s := newTestServices()
	ctx := context.Background()

	result, err := s.skill.Unlock(ctx, "sk-root")
	if err != nil {
		t.Fatalf("Unlock(sk-root) error = %v", err)
	}
	if !result.Unlocked {
		t.Fatalf("sk-root blocked: %s", result.Reason)
	}

	// Repeat unlock is blocked, not an error.
	result, err = s.skill.Unlock(ctx, "sk-root")
	if err != nil {
		t.Fatalf("Unlock() repeat error = %v", err)
	}
	if result.Unlocked || result.Reason == "" {
		t.Errorf("repeat unlock = %+v, want blocked with reason", result)
	}

	// sk-next still needs level 2.
	result, err = s.skill.Unlock(ctx, "sk-next")
	if err != nil {
		t.Fatalf("Unlock(sk-next) error = %v", err)
	}
	if result.Unlocked {
		t.Error("sk-next should be blocked at level 1")
	}

	// 120 XP reaches level 2; the chain opens up.
	seedProgress(t, s, secondary.ProgressRecord{
		CompletedItemIDs: []string{"it-walk", "it-read", "it-save"},
	})
	result, err = s.skill.Unlock(ctx, "sk-next")
	if err != nil {
		t.Fatalf("Unlock(sk-next) at level 2 error = %v", err)
	}
	if !result.Unlocked {
		t.Errorf("sk-next blocked at level 2: %s", result.Reason)
	}

	views, err := s.skill.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, v := range views {
		if !v.Unlocked {
			t.Errorf("node %s should be unlocked", v.ID)
		}
	}
}

func TestSkillUnlockUnknownNode(t *testing.T) {
	s := newTestServices()

	result, err := s.skill.Unlock(context.Background(), "sk-ghost")
	if err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if result.Unlocked || result.Reason == "" {
		t.Errorf("unknown node = %+v, want blocked with reason", result)
	}
}
