package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/lifexp/internal/ports/primary"
)

// stubAchievementService returns canned values and records notifications.
type stubAchievementService struct {
	views    []*primary.AchievementView
	check    *primary.CheckResult
	notified []string
}

func (s *stubAchievementService) Check(ctx context.Context) (*primary.CheckResult, error) {
	return s.check, nil
}

func (s *stubAchievementService) List(ctx context.Context, includeSecret bool) ([]*primary.AchievementView, error) {
	return s.views, nil
}

func (s *stubAchievementService) MarkNotified(ctx context.Context, unlockIDs []string) error {
	s.notified = append(s.notified, unlockIDs...)
	return nil
}

// Ensure stubAchievementService implements the interface
var _ primary.AchievementService = (*stubAchievementService)(nil)

func TestAchievementAdapterList(t *testing.T) {
	stub := &stubAchievementService{
		views: []*primary.AchievementView{
			{ID: "ach-first", Title: "First Step", Icon: "👣", Tier: "bronze", XPReward: 25, Unlocked: true},
			{ID: "ach-streak3", Title: "Three In A Row", Icon: "🔥", Tier: "silver", XPReward: 45, Progress: 1, Threshold: 3},
			{ID: "ach-secret", Title: "Hidden Grind", Icon: "🗝", Tier: "gold", XPReward: 200, Secret: true},
		},
	}

	var buf bytes.Buffer
	adapter := NewAchievementAdapter(stub, &buf)

	if err := adapter.List(context.Background(), true); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"[x]", "(1/3)", "(secret)", "1/3 unlocked"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAchievementAdapterCheckMarksNotified(t *testing.T) {
	stub := &stubAchievementService{
		check: &primary.CheckResult{
			Scanned: 4,
			NewUnlocks: []*primary.UnlockView{
				{UnlockID: "UNLK-001", AchievementID: "ach-first", Title: "First Step", Icon: "👣", XPAwarded: 25},
			},
		},
	}

	var buf bytes.Buffer
	adapter := NewAchievementAdapter(stub, &buf)

	if err := adapter.Check(context.Background()); err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	if !strings.Contains(buf.String(), "First Step") {
		t.Errorf("unlock should be announced:\n%s", buf.String())
	}
	if len(stub.notified) != 1 || stub.notified[0] != "UNLK-001" {
		t.Errorf("notified = %v, want [UNLK-001]", stub.notified)
	}
}

func TestAchievementAdapterCheckNothingNew(t *testing.T) {
	stub := &stubAchievementService{check: &primary.CheckResult{Scanned: 4}}

	var buf bytes.Buffer
	adapter := NewAchievementAdapter(stub, &buf)

	if err := adapter.Check(context.Background()); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !strings.Contains(buf.String(), "nothing new") {
		t.Errorf("quiet scan should report nothing new:\n%s", buf.String())
	}
	if len(stub.notified) != 0 {
		t.Errorf("nothing should be marked notified, got %v", stub.notified)
	}
}
