// Package progress contains the mutable progress aggregate and the pure rules
// that govern it: completion toggling, the streak state machine, arc slots,
// resets, and load-time sanitation.
package progress

import "time"

// MaxConcurrentArcs is the hard cap on arcs that may be in progress at once.
const MaxConcurrentArcs = 2

// State is the single source of truth for what the user has done.
type State struct {
	CompletedItemIDs map[string]bool
	CurrentStreak    int
	BestStreak       int
	LastActiveDay    *time.Time // day granularity, nil before first activity
	ArcStartDates    map[string]time.Time
}

// NewState returns an empty progress state.
func NewState() *State {
	return &State{
		CompletedItemIDs: make(map[string]bool),
		ArcStartDates:    make(map[string]time.Time),
	}
}

// IsCompleted reports whether the item ID is marked completed.
func (s *State) IsCompleted(itemID string) bool {
	return s.CompletedItemIDs[itemID]
}

// CompletedCount returns the number of completed item IDs.
func (s *State) CompletedCount() int {
	return len(s.CompletedItemIDs)
}

// ToggleCompletion flips membership of itemID and returns whether the item is
// now completed. On the transition to completed it registers activity for now.
// Unknown IDs are allowed; orphans are dropped by Sanitize on the next load.
func (s *State) ToggleCompletion(itemID string, now time.Time) bool {
	if s.CompletedItemIDs[itemID] {
		delete(s.CompletedItemIDs, itemID)
		return false
	}
	s.CompletedItemIDs[itemID] = true
	s.RegisterActivity(now)
	return true
}

// ArcStarted reports whether the arc has a recorded start date.
func (s *State) ArcStarted(arcID string) bool {
	_, ok := s.ArcStartDates[arcID]
	return ok
}

// StartArc records date as the arc's start. Already-started arcs keep their
// original date and return true. Callers enforce the concurrency cap via
// CanStartArc before calling.
func (s *State) StartArc(arcID string, date time.Time) bool {
	if _, ok := s.ArcStartDates[arcID]; ok {
		return true
	}
	s.ArcStartDates[arcID] = StartOfDay(date)
	return true
}

// ResetAll clears every field.
func (s *State) ResetAll() {
	s.CompletedItemIDs = make(map[string]bool)
	s.CurrentStreak = 0
	s.BestStreak = 0
	s.LastActiveDay = nil
	s.ArcStartDates = make(map[string]time.Time)
}

// ResetArcsOnly clears arc start dates and the completions of arc quests.
// questIDs is the set of item IDs that belong to any arc.
func (s *State) ResetArcsOnly(questIDs map[string]bool) {
	s.ArcStartDates = make(map[string]time.Time)
	for id := range s.CompletedItemIDs {
		if questIDs[id] {
			delete(s.CompletedItemIDs, id)
		}
	}
}

// ResetStreaksOnly clears the streak counters and the last active day.
func (s *State) ResetStreaksOnly() {
	s.CurrentStreak = 0
	s.BestStreak = 0
	s.LastActiveDay = nil
}

// ResetStatsOnly clears completions (and with them all derived XP and level
// stats) while keeping streaks and arc start dates.
func (s *State) ResetStatsOnly() {
	s.CompletedItemIDs = make(map[string]bool)
}

// Sanitize reconciles loaded state against the live catalog: unknown item and
// arc IDs are dropped, negative counters are clamped, and the bestStreak >=
// currentStreak invariant is restored.
func (s *State) Sanitize(hasItem func(string) bool, hasArc func(string) bool) {
	if s.CompletedItemIDs == nil {
		s.CompletedItemIDs = make(map[string]bool)
	}
	if s.ArcStartDates == nil {
		s.ArcStartDates = make(map[string]time.Time)
	}
	for id := range s.CompletedItemIDs {
		if !hasItem(id) {
			delete(s.CompletedItemIDs, id)
		}
	}
	for id := range s.ArcStartDates {
		if !hasArc(id) {
			delete(s.ArcStartDates, id)
		}
	}
	if s.CurrentStreak < 0 {
		s.CurrentStreak = 0
	}
	if s.BestStreak < s.CurrentStreak {
		s.BestStreak = s.CurrentStreak
	}
}
