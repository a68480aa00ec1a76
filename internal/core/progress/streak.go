package progress

import "time"

// StartOfDay truncates t to calendar midnight in t's location. Streak
// continuity is evaluated in start-of-day units; time of day is irrelevant.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// RegisterActivity advances the streak state machine for activity at time t.
//
// Transitions, with L = previous active day and D = StartOfDay(t):
//   - L nil            -> currentStreak = 1
//   - D == L           -> no change (same-day activity is idempotent)
//   - D == L + 1 day   -> currentStreak + 1
//   - anything else    -> currentStreak = 1 (gaps and backwards clocks both hard-reset)
//
// After every transition bestStreak is raised to at least currentStreak and
// lastActiveDay becomes D.
func (s *State) RegisterActivity(t time.Time) {
	day := StartOfDay(t)

	switch {
	case s.LastActiveDay == nil:
		s.CurrentStreak = 1
	case day.Equal(*s.LastActiveDay):
		// Same calendar day: streak already counted.
	case day.Equal(s.LastActiveDay.AddDate(0, 0, 1)):
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}

	if s.BestStreak < s.CurrentStreak {
		s.BestStreak = s.CurrentStreak
	}
	s.LastActiveDay = &day
}
