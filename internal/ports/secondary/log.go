package secondary

import (
	"context"
	"time"
)

// Activity log actions.
const (
	ActionComplete   = "complete"
	ActionUncomplete = "uncomplete"
	ActionArcStart   = "arc_start"
	ActionUnlock     = "unlock"
	ActionReset      = "reset"
	ActionChallenge  = "challenge"
	ActionFocus      = "focus"
)

// ActivityLogRepository is the append-only audit trail of user actions.
// Entries are immutable; old entries can be pruned.
type ActivityLogRepository interface {
	// Append persists a new activity record.
	Append(ctx context.Context, record *ActivityRecord) error

	// List retrieves records matching the given filters, newest first.
	List(ctx context.Context, filters ActivityFilters) ([]*ActivityRecord, error)

	// PruneOlderThan deletes records older than the given number of days.
	// Returns the number of deleted records.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// ActivityRecord is one audit entry.
type ActivityRecord struct {
	ID         int64
	Timestamp  time.Time
	Action     string
	EntityType string
	EntityID   string
	Detail     string
}

// ActivityFilters contains filter options for querying the activity log.
type ActivityFilters struct {
	Action     string
	EntityType string
	Limit      int
}
