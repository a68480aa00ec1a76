package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/lifexp/internal/ports/secondary"
)

// ActivityLogRepository implements secondary.ActivityLogRepository with SQLite.
type ActivityLogRepository struct {
	db *sql.DB
}

// NewActivityLogRepository creates a new SQLite activity log repository.
func NewActivityLogRepository(db *sql.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Append persists a new activity record.
func (r *ActivityLogRepository) Append(ctx context.Context, record *secondary.ActivityRecord) error {
	var detail sql.NullString
	if record.Detail != "" {
		detail = sql.NullString{String: record.Detail, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO activity_log (action, entity_type, entity_id, detail) VALUES (?, ?, ?, ?)",
		record.Action, record.EntityType, record.EntityID, detail,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity record: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		record.ID = id
	}
	return nil
}

// List retrieves records matching the given filters, newest first.
func (r *ActivityLogRepository) List(ctx context.Context, filters secondary.ActivityFilters) ([]*secondary.ActivityRecord, error) {
	query := "SELECT id, timestamp, action, entity_type, entity_id, detail FROM activity_log WHERE 1=1"
	args := []any{}

	if filters.Action != "" {
		query += " AND action = ?"
		args = append(args, filters.Action)
	}

	if filters.EntityType != "" {
		query += " AND entity_type = ?"
		args = append(args, filters.EntityType)
	}

	query += " ORDER BY id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity records: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ActivityRecord
	for rows.Next() {
		var detail sql.NullString
		record := &secondary.ActivityRecord{}
		if err := rows.Scan(&record.ID, &record.Timestamp, &record.Action, &record.EntityType, &record.EntityID, &detail); err != nil {
			return nil, fmt.Errorf("failed to scan activity record: %w", err)
		}
		record.Detail = detail.String
		records = append(records, record)
	}

	return records, nil
}

// PruneOlderThan deletes records older than the given number of days.
func (r *ActivityLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM activity_log WHERE timestamp < datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune activity records: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return int(rowsAffected), nil
}

// Ensure ActivityLogRepository implements the interface
var _ secondary.ActivityLogRepository = (*ActivityLogRepository)(nil)
