package db

// SchemaSQL is the complete schema for fresh lifexp installs.
//
// This is the single source of truth for the database schema. Tests use it via
// GetSchemaSQL() so they never drift from production.
//
// The store is deliberately key-value shaped: every tracker serializes its whole
// record list into one JSON blob under one key. Schema evolution happens at JSON
// decode time (missing fields take defaults), not via SQL migrations.
const SchemaSQL = `
-- Snapshots (one JSON blob per logical key)
CREATE TABLE IF NOT EXISTS snapshots (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Activity log (append-only audit trail of user actions)
CREATE TABLE IF NOT EXISTS activity_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	action TEXT NOT NULL CHECK(action IN ('complete', 'uncomplete', 'arc_start', 'unlock', 'reset', 'challenge', 'focus', 'write_failure')),
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	detail TEXT
);

CREATE INDEX IF NOT EXISTS idx_activity_log_timestamp ON activity_log(timestamp);
`

// GetSchemaSQL returns the authoritative schema SQL.
// Exists so tests share the exact production schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
