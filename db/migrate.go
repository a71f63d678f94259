package db

import (
	"database/sql"
	"fmt"
)

// createTables creates the necessary tables and indexes if they don't exist.
func createTables(conn *sql.DB) error {
	// SQL statement to create the 'users' table.
	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		total_points INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL DEFAULT (strftime('%s','now'))
	);`

	// SQL statement to create the 'submissions' table. A user's active
	// submission is the row with MAX(id) for that user.
	createSubmissionsTableSQL := `
	CREATE TABLE IF NOT EXISTS submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		link TEXT NOT NULL,
		message_id TEXT NOT NULL DEFAULT '',
		channel_id TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (user_id) REFERENCES users (user_id)
	);`

	// SQL statement to create the 'engagements' table. The unique index is
	// the authority on the one-edge-per-pair invariant; RecordEngagement
	// relies on it for its atomic check-and-insert.
	createEngagementsTableSQL := `
	CREATE TABLE IF NOT EXISTS engagements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		engager_id TEXT NOT NULL,
		target_submission_id INTEGER NOT NULL,
		engaged_at INTEGER NOT NULL,
		FOREIGN KEY (engager_id) REFERENCES users (user_id),
		FOREIGN KEY (target_submission_id) REFERENCES submissions (id)
	);`

	// SQL statement to create the 'configs' key/value table.
	createConfigsTableSQL := `
	CREATE TABLE IF NOT EXISTS configs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	indexSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_submissions_user ON submissions (user_id, id DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_message ON submissions (channel_id, message_id);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_engagements_pair ON engagements (engager_id, target_submission_id);`,
	}

	for _, stmt := range []string{
		createUsersTableSQL,
		createSubmissionsTableSQL,
		createEngagementsTableSQL,
		createConfigsTableSQL,
	} {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	for _, stmt := range indexSQL {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
	}

	return nil
}
