package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// Store wraps the SQLite database holding users, submissions, engagements
// and runtime configuration. Every engine mutation is a Store write and
// every query a Store read; the engine itself keeps no state.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and
// ensures the schema exists. Safe to call on an existing database.
func Open(path string) (*Store, error) {
	conn, err := sql.Open(dbDriver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows a single writer; keeping one connection avoids
	// SQLITE_BUSY under concurrent event handlers.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := createTables(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &Store{db: conn}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
