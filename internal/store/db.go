// Package store persists the artist catalog in a local SQLite database.
package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sqlx.DB
}

// NewSQLiteDB opens (creating if needed) the catalog database and
// applies the schema additively.
func NewSQLiteDB(dsn string) (*DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	// Set pragmas for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=30000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	s := &DB{db}
	if err := s.InitSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// InitSchema creates any missing tables. Existing rows are untouched.
func (db *DB) InitSchema() error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// RecreateSchema drops every catalog table and creates them empty.
// Destructive; only reached from an explicit reset.
func (db *DB) RecreateSchema() error {
	if _, err := db.Exec(DropSchema); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return db.InitSchema()
}

func (db *DB) Close() error {
	return db.DB.Close()
}
