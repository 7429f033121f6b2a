// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/positions/positions.go
// Summary: SQLite store remembering the last scroll offset per file.

package positions

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS positions (
	path       TEXT PRIMARY KEY,
	offset     REAL NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// Store persists per-file scroll positions so reopening a file lands where
// the reader left off.
type Store struct {
	db *sql.DB
}

// Open creates or opens the positions database at dbPath, creating parent
// directories as needed.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("positions: create directory: %w", err)
	}

	dsn := dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("positions: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("positions: connect: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("positions: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the saved offset for a path. ok is false when the path has no
// saved position.
func (s *Store) Get(path string) (offset float64, ok bool, err error) {
	err = s.db.QueryRow("SELECT offset FROM positions WHERE path = ?", path).Scan(&offset)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("positions: get %s: %w", path, err)
	}
	return offset, true, nil
}

// Put saves the offset for a path, replacing any earlier value.
func (s *Store) Put(path string, offset float64) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO positions (path, offset, updated_at) VALUES (?, ?, ?)",
		path, offset, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("positions: put %s: %w", path, err)
	}
	return nil
}

// Forget removes the saved position for a path.
func (s *Store) Forget(path string) error {
	if _, err := s.db.Exec("DELETE FROM positions WHERE path = ?", path); err != nil {
		return fmt.Errorf("positions: forget %s: %w", path, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
