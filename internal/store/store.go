// Package store is the local persistence layer: three independent
// collections (profile, leads, news) backed by a single SQLite file.
// The profile is a single-row table replaced by assignment; leads and
// news are bulk-replaced together on refresh and individually patched
// for status and outreach changes.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and initializes the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS profile (
			slot             INTEGER PRIMARY KEY CHECK (slot = 1),
			id               TEXT NOT NULL,
			file_names       TEXT NOT NULL,
			ranked_keywords  TEXT NOT NULL,
			summary          TEXT NOT NULL,
			ts               INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS leads (
			id                TEXT PRIMARY KEY,
			company_name      TEXT NOT NULL,
			website           TEXT,
			description       TEXT,
			ai_summary        TEXT,
			employees         TEXT,
			funding           TEXT NOT NULL,
			matched_keywords  TEXT NOT NULL,
			poc               TEXT NOT NULL,
			fit_statement     TEXT,
			contextual_links  TEXT NOT NULL,
			outreach_email    TEXT,
			outreach_linkedin TEXT,
			status            TEXT NOT NULL,
			ts                INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
		CREATE INDEX IF NOT EXISTS idx_leads_ts ON leads(ts);
		CREATE TABLE IF NOT EXISTS news (
			id           TEXT PRIMARY KEY,
			title        TEXT NOT NULL,
			source       TEXT,
			url          TEXT NOT NULL,
			summary      TEXT,
			open_access  INTEGER NOT NULL,
			type         TEXT NOT NULL,
			topic        TEXT,
			jurisdiction TEXT,
			ts           INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_news_ts ON news(ts);
	`)
	return err
}
