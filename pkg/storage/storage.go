// Package storage persists a history of completed analyses in SQLite.
// Detection itself never touches the database; recording is best-effort
// and owned by the callers.
package storage

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite analysis history.
type DB struct {
	sql *sql.DB
}

// Open opens (and if needed bootstraps) the history database at path.
func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS analyses (
  id             INTEGER PRIMARY KEY,
  store_url      TEXT NOT NULL,
  store_domain   TEXT,
  store_title    TEXT,
  kind           TEXT NOT NULL CHECK (kind IN ('theme','apps')),
  success        INTEGER NOT NULL CHECK (success IN (0,1)),
  theme_name     TEXT,
  theme_store_id INTEGER,
  theme_type     TEXT,
  total_apps     INTEGER NOT NULL DEFAULT 0,
  created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_analyses_time ON analyses(created_at);
CREATE INDEX IF NOT EXISTS idx_analyses_domain ON analyses(store_domain, created_at);
	`); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{sql: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// RecordAnalysis appends one analysis run to the history.
func (d *DB) RecordAnalysis(ctx context.Context, a Analysis) error {
	success := 0
	if a.Success {
		success = 1
	}
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := d.sql.ExecContext(ctx, `
INSERT INTO analyses (store_url, store_domain, store_title, kind, success, theme_name, theme_store_id, theme_type, total_apps, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.StoreURL, a.StoreDomain, a.StoreTitle, a.Kind, success,
		a.ThemeName, a.ThemeStoreID, a.ThemeType, a.TotalApps, createdAt)
	return err
}

// ListRecent returns the most recent analyses, newest first.
func (d *DB) ListRecent(ctx context.Context, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.sql.QueryContext(ctx, `
SELECT id, store_url, store_domain, store_title, kind, success, theme_name, theme_store_id, theme_type, total_apps, created_at
FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		var success int
		var domain, title, tname, ttype sql.NullString
		var tstoreID sql.NullInt64
		if err := rows.Scan(&a.ID, &a.StoreURL, &domain, &title, &a.Kind, &success,
			&tname, &tstoreID, &ttype, &a.TotalApps, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Success = success == 1
		a.StoreDomain = domain.String
		a.StoreTitle = title.String
		a.ThemeName = tname.String
		a.ThemeType = ttype.String
		a.ThemeStoreID = int(tstoreID.Int64)
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetStats summarizes the history.
func (d *DB) GetStats(ctx context.Context) (Stats, error) {
	var s Stats
	err := d.sql.QueryRowContext(ctx, `
SELECT
  COUNT(*),
  COALESCE(SUM(CASE WHEN kind = 'theme' THEN 1 ELSE 0 END), 0),
  COALESCE(SUM(CASE WHEN kind = 'apps' THEN 1 ELSE 0 END), 0),
  COUNT(DISTINCT store_domain)
FROM analyses`).Scan(&s.TotalAnalyses, &s.ThemeAnalyses, &s.AppAnalyses, &s.DistinctStores)
	return s, err
}
