// Package journal records menu fetch attempts in a SQLite database.
//
// Only diagnostics are kept: when a fetch ran, against which URL, how long
// it took, how many items came back and the error, if any. Menu data itself
// is never stored.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// Entry is one fetch attempt.
type Entry struct {
	FetchedAt time.Time
	URL       string
	Error     string
	ID        int64
	Duration  time.Duration
	Items     int
	Status    int
}

// OK reports whether the fetch succeeded.
func (e Entry) OK() bool {
	return e.Error == ""
}

// Journal manages the SQLite database of fetch attempts.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at the given path and runs migrations.
func Open(dbPath string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close() //nolint:errcheck,gosec // best-effort cleanup on error path
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(ctx); err != nil {
		_ = db.Close() //nolint:errcheck,gosec // best-effort cleanup on error path
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores one fetch attempt. A zero FetchedAt is replaced with the
// current time.
func (j *Journal) Record(ctx context.Context, e Entry) error {
	if e.FetchedAt.IsZero() {
		e.FetchedAt = time.Now()
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO fetches (fetched_at, url, status, items, duration_ms, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.FetchedAt.UTC().Format(time.RFC3339Nano), e.URL, e.Status, e.Items, e.Duration.Milliseconds(), e.Error)
	if err != nil {
		return fmt.Errorf("recording fetch: %w", err)
	}

	return nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, fetched_at, url, status, items, duration_ms, error
		FROM fetches
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying fetches: %w", err)
	}
	defer func() { _ = rows.Close() }() //nolint:errcheck,gosec // defer close is best-effort

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Latest returns the most recent entry. Returns nil if the journal is empty.
func (j *Journal) Latest(ctx context.Context) (*Entry, error) {
	row := j.db.QueryRowContext(ctx, `
		SELECT id, fetched_at, url, status, items, duration_ms, error
		FROM fetches
		ORDER BY id DESC
		LIMIT 1
	`)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // nil means "not found", distinct from error
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// Prune keeps only the keep most recent entries, deleting older ones.
func (j *Journal) Prune(ctx context.Context, keep int) error {
	_, err := j.db.ExecContext(ctx, `
		DELETE FROM fetches
		WHERE id NOT IN (
			SELECT id FROM fetches
			ORDER BY id DESC
			LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning journal: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		e          Entry
		fetchedAt  string
		durationMS int64
	)

	if err := s.Scan(&e.ID, &fetchedAt, &e.URL, &e.Status, &e.Items, &durationMS, &e.Error); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("scanning fetch: %w", err)
	}

	t, err := parseTime(fetchedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing fetched_at: %w", err)
	}
	e.FetchedAt = t
	e.Duration = time.Duration(durationMS) * time.Millisecond

	return e, nil
}

// migrate runs schema migrations.
func (j *Journal) migrate(ctx context.Context) error {
	currentVersion := j.schemaVersion(ctx)

	migrations := []func(context.Context, *sql.Tx) error{
		migrateV1,
	}

	for i := currentVersion; i < len(migrations); i++ {
		tx, err := j.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", i+1, err)
		}

		if err := migrations[i](ctx, tx); err != nil {
			_ = tx.Rollback() //nolint:errcheck,gosec // rollback best-effort on migration failure
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM schema_version`); err != nil {
			_ = tx.Rollback() //nolint:errcheck,gosec // rollback best-effort
			return fmt.Errorf("updating schema version: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, i+1); err != nil {
			_ = tx.Rollback() //nolint:errcheck,gosec // rollback best-effort
			return fmt.Errorf("inserting schema version: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", i+1, err)
		}
	}

	return nil
}

// schemaVersion returns the current schema version, or 0 if the schema_version table doesn't exist.
func (j *Journal) schemaVersion(ctx context.Context) int {
	var tableName string
	err := j.db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name='schema_version'`).Scan(&tableName)
	if err != nil {
		return 0
	}

	var version int
	if err := j.db.QueryRowContext(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&version); err != nil {
		return 0
	}

	return version
}

// parseTime parses a timestamp string from SQLite, trying multiple formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q", s)
}

func migrateV1(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS fetches (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			fetched_at   TEXT NOT NULL,
			url          TEXT NOT NULL,
			status       INTEGER NOT NULL DEFAULT 0,
			items        INTEGER NOT NULL DEFAULT 0,
			duration_ms  INTEGER NOT NULL DEFAULT 0,
			error        TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	return nil
}
