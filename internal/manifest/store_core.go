package manifest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"lexweave/internal/config"
)

// Store persists pipeline runs in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the manifest database, creating it and its schema on
// first use. Pragmas ride on the DSN so every pooled connection gets WAL
// journaling and the busy timeout, not just the first one.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.Paths.ManifestPath
	dsn := "file:" + dbPath +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open manifest at %s: %w", dbPath, err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close releases the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const (
	busyMaxAttempts = 5
	busyFirstDelay  = 10 * time.Millisecond
	busyDelayCap    = 200 * time.Millisecond
)

// execRetry runs a statement, backing off and retrying while SQLite reports
// the database locked by a concurrent writer.
func (s *Store) execRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	delay := busyFirstDelay
	for attempt := 1; ; attempt++ {
		res, err := s.db.ExecContext(ctx, query, args...)
		if err == nil || attempt == busyMaxAttempts || !lockContention(err) {
			return res, err
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if delay < busyDelayCap {
			delay *= 2
		}
	}
}

// lockContention reports whether err is SQLite's busy signal. The modernc
// driver exposes the result code through a Code method; the string checks
// cover wrapped errors that lost it.
func lockContention(err error) bool {
	if err == nil {
		return false
	}
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		// SQLITE_BUSY
		return coded.Code() == 5
	}
	text := err.Error()
	return strings.Contains(text, "SQLITE_BUSY") || strings.Contains(text, "database is locked")
}
