package manifest

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped on any schema change. There is no migration
// path: the manifest is rebuildable bookkeeping, so operators delete the
// database file and let the next run recreate it.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database was created by an incompatible
// lexweave version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// initSchema bootstraps an empty database and verifies the version of an
// existing one.
func (s *Store) initSchema(ctx context.Context) error {
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case err == nil:
		if version != schemaVersion {
			return fmt.Errorf("%w: found %d, want %d (delete %s and rerun)",
				ErrSchemaMismatch, version, schemaVersion, s.path)
		}
		return nil
	case strings.Contains(err.Error(), "no such table"):
		return s.bootstrap(ctx)
	default:
		return fmt.Errorf("read schema version: %w", err)
	}
}

func (s *Store) bootstrap(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
