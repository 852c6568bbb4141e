package manifest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTransition indicates a requested state change the lifecycle does not permit.
var ErrInvalidTransition = errors.New("invalid state transition")

// NewRun inserts a pending run for a tranche set about to be merged.
func (s *Store) NewRun(ctx context.Context, tranches []string) (*Run, error) {
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	tranchesJSON, err := json.Marshal(tranches)
	if err != nil {
		return nil, fmt.Errorf("marshal tranche list: %w", err)
	}

	id := uuid.NewString()
	if _, err := s.execRetry(
		ctx,
		`INSERT INTO pipeline_runs (
            id, state, tranches_json, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?)`,
		id,
		StatePending,
		string(tranchesJSON),
		timestamp,
		timestamp,
	); err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	return s.GetRun(ctx, id)
}

// GetRun fetches a run by identifier.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM pipeline_runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// Update persists changes to an existing run.
func (s *Store) Update(ctx context.Context, run *Run) error {
	if run == nil {
		return errors.New("run is nil")
	}
	run.UpdatedAt = time.Now().UTC()

	tranchesJSON, err := json.Marshal(run.Tranches)
	if err != nil {
		return fmt.Errorf("marshal tranche list: %w", err)
	}

	if _, err := s.execRetry(
		ctx,
		`UPDATE pipeline_runs
         SET state = ?, dictionary_version = ?, tranches_json = ?, total_entries = ?,
             duplicates_removed = ?, qa_score = ?, audit_score = ?, artifact_path = ?,
             qa_report_path = ?, audit_report_path = ?, changelog_path = ?,
             error_message = ?, updated_at = ?
         WHERE id = ?`,
		run.State,
		run.DictionaryVersion,
		string(tranchesJSON),
		run.TotalEntries,
		run.DuplicatesRemoved,
		nullableInt(run.QAScore),
		nullableFloat(run.AuditScore),
		nullableString(run.ArtifactPath),
		nullableString(run.QAReportPath),
		nullableString(run.AuditReportPath),
		nullableString(run.ChangelogPath),
		nullableString(run.ErrorMessage),
		run.UpdatedAt.Format(time.RFC3339Nano),
		run.ID,
	); err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	return nil
}

// Transition validates a state change against the lifecycle, applies it to
// the run, and persists the full record.
func (s *Store) Transition(ctx context.Context, run *Run, to State) error {
	if run == nil {
		return errors.New("run is nil")
	}
	if !CanTransition(run.State, to) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, run.State, to)
	}
	run.State = to
	return s.Update(ctx, run)
}

// List returns runs filtered by state set (or all runs when no state is
// provided), oldest first.
func (s *Store) List(ctx context.Context, states ...State) ([]*Run, error) {
	var (
		rows *sql.Rows
		err  error
	)

	baseQuery := `SELECT ` + runColumns + ` FROM pipeline_runs`
	orderClause := ` ORDER BY created_at`

	if len(states) == 0 {
		rows, err = s.db.QueryContext(ctx, baseQuery+orderClause)
	} else {
		placeholders := makePlaceholders(len(states))
		args := make([]any, len(states))
		for i, state := range states {
			args[i] = state
		}
		query := baseQuery + ` WHERE state IN (` + placeholders + `)` + orderClause
		rows, err = s.db.QueryContext(ctx, query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LatestRun returns the most recently created run, or nil when the manifest is empty.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM pipeline_runs ORDER BY created_at DESC, id DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

// Stats returns a count of runs grouped by state.
func (s *Store) Stats(ctx context.Context) (map[State]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT state, COUNT(1) FROM pipeline_runs GROUP BY state`)
	if err != nil {
		return nil, fmt.Errorf("run stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[State]int)
	for rows.Next() {
		var (
			stateStr string
			count    int
		)
		if err := rows.Scan(&stateStr, &count); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		stats[State(stateStr)] = count
	}
	return stats, rows.Err()
}

// Remove deletes a run record by identifier.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	res, err := s.execRetry(ctx, `DELETE FROM pipeline_runs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}
