package manifest

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const runColumns = "id, state, dictionary_version, tranches_json, total_entries, duplicates_removed, qa_score, audit_score, artifact_path, qa_report_path, audit_report_path, changelog_path, error_message, created_at, updated_at"

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		id                string
		stateStr          string
		dictionaryVersion string
		tranchesJSON      string
		totalEntries      int
		duplicatesRemoved int
		qaScore           sql.NullInt64
		auditScore        sql.NullFloat64
		artifactPath      sql.NullString
		qaReportPath      sql.NullString
		auditReportPath   sql.NullString
		changelogPath     sql.NullString
		errorMessage      sql.NullString
		createdRaw        sql.NullString
		updatedRaw        sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&stateStr,
		&dictionaryVersion,
		&tranchesJSON,
		&totalEntries,
		&duplicatesRemoved,
		&qaScore,
		&auditScore,
		&artifactPath,
		&qaReportPath,
		&auditReportPath,
		&changelogPath,
		&errorMessage,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	run := &Run{
		ID:                id,
		State:             State(stateStr),
		DictionaryVersion: dictionaryVersion,
		TotalEntries:      totalEntries,
		DuplicatesRemoved: duplicatesRemoved,
		ArtifactPath:      artifactPath.String,
		QAReportPath:      qaReportPath.String,
		AuditReportPath:   auditReportPath.String,
		ChangelogPath:     changelogPath.String,
		ErrorMessage:      errorMessage.String,
	}
	if qaScore.Valid {
		score := int(qaScore.Int64)
		run.QAScore = &score
	}
	if auditScore.Valid {
		score := auditScore.Float64
		run.AuditScore = &score
	}
	if tranchesJSON != "" {
		if err := json.Unmarshal([]byte(tranchesJSON), &run.Tranches); err != nil {
			return nil, fmt.Errorf("decode tranche list: %w", err)
		}
	}

	if created, err := parseTimeString(createdRaw.String); err == nil {
		run.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		run.UpdatedAt = updated
	}
	return run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}
