package main

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"lexweave/internal/manifest"
)

// runView is the JSON shape the CLI emits for manifest runs.
type runView struct {
	ID                string   `json:"id"`
	State             string   `json:"state"`
	DictionaryVersion string   `json:"dictionary_version,omitempty"`
	Tranches          []string `json:"tranches,omitempty"`
	TotalEntries      int      `json:"total_entries"`
	DuplicatesRemoved int      `json:"duplicates_removed"`
	QAScore           *int     `json:"qa_score,omitempty"`
	AuditScore        *float64 `json:"audit_score,omitempty"`
	ArtifactPath      string   `json:"artifact_path,omitempty"`
	QAReportPath      string   `json:"qa_report_path,omitempty"`
	AuditReportPath   string   `json:"audit_report_path,omitempty"`
	ChangelogPath     string   `json:"changelog_path,omitempty"`
	ErrorMessage      string   `json:"error_message,omitempty"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

func newRunView(run *manifest.Run) runView {
	return runView{
		ID:                run.ID,
		State:             string(run.State),
		DictionaryVersion: run.DictionaryVersion,
		Tranches:          run.Tranches,
		TotalEntries:      run.TotalEntries,
		DuplicatesRemoved: run.DuplicatesRemoved,
		QAScore:           run.QAScore,
		AuditScore:        run.AuditScore,
		ArtifactPath:      run.ArtifactPath,
		QAReportPath:      run.QAReportPath,
		AuditReportPath:   run.AuditReportPath,
		ChangelogPath:     run.ChangelogPath,
		ErrorMessage:      run.ErrorMessage,
		CreatedAt:         run.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         run.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func buildHistoryRows(runs []*manifest.Run) [][]string {
	if len(runs) == 0 {
		return nil
	}
	sorted := make([]*manifest.Run, len(runs))
	copy(sorted, runs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	rows := make([][]string, 0, len(sorted))
	for _, run := range sorted {
		rows = append(rows, []string{
			shortID(run.ID),
			formatLabel(string(run.State)),
			run.DictionaryVersion,
			strconv.Itoa(run.TotalEntries),
			formatIntScore(run.QAScore),
			formatFloatScore(run.AuditScore),
			run.CreatedAt.UTC().Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func buildStateStatRows(stats map[manifest.State]int) [][]string {
	if len(stats) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(stats))
	for _, state := range manifest.AllStates() {
		count, ok := stats[state]
		if !ok {
			continue
		}
		rows = append(rows, []string{formatLabel(string(state)), strconv.Itoa(count)})
	}
	return rows
}

// formatLabel turns snake_case enum values into display labels, so
// "qa_passed" renders as "Qa Passed".
func formatLabel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.Split(value, "_")
	for i, part := range parts {
		lower := strings.ToLower(part)
		if lower == "" {
			continue
		}
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatIntScore(score *int) string {
	if score == nil {
		return "-"
	}
	return strconv.Itoa(*score)
}

func formatFloatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return strconv.FormatFloat(*score, 'f', 1, 64)
}
