package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"lexweave/internal/audit"
	"lexweave/internal/logging"
	"lexweave/internal/qa"
)

// runStampLayout stamps output filenames with the run's creation time so
// successive runs of the same dictionary version never overwrite each other.
const runStampLayout = "20060102T150405Z"

// Stamp formats t as the filename stamp carried by every run output.
func Stamp(t time.Time) string {
	return t.UTC().Format(runStampLayout)
}

func qaReportFilename(version, stamp string) string {
	return fmt.Sprintf("QA_Report_v%s_%s.json", version, stamp)
}

func auditReportFilename(version, stamp string) string {
	return fmt.Sprintf("Audit_Report_v%s_%s.json", version, stamp)
}

func auditProseFilename(version, stamp string) string {
	return fmt.Sprintf("Audit_Report_v%s_%s.txt", version, stamp)
}

func changelogFilename(version, stamp string) string {
	return fmt.Sprintf("Changelog_v%s_%s.json", version, stamp)
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// persistQAReport writes the QA report under the output dir and returns its
// path. A persistence failure is logged and yields an empty path; the gate
// decision already made never changes because a report could not be saved.
func (p *Pipeline) persistQAReport(logger *slog.Logger, report *qa.Report, stamp string) string {
	path := filepath.Join(p.cfg.Paths.OutputDir, qaReportFilename(report.Version, stamp))
	if err := writeJSONFile(path, report); err != nil {
		logger.Warn("qa report not persisted", logging.Error(Wrap(ErrReporting, "persist qa report", err)))
		return ""
	}
	return path
}

// persistAuditReport writes the audit report as JSON plus a prose rendering
// and returns the JSON path.
func (p *Pipeline) persistAuditReport(logger *slog.Logger, report *audit.Report, stamp string) string {
	path := filepath.Join(p.cfg.Paths.OutputDir, auditReportFilename(report.Version, stamp))
	if err := writeJSONFile(path, report); err != nil {
		logger.Warn("audit report not persisted", logging.Error(Wrap(ErrReporting, "persist audit report", err)))
		return ""
	}

	prosePath := filepath.Join(p.cfg.Paths.OutputDir, auditProseFilename(report.Version, stamp))
	prose := report.Prose(p.cfg.Audit.MaxProseExamples)
	if err := os.WriteFile(prosePath, []byte(prose), 0o644); err != nil {
		logger.Warn("audit prose not persisted", logging.Error(Wrap(ErrReporting, "persist audit prose", err)))
	}
	return path
}

// persistChangelog writes the baseline comparison and returns its path.
func (p *Pipeline) persistChangelog(logger *slog.Logger, cl *Changelog, stamp string) string {
	path := filepath.Join(p.cfg.Paths.OutputDir, changelogFilename(cl.Version, stamp))
	if err := writeJSONFile(path, cl); err != nil {
		logger.Warn("changelog not persisted", logging.Error(Wrap(ErrReporting, "persist changelog", err)))
		return ""
	}
	return path
}
