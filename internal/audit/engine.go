package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"lexweave/internal/exclusion"
	"lexweave/internal/libran"
	"lexweave/internal/logging"
)

// Check names as they appear in reports.
const (
	CheckSuspicious  = "suspicious_patterns"
	CheckEtymology   = "etymological_issues"
	CheckAnachronism = "cultural_anachronisms"
	CheckNotes       = "missing_notes"
)

const issuePenalty = 0.5

type checkSpec struct {
	name string
	run  func(*libran.UnifiedDictionary) []Issue
}

var checkTable = []checkSpec{
	{CheckSuspicious, runSuspiciousPatterns},
	{CheckEtymology, runEtymologicalIssues},
	{CheckAnachronism, runCulturalAnachronisms},
	{CheckNotes, runMissingNotes},
}

// Options configures an Engine. A nil exclusion registry suppresses
// nothing; a nil clock uses wall time.
type Options struct {
	Exclusions *exclusion.Registry
	Logger     *slog.Logger
	Now        func() time.Time
}

// Engine runs the advisory checks over dictionary snapshots.
type Engine struct {
	exclusions *exclusion.Registry
	logger     *slog.Logger
	now        func() time.Time
}

// NewEngine builds an Engine from options.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		exclusions: opts.Exclusions,
		logger:     logging.NewComponentLogger(opts.Logger, "audit"),
		now:        opts.Now,
	}
	if e.exclusions == nil {
		e.exclusions = exclusion.Empty()
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Run audits the snapshot. The four checks are pure functions over the
// snapshot and run in parallel; findings whose subject matches the
// exclusion registry become logged suppression events instead.
func (e *Engine) Run(ctx context.Context, dict *libran.UnifiedDictionary) (*Report, error) {
	if dict == nil {
		return nil, fmt.Errorf("audit: nil dictionary")
	}

	raw := make([][]Issue, len(checkTable))
	g, gCtx := errgroup.WithContext(ctx)
	for i, spec := range checkTable {
		i, spec := i, spec
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			issues := spec.run(dict)
			for k := range issues {
				issues[k].Check = spec.name
			}
			raw[i] = issues
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Version:      dict.Metadata.Version,
		GeneratedAt:  e.now().UTC(),
		TotalEntries: len(dict.Entries),
	}
	total := 0
	for i, spec := range checkTable {
		kept, suppressed := e.filter(raw[i])
		report.Suppressions = append(report.Suppressions, suppressed...)
		report.Checks = append(report.Checks, CheckResult{
			Name:    spec.name,
			Issues:  kept,
			Summary: checkSummary(len(kept), len(suppressed)),
		})
		total += len(kept)
	}
	report.TotalIssues = total
	score := 100 - issuePenalty*float64(total)
	if score < 0 {
		score = 0
	}
	report.Score = score

	e.logger.Info("audit complete",
		logging.Float64(logging.FieldScore, report.Score),
		logging.Int("findings", total),
		logging.Int("suppressed", len(report.Suppressions)))
	return report, nil
}

// filter splits one check's findings into kept issues and suppression
// events. Suppressions are logged as they are recorded.
func (e *Engine) filter(issues []Issue) ([]Issue, []Suppression) {
	var kept []Issue
	var suppressed []Suppression
	for _, issue := range issues {
		subject, canon, excluded := e.subjectExcluded(issue)
		if !excluded {
			kept = append(kept, issue)
			continue
		}
		suppressed = append(suppressed, Suppression{
			Check:         issue.Check,
			Term:          subject,
			Category:      canon.Category,
			Justification: canon.Justification,
			Detail:        issue.Detail,
		})
		e.logger.Info("suppressed audit finding",
			logging.String("check", issue.Check),
			logging.String(logging.FieldTerm, subject),
			logging.String(logging.FieldCategory, canon.Category))
	}
	return kept, suppressed
}

// subjectExcluded tries the flagged surface first, then the English
// headword, against the registry.
func (e *Engine) subjectExcluded(issue Issue) (string, exclusion.Entry, bool) {
	if issue.Surface != "" {
		if canon, ok := e.exclusions.IsExcluded(issue.Surface); ok {
			return issue.Surface, canon, true
		}
	}
	if issue.English != "" {
		if canon, ok := e.exclusions.IsExcluded(issue.English); ok {
			return issue.English, canon, true
		}
	}
	return "", exclusion.Entry{}, false
}

func checkSummary(kept, suppressed int) string {
	switch {
	case kept == 0 && suppressed == 0:
		return "no findings"
	case suppressed == 0:
		return fmt.Sprintf("%d findings", kept)
	default:
		return fmt.Sprintf("%d findings (%d suppressed)", kept, suppressed)
	}
}
