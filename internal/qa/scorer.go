package qa

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"lexweave/internal/baseline"
	"lexweave/internal/libran"
	"lexweave/internal/logging"
)

// DefaultGateThreshold is the minimum overall score for promotion.
const DefaultGateThreshold = 95

// Category names as they appear in reports.
const (
	CategoryCollision  = "collision_check"
	CategoryLaziness   = "suffix_laziness"
	CategoryCompound   = "compound_hyphen"
	CategoryCoverage   = "coverage_analysis"
	CategoryRuleset    = "ruleset_compliance"
	CategoryPhrasebook = "phrasebook_integration"
	CategoryVersioning = "versioning_check"

	// CheckBaseline labels the additive consistency check. It is not a
	// weighted category.
	CheckBaseline = "baseline_consistency"
)

type categorySpec struct {
	name   string
	weight float64
	run    func(*Scorer, *libran.UnifiedDictionary) (float64, []Issue, string)
}

// categoryTable fixes the seven weighted categories. The weights sum to
// 1.0, so a snapshot scoring 100 in every category scores 100 overall.
var categoryTable = []categorySpec{
	{CategoryCollision, 0.20, (*Scorer).runCollisionCheck},
	{CategoryLaziness, 0.20, (*Scorer).runLazinessAudit},
	{CategoryCompound, 0.15, (*Scorer).runCompoundReview},
	{CategoryCoverage, 0.15, (*Scorer).runCoverageAnalysis},
	{CategoryRuleset, 0.15, (*Scorer).runRulesetCompliance},
	{CategoryPhrasebook, 0.10, (*Scorer).runPhrasebookIntegration},
	{CategoryVersioning, 0.05, (*Scorer).runVersioningCheck},
}

// Options configures a Scorer. Zero values fall back to the defaults: gate
// threshold 95, the built-in homonym allowlist, no baseline, wall-clock
// time.
type Options struct {
	GateThreshold int
	Homonyms      HomonymPolicy
	Baseline      *baseline.Index
	Logger        *slog.Logger
	Now           func() time.Time
}

// Scorer evaluates dictionary snapshots. A Scorer is safe for concurrent
// use; every evaluation reads only the snapshot it was handed.
type Scorer struct {
	gate     int
	homonyms HomonymPolicy
	baseline *baseline.Index
	logger   *slog.Logger
	now      func() time.Time
}

// NewScorer builds a Scorer from options.
func NewScorer(opts Options) *Scorer {
	s := &Scorer{
		gate:     opts.GateThreshold,
		homonyms: opts.Homonyms,
		baseline: opts.Baseline,
		logger:   logging.NewComponentLogger(opts.Logger, "qa"),
		now:      opts.Now,
	}
	if s.gate <= 0 {
		s.gate = DefaultGateThreshold
	}
	if s.homonyms == nil {
		s.homonyms = DefaultAllowlist()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Evaluate scores the snapshot and renders the gate decision. The seven
// categories are order-insensitive pure functions over the snapshot and run
// in parallel; each writes its own result slot, so the report is identical
// across runs for the same input.
func (s *Scorer) Evaluate(ctx context.Context, dict *libran.UnifiedDictionary) (*Report, error) {
	if dict == nil {
		return nil, fmt.Errorf("evaluate: nil dictionary")
	}

	results := make([]CategoryResult, len(categoryTable))
	var baselineResult *BaselineResult

	g, gCtx := errgroup.WithContext(ctx)
	for i, spec := range categoryTable {
		i, spec := i, spec
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			score, issues, summary := spec.run(s, dict)
			for k := range issues {
				issues[k].Category = spec.name
			}
			results[i] = CategoryResult{
				Name:    spec.name,
				Weight:  spec.weight,
				Score:   score,
				Issues:  issues,
				Summary: summary,
			}
			return nil
		})
	}
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		baselineResult = s.runBaselineCheck(dict)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	weighted := 0.0
	for _, result := range results {
		weighted += result.Score * result.Weight
	}
	overall := int(math.Round(clampScore(weighted)))

	report := &Report{
		Version:       dict.Metadata.Version,
		GeneratedAt:   s.now().UTC(),
		TotalEntries:  len(dict.Entries),
		OverallScore:  overall,
		GateThreshold: s.gate,
		Passed:        overall >= s.gate,
		Categories:    results,
		Baseline:      baselineResult,
	}

	s.logger.Info("scored dictionary",
		logging.Int("score", overall),
		logging.Bool("passed", report.Passed),
		logging.Int("issues", report.TotalIssues()),
		logging.String("version", dict.Metadata.Version))
	return report, nil
}
