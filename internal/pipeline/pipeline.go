package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"lexweave/internal/audit"
	"lexweave/internal/config"
	"lexweave/internal/libran"
	"lexweave/internal/logging"
	"lexweave/internal/manifest"
	"lexweave/internal/merge"
	"lexweave/internal/qa"
	"lexweave/internal/tranche"
)

// Outcome carries everything one pipeline invocation produced. A gate
// failure is a completed run, not an error: check QAReport.Passed.
type Outcome struct {
	Run         *manifest.Run
	Dictionary  *libran.UnifiedDictionary
	QAReport    *qa.Report
	AuditReport *audit.Report
	Changelog   *Changelog
	// Remediation ranks QA categories by issue count when the gate failed.
	Remediation []qa.IssueCount
}

// Pipeline sequences one batch invocation: merge, QA gate, audit on pass,
// lifecycle transitions, reports.
type Pipeline struct {
	cfg    *config.Config
	store  *manifest.Store
	base   *slog.Logger
	logger *slog.Logger
	now    func() time.Time
}

// New constructs a pipeline with initialized dependencies.
func New(cfg *config.Config, store *manifest.Store, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("pipeline requires config and manifest store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		cfg:    cfg,
		store:  store,
		base:   logger,
		logger: logging.NewComponentLogger(logger, "pipeline"),
		now:    time.Now,
	}, nil
}

// Run executes the full batch over the pending area. It serializes against
// other invocations with a file lock, records a manifest run, and drives it
// through the lifecycle. Reference inputs load before anything moves, so a
// configured-but-unreadable baseline or registry aborts while the pending
// area is still intact.
func (p *Pipeline) Run(ctx context.Context) (*Outcome, error) {
	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, Wrap(ErrInput, "ensure directories", err)
	}

	lock := newRunLock(p.cfg.Paths.LogDir)
	if err := lock.acquire(); err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.release(); err != nil {
			p.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	refs, err := LoadReferences(p.cfg, p.logger)
	if err != nil {
		return nil, err
	}

	files, err := tranche.Scan(p.cfg.Paths.PendingDir)
	if err != nil {
		return nil, Wrap(ErrInput, "scan pending area", err)
	}
	if len(files) == 0 {
		return nil, Wrap(ErrInput, "pending area empty", merge.ErrNoValidFragments)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, file.Name)
	}
	run, err := p.store.NewRun(ctx, names)
	if err != nil {
		return nil, Wrap(ErrConsistency, "record run", err)
	}
	runBase := p.base.With(logging.String(logging.FieldRunID, run.ID))
	logger := p.logger.With(logging.String(logging.FieldRunID, run.ID))
	logger.Info("run started", logging.Int("fragments", len(files)))

	outcome, err := p.execute(ctx, logger, runBase, run, files, refs)
	if err != nil {
		run.ErrorMessage = err.Error()
		if updateErr := p.store.Update(ctx, run); updateErr != nil {
			logger.Error("failed to record run error", logging.Error(updateErr))
		}
		return nil, err
	}
	return outcome, nil
}

func (p *Pipeline) execute(
	ctx context.Context,
	logger *slog.Logger,
	runBase *slog.Logger,
	run *manifest.Run,
	files []tranche.File,
	refs References,
) (*Outcome, error) {
	stamp := Stamp(run.CreatedAt)

	mergeResult, err := merge.Merge(files, merge.Options{
		Version: p.cfg.Merge.DictionaryVersion,
		Logger:  runBase,
		Now:     p.now,
	})
	if err != nil {
		return nil, Wrap(ErrInput, "merge fragments", err)
	}
	dict := mergeResult.Dictionary

	artifactPath := filepath.Join(p.cfg.Paths.OutputDir, libran.ArtifactFilename(dict.Metadata.Version, stamp))
	if err := dict.WriteFile(artifactPath); err != nil {
		return nil, Wrap(ErrConsistency, "write unified artifact", err)
	}

	consumed := make([]string, 0, len(mergeResult.Consumed))
	for _, t := range mergeResult.Consumed {
		consumed = append(consumed, t.Name)
	}
	if err := p.relocate(consumed, p.cfg.Paths.PendingDir, p.cfg.Paths.MergedDir); err != nil {
		// The run produced nothing durable: fragments are back in pending,
		// so the half-built artifact goes too.
		if removeErr := os.Remove(artifactPath); removeErr != nil {
			logger.Warn("orphan artifact left behind", logging.String("path", artifactPath), logging.Error(removeErr))
		}
		return nil, Wrap(ErrConsistency, "stage fragments", err)
	}

	run.Tranches = consumed
	run.DictionaryVersion = dict.Metadata.Version
	run.TotalEntries = dict.Metadata.TotalEntries
	run.DuplicatesRemoved = dict.Metadata.DuplicatesRemoved
	run.ArtifactPath = artifactPath
	if err := p.store.Transition(ctx, run, manifest.StateMerged); err != nil {
		return nil, Wrap(ErrConsistency, "transition to merged", err)
	}
	logger.Info("fragments merged",
		logging.String(logging.FieldStage, "merge"),
		logging.Int("entries", run.TotalEntries),
		logging.Int("duplicates_removed", run.DuplicatesRemoved),
		logging.Int("fragments_skipped", len(mergeResult.SkippedFiles)))

	scorer := qa.NewScorer(qa.Options{
		GateThreshold: p.cfg.QA.GateThreshold,
		Homonyms:      refs.Homonyms,
		Baseline:      refs.Baseline,
		Logger:        runBase,
		Now:           p.now,
	})
	qaReport, err := scorer.Evaluate(ctx, dict)
	if err != nil {
		return nil, Wrap(ErrConsistency, "qa evaluation", err)
	}
	qaScore := qaReport.OverallScore
	run.QAScore = &qaScore
	run.QAReportPath = p.persistQAReport(logger, qaReport, stamp)

	outcome := &Outcome{Run: run, Dictionary: dict, QAReport: qaReport}

	if refs.Baseline != nil {
		cl := buildChangelog(dict, refs.Baseline, p.now().UTC())
		outcome.Changelog = cl
		run.ChangelogPath = p.persistChangelog(logger, cl, stamp)
	}

	if !qaReport.Passed {
		if err := p.store.Transition(ctx, run, manifest.StateQAFailed); err != nil {
			return nil, Wrap(ErrConsistency, "transition to qa_failed", err)
		}
		outcome.Remediation = qaReport.RankedIssueCounts()
		logger.Warn("quality gate failed, fragments stay in the merged area",
			logging.Int(logging.FieldScore, qaReport.OverallScore),
			logging.Int("gate", qaReport.GateThreshold),
			logging.Int("issues", qaReport.TotalIssues()))
		return outcome, nil
	}

	engine := audit.NewEngine(audit.Options{
		Exclusions: refs.Exclusions,
		Logger:     runBase,
		Now:        p.now,
	})
	auditReport, err := engine.Run(ctx, dict)
	if err != nil {
		return nil, Wrap(ErrConsistency, "audit", err)
	}
	auditScore := auditReport.Score
	run.AuditScore = &auditScore
	run.AuditReportPath = p.persistAuditReport(logger, auditReport, stamp)
	outcome.AuditReport = auditReport

	if err := p.store.Transition(ctx, run, manifest.StateQAPassed); err != nil {
		return nil, Wrap(ErrConsistency, "transition to qa_passed", err)
	}

	// Promotion: the consumed set leaves the working area for the deleted
	// area, which doubles as the recoverable trash bin.
	if err := p.relocate(consumed, p.cfg.Paths.MergedDir, p.cfg.Paths.DeletedDir); err != nil {
		return nil, Wrap(ErrConsistency, "promote fragments", err)
	}
	if err := p.store.Transition(ctx, run, manifest.StateDeleted); err != nil {
		return nil, Wrap(ErrConsistency, "transition to deleted", err)
	}

	logger.Info("run complete",
		logging.Int(logging.FieldScore, qaReport.OverallScore),
		logging.Float64("audit_score", auditReport.Score),
		logging.String("artifact", artifactPath))
	return outcome, nil
}
