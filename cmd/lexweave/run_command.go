package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lexweave/internal/audit"
	"lexweave/internal/config"
	"lexweave/internal/logging"
	"lexweave/internal/manifest"
	"lexweave/internal/pipeline"
	"lexweave/internal/qa"
)

type outcomeView struct {
	Run         runView             `json:"run"`
	QAReport    *qa.Report          `json:"qa_report"`
	AuditReport *audit.Report       `json:"audit_report,omitempty"`
	Changelog   *pipeline.Changelog `json:"changelog,omitempty"`
	Remediation []qa.IssueCount     `json:"remediation,omitempty"`
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Merge pending tranches, score them, and promote on pass",
		Long: `Run executes the full batch pipeline: merge every readable fragment in the
pending area into one unified artifact, score it through the weighted QA
gate, audit it on pass, and drive the fragment set through the merged and
deleted areas. The exit status follows the gate decision.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *manifest.Store) error {
				logger := logging.NewNop()
				if !quiet && !jsonOut {
					built, err := logging.NewFromConfig(cfg)
					if err != nil {
						return fmt.Errorf("init logger: %w", err)
					}
					logger = built
				}

				p, err := pipeline.New(cfg, store, logger)
				if err != nil {
					return err
				}
				outcome, err := p.Run(cmd.Context())
				if err != nil {
					return err
				}

				if jsonOut {
					view := outcomeView{
						Run:         newRunView(outcome.Run),
						QAReport:    outcome.QAReport,
						AuditReport: outcome.AuditReport,
						Changelog:   outcome.Changelog,
						Remediation: outcome.Remediation,
					}
					if err := writeJSON(cmd, view); err != nil {
						return err
					}
					if !outcome.QAReport.Passed {
						return gateFailure(outcome.QAReport)
					}
					return nil
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out)
				writeQAReport(cmd, outcome.QAReport)
				if outcome.Changelog != nil {
					cl := outcome.Changelog
					fmt.Fprintf(out, "Changelog against baseline: %d added, %d changed, %d unchanged\n",
						cl.AddedCount, cl.ChangedCount, cl.UnchangedCount)
				}
				if outcome.AuditReport != nil {
					fmt.Fprintln(out)
					writeAuditReport(cmd, outcome.AuditReport)
				}
				if !outcome.QAReport.Passed {
					writeRemediation(cmd, outcome.Remediation)
					return gateFailure(outcome.QAReport)
				}
				fmt.Fprintf(out, "Run %s complete, artifact at %s\n",
					shortID(outcome.Run.ID), outcome.Run.ArtifactPath)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run outcome as JSON")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress stage progress logs")
	return cmd
}

func gateFailure(report *qa.Report) error {
	return fmt.Errorf("quality gate failed: score %d below threshold %d",
		report.OverallScore, report.GateThreshold)
}
