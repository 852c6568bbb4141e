package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lexweave/internal/audit"
	"lexweave/internal/config"
	"lexweave/internal/libran"
	"lexweave/internal/logging"
	"lexweave/internal/merge"
	"lexweave/internal/pipeline"
	"lexweave/internal/qa"
	"lexweave/internal/tranche"
	"lexweave/internal/translator"
)

type mergeFragmentView struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
	Dropped int    `json:"dropped"`
}

type mergeView struct {
	Version           string              `json:"version"`
	TotalEntries      int                 `json:"total_entries"`
	DuplicatesRemoved int                 `json:"duplicates_removed"`
	DroppedEntries    int                 `json:"dropped_entries"`
	Consumed          []mergeFragmentView `json:"consumed"`
	SkippedFiles      []string            `json:"skipped_files,omitempty"`
	ArtifactPath      string              `json:"artifact_path,omitempty"`
}

// newMergeCommand previews the merge without touching the manifest or
// relocating fragments. With --write it also leaves an artifact in the
// output directory.
func newMergeCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var write bool

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge pending tranches without running the gate",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			files, err := tranche.Scan(cfg.Paths.PendingDir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return merge.ErrNoValidFragments
			}
			result, err := merge.Merge(files, merge.Options{
				Version: cfg.Merge.DictionaryVersion,
				Logger:  logging.NewNop(),
			})
			if err != nil {
				return err
			}
			dict := result.Dictionary

			var artifactPath string
			if write {
				name := libran.ArtifactFilename(dict.Metadata.Version, pipeline.Stamp(time.Now()))
				artifactPath = filepath.Join(cfg.Paths.OutputDir, name)
				if err := dict.WriteFile(artifactPath); err != nil {
					return fmt.Errorf("write unified artifact: %w", err)
				}
			}

			if jsonOut {
				view := mergeView{
					Version:           dict.Metadata.Version,
					TotalEntries:      dict.Metadata.TotalEntries,
					DuplicatesRemoved: dict.Metadata.DuplicatesRemoved,
					DroppedEntries:    result.DroppedEntries,
					SkippedFiles:      result.SkippedFiles,
					ArtifactPath:      artifactPath,
				}
				for _, t := range result.Consumed {
					view.Consumed = append(view.Consumed, mergeFragmentView{
						Name:    t.Name,
						Entries: len(t.Entries),
						Dropped: t.Dropped,
					})
				}
				return writeJSON(cmd, view)
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(result.Consumed))
			for _, t := range result.Consumed {
				rows = append(rows, []string{t.Name, strconv.Itoa(len(t.Entries)), strconv.Itoa(t.Dropped)})
			}
			fmt.Fprintln(out, renderTable([]string{"Fragment", "Entries", "Dropped"}, rows, 2, 3))
			fmt.Fprintf(out, "Merged %d fragments into %d entries (%d duplicates removed)\n",
				len(result.Consumed), dict.Metadata.TotalEntries, dict.Metadata.DuplicatesRemoved)
			for _, skipped := range result.SkippedFiles {
				fmt.Fprintf(out, "%s unreadable fragment %s skipped\n", paint(out, ansiYellow, "warn:"), skipped)
			}
			if artifactPath != "" {
				fmt.Fprintf(out, "Artifact written to %s\n", artifactPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the merge summary as JSON")
	cmd.Flags().BoolVar(&write, "write", false, "Write the unified artifact to the output directory")
	return cmd
}

// newQACommand scores an existing artifact against the configured gate. The
// exit status follows the gate decision, matching a full run.
func newQACommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "qa [artifact]",
		Short: "Score a unified artifact against the quality gate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := resolveArtifact(cfg, args)
			if err != nil {
				return err
			}
			dict, err := libran.ReadDictionary(path)
			if err != nil {
				return err
			}
			refs, err := pipeline.LoadReferences(cfg, logging.NewNop())
			if err != nil {
				return err
			}
			scorer := qa.NewScorer(qa.Options{
				GateThreshold: cfg.QA.GateThreshold,
				Homonyms:      refs.Homonyms,
				Baseline:      refs.Baseline,
			})
			report, err := scorer.Evaluate(cmd.Context(), dict)
			if err != nil {
				return err
			}

			if jsonOut {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Scoring %s\n", path)
				writeQAReport(cmd, report)
				if !report.Passed {
					writeRemediation(cmd, report.RankedIssueCounts())
				}
			}
			if !report.Passed {
				return gateFailure(report)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the QA report as JSON")
	return cmd
}

// newAuditCommand runs the advisory checks over an existing artifact. The
// audit never gates, so the command always exits zero once it completes.
func newAuditCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var prose bool

	cmd := &cobra.Command{
		Use:   "audit [artifact]",
		Short: "Run the advisory linguistic audit over a unified artifact",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := resolveArtifact(cfg, args)
			if err != nil {
				return err
			}
			dict, err := libran.ReadDictionary(path)
			if err != nil {
				return err
			}
			refs, err := pipeline.LoadReferences(cfg, logging.NewNop())
			if err != nil {
				return err
			}
			engine := audit.NewEngine(audit.Options{Exclusions: refs.Exclusions})
			report, err := engine.Run(cmd.Context(), dict)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			if prose {
				fmt.Fprintln(out, strings.TrimRight(report.Prose(cfg.Audit.MaxProseExamples), "\n"))
				return nil
			}
			fmt.Fprintf(out, "Auditing %s\n", path)
			writeAuditReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the audit report as JSON")
	cmd.Flags().BoolVar(&prose, "prose", false, "Print the narrative report form")
	return cmd
}

// resolveArtifact picks the artifact argument or falls back to the newest
// artifact in the output directory.
func resolveArtifact(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return config.ExpandPath(args[0])
	}
	return translator.LatestArtifactPath(cfg.Paths.OutputDir)
}
