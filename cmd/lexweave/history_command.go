package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lexweave/internal/config"
	"lexweave/internal/manifest"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var states []string
	var showStats bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *manifest.Store) error {
				out := cmd.OutOrStdout()

				if showStats {
					stats, err := store.Stats(cmd.Context())
					if err != nil {
						return err
					}
					if jsonOut {
						view := make(map[string]int, len(stats))
						for state, count := range stats {
							view[string(state)] = count
						}
						return writeJSON(cmd, view)
					}
					rows := buildStateStatRows(stats)
					if len(rows) == 0 {
						fmt.Fprintln(out, "No runs recorded")
						return nil
					}
					fmt.Fprintln(out, renderTable([]string{"State", "Runs"}, rows, 2))
					return nil
				}

				var filters []manifest.State
				for _, raw := range states {
					state, ok := manifest.ParseState(raw)
					if !ok {
						return fmt.Errorf("unknown run state %q", raw)
					}
					filters = append(filters, state)
				}
				runs, err := store.List(cmd.Context(), filters...)
				if err != nil {
					return err
				}
				if jsonOut {
					views := make([]runView, 0, len(runs))
					for _, run := range runs {
						views = append(views, newRunView(run))
					}
					return writeJSON(cmd, views)
				}
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Run", "State", "Version", "Entries", "QA", "Audit", "Created"},
					buildHistoryRows(runs),
					4, 5, 6,
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit runs as JSON")
	cmd.Flags().StringSliceVarP(&states, "state", "s", nil, "Filter by run state (repeatable)")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Show run counts per state")

	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *manifest.Store) error {
				run, err := findRun(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, newRunView(run))
				}
				writeRunDetail(cmd, run)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run as JSON")
	return cmd
}

// findRun resolves a full run ID or an unambiguous prefix of one, so the
// short IDs shown in history tables work as arguments.
func findRun(ctx context.Context, store *manifest.Store, idArg string) (*manifest.Run, error) {
	idArg = strings.TrimSpace(idArg)
	if idArg == "" {
		return nil, errors.New("run id is required")
	}
	run, err := store.GetRun(ctx, idArg)
	if err != nil {
		return nil, err
	}
	if run != nil {
		return run, nil
	}

	runs, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	var match *manifest.Run
	for _, candidate := range runs {
		if !strings.HasPrefix(candidate.ID, idArg) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("run id prefix %q is ambiguous", idArg)
		}
		match = candidate
	}
	if match == nil {
		return nil, fmt.Errorf("run %q not found", idArg)
	}
	return match, nil
}

func writeRunDetail(cmd *cobra.Command, run *manifest.Run) {
	out := cmd.OutOrStdout()
	line := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(out, "%-14s %s\n", label+":", value)
	}

	line("Run", run.ID)
	line("State", formatLabel(string(run.State)))
	line("Version", run.DictionaryVersion)
	line("Tranches", strings.Join(run.Tranches, ", "))
	fmt.Fprintf(out, "%-14s %d (%d duplicates removed)\n", "Entries:", run.TotalEntries, run.DuplicatesRemoved)
	if run.QAScore != nil {
		line("QA score", strconv.Itoa(*run.QAScore))
	}
	if run.AuditScore != nil {
		line("Audit score", strconv.FormatFloat(*run.AuditScore, 'f', 1, 64))
	}
	line("Artifact", run.ArtifactPath)
	line("QA report", run.QAReportPath)
	line("Audit report", run.AuditReportPath)
	line("Changelog", run.ChangelogPath)
	line("Error", run.ErrorMessage)
	line("Created", run.CreatedAt.UTC().Format(time.RFC3339))
	line("Updated", run.UpdatedAt.UTC().Format(time.RFC3339))
}
