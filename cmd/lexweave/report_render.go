package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lexweave/internal/audit"
	"lexweave/internal/qa"
)

// buildQACategoryRows renders one row per weighted category, plus the
// additive baseline consistency row when that check ran.
func buildQACategoryRows(report *qa.Report) [][]string {
	rows := make([][]string, 0, len(report.Categories)+1)
	for _, cat := range report.Categories {
		rows = append(rows, []string{
			formatLabel(cat.Name),
			fmt.Sprintf("%.0f%%", cat.Weight*100),
			fmt.Sprintf("%.1f", cat.Score),
			strconv.Itoa(len(cat.Issues)),
			cat.Summary,
		})
	}
	if report.Baseline != nil {
		rows = append(rows, []string{
			"Baseline Consistency",
			"additive",
			fmt.Sprintf("%.1f", report.Baseline.Score),
			strconv.Itoa(len(report.Baseline.Issues)),
			report.Baseline.Summary,
		})
	}
	return rows
}

func buildAuditCheckRows(report *audit.Report) [][]string {
	rows := make([][]string, 0, len(report.Checks))
	for _, check := range report.Checks {
		rows = append(rows, []string{
			formatLabel(check.Name),
			strconv.Itoa(len(check.Issues)),
			check.Summary,
		})
	}
	return rows
}

func writeQAReport(cmd *cobra.Command, report *qa.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"Category", "Weight", "Score", "Issues", "Summary"},
		buildQACategoryRows(report),
		2, 3, 4,
	))
	writeQAVerdict(cmd, report)
}

func writeQAVerdict(cmd *cobra.Command, report *qa.Report) {
	out := cmd.OutOrStdout()
	if report.Passed {
		fmt.Fprintf(out, "%s overall score %d meets the gate threshold %d\n",
			paint(out, ansiGreen, "PASS:"), report.OverallScore, report.GateThreshold)
		return
	}
	fmt.Fprintf(out, "%s overall score %d is below the gate threshold %d\n",
		paint(out, ansiRed, "FAIL:"), report.OverallScore, report.GateThreshold)
}

// writeRemediation lists categories with findings, highest count first.
func writeRemediation(cmd *cobra.Command, counts []qa.IssueCount) {
	out := cmd.OutOrStdout()
	rank := 0
	for _, count := range counts {
		if count.Issues == 0 {
			continue
		}
		if rank == 0 {
			fmt.Fprintln(out, "Remediation priorities:")
		}
		rank++
		fmt.Fprintf(out, "  %d. %s (%d issues)\n", rank, formatLabel(count.Name), count.Issues)
	}
}

func writeAuditReport(cmd *cobra.Command, report *audit.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"Check", "Issues", "Summary"},
		buildAuditCheckRows(report),
		2,
	))
	fmt.Fprintf(out, "Audit score %.1f with %d findings (advisory, never gates)\n",
		report.Score, report.TotalIssues)
	if len(report.Suppressions) > 0 {
		fmt.Fprintf(out, "%d findings suppressed by the exclusion registry\n", len(report.Suppressions))
	}
}
