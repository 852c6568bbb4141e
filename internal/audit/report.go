package audit

import (
	"fmt"
	"strings"
	"time"
)

// Severity grades a finding.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Issue is one advisory finding.
type Issue struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	English  string   `json:"english,omitempty"`
	Surface  string   `json:"surface,omitempty"`
	Detail   string   `json:"detail"`
}

// CheckResult groups the surviving findings of one check.
type CheckResult struct {
	Name    string  `json:"name"`
	Issues  []Issue `json:"issues,omitempty"`
	Summary string  `json:"summary"`
}

// Suppression records a finding removed because its subject is a registered
// canon term. Suppressions replace findings; they never vanish silently.
type Suppression struct {
	Check         string `json:"check"`
	Term          string `json:"term"`
	Category      string `json:"category"`
	Justification string `json:"justification,omitempty"`
	Detail        string `json:"detail"`
}

// Report is the advisory verdict for one dictionary snapshot.
type Report struct {
	Version      string        `json:"version"`
	GeneratedAt  time.Time     `json:"generated_at"`
	TotalEntries int           `json:"total_entries"`
	Score        float64       `json:"score"`
	TotalIssues  int           `json:"total_issues"`
	Checks       []CheckResult `json:"checks"`
	Suppressions []Suppression `json:"suppressions,omitempty"`
}

// Prose renders the narrative form of the report, listing at most
// maxExamples findings per check.
func (r *Report) Prose(maxExamples int) string {
	if maxExamples < 1 {
		maxExamples = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Linguistic audit for v%s: score %.1f with %d findings across %d entries.\n",
		r.Version, r.Score, r.TotalIssues, r.TotalEntries)

	for _, check := range r.Checks {
		fmt.Fprintf(&b, "\n%s: %s\n", checkTitle(check.Name), check.Summary)
		for i, issue := range check.Issues {
			if i == maxExamples {
				fmt.Fprintf(&b, "  ... and %d more\n", len(check.Issues)-maxExamples)
				break
			}
			fmt.Fprintf(&b, "  - [%s] %s\n", issue.Severity, issue.Detail)
		}
	}

	if len(r.Suppressions) > 0 {
		fmt.Fprintf(&b, "\nSuppressed canon terms:\n")
		for _, s := range r.Suppressions {
			fmt.Fprintf(&b, "  - %s (%s): %s\n", s.Term, s.Category, s.Detail)
		}
	}
	return b.String()
}

func checkTitle(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		if i == 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
