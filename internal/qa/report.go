package qa

import (
	"fmt"
	"sort"
	"time"
)

// Severity grades a finding. High findings usually indicate entries that
// must change before promotion; low findings are suggestions.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Issue is one finding from a category evaluator.
type Issue struct {
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
	English  string   `json:"english,omitempty"`
	Surface  string   `json:"surface,omitempty"`
	Detail   string   `json:"detail"`
}

// CategoryResult carries one category's weighted contribution and findings.
type CategoryResult struct {
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Score   float64 `json:"score"`
	Issues  []Issue `json:"issues,omitempty"`
	Summary string  `json:"summary"`
}

// BaselineResult is the additive consistency check against a prior release.
// Its score stands alone next to the weighted overall score.
type BaselineResult struct {
	Score       float64 `json:"score"`
	Coverage    float64 `json:"coverage"`
	MatchedKeys int     `json:"matched_keys"`
	Issues      []Issue `json:"issues,omitempty"`
	Summary     string  `json:"summary"`
}

// Report is the full verdict for one dictionary snapshot.
type Report struct {
	Version       string           `json:"version"`
	GeneratedAt   time.Time        `json:"generated_at"`
	TotalEntries  int              `json:"total_entries"`
	OverallScore  int              `json:"overall_score"`
	GateThreshold int              `json:"gate_threshold"`
	Passed        bool             `json:"passed"`
	Categories    []CategoryResult `json:"categories"`
	Baseline      *BaselineResult  `json:"baseline,omitempty"`
}

// IssueCount pairs a category with how many findings it produced.
type IssueCount struct {
	Name   string `json:"name"`
	Issues int    `json:"issues"`
}

// RankedIssueCounts lists categories by descending issue count, so a failed
// run surfaces the highest-leverage remediation work first. Ties break on
// category name to keep the ordering stable.
func (r *Report) RankedIssueCounts() []IssueCount {
	counts := make([]IssueCount, 0, len(r.Categories))
	for _, category := range r.Categories {
		counts = append(counts, IssueCount{Name: category.Name, Issues: len(category.Issues)})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Issues != counts[j].Issues {
			return counts[i].Issues > counts[j].Issues
		}
		return counts[i].Name < counts[j].Name
	})
	return counts
}

// TotalIssues sums findings across all weighted categories.
func (r *Report) TotalIssues() int {
	total := 0
	for _, category := range r.Categories {
		total += len(category.Issues)
	}
	return total
}

// Verdict renders the one-line gate decision.
func (r *Report) Verdict() string {
	if r.Passed {
		return fmt.Sprintf("QA passed: %d/100 (gate %d)", r.OverallScore, r.GateThreshold)
	}
	return fmt.Sprintf("QA failed: %d/100 (gate %d)", r.OverallScore, r.GateThreshold)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
