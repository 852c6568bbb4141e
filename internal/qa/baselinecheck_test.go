package qa_test

import (
	"testing"

	"lexweave/internal/baseline"
	"lexweave/internal/libran"
	"lexweave/internal/qa"
)

func baselineEntry(english, ancient, modern, notes string) libran.Entry {
	e := libran.Entry{English: english, Notes: notes}
	if ancient != "" {
		e.Ancient = libran.StringForm(ancient)
	}
	if modern != "" {
		e.Modern = libran.StringForm(modern)
	}
	return e
}

func TestBaselineCheckFlagsDivergentForms(t *testing.T) {
	prior := baseline.NewIndex([]libran.Entry{
		baselineEntry("flame", "flamma", "flamë", "Lat. flamma"),
		baselineEntry("hope", "spes", "sperë", "Lat. sperare"),
		baselineEntry("stone", "petra", "petrë", "Lat. petra"),
		baselineEntry("river", "fluvius", "fluvë", "Lat. fluvius"),
	}, false)

	entries := []libran.Entry{
		baselineEntry("flame", "flamma", "flammeka", "Lat. flamma"),
		baselineEntry("hope", "spes", "sperë", "Lat. sperare"),
	}
	scorer := qa.NewScorer(qa.Options{Baseline: prior, Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	if report.Baseline == nil {
		t.Fatal("expected a baseline section")
	}
	if len(report.Baseline.Issues) != 1 {
		t.Fatalf("expected 1 divergence issue, got %v", report.Baseline.Issues)
	}
	issue := report.Baseline.Issues[0]
	if issue.Severity != qa.SeverityHigh {
		t.Fatalf("expected high severity, got %s", issue.Severity)
	}
	if issue.Category != qa.CheckBaseline {
		t.Fatalf("expected category %s, got %s", qa.CheckBaseline, issue.Category)
	}
	// 100 - 5 for the mismatch; 2 of 4 keys matched earns no bonus.
	if report.Baseline.Score != 95 {
		t.Fatalf("expected baseline score 95, got %.1f", report.Baseline.Score)
	}
	if report.Baseline.MatchedKeys != 2 {
		t.Fatalf("expected 2 matched keys, got %d", report.Baseline.MatchedKeys)
	}
}

func TestBaselineCheckFlagsDroppedNotes(t *testing.T) {
	prior := baseline.NewIndex([]libran.Entry{
		baselineEntry("flame", "", "flamë", "Lat. flamma, the hearth rite"),
	}, false)

	entries := []libran.Entry{
		baselineEntry("flame", "", "flamë", ""),
	}
	scorer := qa.NewScorer(qa.Options{Baseline: prior, Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	if len(report.Baseline.Issues) != 1 {
		t.Fatalf("expected 1 dropped-note issue, got %v", report.Baseline.Issues)
	}
	if report.Baseline.Issues[0].Severity != qa.SeverityMedium {
		t.Fatalf("expected medium severity, got %s", report.Baseline.Issues[0].Severity)
	}
}

func TestBaselineCheckSuggestsNearMatches(t *testing.T) {
	prior := baseline.NewIndex([]libran.Entry{
		baselineEntry("stone", "petra", "petrë", "Lat. petra"),
	}, true)

	entries := []libran.Entry{
		baselineEntry("stones", "petra", "petrë", "Lat. petra"),
	}
	scorer := qa.NewScorer(qa.Options{Baseline: prior, Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	if len(report.Baseline.Issues) != 1 {
		t.Fatalf("expected 1 near-match suggestion, got %v", report.Baseline.Issues)
	}
	if report.Baseline.Issues[0].Severity != qa.SeverityLow {
		t.Fatalf("expected low severity, got %s", report.Baseline.Issues[0].Severity)
	}
}

// Full key coverage earns the +5 bonus back against penalties: two
// divergences cost 10, the bonus recovers 5.
func TestBaselineCheckCoverageBonus(t *testing.T) {
	prior := baseline.NewIndex([]libran.Entry{
		baselineEntry("flame", "flamma", "flamë", ""),
		baselineEntry("hope", "spes", "sperë", ""),
	}, false)

	entries := []libran.Entry{
		baselineEntry("flame", "flamma", "flammeka", ""),
		baselineEntry("hope", "spes", "sperillë", ""),
	}
	scorer := qa.NewScorer(qa.Options{Baseline: prior, Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	if report.Baseline.Score != 95 {
		t.Fatalf("expected 100-10+5=95, got %.1f", report.Baseline.Score)
	}
	if report.Baseline.Coverage != 1.0 {
		t.Fatalf("expected full coverage, got %.2f", report.Baseline.Coverage)
	}
}

func TestBaselineCheckDoesNotMoveOverallScore(t *testing.T) {
	prior := baseline.NewIndex([]libran.Entry{
		baselineEntry("flame", "flamma", "flamë", ""),
	}, false)

	dict := newDict(cleanEntries())
	with := mustEvaluate(t, qa.NewScorer(qa.Options{Baseline: prior, Now: fixedNow}), dict)
	without := mustEvaluate(t, qa.NewScorer(qa.Options{Now: fixedNow}), dict)

	if with.OverallScore != without.OverallScore {
		t.Fatalf("baseline check moved the weighted score: %d vs %d", with.OverallScore, without.OverallScore)
	}
	if with.Baseline == nil {
		t.Fatal("expected the baseline section present")
	}
}
