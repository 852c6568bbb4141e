package qa_test

import (
	"testing"

	"lexweave/internal/libran"
	"lexweave/internal/qa"
)

func TestPhrasebookFullCoverageScores100(t *testing.T) {
	report := mustEvaluate(t, qa.NewScorer(qa.Options{Now: fixedNow}), newDict(cleanEntries()))
	phrasebook := categoryByName(t, report, qa.CategoryPhrasebook)
	if phrasebook.Score != 100 {
		t.Fatalf("expected full coverage, got %.1f: %v", phrasebook.Score, phrasebook.Issues)
	}
}

func TestPhrasebookScoresCoverageFraction(t *testing.T) {
	half := cleanEntries()[:8]
	report := mustEvaluate(t, qa.NewScorer(qa.Options{Now: fixedNow}), newDict(half))
	phrasebook := categoryByName(t, report, qa.CategoryPhrasebook)
	if phrasebook.Score != 50 {
		t.Fatalf("expected 8 of 16 to score 50, got %.1f", phrasebook.Score)
	}
	if len(phrasebook.Issues) != 8 {
		t.Fatalf("expected 8 missing-term issues, got %d", len(phrasebook.Issues))
	}
}

func TestPhrasebookPlaceholderTranslationDoesNotCount(t *testing.T) {
	entries := cleanEntries()
	entries[0].Modern = libran.StringForm("—")

	report := mustEvaluate(t, qa.NewScorer(qa.Options{Now: fixedNow}), newDict(entries))
	phrasebook := categoryByName(t, report, qa.CategoryPhrasebook)
	if len(phrasebook.Issues) != 1 {
		t.Fatalf("expected the placeholder entry uncovered, got %v", phrasebook.Issues)
	}
	if phrasebook.Issues[0].English != "hello" {
		t.Fatalf("expected hello flagged, got %q", phrasebook.Issues[0].English)
	}
}

func TestPhrasebookMatchesAcrossCase(t *testing.T) {
	entries := cleanEntries()
	entries[0].English = "Hello"

	report := mustEvaluate(t, qa.NewScorer(qa.Options{Now: fixedNow}), newDict(entries))
	phrasebook := categoryByName(t, report, qa.CategoryPhrasebook)
	if len(phrasebook.Issues) != 0 {
		t.Fatalf("expected case-folded coverage, got %v", phrasebook.Issues)
	}
}
