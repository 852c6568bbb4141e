package qa_test

import (
	"testing"

	"lexweave/internal/libran"
	"lexweave/internal/qa"
)

func taggedEntry(english, pos string) libran.Entry {
	return libran.Entry{
		English: english,
		Modern:  libran.StringForm("vorë"),
		POS:     pos,
		Notes:   "Lat. vorare",
	}
}

func TestCoverageFlagsNounHeavyDictionary(t *testing.T) {
	entries := []libran.Entry{
		taggedEntry("stone", "n"),
		taggedEntry("rock", "n"),
		taggedEntry("tree", "n"),
		taggedEntry("river", "n"),
	}
	scorer := qa.NewScorer(qa.Options{Homonyms: allowAll{}, Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	coverage := categoryByName(t, report, qa.CategoryCoverage)
	if len(coverage.Issues) != 2 {
		t.Fatalf("expected noun cap and verb floor violations, got %v", coverage.Issues)
	}
	if coverage.Score != 80 {
		t.Fatalf("expected score 80 after two violations, got %.1f", coverage.Score)
	}
}

func TestCoverageBalancedDictionaryPasses(t *testing.T) {
	entries := []libran.Entry{
		taggedEntry("stone", "n"),
		taggedEntry("river", "n"),
		taggedEntry("to walk", ""),
		taggedEntry("to see", ""),
		taggedEntry("bright", ""),
	}
	scorer := qa.NewScorer(qa.Options{Homonyms: allowAll{}, Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	coverage := categoryByName(t, report, qa.CategoryCoverage)
	if len(coverage.Issues) != 0 {
		t.Fatalf("expected a balanced dictionary to pass, got %v", coverage.Issues)
	}
	if coverage.Score != 100 {
		t.Fatalf("expected score 100, got %.1f", coverage.Score)
	}
}

// Adjective-shaped headwords must leave the noun bucket, or a wordlist like
// this one would breach the noun cap.
func TestCoverageBucketsAdjectivesByHeuristic(t *testing.T) {
	entries := []libran.Entry{
		taggedEntry("famous", ""),
		taggedEntry("good", ""),
		taggedEntry("to see", ""),
		taggedEntry("stone", ""),
	}
	scorer := qa.NewScorer(qa.Options{Homonyms: allowAll{}, Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	coverage := categoryByName(t, report, qa.CategoryCoverage)
	if len(coverage.Issues) != 0 {
		t.Fatalf("expected adjectives bucketed out of the noun share, got %v", coverage.Issues)
	}
}

func TestCoveragePartOfSpeechTagWinsOverHeuristics(t *testing.T) {
	entries := []libran.Entry{
		taggedEntry("running", "v"),
		taggedEntry("stone", ""),
		taggedEntry("rock", ""),
	}
	scorer := qa.NewScorer(qa.Options{Homonyms: allowAll{}, Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	coverage := categoryByName(t, report, qa.CategoryCoverage)
	if len(coverage.Issues) != 0 {
		t.Fatalf("expected the verb tag to balance the buckets, got %v", coverage.Issues)
	}
}

func TestCoveragePhrasesLandInOtherBucket(t *testing.T) {
	entries := []libran.Entry{
		taggedEntry("thank you", ""),
		taggedEntry("well met", ""),
		taggedEntry("to walk", ""),
		taggedEntry("stone", ""),
	}
	scorer := qa.NewScorer(qa.Options{Homonyms: allowAll{}, Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	coverage := categoryByName(t, report, qa.CategoryCoverage)
	if len(coverage.Issues) != 0 {
		t.Fatalf("expected phrases in the other bucket, got %v", coverage.Issues)
	}
}
