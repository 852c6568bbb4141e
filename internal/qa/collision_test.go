package qa_test

import (
	"testing"

	"lexweave/internal/libran"
	"lexweave/internal/qa"
)

// allowAll accepts every pair, standing in for a site-specific policy.
type allowAll struct{}

func (allowAll) Allowed(a, b libran.Entry) bool { return true }

func entryWithAncient(english, ancient string) libran.Entry {
	return libran.Entry{English: english, Ancient: libran.StringForm(ancient), Notes: "Lat. " + ancient}
}

func TestCollisionFlagsSharedAncientForm(t *testing.T) {
	pair := []libran.Entry{
		entryWithAncient("lord", "dominus"),
		entryWithAncient("master", "dominus"),
	}
	scorer := qa.NewScorer(qa.Options{Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(pair))
	collision := categoryByName(t, report, qa.CategoryCollision)
	if len(collision.Issues) != 1 {
		t.Fatalf("expected 1 collision issue, got %d: %v", len(collision.Issues), collision.Issues)
	}
	if collision.Issues[0].Severity != qa.SeverityHigh {
		t.Fatalf("expected high severity, got %s", collision.Issues[0].Severity)
	}
	if collision.Score != 98 {
		t.Fatalf("expected score 98 after one collision, got %.1f", collision.Score)
	}

	// The pair is flagged regardless of entry order.
	reversed := []libran.Entry{pair[1], pair[0]}
	report = mustEvaluate(t, scorer, newDict(reversed))
	collision = categoryByName(t, report, qa.CategoryCollision)
	if len(collision.Issues) != 1 {
		t.Fatalf("expected 1 collision issue after reorder, got %d", len(collision.Issues))
	}
}

func TestCollisionAllowsKinshipHomonyms(t *testing.T) {
	entries := []libran.Entry{
		{English: "father", Modern: libran.StringForm("materë"), Notes: "Lat. mater"},
		{English: "mother", Modern: libran.StringForm("materë"), Notes: "Lat. mater"},
	}
	scorer := qa.NewScorer(qa.Options{Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	collision := categoryByName(t, report, qa.CategoryCollision)
	if len(collision.Issues) != 0 {
		t.Fatalf("expected kinship homonym to pass, got %v", collision.Issues)
	}
}

func TestCollisionAllowsSenseMarkedPairs(t *testing.T) {
	entries := []libran.Entry{
		{English: "light", Modern: libran.StringForm("lumenë"), Notes: "Lat. lumen [sense 1]"},
		{English: "lamp", Modern: libran.StringForm("lumenë"), Notes: "Lat. lumen [sense 2]"},
	}
	scorer := qa.NewScorer(qa.Options{Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	collision := categoryByName(t, report, qa.CategoryCollision)
	if len(collision.Issues) != 0 {
		t.Fatalf("expected sense-marked homonym to pass, got %v", collision.Issues)
	}
}

func TestCollisionIgnoresCrossVariantMatches(t *testing.T) {
	entries := []libran.Entry{
		{English: "ash", Ancient: libran.StringForm("cinisë"), Notes: "Lat. cinis"},
		{English: "ember", Modern: libran.StringForm("cinisë"), Notes: "Lat. cinis"},
	}
	scorer := qa.NewScorer(qa.Options{Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	collision := categoryByName(t, report, qa.CategoryCollision)
	if len(collision.Issues) != 0 {
		t.Fatalf("ancient and modern surfaces collide independently, got %v", collision.Issues)
	}
}

func TestCollisionThreeWayGroupFlagsEveryPair(t *testing.T) {
	entries := []libran.Entry{
		entryWithAncient("lord", "dominus"),
		entryWithAncient("master", "dominus"),
		entryWithAncient("chief", "dominus"),
	}
	scorer := qa.NewScorer(qa.Options{Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	collision := categoryByName(t, report, qa.CategoryCollision)
	if len(collision.Issues) != 3 {
		t.Fatalf("expected 3 pairs from a 3-way collision, got %d", len(collision.Issues))
	}
}

func TestCollisionHonorsCustomPolicy(t *testing.T) {
	entries := []libran.Entry{
		entryWithAncient("lord", "dominus"),
		entryWithAncient("master", "dominus"),
	}
	scorer := qa.NewScorer(qa.Options{Homonyms: allowAll{}, Now: fixedNow})

	report := mustEvaluate(t, scorer, newDict(entries))
	collision := categoryByName(t, report, qa.CategoryCollision)
	if len(collision.Issues) != 0 {
		t.Fatalf("expected custom policy to allow the pair, got %v", collision.Issues)
	}
}
