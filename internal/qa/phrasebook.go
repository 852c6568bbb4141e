package qa

import (
	"fmt"

	"lexweave/internal/libran"
)

// EssentialPhrasebook lists the vocabulary a traveler needs on day one.
// Phrasebook integration scores the fraction of these the dictionary
// covers with at least one translation.
var EssentialPhrasebook = []string{
	"hello", "goodbye", "yes", "no",
	"please", "thank you", "friend", "help",
	"water", "food", "fire", "home",
	"come", "go", "good", "bad",
}

func (s *Scorer) runPhrasebookIntegration(dict *libran.UnifiedDictionary) (float64, []Issue, string) {
	covered := 0
	var issues []Issue
	for _, term := range EssentialPhrasebook {
		entry, ok := dict.Lookup(term)
		if ok && entry.IsComplete() {
			covered++
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityLow,
			English:  term,
			Detail:   fmt.Sprintf("essential term %q has no translation", term),
		})
	}

	score := clampScore(float64(covered) / float64(len(EssentialPhrasebook)) * 100)
	summary := fmt.Sprintf("%d of %d essential terms covered", covered, len(EssentialPhrasebook))
	return score, issues, summary
}
