package qa

import (
	"fmt"
	"strings"

	"lexweave/internal/baseline"
	"lexweave/internal/libran"
)

const lazinessPenalty = 1.5

// latinLikeSuffixes are the endings a lazy coinage borrows to dress an
// English word up as Ancient Librán.
var latinLikeSuffixes = []string{"or", "on", "um", "us"}

// runLazinessAudit flags coinages that recycle the English headword instead
// of deriving from a donor language: Ancient forms that contain the English
// stem under a Latin veneer, and undecorated Modern forms restating the
// headword without a donor note to excuse the borrowing.
func (s *Scorer) runLazinessAudit(dict *libran.UnifiedDictionary) (float64, []Issue, string) {
	var issues []Issue
	for _, entry := range dict.Entries {
		stem := englishStem(entry.English)
		// Two-letter stems match almost any spelling; leave them alone.
		if len(stem) < 3 {
			continue
		}

		for _, surface := range entry.Ancient.Surfaces() {
			lowered := strings.ToLower(surface)
			if strings.Contains(lowered, stem) && hasLatinLikeSuffix(lowered) {
				issues = append(issues, Issue{
					Severity: SeverityHigh,
					English:  entry.English,
					Surface:  surface,
					Detail:   fmt.Sprintf("ancient form %q is the English stem %q with a Latin suffix", surface, stem),
				})
			}
		}

		if libran.NoteCitesDonor(entry.Notes) {
			continue
		}
		for _, surface := range entry.Modern.Surfaces() {
			if libran.HasDiacritics(surface) {
				continue
			}
			if strings.Contains(strings.ToLower(surface), stem) {
				issues = append(issues, Issue{
					Severity: SeverityMedium,
					English:  entry.English,
					Surface:  surface,
					Detail:   fmt.Sprintf("modern form %q restates the English headword and no note cites a donor", surface),
				})
			}
		}
	}

	score := clampScore(100 - lazinessPenalty*float64(len(issues)))
	summary := "no lazy coinages"
	if len(issues) > 0 {
		summary = fmt.Sprintf("%d forms recycle their English headword", len(issues))
	}
	return score, issues, summary
}

// englishStem folds the headword and strips one inflection suffix, matching
// the near-match stemming used for baseline lookups.
func englishStem(english string) string {
	return baseline.Stem(libran.FoldKey(english))
}

func hasLatinLikeSuffix(lowered string) bool {
	for _, suffix := range latinLikeSuffixes {
		if strings.HasSuffix(lowered, suffix) {
			return true
		}
	}
	return false
}
