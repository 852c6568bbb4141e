package qa

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"lexweave/internal/libran"
)

const (
	compoundPenalty = 2.0
	longFormRunes   = 10
)

// runCompoundReview flags hyphenated compounds with no grounding note and
// long single-word forms with no donor evidence. A hyphenated surface is
// judged by the note rule alone; its length is not separately held against
// it.
func (s *Scorer) runCompoundReview(dict *libran.UnifiedDictionary) (float64, []Issue, string) {
	var issues []Issue
	for _, entry := range dict.Entries {
		for _, form := range []libran.Form{entry.Ancient, entry.Modern} {
			for _, surface := range form.Surfaces() {
				if strings.Contains(surface, "-") {
					if !entry.HasNotes() {
						issues = append(issues, Issue{
							Severity: SeverityHigh,
							English:  entry.English,
							Surface:  surface,
							Detail:   fmt.Sprintf("hyphenated form %q has no note explaining the compound", surface),
						})
					}
					continue
				}
				if utf8.RuneCountInString(surface) <= longFormRunes {
					continue
				}
				if libran.NoteCitesDonor(entry.Notes) || libran.HasDonorSignature(surface) {
					continue
				}
				issues = append(issues, Issue{
					Severity: SeverityMedium,
					English:  entry.English,
					Surface:  surface,
					Detail:   fmt.Sprintf("long form %q shows no donor evidence", surface),
				})
			}
		}
	}

	score := clampScore(100 - compoundPenalty*float64(len(issues)))
	summary := "compounds and long forms are grounded"
	if len(issues) > 0 {
		summary = fmt.Sprintf("%d compounds or long forms lack grounding", len(issues))
	}
	return score, issues, summary
}
