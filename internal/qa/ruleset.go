package qa

import (
	"fmt"

	"lexweave/internal/libran"
)

const rulesetPenalty = 1.0

// runRulesetCompliance requires every coined form to be traceable to a
// donor language, either through a note citation covering the whole entry
// or through the form's own surface signature. Ancient and Modern are
// judged independently, so an entry can accrue up to two findings.
func (s *Scorer) runRulesetCompliance(dict *libran.UnifiedDictionary) (float64, []Issue, string) {
	var issues []Issue
	for _, entry := range dict.Entries {
		if libran.NoteCitesDonor(entry.Notes) {
			continue
		}
		for _, variant := range []struct {
			name string
			form libran.Form
		}{
			{"ancient", entry.Ancient},
			{"modern", entry.Modern},
		} {
			if variant.form.IsZero() {
				continue
			}
			if anySignature(variant.form) {
				continue
			}
			issues = append(issues, Issue{
				Severity: SeverityLow,
				English:  entry.English,
				Surface:  variant.form.Primary(),
				Detail:   fmt.Sprintf("%s form %q has neither a donor note nor a recognizable donor signature", variant.name, variant.form.Primary()),
			})
		}
	}

	score := clampScore(100 - rulesetPenalty*float64(len(issues)))
	summary := "every form is traceable to a donor"
	if len(issues) > 0 {
		summary = fmt.Sprintf("%d forms are untraceable to any donor", len(issues))
	}
	return score, issues, summary
}

func anySignature(form libran.Form) bool {
	for _, surface := range form.Surfaces() {
		if libran.HasDonorSignature(surface) {
			return true
		}
	}
	return false
}
