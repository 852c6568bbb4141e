package audit

import (
	"fmt"
	"unicode/utf8"

	"lexweave/internal/libran"
)

// complexFormRunes is the length past which a form is opaque enough to need
// an etymology note.
const complexFormRunes = 8

// runEtymologicalIssues flags forms whose history cannot be reconstructed:
// long coinages with no note at all, and notes that claim a donor language
// no surface feature supports.
func runEtymologicalIssues(dict *libran.UnifiedDictionary) []Issue {
	var issues []Issue
	for _, entry := range dict.Entries {
		if !entry.HasNotes() {
			for _, surface := range allSurfaces(entry) {
				if utf8.RuneCountInString(surface) > complexFormRunes {
					issues = append(issues, Issue{
						Severity: SeverityMedium,
						English:  entry.English,
						Surface:  surface,
						Detail:   fmt.Sprintf("complex form %q has no etymology note", surface),
					})
				}
			}
			continue
		}

		for _, donor := range libran.CitedDonors(entry.Notes) {
			supported := false
			for _, surface := range allSurfaces(entry) {
				if donor.SurfaceMatch(surface) {
					supported = true
					break
				}
			}
			if !supported {
				issues = append(issues, Issue{
					Severity: SeverityLow,
					English:  entry.English,
					Detail:   fmt.Sprintf("notes cite %s but no form shows its features", donor.Name),
				})
			}
		}
	}
	return issues
}

func allSurfaces(entry libran.Entry) []string {
	surfaces := entry.Ancient.Surfaces()
	return append(surfaces, entry.Modern.Surfaces()...)
}
