package audit

import (
	"fmt"
	"strings"

	"lexweave/internal/baseline"
	"lexweave/internal/libran"
)

// suspiciousAncientEndings are the veneers a coined Ancient form hides an
// English word behind.
var suspiciousAncientEndings = []string{"or", "on"}

// englishSuffixes betray a Modern form that never left English.
var englishSuffixes = []string{"ing", "ed", "tion", "ness", "ment", "ship", "hood"}

// runSuspiciousPatterns flags derivations that look manufactured from the
// English headword: Ancient forms that are the stem under an -or/-on ending,
// and Modern forms that contain the stem or end in an English suffix.
func runSuspiciousPatterns(dict *libran.UnifiedDictionary) []Issue {
	var issues []Issue
	for _, entry := range dict.Entries {
		stem := baseline.Stem(libran.FoldKey(entry.English))
		if len(stem) < 3 {
			continue
		}

		for _, surface := range entry.Ancient.Surfaces() {
			lowered := strings.ToLower(surface)
			if !strings.Contains(lowered, stem) {
				continue
			}
			for _, ending := range suspiciousAncientEndings {
				if strings.HasSuffix(lowered, ending) {
					issues = append(issues, Issue{
						Severity: SeverityHigh,
						English:  entry.English,
						Surface:  surface,
						Detail:   fmt.Sprintf("ancient form %q is %q dressed up with -%s", surface, entry.English, ending),
					})
					break
				}
			}
		}

		for _, surface := range entry.Modern.Surfaces() {
			lowered := strings.ToLower(surface)
			switch {
			case strings.Contains(lowered, stem):
				issues = append(issues, Issue{
					Severity: SeverityMedium,
					English:  entry.English,
					Surface:  surface,
					Detail:   fmt.Sprintf("modern form %q still contains the English stem %q", surface, stem),
				})
			case hasEnglishSuffix(lowered):
				issues = append(issues, Issue{
					Severity: SeverityMedium,
					English:  entry.English,
					Surface:  surface,
					Detail:   fmt.Sprintf("modern form %q ends in an English suffix", surface),
				})
			}
		}
	}
	return issues
}

func hasEnglishSuffix(lowered string) bool {
	for _, suffix := range englishSuffixes {
		if strings.HasSuffix(lowered, suffix) {
			return true
		}
	}
	return false
}
