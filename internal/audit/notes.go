package audit

import (
	"fmt"
	"strings"

	"lexweave/internal/libran"
)

// minNoteRunes is the shortest note that counts as documentation for a
// culturally loaded term.
const minNoteRunes = 10

// importantTerms are headwords a reader will interrogate first: titles,
// arms, architecture, and magic. Each deserves a real note.
var importantTerms = map[string]struct{}{
	"king": {}, "queen": {}, "lord": {}, "lady": {}, "chief": {},
	"priest": {}, "priestess": {}, "elder": {},
	"sword": {}, "spear": {}, "shield": {}, "bow": {}, "axe": {}, "armor": {},
	"temple": {}, "tower": {}, "gate": {}, "wall": {}, "bridge": {}, "throne": {},
	"magic": {}, "spell": {}, "ritual": {}, "rune": {}, "curse": {},
	"blessing": {}, "omen": {}, "spirit": {},
}

// runMissingNotes flags important terms whose notes are absent or too thin
// to explain the term's cultural weight.
func runMissingNotes(dict *libran.UnifiedDictionary) []Issue {
	var issues []Issue
	for _, entry := range dict.Entries {
		if _, ok := importantTerms[libran.FoldKey(entry.English)]; !ok {
			continue
		}
		note := strings.TrimSpace(entry.Notes)
		if len([]rune(note)) >= minNoteRunes {
			continue
		}
		detail := fmt.Sprintf("%q carries cultural weight but has no note", entry.English)
		if note != "" {
			detail = fmt.Sprintf("%q has only a %d-character note", entry.English, len([]rune(note)))
		}
		issues = append(issues, Issue{
			Severity: SeverityMedium,
			English:  entry.English,
			Detail:   detail,
		})
	}
	return issues
}
