package audit

import (
	"fmt"

	"lexweave/internal/libran"
)

// anachronisticTerms are modern-world concepts that have no place in the
// setting: technology, medicine, political institutions, and industrial
// materials and foods.
var anachronisticTerms = map[string]struct{}{
	"computer": {}, "internet": {}, "smartphone": {}, "wifi": {},
	"dna": {}, "quantum": {}, "laser": {}, "nuclear": {},
	"antibiotic": {}, "vaccine": {}, "surgery": {}, "chemotherapy": {},
	"democracy": {}, "capitalism": {}, "socialism": {}, "feminism": {},
	"plastic": {}, "concrete": {}, "gasoline": {},
	"coffee": {}, "chocolate": {}, "tobacco": {},
}

// runCulturalAnachronisms flags English headwords naming concepts the
// culture could not have.
func runCulturalAnachronisms(dict *libran.UnifiedDictionary) []Issue {
	var issues []Issue
	for _, entry := range dict.Entries {
		if _, ok := anachronisticTerms[libran.FoldKey(entry.English)]; !ok {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityHigh,
			English:  entry.English,
			Detail:   fmt.Sprintf("%q is a modern-world concept the lexicon should not cover", entry.English),
		})
	}
	return issues
}
