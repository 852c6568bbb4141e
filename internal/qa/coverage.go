package qa

import (
	"fmt"
	"strings"

	"lexweave/internal/libran"
)

const (
	coveragePenalty = 10.0
	verbFloor       = 0.15
	nounCap         = 0.70
)

type wordClass string

const (
	classNoun      wordClass = "noun"
	classVerb      wordClass = "verb"
	classAdjective wordClass = "adjective"
	classOther     wordClass = "other"
)

// adjectiveSuffixes is checked longest-first so "comfortable" matches
// "able" before a shorter ending could misfire.
var adjectiveSuffixes = []string{"ible", "able", "less", "ful", "ous", "ive", "ish"}

// commonAdjectives catches the high-frequency adjectives that carry no
// telltale suffix.
var commonAdjectives = map[string]struct{}{
	"good": {}, "bad": {}, "big": {}, "small": {}, "old": {}, "new": {},
	"young": {}, "hot": {}, "cold": {}, "dark": {}, "bright": {},
	"high": {}, "low": {}, "strong": {}, "weak": {},
}

// classify buckets one entry into noun, verb, adjective, or other. An
// explicit part-of-speech tag wins; untagged headwords fall back to
// keyword heuristics.
func classify(entry libran.Entry) wordClass {
	switch strings.ToLower(strings.TrimSpace(entry.POS)) {
	case "noun", "n":
		return classNoun
	case "verb", "v":
		return classVerb
	case "adjective", "adj":
		return classAdjective
	case "adverb", "adv", "preposition", "prep", "conjunction", "conj",
		"interjection", "int", "pronoun", "pron", "article", "art":
		return classOther
	}

	english := libran.FoldKey(entry.English)
	if strings.HasPrefix(english, "to ") {
		return classVerb
	}
	if _, ok := commonAdjectives[english]; ok {
		return classAdjective
	}
	for _, suffix := range adjectiveSuffixes {
		if strings.HasSuffix(english, suffix) && len(english) > len(suffix)+1 {
			return classAdjective
		}
	}
	if strings.Contains(english, " ") {
		return classOther
	}
	return classNoun
}

// runCoverageAnalysis checks the part-of-speech balance of the snapshot.
// A usable dictionary needs enough verbs to form sentences and must not be
// a pure noun list, so the verb share has a floor and the noun share a cap.
func (s *Scorer) runCoverageAnalysis(dict *libran.UnifiedDictionary) (float64, []Issue, string) {
	counts := make(map[wordClass]int)
	for _, entry := range dict.Entries {
		counts[classify(entry)]++
	}

	total := len(dict.Entries)
	var issues []Issue
	if total > 0 {
		verbRatio := float64(counts[classVerb]) / float64(total)
		nounRatio := float64(counts[classNoun]) / float64(total)
		if verbRatio < verbFloor {
			issues = append(issues, Issue{
				Severity: SeverityMedium,
				Detail:   fmt.Sprintf("verbs are %.1f%% of entries, below the %.0f%% floor", verbRatio*100, verbFloor*100),
			})
		}
		if nounRatio > nounCap {
			issues = append(issues, Issue{
				Severity: SeverityMedium,
				Detail:   fmt.Sprintf("nouns are %.1f%% of entries, above the %.0f%% cap", nounRatio*100, nounCap*100),
			})
		}
	}

	score := clampScore(100 - coveragePenalty*float64(len(issues)))
	summary := fmt.Sprintf("nouns %d, verbs %d, adjectives %d, other %d",
		counts[classNoun], counts[classVerb], counts[classAdjective], counts[classOther])
	return score, issues, summary
}
