package libran

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText applies Unicode NFC composition and trims surrounding
// whitespace. Every text field in the pipeline passes through here at parse
// time so later comparisons see one canonical encoding.
func NormalizeText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// FoldKey produces the canonical dedupe key for an English headword: NFC
// normalized, trimmed, and lowercased.
func FoldKey(s string) string {
	return strings.ToLower(NormalizeText(s))
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes combining marks from s, mapping spellings like
// "stílibra" to "stilibra". Used only where a caller explicitly opts into
// diacritic-insensitive matching.
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}

// HasDiacritics reports whether s contains at least one character outside
// ASCII once normalized, which in Librán orthography signals a donor-language
// marked spelling.
func HasDiacritics(s string) bool {
	for _, r := range norm.NFC.String(s) {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}
