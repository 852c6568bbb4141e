package libran

import "strings"

// DonorLanguage describes the surface signature of one real-world language
// that Librán borrows from. Notes cite donors with short markers ("Lat.",
// "Hun."); spellings betray them through characteristic diacritics and
// endings. QA's ruleset compliance and the audit's etymology check both
// consult the same tables so their verdicts cannot drift apart.
type DonorLanguage struct {
	Name        string
	NoteMarkers []string
	Diacritics  string
	Endings     []string
}

// DonorLanguages lists the four donor languages recognized in etymology
// notes, in canonical order.
var DonorLanguages = []DonorLanguage{
	{
		Name:        "Latin",
		NoteMarkers: []string{"Lat.", "Latin"},
		Diacritics:  "āēīōū",
		Endings:     []string{"us", "um", "or", "ae", "is", "era", "ora"},
	},
	{
		Name:        "Hungarian",
		NoteMarkers: []string{"Hun.", "Hungarian"},
		Diacritics:  "őűöü",
		Endings:     []string{"ás", "és", "ság", "ség", "zó", "űz"},
	},
	{
		Name:        "Romanian",
		NoteMarkers: []string{"Rom.", "Romanian"},
		Diacritics:  "ăâîșț",
		Endings:     []string{"escu", "oară", "uri", "ește"},
	},
	{
		Name:        "Icelandic",
		NoteMarkers: []string{"IS.", "Icelandic"},
		Diacritics:  "þðæý",
		Endings:     []string{"ur", "ir", "ór", "ja"},
	},
}

// LibranDiacritics enumerates the marked characters of Modern Librán
// orthography. A spelling containing any of them carries an inferable donor
// signature even without a note.
const LibranDiacritics = "áéíóúëñçüöőűăâîșțþðæý"

// MentionedIn reports whether the notes text cites this donor language.
func (d DonorLanguage) MentionedIn(notes string) bool {
	for _, marker := range d.NoteMarkers {
		if strings.Contains(notes, marker) {
			return true
		}
	}
	return false
}

// SurfaceMatch reports whether the spelling shows this donor's characteristic
// diacritics or endings.
func (d DonorLanguage) SurfaceMatch(spelling string) bool {
	lowered := strings.ToLower(spelling)
	if strings.ContainsAny(lowered, d.Diacritics) {
		return true
	}
	for _, ending := range d.Endings {
		if strings.HasSuffix(lowered, ending) {
			return true
		}
	}
	return false
}

// NoteCitesDonor reports whether the notes text cites any recognized donor
// language.
func NoteCitesDonor(notes string) bool {
	if strings.TrimSpace(notes) == "" {
		return false
	}
	for _, donor := range DonorLanguages {
		if donor.MentionedIn(notes) {
			return true
		}
	}
	return false
}

// CitedDonors returns the donor languages the notes text claims, in canonical
// order.
func CitedDonors(notes string) []DonorLanguage {
	if strings.TrimSpace(notes) == "" {
		return nil
	}
	var cited []DonorLanguage
	for _, donor := range DonorLanguages {
		if donor.MentionedIn(notes) {
			cited = append(cited, donor)
		}
	}
	return cited
}

// HasDonorSignature reports whether the spelling shows an inferable donor
// signature: a Librán diacritic or a recognized donor ending.
func HasDonorSignature(spelling string) bool {
	lowered := strings.ToLower(spelling)
	if strings.ContainsAny(lowered, LibranDiacritics) {
		return true
	}
	for _, donor := range DonorLanguages {
		for _, ending := range donor.Endings {
			if strings.HasSuffix(lowered, ending) {
				return true
			}
		}
	}
	return false
}
