package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"lexweave/internal/libran"
)

// Index holds the prior stable release with O(1) lookups by English, Ancient,
// and Modern keys. Matching is exact after NFC normalization; no case folding
// or diacritic stripping happens here, since the consistency check must not
// conflate deliberately distinct spellings.
type Index struct {
	nearMatch bool
	entries   []libran.Entry
	byEnglish map[string]int
	byAncient map[string]int
	byModern  map[string]int
	byStem    map[string][]int
}

// clusterDocument is the prior-release snapshot shape: named clusters each
// carrying separate ancient and modern record lists.
type clusterDocument struct {
	Clusters map[string]clusterData `json:"clusters"`
}

type clusterData struct {
	Ancient []clusterRecord `json:"ancient"`
	Modern  []clusterRecord `json:"modern"`
}

type clusterRecord struct {
	English string `json:"english"`
	Ancient string `json:"ancient"`
	Modern  string `json:"modern"`
	Notes   string `json:"notes"`
}

// Load reads a prior-release snapshot. Both the clustered release shape and a
// sectioned unified artifact are accepted, so last cycle's pipeline output
// can serve directly as the next cycle's baseline.
func Load(path string, nearMatch bool) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse baseline %s: %w", path, err)
	}

	var entries []libran.Entry
	switch {
	case probe["clusters"] != nil:
		entries, err = parseClusters(data)
	case probe["sections"] != nil:
		entries, err = parseUnified(data)
	default:
		return nil, fmt.Errorf("baseline %s: expected a clustered snapshot or unified artifact", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse baseline %s: %w", path, err)
	}

	return NewIndex(entries, nearMatch), nil
}

func parseClusters(data []byte) ([]libran.Entry, error) {
	var doc clusterDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc.Clusters))
	for name := range doc.Clusters {
		names = append(names, name)
	}
	sort.Strings(names)

	merged := make(map[string]*libran.Entry)
	var order []string
	record := func(rec clusterRecord, ancient bool) {
		english := libran.NormalizeText(rec.English)
		if english == "" {
			return
		}
		key := libran.FoldKey(english)
		entry, ok := merged[key]
		if !ok {
			entry = &libran.Entry{English: english}
			merged[key] = entry
			order = append(order, key)
		}
		if ancient && entry.Ancient.IsZero() {
			entry.Ancient = libran.StringForm(libran.NormalizeText(rec.Ancient))
		}
		if !ancient && entry.Modern.IsZero() {
			entry.Modern = libran.StringForm(libran.NormalizeText(rec.Modern))
		}
		if entry.Notes == "" {
			entry.Notes = libran.NormalizeText(rec.Notes)
		}
	}

	for _, name := range names {
		cluster := doc.Clusters[name]
		for _, rec := range cluster.Ancient {
			record(rec, true)
		}
		for _, rec := range cluster.Modern {
			record(rec, false)
		}
	}

	entries := make([]libran.Entry, 0, len(order))
	for _, key := range order {
		entries = append(entries, *merged[key])
	}
	return entries, nil
}

func parseUnified(data []byte) ([]libran.Entry, error) {
	var dict libran.UnifiedDictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, err
	}
	for i := range dict.Entries {
		dict.Entries[i].Normalize()
	}
	return dict.Entries, nil
}

// NewIndex builds lookup maps over the given prior-release entries. When two
// entries share a key the first occurrence wins, matching merge semantics.
func NewIndex(entries []libran.Entry, nearMatch bool) *Index {
	ix := &Index{
		nearMatch: nearMatch,
		entries:   entries,
		byEnglish: make(map[string]int, len(entries)),
		byAncient: make(map[string]int),
		byModern:  make(map[string]int),
		byStem:    make(map[string][]int),
	}
	for i, entry := range entries {
		english := libran.NormalizeText(entry.English)
		if _, exists := ix.byEnglish[english]; !exists {
			ix.byEnglish[english] = i
		}
		for _, surface := range entry.Ancient.Surfaces() {
			if _, exists := ix.byAncient[surface]; !exists {
				ix.byAncient[surface] = i
			}
		}
		for _, surface := range entry.Modern.Surfaces() {
			if _, exists := ix.byModern[surface]; !exists {
				ix.byModern[surface] = i
			}
		}
		if nearMatch {
			stem := Stem(english)
			ix.byStem[stem] = append(ix.byStem[stem], i)
		}
	}
	return ix
}

// Len returns the number of baseline entries.
func (ix *Index) Len() int { return len(ix.entries) }

// Entries returns the indexed entries in load order.
func (ix *Index) Entries() []libran.Entry { return ix.entries }

// Lookup finds an entry whose English, Ancient, or Modern key exactly equals
// the given key, in that priority order.
func (ix *Index) Lookup(key string) (libran.Entry, bool) {
	normalized := libran.NormalizeText(key)
	if i, ok := ix.byEnglish[normalized]; ok {
		return ix.entries[i], true
	}
	if i, ok := ix.byAncient[normalized]; ok {
		return ix.entries[i], true
	}
	if i, ok := ix.byModern[normalized]; ok {
		return ix.entries[i], true
	}
	return libran.Entry{}, false
}

// LookupEnglish finds the baseline entry for an English headword.
func (ix *Index) LookupEnglish(key string) (libran.Entry, bool) {
	i, ok := ix.byEnglish[libran.NormalizeText(key)]
	if !ok {
		return libran.Entry{}, false
	}
	return ix.entries[i], true
}

// FindSimilar returns baseline entries whose stemmed English headword matches
// the stemmed key. Returns nil when near-match lookups are disabled or the
// key has an exact hit.
func (ix *Index) FindSimilar(key string) []libran.Entry {
	if !ix.nearMatch {
		return nil
	}
	normalized := libran.NormalizeText(key)
	if _, exact := ix.byEnglish[normalized]; exact {
		return nil
	}
	var out []libran.Entry
	for _, i := range ix.byStem[Stem(normalized)] {
		out = append(out, ix.entries[i])
	}
	return out
}

// stemSuffixes are tried longest-first so "walking" strips to "walk" rather
// than "walkin".
var stemSuffixes = []string{"ing", "est", "ed", "er", "ly", "s"}

// Stem strips one trailing English inflection suffix from a headword. Stems
// shorter than three characters are left untouched.
func Stem(word string) string {
	lowered := strings.ToLower(word)
	for _, suffix := range stemSuffixes {
		if strings.HasSuffix(lowered, suffix) && len(lowered)-len(suffix) >= 3 {
			return lowered[:len(lowered)-len(suffix)]
		}
	}
	return lowered
}
