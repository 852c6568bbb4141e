package exclusion

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"lexweave/internal/libran"
)

// Entry is one intentionally preserved term: audit findings whose subject
// matches it are suppressed rather than reported.
type Entry struct {
	Category      string
	Term          string
	Aliases       []string
	Justification string
}

// Options widens matching beyond the default exact comparison. All flags
// default to off so the registry never suppresses more than the curator
// explicitly asked for.
type Options struct {
	IgnoreCase          bool
	NormalizeDiacritics bool
	TreatHyphenAsDash   bool
}

// Registry answers membership queries against the curated exclusion list.
type Registry struct {
	options Options
	entries []Entry
	terms   map[string]int
	aliases map[string]int
}

type fileEntry struct {
	Term          string   `yaml:"term"`
	Aliases       []string `yaml:"aliases"`
	Justification string   `yaml:"justification"`
}

// Load reads a YAML exclusion file mapping category names to term lists.
func Load(path string, opts Options) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exclusion registry: %w", err)
	}
	var doc map[string][]fileEntry
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse exclusion registry %s: %w", path, err)
	}

	categories := make([]string, 0, len(doc))
	for category := range doc {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var entries []Entry
	for _, category := range categories {
		for _, fe := range doc[category] {
			term := libran.NormalizeText(fe.Term)
			if term == "" {
				continue
			}
			entries = append(entries, Entry{
				Category:      category,
				Term:          term,
				Aliases:       fe.Aliases,
				Justification: strings.TrimSpace(fe.Justification),
			})
		}
	}
	return New(entries, opts), nil
}

// New builds a registry over the given entries.
func New(entries []Entry, opts Options) *Registry {
	r := &Registry{
		options: opts,
		entries: entries,
		terms:   make(map[string]int, len(entries)),
		aliases: make(map[string]int),
	}
	for i, entry := range entries {
		key := r.normalize(entry.Term)
		if _, exists := r.terms[key]; !exists {
			r.terms[key] = i
		}
		for _, alias := range entry.Aliases {
			aliasKey := r.normalize(alias)
			if aliasKey == "" {
				continue
			}
			if _, exists := r.aliases[aliasKey]; !exists {
				r.aliases[aliasKey] = i
			}
		}
	}
	return r
}

// Empty returns a registry that excludes nothing. Used when no exclusion
// source is configured so callers need no nil checks.
func Empty() *Registry {
	return New(nil, Options{})
}

// IsExcluded reports whether the term is on the registry, trying the primary
// terms first and alias spellings second.
func (r *Registry) IsExcluded(term string) (Entry, bool) {
	key := r.normalize(term)
	if key == "" {
		return Entry{}, false
	}
	if idx, ok := r.terms[key]; ok {
		return r.entries[idx], true
	}
	if idx, ok := r.aliases[key]; ok {
		return r.entries[idx], true
	}
	return Entry{}, false
}

// Len returns the number of registered terms.
func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) normalize(term string) string {
	out := libran.NormalizeText(term)
	if r.options.TreatHyphenAsDash {
		out = strings.NewReplacer("–", "-", "—", "-").Replace(out)
	}
	if r.options.NormalizeDiacritics {
		out = libran.StripDiacritics(out)
	}
	if r.options.IgnoreCase {
		out = strings.ToLower(out)
	}
	return out
}
