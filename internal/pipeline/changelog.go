package pipeline

import (
	"sort"
	"time"

	"lexweave/internal/baseline"
	"lexweave/internal/libran"
)

// Changelog summarizes how a merged snapshot differs from the prior release.
type Changelog struct {
	Version        string    `json:"version"`
	GeneratedAt    time.Time `json:"generated_at"`
	BaselineSize   int       `json:"baseline_size"`
	Added          []string  `json:"added,omitempty"`
	Changed        []string  `json:"changed,omitempty"`
	AddedCount     int       `json:"added_count"`
	ChangedCount   int       `json:"changed_count"`
	UnchangedCount int       `json:"unchanged_count"`
}

// buildChangelog compares every merged entry against the baseline by exact
// English headword. An entry counts as changed when either variant's primary
// spelling differs from the prior release.
func buildChangelog(dict *libran.UnifiedDictionary, ix *baseline.Index, generatedAt time.Time) *Changelog {
	cl := &Changelog{
		Version:      dict.Metadata.Version,
		GeneratedAt:  generatedAt,
		BaselineSize: ix.Len(),
	}
	for _, entry := range dict.Entries {
		prior, ok := ix.LookupEnglish(entry.English)
		if !ok {
			cl.Added = append(cl.Added, entry.English)
			continue
		}
		if prior.Ancient.Primary() != entry.Ancient.Primary() ||
			prior.Modern.Primary() != entry.Modern.Primary() {
			cl.Changed = append(cl.Changed, entry.English)
			continue
		}
		cl.UnchangedCount++
	}
	sort.Strings(cl.Added)
	sort.Strings(cl.Changed)
	cl.AddedCount = len(cl.Added)
	cl.ChangedCount = len(cl.Changed)
	return cl
}
