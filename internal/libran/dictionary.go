package libran

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// unifiedSectionName is the section header unified artifacts are written
// under. Incoming tranches may carry arbitrary section names; the merged
// output always collapses to one.
const unifiedSectionName = "Unified"

// Metadata describes one unified artifact build.
type Metadata struct {
	Version           string    `json:"version"`
	GeneratedAt       time.Time `json:"generated_at"`
	Sources           []string  `json:"sources"`
	TotalEntries      int       `json:"total_entries"`
	DuplicatesRemoved int       `json:"duplicates_removed"`
}

// UnifiedDictionary is the deduplicated union of all entries merged in one
// pipeline run. Each run produces a fresh snapshot; nothing mutates one after
// creation.
type UnifiedDictionary struct {
	Metadata Metadata
	Entries  []Entry
}

// Lookup returns the entry for the given English headword, matching on the
// folded key.
func (d *UnifiedDictionary) Lookup(english string) (Entry, bool) {
	key := FoldKey(english)
	for _, entry := range d.Entries {
		if entry.Key() == key {
			return entry, true
		}
	}
	return Entry{}, false
}

type unifiedDocument struct {
	Metadata Metadata                  `json:"metadata"`
	Sections map[string]unifiedSection `json:"sections"`
}

type unifiedSection struct {
	Data []Entry `json:"data"`
}

// MarshalJSON renders the dictionary as a sectioned document with a single
// Unified section, the shape downstream consumers read.
func (d UnifiedDictionary) MarshalJSON() ([]byte, error) {
	doc := unifiedDocument{
		Metadata: d.Metadata,
		Sections: map[string]unifiedSection{
			unifiedSectionName: {Data: d.Entries},
		},
	}
	return json.Marshal(doc)
}

// UnmarshalJSON reads a sectioned document, concatenating entries across all
// sections in sorted section order.
func (d *UnifiedDictionary) UnmarshalJSON(data []byte) error {
	var doc unifiedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	d.Metadata = doc.Metadata
	d.Entries = nil
	names := make([]string, 0, len(doc.Sections))
	for name := range doc.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d.Entries = append(d.Entries, doc.Sections[name].Data...)
	}
	return nil
}

// WriteFile persists the dictionary artifact as indented JSON.
func (d *UnifiedDictionary) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode unified dictionary: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write unified dictionary: %w", err)
	}
	return nil
}

// ReadDictionary loads a unified artifact from disk.
func ReadDictionary(path string) (*UnifiedDictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read unified dictionary: %w", err)
	}
	var dict UnifiedDictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("parse unified dictionary %s: %w", path, err)
	}
	for i := range dict.Entries {
		dict.Entries[i].Normalize()
	}
	return &dict, nil
}

// ArtifactFilename returns the canonical name for a unified artifact built
// for the given version and run stamp.
func ArtifactFilename(version, runStamp string) string {
	return fmt.Sprintf("Unified_Libran_Dictionary_v%s_%s.json", version, runStamp)
}
