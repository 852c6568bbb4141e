package tranche

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/jsonc"

	"lexweave/internal/libran"
)

// Tranche is one parsed vocabulary fragment: a named, provenance-tagged
// bundle of entries read exactly once per pipeline run.
type Tranche struct {
	Name    string
	Path    string
	Entries []libran.Entry
	// Dropped counts records discarded for missing English headwords.
	Dropped int
}

// shape identifies which of the three supported fragment layouts a file uses.
type shape int

const (
	shapeFlat shape = iota
	shapeList
	shapeSectioned
)

// Load reads and parses the fragment at path.
func Load(path, name string) (*Tranche, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tranche: %w", err)
	}
	t, err := Parse(name, data)
	if err != nil {
		return nil, err
	}
	t.Path = path
	return t, nil
}

// Parse normalizes fragment bytes into a canonical entry list. Authors write
// fragments in one of three shapes: a flat English-to-spelling map, a list of
// entry records, or a sectioned document. The shape is detected once and the
// whole fragment is decoded through that branch; JSONC comments and trailing
// commas are tolerated throughout.
func Parse(name string, data []byte) (*Tranche, error) {
	plain := jsonc.ToJSON(data)

	detected, err := detectShape(plain)
	if err != nil {
		return nil, fmt.Errorf("tranche %s: %w", name, err)
	}

	var entries []libran.Entry
	switch detected {
	case shapeSectioned:
		entries, err = parseSectioned(plain)
	case shapeList:
		entries, err = parseList(plain)
	default:
		entries, err = parseFlat(plain)
	}
	if err != nil {
		return nil, fmt.Errorf("tranche %s: %w", name, err)
	}

	t := &Tranche{Name: name}
	for i := range entries {
		entries[i].Normalize()
		if entries[i].Validate() != nil {
			t.Dropped++
			continue
		}
		t.Entries = append(t.Entries, entries[i])
	}
	return t, nil
}

func detectShape(data []byte) (shape, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return shapeFlat, fmt.Errorf("invalid JSON: %w", err)
	}
	switch value := probe.(type) {
	case []any:
		return shapeList, nil
	case map[string]any:
		if sections, ok := value["sections"]; ok {
			if _, isObject := sections.(map[string]any); isObject {
				return shapeSectioned, nil
			}
		}
		return shapeFlat, nil
	default:
		return shapeFlat, fmt.Errorf("top-level value must be an object or array")
	}
}

type sectionedDocument struct {
	Metadata json.RawMessage    `json:"metadata"`
	Sections map[string]section `json:"sections"`
}

type section struct {
	Data []libran.Entry `json:"data"`
}

func parseSectioned(data []byte) ([]libran.Entry, error) {
	var doc sectionedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sectioned document: %w", err)
	}
	names := make([]string, 0, len(doc.Sections))
	for name := range doc.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	var entries []libran.Entry
	for _, name := range names {
		entries = append(entries, doc.Sections[name].Data...)
	}
	return entries, nil
}

func parseList(data []byte) ([]libran.Entry, error) {
	var entries []libran.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("entry list: %w", err)
	}
	return entries, nil
}

// parseFlat reads a flat English-to-spelling map. Flat fragments carry the
// Modern variant only; that is the living register linguists draft in before
// Ancient forms are reconstructed.
func parseFlat(data []byte) ([]libran.Entry, error) {
	var flat map[string]libran.Form
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("flat map: %w", err)
	}
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	entries := make([]libran.Entry, 0, len(flat))
	for _, key := range keys {
		entries = append(entries, libran.Entry{English: key, Modern: flat[key]})
	}
	return entries, nil
}
