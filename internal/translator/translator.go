// Package translator is the read side of a promoted unified artifact: the
// contract the downstream translation service consumes once a pipeline run
// clears the quality gate. It loads one artifact snapshot and answers
// case-insensitive English headword lookups against it.
package translator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"lexweave/internal/libran"
)

const (
	artifactPrefix = "Unified_Libran_Dictionary_v"
	artifactExt    = ".json"
)

// Translation is one resolved headword with both variant spellings. Ancient
// or Modern may be empty when the artifact entry carries only one variant.
type Translation struct {
	English string `json:"english"`
	Ancient string `json:"ancient,omitempty"`
	Modern  string `json:"modern,omitempty"`
	POS     string `json:"pos,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Translator answers headword lookups against one loaded artifact. The
// artifact is immutable after load; a new pipeline run means a new load.
type Translator struct {
	dict *libran.UnifiedDictionary
	path string
}

// Load reads the unified artifact at path.
func Load(path string) (*Translator, error) {
	dict, err := libran.ReadDictionary(path)
	if err != nil {
		return nil, fmt.Errorf("load artifact: %w", err)
	}
	return &Translator{dict: dict, path: path}, nil
}

// LatestArtifactPath returns the newest unified artifact in outputDir,
// preferring the highest dictionary version and breaking ties on the run
// stamp embedded in the filename.
func LatestArtifactPath(outputDir string) (string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", fmt.Errorf("scan output directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, artifactPrefix) && strings.HasSuffix(name, artifactExt) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no unified artifact found in %s", outputDir)
	}
	sort.Slice(names, func(i, j int) bool { return artifactLess(names[i], names[j]) })
	return filepath.Join(outputDir, names[len(names)-1]), nil
}

// LoadLatest loads the artifact LatestArtifactPath resolves.
func LoadLatest(outputDir string) (*Translator, error) {
	path, err := LatestArtifactPath(outputDir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Lookup resolves an English headword. Matching folds case the same way the
// merge dedupe key does, so "Hello" and "hello" hit the same entry.
func (t *Translator) Lookup(english string) (Translation, bool) {
	entry, ok := t.dict.Lookup(english)
	if !ok {
		return Translation{}, false
	}
	return Translation{
		English: entry.English,
		Ancient: entry.Ancient.Primary(),
		Modern:  entry.Modern.Primary(),
		POS:     entry.POS,
		Notes:   entry.Notes,
	}, true
}

// Path returns the artifact file backing this translator.
func (t *Translator) Path() string { return t.path }

// Version returns the artifact's dictionary version.
func (t *Translator) Version() string { return t.dict.Metadata.Version }

// Size returns the number of headwords in the artifact.
func (t *Translator) Size() int { return len(t.dict.Entries) }

// splitArtifactName pulls the dictionary version and run stamp out of an
// artifact filename.
func splitArtifactName(name string) (version, stamp string) {
	core := strings.TrimSuffix(strings.TrimPrefix(name, artifactPrefix), artifactExt)
	idx := strings.LastIndex(core, "_")
	if idx < 0 {
		return core, ""
	}
	return core[:idx], core[idx+1:]
}

func artifactLess(a, b string) bool {
	aVersion, aStamp := splitArtifactName(a)
	bVersion, bStamp := splitArtifactName(b)
	if c := semver.Compare("v"+aVersion, "v"+bVersion); c != 0 {
		return c < 0
	}
	if aStamp != bStamp {
		return aStamp < bStamp
	}
	return a < b
}
