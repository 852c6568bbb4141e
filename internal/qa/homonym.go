package qa

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"lexweave/internal/libran"
)

// HomonymPolicy decides whether two entries may legitimately share a surface
// form. The collision check consults it before flagging a pair.
type HomonymPolicy interface {
	Allowed(a, b libran.Entry) bool
}

// defaultHomonymGroups are semantic fields whose Librán forms historically
// coincide: kinship words share honorific roots and body-part words share
// anatomical ones. A pair is justified only when both meanings sit in the
// same group; a kinship term colliding with a body part is still suspect.
var defaultHomonymGroups = [][]string{
	{
		"father", "mother", "brother", "sister", "son", "daughter",
		"grandfather", "grandmother", "uncle", "aunt", "cousin", "elder",
	},
	{
		"hand", "arm", "eye", "ear", "heart", "blood", "bone",
		"head", "foot", "mouth",
	},
}

// Allowlist is the default HomonymPolicy. A pair is allowed when both
// meanings share a semantic group, when the exact pair was registered, or
// when both entries carry explicit sense markers in their notes.
type Allowlist struct {
	groups []map[string]struct{}
	pairs  map[string]struct{}
}

// NewAllowlist builds a policy from semantic groups and explicit pairs.
// Keys are folded so the policy matches entries regardless of letter case.
func NewAllowlist(groups [][]string, pairs [][2]string) *Allowlist {
	a := &Allowlist{pairs: make(map[string]struct{}, len(pairs))}
	for _, group := range groups {
		folded := make(map[string]struct{}, len(group))
		for _, term := range group {
			folded[libran.FoldKey(term)] = struct{}{}
		}
		a.groups = append(a.groups, folded)
	}
	for _, pair := range pairs {
		a.pairs[pairKey(pair[0], pair[1])] = struct{}{}
	}
	return a
}

// DefaultAllowlist returns the built-in kinship and body-part policy.
func DefaultAllowlist() *Allowlist {
	return NewAllowlist(defaultHomonymGroups, nil)
}

type allowlistFile struct {
	Groups [][]string `yaml:"groups"`
	Pairs  [][]string `yaml:"pairs"`
}

// LoadAllowlist reads a policy file and merges it over the built-in
// defaults, so a custom policy extends the kinship and body-part groups
// rather than replacing them.
func LoadAllowlist(path string) (*Allowlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read homonym policy: %w", err)
	}
	var file allowlistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse homonym policy %s: %w", path, err)
	}

	pairs := make([][2]string, 0, len(file.Pairs))
	for _, pair := range file.Pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("homonym policy %s: pair %v must name exactly two terms", path, pair)
		}
		pairs = append(pairs, [2]string{pair[0], pair[1]})
	}

	groups := make([][]string, 0, len(defaultHomonymGroups)+len(file.Groups))
	groups = append(groups, defaultHomonymGroups...)
	groups = append(groups, file.Groups...)
	return NewAllowlist(groups, pairs), nil
}

// Allowed implements HomonymPolicy.
func (a *Allowlist) Allowed(x, y libran.Entry) bool {
	kx, ky := x.Key(), y.Key()
	for _, group := range a.groups {
		if _, ok := group[kx]; !ok {
			continue
		}
		if _, ok := group[ky]; ok {
			return true
		}
	}
	if _, ok := a.pairs[pairKey(kx, ky)]; ok {
		return true
	}
	return senseMarked(x.Notes) && senseMarked(y.Notes)
}

// pairKey orders the two folded terms so registration and lookup agree
// regardless of argument order.
func pairKey(a, b string) string {
	a, b = libran.FoldKey(a), libran.FoldKey(b)
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}

// senseMarked reports whether the notes carry an explicit "[sense n]" tag,
// the marker attached to deliberately registered homonyms.
func senseMarked(notes string) bool {
	return strings.Contains(notes, "[sense ")
}
