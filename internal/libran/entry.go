package libran

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// placeholderForm marks a translation slot the linguists left open on purpose.
const placeholderForm = "—"

// Form holds one variant's surface text. Tranche authors write either a plain
// spelling or a map of grammatical sub-forms keyed by feature label, so the
// JSON representation is a tagged variant of the two.
type Form struct {
	Text  string
	Forms map[string]string
}

// StringForm returns a Form carrying a single plain spelling.
func StringForm(text string) Form {
	return Form{Text: text}
}

// MapForm returns a Form carrying grammatical sub-forms.
func MapForm(forms map[string]string) Form {
	return Form{Forms: forms}
}

// IsZero reports whether the form carries no usable surface text. The em dash
// placeholder used by tranche authors counts as absent.
func (f Form) IsZero() bool {
	if len(f.Forms) > 0 {
		for _, v := range f.Forms {
			if usable(v) {
				return false
			}
		}
		return true
	}
	return !usable(f.Text)
}

func usable(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed != "" && trimmed != placeholderForm && trimmed != "-"
}

// Primary returns the representative surface spelling: the plain text when
// present, otherwise the sub-form under the lowest sorted feature label.
func (f Form) Primary() string {
	if usable(f.Text) {
		return f.Text
	}
	for _, key := range f.sortedKeys() {
		if usable(f.Forms[key]) {
			return f.Forms[key]
		}
	}
	return ""
}

// Surfaces returns every usable spelling the form carries, sorted by feature
// label for map forms. Collision checks compare each surface independently.
func (f Form) Surfaces() []string {
	if usable(f.Text) {
		return []string{f.Text}
	}
	var out []string
	for _, key := range f.sortedKeys() {
		if usable(f.Forms[key]) {
			out = append(out, f.Forms[key])
		}
	}
	return out
}

func (f Form) sortedKeys() []string {
	keys := make([]string, 0, len(f.Forms))
	for key := range f.Forms {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// String renders the form for reports: plain text as-is, map forms as
// "label: spelling" pairs joined with semicolons in sorted label order.
func (f Form) String() string {
	if usable(f.Text) {
		return f.Text
	}
	if len(f.Forms) == 0 {
		return ""
	}
	parts := make([]string, 0, len(f.Forms))
	for _, key := range f.sortedKeys() {
		parts = append(parts, key+": "+f.Forms[key])
	}
	return strings.Join(parts, "; ")
}

// MarshalJSON writes the plain string variant when no sub-forms exist,
// otherwise the sub-form map.
func (f Form) MarshalJSON() ([]byte, error) {
	if len(f.Forms) > 0 {
		return json.Marshal(f.Forms)
	}
	return json.Marshal(f.Text)
}

// UnmarshalJSON accepts either a JSON string or a string-to-string object.
func (f *Form) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*f = Form{Text: text}
		return nil
	}
	var forms map[string]string
	if err := json.Unmarshal(data, &forms); err == nil {
		*f = Form{Forms: forms}
		return nil
	}
	return fmt.Errorf("form must be a string or an object of sub-forms, got %s", truncateJSON(data))
}

func truncateJSON(data []byte) string {
	const limit = 40
	s := string(data)
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

// normalize applies text normalization to every surface the form carries.
func (f *Form) normalize() {
	f.Text = NormalizeText(f.Text)
	for key, value := range f.Forms {
		f.Forms[key] = NormalizeText(value)
	}
}

// Entry is one English-to-Librán mapping with Ancient and Modern variants and
// an optional etymology note. English is the dedupe key and must be non-empty;
// an Entry missing both translations is still structurally valid but will
// accumulate QA issues.
type Entry struct {
	English string `json:"english"`
	Ancient Form   `json:"ancient,omitzero"`
	Modern  Form   `json:"modern,omitzero"`
	POS     string `json:"pos,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Key returns the case-folded NFC form of the English headword used for
// deduplication and lookups.
func (e Entry) Key() string {
	return FoldKey(e.English)
}

// HasAncient reports whether the entry carries a usable ancient translation.
func (e Entry) HasAncient() bool { return !e.Ancient.IsZero() }

// HasModern reports whether the entry carries a usable modern translation.
func (e Entry) HasModern() bool { return !e.Modern.IsZero() }

// IsComplete reports whether at least one translation variant is present.
func (e Entry) IsComplete() bool { return e.HasAncient() || e.HasModern() }

// HasNotes reports whether the entry carries a non-empty etymology note.
func (e Entry) HasNotes() bool { return strings.TrimSpace(e.Notes) != "" }

// Validate checks the structural invariant for the entry.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.English) == "" {
		return fmt.Errorf("entry is missing the english headword")
	}
	return nil
}

// Normalize applies NFC normalization and whitespace trimming to every text
// field, in place. Parsers call this once so downstream comparisons can rely
// on canonical strings.
func (e *Entry) Normalize() {
	e.English = NormalizeText(e.English)
	e.Ancient.normalize()
	e.Modern.normalize()
	e.POS = strings.ToLower(NormalizeText(e.POS))
	e.Notes = NormalizeText(e.Notes)
}
