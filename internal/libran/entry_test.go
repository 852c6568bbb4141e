package libran_test

import (
	"encoding/json"
	"testing"

	"lexweave/internal/libran"
)

func TestFormUnmarshalString(t *testing.T) {
	var form libran.Form
	if err := json.Unmarshal([]byte(`"stílibra"`), &form); err != nil {
		t.Fatalf("unmarshal string form: %v", err)
	}
	if form.Text != "stílibra" {
		t.Fatalf("unexpected text: %q", form.Text)
	}
	if form.IsZero() {
		t.Fatal("expected non-zero form")
	}
	if got := form.Primary(); got != "stílibra" {
		t.Fatalf("unexpected primary: %q", got)
	}
}

func TestFormUnmarshalMap(t *testing.T) {
	var form libran.Form
	if err := json.Unmarshal([]byte(`{"singular":"patera","plural":"pateri"}`), &form); err != nil {
		t.Fatalf("unmarshal map form: %v", err)
	}
	if len(form.Forms) != 2 {
		t.Fatalf("expected 2 sub-forms, got %d", len(form.Forms))
	}
	surfaces := form.Surfaces()
	if len(surfaces) != 2 || surfaces[0] != "pateri" || surfaces[1] != "patera" {
		t.Fatalf("unexpected surfaces order: %v", surfaces)
	}
	if got := form.String(); got != "plural: pateri; singular: patera" {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestFormUnmarshalRejectsOtherShapes(t *testing.T) {
	var form libran.Form
	if err := json.Unmarshal([]byte(`[1,2]`), &form); err == nil {
		t.Fatal("expected error for array form")
	}
}

func TestFormMarshalRoundTrip(t *testing.T) {
	original := libran.MapForm(map[string]string{"fem": "matera", "masc": "pateros"})
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal map form: %v", err)
	}
	var decoded libran.Form
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if decoded.Forms["fem"] != "matera" || decoded.Forms["masc"] != "pateros" {
		t.Fatalf("round trip lost sub-forms: %v", decoded.Forms)
	}
}

func TestFormPlaceholderCountsAsZero(t *testing.T) {
	cases := []struct {
		name string
		form libran.Form
		zero bool
	}{
		{"em dash placeholder", libran.StringForm("—"), true},
		{"hyphen placeholder", libran.StringForm("-"), true},
		{"blank", libran.StringForm("  "), true},
		{"map of placeholders", libran.MapForm(map[string]string{"sg": "—"}), true},
		{"real spelling", libran.StringForm("flamë"), false},
		{"map with one real spelling", libran.MapForm(map[string]string{"sg": "—", "pl": "flamëi"}), false},
	}
	for _, tc := range cases {
		if got := tc.form.IsZero(); got != tc.zero {
			t.Fatalf("%s: IsZero = %v, want %v", tc.name, got, tc.zero)
		}
	}
}

func TestEntryNormalize(t *testing.T) {
	entry := libran.Entry{
		English: "  Memory ",
		Ancient: libran.StringForm(" memoria "),
		Modern:  libran.StringForm("memirë"),
		POS:     " Noun ",
		Notes:   "  Lat. memoria  ",
	}
	entry.Normalize()
	if entry.English != "Memory" {
		t.Fatalf("unexpected english: %q", entry.English)
	}
	if entry.Ancient.Text != "memoria" {
		t.Fatalf("unexpected ancient: %q", entry.Ancient.Text)
	}
	if entry.POS != "noun" {
		t.Fatalf("unexpected pos: %q", entry.POS)
	}
	if entry.Notes != "Lat. memoria" {
		t.Fatalf("unexpected notes: %q", entry.Notes)
	}
	if entry.Key() != "memory" {
		t.Fatalf("unexpected key: %q", entry.Key())
	}
}

func TestEntryValidate(t *testing.T) {
	entry := libran.Entry{English: " "}
	if err := entry.Validate(); err == nil {
		t.Fatal("expected error for blank english headword")
	}
	entry.English = "hope"
	if err := entry.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestEntryCompleteness(t *testing.T) {
	entry := libran.Entry{English: "hope"}
	if entry.IsComplete() {
		t.Fatal("expected incomplete entry without translations")
	}
	entry.Modern = libran.StringForm("sperë")
	if !entry.IsComplete() || !entry.HasModern() || entry.HasAncient() {
		t.Fatal("expected modern-only entry to be complete")
	}
}
