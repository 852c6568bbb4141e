package libran_test

import (
	"testing"

	"lexweave/internal/libran"
)

func TestNormalizeTextComposesNFC(t *testing.T) {
	// "e" followed by combining diaeresis composes to the single rune "ë".
	decomposed := "flamë"
	got := libran.NormalizeText(decomposed)
	if got != "flamë" {
		t.Fatalf("expected composed form %q, got %q", "flamë", got)
	}
}

func TestFoldKeyLowercasesAndTrims(t *testing.T) {
	if got := libran.FoldKey("  Balance "); got != "balance" {
		t.Fatalf("unexpected key: %q", got)
	}
}

func TestStripDiacritics(t *testing.T) {
	cases := map[string]string{
		"stílibra": "stilibra",
		"Coamára":  "Coamara",
		"Lótűz":    "Lotuz",
		"plain":    "plain",
	}
	for in, want := range cases {
		if got := libran.StripDiacritics(in); got != want {
			t.Fatalf("StripDiacritics(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHasDiacritics(t *testing.T) {
	if !libran.HasDiacritics("sperë") {
		t.Fatal("expected diacritics in sperë")
	}
	if libran.HasDiacritics("spera") {
		t.Fatal("expected no diacritics in spera")
	}
}
