package libran_test

import (
	"testing"

	"lexweave/internal/libran"
)

func TestNoteCitesDonor(t *testing.T) {
	cases := []struct {
		notes string
		want  bool
	}{
		{"Lat. libra, balance", true},
		{"from Hungarian lótűz", true},
		{"Rom. oară", true},
		{"IS. eldur", true},
		{"opaque coinage", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := libran.NoteCitesDonor(tc.notes); got != tc.want {
			t.Fatalf("NoteCitesDonor(%q) = %v, want %v", tc.notes, got, tc.want)
		}
	}
}

func TestCitedDonorsOrder(t *testing.T) {
	donors := libran.CitedDonors("Lat. flamma via Hun. láng")
	if len(donors) != 2 {
		t.Fatalf("expected 2 cited donors, got %d", len(donors))
	}
	if donors[0].Name != "Latin" || donors[1].Name != "Hungarian" {
		t.Fatalf("unexpected donor order: %s, %s", donors[0].Name, donors[1].Name)
	}
}

func TestSurfaceMatch(t *testing.T) {
	var latin, icelandic libran.DonorLanguage
	for _, donor := range libran.DonorLanguages {
		switch donor.Name {
		case "Latin":
			latin = donor
		case "Icelandic":
			icelandic = donor
		}
	}
	if !latin.SurfaceMatch("patera") {
		t.Fatal("expected -era ending to match Latin")
	}
	if !latin.SurfaceMatch("dominus") {
		t.Fatal("expected -us ending to match Latin")
	}
	if !icelandic.SurfaceMatch("eldur") {
		t.Fatal("expected -ur ending to match Icelandic")
	}
	if icelandic.SurfaceMatch("spera") {
		t.Fatal("did not expect spera to match Icelandic")
	}
}

func TestHasDonorSignature(t *testing.T) {
	cases := []struct {
		spelling string
		want     bool
	}{
		{"flamë", true},     // Librán diacritic
		{"tannisó", true},   // Librán diacritic
		{"dominus", true},   // Latin ending
		{"eldur", true},     // Icelandic ending
		{"leader", false},   // bare English
		{"computer", false}, // bare English
	}
	for _, tc := range cases {
		if got := libran.HasDonorSignature(tc.spelling); got != tc.want {
			t.Fatalf("HasDonorSignature(%q) = %v, want %v", tc.spelling, got, tc.want)
		}
	}
}
