package main

import (
	"testing"
	"time"

	"lexweave/internal/manifest"
)

func TestFormatLabel(t *testing.T) {
	cases := map[string]string{
		"pending":   "Pending",
		"qa_passed": "Qa Passed",
		"qa_failed": "Qa Failed",
		"MERGED":    "Merged",
		"":          "",
	}
	for input, want := range cases {
		if got := formatLabel(input); got != want {
			t.Fatalf("formatLabel(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0f8fad5b-d9cb-469f-a165-70867728950e"); got != "0f8fad5b" {
		t.Fatalf("expected truncated id, got %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Fatalf("expected short id unchanged, got %q", got)
	}
}

func TestBuildHistoryRowsOrdersNewestFirst(t *testing.T) {
	older := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(2 * time.Hour)
	score := 97
	runs := []*manifest.Run{
		{
			ID:                "aaaaaaaa-1111-2222-3333-444444444444",
			State:             manifest.StateQAFailed,
			DictionaryVersion: "1.7.0",
			TotalEntries:      4,
			CreatedAt:         older,
		},
		{
			ID:                "bbbbbbbb-1111-2222-3333-444444444444",
			State:             manifest.StateDeleted,
			DictionaryVersion: "1.7.0",
			TotalEntries:      16,
			QAScore:           &score,
			CreatedAt:         newer,
		},
	}

	rows := buildHistoryRows(runs)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "bbbbbbbb" {
		t.Fatalf("expected newest run first, got %q", rows[0][0])
	}
	if rows[0][1] != "Deleted" {
		t.Fatalf("expected Deleted label, got %q", rows[0][1])
	}
	if rows[0][4] != "97" {
		t.Fatalf("expected QA score 97, got %q", rows[0][4])
	}
	if rows[0][5] != "-" {
		t.Fatalf("expected dash for missing audit score, got %q", rows[0][5])
	}
	if rows[0][6] != "2025-03-01 12:00" {
		t.Fatalf("unexpected created stamp %q", rows[0][6])
	}
	if rows[1][0] != "aaaaaaaa" {
		t.Fatalf("expected older run second, got %q", rows[1][0])
	}
	if rows[1][4] != "-" {
		t.Fatalf("expected dash for missing QA score, got %q", rows[1][4])
	}
}

func TestBuildHistoryRowsBreaksCreatedAtTies(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	runs := []*manifest.Run{
		{ID: "aaaa", State: manifest.StatePending, CreatedAt: at},
		{ID: "zzzz", State: manifest.StatePending, CreatedAt: at},
	}
	rows := buildHistoryRows(runs)
	if rows[0][0] != "zzzz" || rows[1][0] != "aaaa" {
		t.Fatalf("expected id tiebreak zzzz before aaaa, got %q then %q", rows[0][0], rows[1][0])
	}
}

func TestBuildStateStatRowsFollowsLifecycleOrder(t *testing.T) {
	rows := buildStateStatRows(map[manifest.State]int{
		manifest.StateDeleted:  3,
		manifest.StatePending:  1,
		manifest.StateQAFailed: 2,
	})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	wantOrder := []string{"Pending", "Qa Failed", "Deleted"}
	for i, want := range wantOrder {
		if rows[i][0] != want {
			t.Fatalf("row %d: expected %q, got %q", i, want, rows[i][0])
		}
	}
	if rows[2][1] != "3" {
		t.Fatalf("expected deleted count 3, got %q", rows[2][1])
	}
}

func TestBuildStateStatRowsEmpty(t *testing.T) {
	if rows := buildStateStatRows(nil); rows != nil {
		t.Fatalf("expected nil rows for empty stats, got %v", rows)
	}
}

func TestNewRunViewFormatsTimestamps(t *testing.T) {
	at := time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)
	view := newRunView(&manifest.Run{
		ID:        "run-1",
		State:     manifest.StateMerged,
		CreatedAt: at,
		UpdatedAt: at.Add(time.Minute),
	})
	if view.CreatedAt != "2025-06-15T08:30:00Z" {
		t.Fatalf("unexpected created_at %q", view.CreatedAt)
	}
	if view.UpdatedAt != "2025-06-15T08:31:00Z" {
		t.Fatalf("unexpected updated_at %q", view.UpdatedAt)
	}
	if view.State != "merged" {
		t.Fatalf("unexpected state %q", view.State)
	}
}
