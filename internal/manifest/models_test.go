package manifest

import "testing"

func TestParseState(t *testing.T) {
	cases := []struct {
		input string
		want  State
		ok    bool
	}{
		{"pending", StatePending, true},
		{"  Merged ", StateMerged, true},
		{"QA_PASSED", StateQAPassed, true},
		{"qa_failed", StateQAFailed, true},
		{"deleted", StateDeleted, true},
		{"", "", false},
		{"archived", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseState(tc.input)
		if ok != tc.ok {
			t.Fatalf("ParseState(%q) ok = %v, want %v", tc.input, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseState(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to State }{
		{StatePending, StateMerged},
		{StateMerged, StateQAPassed},
		{StateMerged, StateQAFailed},
		{StateQAPassed, StateDeleted},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s to %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to State }{
		{StatePending, StateQAPassed},
		{StatePending, StateDeleted},
		{StateMerged, StateDeleted},
		{StateQAFailed, StateDeleted},
		{StateQAFailed, StateMerged},
		{StateDeleted, StatePending},
		{StateQAPassed, StateMerged},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s to %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(StatePending) || IsTerminal(StateMerged) || IsTerminal(StateQAPassed) {
		t.Fatal("expected in-progress states to be non-terminal")
	}
	if !IsTerminal(StateQAFailed) || !IsTerminal(StateDeleted) {
		t.Fatal("expected qa_failed and deleted to be terminal")
	}
}

func TestRunPassed(t *testing.T) {
	cases := []struct {
		state State
		want  bool
	}{
		{StatePending, false},
		{StateMerged, false},
		{StateQAPassed, true},
		{StateQAFailed, false},
		{StateDeleted, true},
	}
	for _, tc := range cases {
		run := Run{State: tc.state}
		if run.Passed() != tc.want {
			t.Errorf("Run{State: %s}.Passed() = %v, want %v", tc.state, run.Passed(), tc.want)
		}
	}
}
