package pipeline

import (
	"errors"
	"testing"
)

func TestWrapPreservesMarkerAndCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrConsistency, "write unified artifact", cause)
	if !errors.Is(err, ErrConsistency) {
		t.Fatalf("expected consistency marker, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	want := "consistency error: write unified artifact: disk full"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapNilMarkerDefaultsToConsistency(t *testing.T) {
	err := Wrap(nil, "unknown stage", errors.New("boom"))
	if !errors.Is(err, ErrConsistency) {
		t.Fatalf("expected consistency default, got %v", err)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrInput, "pending area empty", nil)
	if !errors.Is(err, ErrInput) {
		t.Fatalf("expected input marker, got %v", err)
	}
	if err.Error() != "input error: pending area empty" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestClass(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{Wrap(ErrInput, "scan", nil), "input"},
		{Wrap(ErrConsistency, "relocate", nil), "consistency"},
		{Wrap(ErrReporting, "persist", nil), "reporting"},
		{errors.New("untagged"), ""},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := Class(tc.err); got != tc.want {
			t.Fatalf("Class(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
