package manifest

import (
	"strings"
	"time"
)

// State represents the lifecycle of a pipeline run.
type State string

const (
	StatePending  State = "pending"
	StateMerged   State = "merged"
	StateQAPassed State = "qa_passed"
	StateQAFailed State = "qa_failed"
	StateDeleted  State = "deleted"
)

var allStates = []State{
	StatePending,
	StateMerged,
	StateQAPassed,
	StateQAFailed,
	StateDeleted,
}

var stateSet = func() map[State]struct{} {
	set := make(map[State]struct{}, len(allStates))
	for _, state := range allStates {
		set[state] = struct{}{}
	}
	return set
}()

// allowedTransitions enumerates every legal state change. Deleted is
// reachable only from qa_passed; qa_failed and deleted are terminal.
var allowedTransitions = map[State][]State{
	StatePending:  {StateMerged},
	StateMerged:   {StateQAPassed, StateQAFailed},
	StateQAPassed: {StateDeleted},
}

// Run represents one pipeline invocation persisted in SQLite.
type Run struct {
	ID                string
	State             State
	DictionaryVersion string
	Tranches          []string
	TotalEntries      int
	DuplicatesRemoved int
	QAScore           *int
	AuditScore        *float64
	ArtifactPath      string
	QAReportPath      string
	AuditReportPath   string
	ChangelogPath     string
	ErrorMessage      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AllStates returns the ordered list of known states.
func AllStates() []State {
	cp := make([]State, len(allStates))
	copy(cp, allStates)
	return cp
}

// ParseState converts a string into a known State.
func ParseState(value string) (State, bool) {
	normalized := State(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := stateSet[normalized]
	return normalized, ok
}

// CanTransition reports whether a state change is permitted by the lifecycle.
func CanTransition(from, to State) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a run in this state can make no further progress.
func IsTerminal(state State) bool {
	return len(allowedTransitions[state]) == 0
}

// Passed reports whether the run cleared the QA gate. Deleted runs passed by
// definition since deletion is only reachable from qa_passed.
func (r Run) Passed() bool {
	return r.State == StateQAPassed || r.State == StateDeleted
}
