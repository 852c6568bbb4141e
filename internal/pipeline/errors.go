package pipeline

import (
	"errors"
	"fmt"
)

// Failure taxonomy markers. Input failures mean the pending area or a
// configured reference source could not be consumed and nothing was mutated.
// Consistency failures mean the run aborted after mutation started, so the
// artifact, manifest, and tranche areas need operator attention. Reporting
// failures cover report persistence; they are logged and never change the
// gate decision.
var (
	ErrInput       = errors.New("input error")
	ErrConsistency = errors.New("consistency error")
	ErrReporting   = errors.New("reporting error")
)

// Wrap tags err with a taxonomy marker and stage detail so callers classify
// failures with errors.Is instead of string matching.
func Wrap(marker error, detail string, err error) error {
	if marker == nil {
		marker = ErrConsistency
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Class names the taxonomy class of err, or "" when err carries no marker.
func Class(err error) string {
	switch {
	case errors.Is(err, ErrInput):
		return "input"
	case errors.Is(err, ErrConsistency):
		return "consistency"
	case errors.Is(err, ErrReporting):
		return "reporting"
	default:
		return ""
	}
}
