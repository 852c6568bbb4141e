package qa

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"lexweave/internal/libran"
)

const versioningPenalty = 15.0

// runVersioningCheck verifies the snapshot metadata a downstream release
// process depends on: a strict three-part version, a generation timestamp,
// the contributing sources, and an entry count matching the body.
func (s *Scorer) runVersioningCheck(dict *libran.UnifiedDictionary) (float64, []Issue, string) {
	var issues []Issue
	meta := dict.Metadata

	switch {
	case meta.Version == "":
		issues = append(issues, Issue{
			Severity: SeverityHigh,
			Detail:   "metadata is missing a version",
		})
	case !strictSemver(meta.Version):
		issues = append(issues, Issue{
			Severity: SeverityHigh,
			Detail:   fmt.Sprintf("version %q is not three-part semantic versioning", meta.Version),
		})
	}
	if meta.GeneratedAt.IsZero() {
		issues = append(issues, Issue{
			Severity: SeverityHigh,
			Detail:   "metadata is missing a generation timestamp",
		})
	}
	if len(meta.Sources) == 0 {
		issues = append(issues, Issue{
			Severity: SeverityHigh,
			Detail:   "metadata names no contributing sources",
		})
	}
	if meta.TotalEntries != len(dict.Entries) {
		issues = append(issues, Issue{
			Severity: SeverityHigh,
			Detail:   fmt.Sprintf("metadata counts %d entries but the dictionary holds %d", meta.TotalEntries, len(dict.Entries)),
		})
	}

	score := clampScore(100 - versioningPenalty*float64(len(issues)))
	summary := "metadata is complete"
	if len(issues) > 0 {
		summary = fmt.Sprintf("%d metadata fields are missing or malformed", len(issues))
	}
	return score, issues, summary
}

// strictSemver accepts exactly major.minor.patch with no prerelease or
// build suffix.
func strictSemver(version string) bool {
	if strings.ContainsAny(version, "-+") {
		return false
	}
	v := "v" + version
	return semver.IsValid(v) && semver.Canonical(v) == v
}
