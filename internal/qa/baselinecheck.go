package qa

import (
	"fmt"

	"lexweave/internal/libran"
)

const (
	baselineMismatchPenalty    = 5.0
	baselineLostNotePenalty    = 2.0
	baselineNearMatchPenalty   = 1.0
	baselineCoverageBonus      = 5.0
	baselineCoverageBonusFloor = 0.80
)

// runBaselineCheck compares the snapshot against the prior release. A form
// that silently diverges from the baseline is the worst finding; dropping a
// note the baseline had is next; a new headword resembling an existing one
// is only a suggestion. Covering most of the baseline's keys earns back a
// small bonus. Returns nil when no baseline was supplied.
func (s *Scorer) runBaselineCheck(dict *libran.UnifiedDictionary) *BaselineResult {
	if s.baseline == nil || s.baseline.Len() == 0 {
		return nil
	}

	score := 100.0
	matched := 0
	var issues []Issue
	for _, entry := range dict.Entries {
		base, ok := s.baseline.LookupEnglish(entry.English)
		if !ok {
			if similar := s.baseline.FindSimilar(entry.English); len(similar) > 0 {
				score -= baselineNearMatchPenalty
				issues = append(issues, Issue{
					Category: CheckBaseline,
					Severity: SeverityLow,
					English:  entry.English,
					Detail:   fmt.Sprintf("new headword %q resembles baseline %q", entry.English, similar[0].English),
				})
			}
			continue
		}
		matched++
		if entry.HasAncient() && base.HasAncient() && entry.Ancient.Primary() != base.Ancient.Primary() {
			score -= baselineMismatchPenalty
			issues = append(issues, Issue{
				Category: CheckBaseline,
				Severity: SeverityHigh,
				English:  entry.English,
				Surface:  entry.Ancient.Primary(),
				Detail:   fmt.Sprintf("ancient form %q diverges from baseline %q", entry.Ancient.Primary(), base.Ancient.Primary()),
			})
		}
		if entry.HasModern() && base.HasModern() && entry.Modern.Primary() != base.Modern.Primary() {
			score -= baselineMismatchPenalty
			issues = append(issues, Issue{
				Category: CheckBaseline,
				Severity: SeverityHigh,
				English:  entry.English,
				Surface:  entry.Modern.Primary(),
				Detail:   fmt.Sprintf("modern form %q diverges from baseline %q", entry.Modern.Primary(), base.Modern.Primary()),
			})
		}
		if base.HasNotes() && !entry.HasNotes() {
			score -= baselineLostNotePenalty
			issues = append(issues, Issue{
				Category: CheckBaseline,
				Severity: SeverityMedium,
				English:  entry.English,
				Detail:   fmt.Sprintf("baseline carried a note for %q that this snapshot drops", entry.English),
			})
		}
	}

	coverage := float64(matched) / float64(s.baseline.Len())
	if coverage > baselineCoverageBonusFloor {
		score += baselineCoverageBonus
	}

	return &BaselineResult{
		Score:       clampScore(score),
		Coverage:    coverage,
		MatchedKeys: matched,
		Issues:      issues,
		Summary:     fmt.Sprintf("matched %d of %d baseline keys (%.0f%% coverage)", matched, s.baseline.Len(), coverage*100),
	}
}
