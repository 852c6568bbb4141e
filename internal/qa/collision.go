package qa

import (
	"fmt"
	"sort"

	"lexweave/internal/libran"
)

const collisionPenalty = 2.0

// runCollisionCheck flags every entry pair sharing an identical Ancient or
// Modern surface form across different English meanings, unless the homonym
// policy allows the pair. Ancient and Modern surfaces collide independently;
// an Ancient form matching another entry's Modern form is not a collision.
func (s *Scorer) runCollisionCheck(dict *libran.UnifiedDictionary) (float64, []Issue, string) {
	issues := s.collisionsIn(dict, "ancient", func(e libran.Entry) libran.Form { return e.Ancient })
	issues = append(issues, s.collisionsIn(dict, "modern", func(e libran.Entry) libran.Form { return e.Modern })...)

	score := clampScore(100 - collisionPenalty*float64(len(issues)))
	summary := "no unexplained shared surface forms"
	if len(issues) > 0 {
		summary = fmt.Sprintf("%d colliding pairs share a surface form", len(issues))
	}
	return score, issues, summary
}

func (s *Scorer) collisionsIn(dict *libran.UnifiedDictionary, variant string, form func(libran.Entry) libran.Form) []Issue {
	owners := make(map[string][]libran.Entry)
	for _, entry := range dict.Entries {
		f := form(entry)
		if f.IsZero() {
			continue
		}
		for _, surface := range f.Surfaces() {
			group := owners[surface]
			claimed := false
			for _, other := range group {
				if other.Key() == entry.Key() {
					claimed = true
					break
				}
			}
			if !claimed {
				owners[surface] = append(group, entry)
			}
		}
	}

	surfaces := make([]string, 0, len(owners))
	for surface, group := range owners {
		if len(group) > 1 {
			surfaces = append(surfaces, surface)
		}
	}
	sort.Strings(surfaces)

	var issues []Issue
	for _, surface := range surfaces {
		group := owners[surface]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if s.homonyms.Allowed(group[i], group[j]) {
					continue
				}
				issues = append(issues, Issue{
					Severity: SeverityHigh,
					English:  group[i].English,
					Surface:  surface,
					Detail:   fmt.Sprintf("%s form %q is shared by %q and %q", variant, surface, group[i].English, group[j].English),
				})
			}
		}
	}
	return issues
}
