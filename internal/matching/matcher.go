// Package matching ranks catalog careers against a user's skill profile.
package matching

import (
	"sort"

	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/scoring"
	"github.com/jonathan/careercraft/internal/types"
)

// Rank scores every career in the selected categories against the profile
// and returns them sorted by match percentage, descending. The sort is
// stable, so ties keep catalog order and identical inputs always produce
// identical output. An empty or unknown category set yields an empty list.
func Rank(cat *catalog.Catalog, ratings types.SkillRatings, freq types.PracticeFrequencies, categories []types.Category) []types.CareerMatch {
	selected := make(map[types.Category]bool, len(categories))
	for _, c := range categories {
		selected[c] = true
	}

	matches := make([]types.CareerMatch, 0, len(cat.Careers))
	for _, career := range cat.Careers {
		if !selected[career.Category] {
			continue
		}

		gaps := scoring.Gaps(cat, ratings, career.Name)
		matches = append(matches, types.CareerMatch{
			Career:           career.Name,
			Category:         career.Category,
			MatchPct:         scoring.WeightedMatch(cat, ratings, freq, career.Name),
			MedianSalary:     career.MedianSalary,
			GrowthRate:       career.GrowthRate,
			HighPriorityGaps: scoring.CountHighPriority(gaps),
			Education:        career.Education,
			TimeToEntry:      career.TimeToEntry,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPct > matches[j].MatchPct
	})
	return matches
}
