// Package recommend builds prioritized course recommendations from skill
// gaps across one or more target careers.
package recommend

import (
	"sort"

	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/scoring"
	"github.com/jonathan/careercraft/internal/types"
)

// MergeGaps folds the gap maps of all target careers into one map, keeping
// the record with the largest gap when a skill is shared between targets.
// The hardest-to-satisfy requirement wins. Unknown career names contribute
// nothing.
func MergeGaps(cat *catalog.Catalog, ratings types.SkillRatings, targets []string) map[string]types.GapRecord {
	merged := make(map[string]types.GapRecord)
	for _, career := range targets {
		for skill, gap := range scoring.Gaps(cat, ratings, career) {
			if existing, ok := merged[skill]; !ok || gap.Gap > existing.Gap {
				merged[skill] = gap
			}
		}
	}
	return merged
}

// Recommend returns one entry per gapped skill across the target careers,
// each with its merged gap record, ROI estimate, and the skill's courses in
// catalog-declared order (the per-course roi field is display data and is
// not sorted on). Skills with no remaining gap are omitted. Order: priority
// rank ascending, then gap descending, then skill name for a stable total
// order.
func Recommend(cat *catalog.Catalog, ratings types.SkillRatings, targets []string) []types.SkillRecommendation {
	merged := MergeGaps(cat, ratings, targets)

	recs := make([]types.SkillRecommendation, 0, len(merged))
	for skill, gap := range merged {
		if gap.Gap <= 0 {
			continue
		}
		def, ok := cat.Skill(skill)
		if !ok {
			continue
		}
		recs = append(recs, types.SkillRecommendation{
			Skill:       skill,
			Description: def.Description,
			Gap:         gap,
			ROI:         ROI(cat, skill, gap.UserLevel, gap.RequiredLevel),
			Courses:     def.Courses,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		pi, pj := recs[i].Gap.Priority.Rank(), recs[j].Gap.Priority.Rank()
		if pi != pj {
			return pi < pj
		}
		if recs[i].Gap.Gap != recs[j].Gap.Gap {
			return recs[i].Gap.Gap > recs[j].Gap.Gap
		}
		return recs[i].Skill < recs[j].Skill
	})
	return recs
}
