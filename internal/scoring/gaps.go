package scoring

import (
	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/types"
)

// Priority thresholds on the raw (unclamped) gap.
const (
	highGapThreshold   = 30
	mediumGapThreshold = 15
)

// Gaps computes the per-skill shortfall between a career's requirements and
// the user's raw ratings. The result covers exactly the career's required
// skills; ratings for skills the career does not require are ignored. A
// skill absent from the profile counts as 0. Unknown careers yield an empty
// map, not an error.
func Gaps(cat *catalog.Catalog, ratings types.SkillRatings, careerName string) map[string]types.GapRecord {
	career, ok := cat.Career(careerName)
	if !ok {
		return map[string]types.GapRecord{}
	}

	gaps := make(map[string]types.GapRecord, len(career.RequiredSkills))
	for skill, required := range career.RequiredSkills {
		userLevel := ratings[skill]
		gap := required - userLevel
		gaps[skill] = types.GapRecord{
			Skill:         skill,
			UserLevel:     userLevel,
			RequiredLevel: required,
			Gap:           max(0, gap),
			Priority:      gapPriority(gap),
		}
	}
	return gaps
}

// gapPriority buckets a gap: >30 High, >15 Medium, else Low. Over-qualified
// (negative) gaps fall through to Low.
func gapPriority(gap int) types.Priority {
	switch {
	case gap > highGapThreshold:
		return types.PriorityHigh
	case gap > mediumGapThreshold:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// CountHighPriority returns how many gaps in a gap map are High priority.
func CountHighPriority(gaps map[string]types.GapRecord) int {
	count := 0
	for _, g := range gaps {
		if g.Priority == types.PriorityHigh {
			count++
		}
	}
	return count
}
