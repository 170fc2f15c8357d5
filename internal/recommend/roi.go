package recommend

import (
	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/types"
)

// ROIDisclaimer must accompany every salary-impact estimate. The figure is a
// linear interpolation of the catalog's salary premium, not a guarantee.
const ROIDisclaimer = "Illustrative estimate based on catalog salary premiums; not validated against real wage data."

// ROI estimates the salary impact of closing one skill gap:
// (target - current) / 100 of the skill's salary premium. Unknown skills
// return a zero-valued record with the disclaimer still set.
func ROI(cat *catalog.Catalog, skill string, currentLevel, targetLevel int) types.SkillROI {
	roi := types.SkillROI{
		Skill:             skill,
		CurrentLevel:      currentLevel,
		TargetLevel:       targetLevel,
		ImprovementNeeded: targetLevel - currentLevel,
		Disclaimer:        ROIDisclaimer,
	}

	def, ok := cat.Skill(skill)
	if !ok {
		return roi
	}
	roi.DemandTrend = def.DemandTrend
	roi.PotentialSalaryIncrease = float64(targetLevel-currentLevel) / 100 * float64(def.SalaryPremium)
	return roi
}
