package types

// SkillROI is the linear salary-impact heuristic for closing one skill gap.
// PotentialSalaryIncrease is an illustrative estimate, not validated against
// wage data; Disclaimer must accompany it in any output.
type SkillROI struct {
	Skill                   string  `json:"skill"`
	CurrentLevel            int     `json:"current_level"`
	TargetLevel             int     `json:"target_level"`
	ImprovementNeeded       int     `json:"improvement_needed"`
	PotentialSalaryIncrease float64 `json:"potential_salary_increase"`
	DemandTrend             string  `json:"demand_trend"`
	Disclaimer              string  `json:"disclaimer"`
}

// SkillRecommendation is one entry in the prioritized course list: the skill
// gap driving it, the ROI estimate, and the catalog courses in declared order.
type SkillRecommendation struct {
	Skill       string         `json:"skill"`
	Description string         `json:"description"`
	Gap         GapRecord      `json:"gap"`
	ROI         SkillROI       `json:"roi"`
	Courses     []CourseOption `json:"courses"`
}
