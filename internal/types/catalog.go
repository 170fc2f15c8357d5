// Package types provides type definitions for structured data used throughout the careercraft engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category classifies careers into a fixed set of industries.
type Category string

// Known career categories. Catalog validation rejects anything else.
const (
	CategoryTechnology   Category = "Technology"
	CategoryHealthcare   Category = "Healthcare"
	CategoryBusiness     Category = "Business"
	CategoryEducation    Category = "Education"
	CategoryCommunity    Category = "Community"
	CategoryMentalHealth Category = "Mental Health"
)

// CourseOption is a single course attached to a skill. The ROI percentage is
// illustrative display data from the catalog, not a computed figure.
type CourseOption struct {
	Name     string `json:"name" validate:"required"`
	Cost     int    `json:"cost" validate:"gte=0"`
	Duration string `json:"duration" validate:"required"`
	ROI      int    `json:"roi" validate:"gte=0"`
}

// SkillDefinition is immutable reference data for one skill.
type SkillDefinition struct {
	Name          string         `json:"name" validate:"required"`
	Description   string         `json:"description" validate:"required"`
	SalaryPremium int            `json:"salary_premium" validate:"gte=0"`
	DemandTrend   string         `json:"demand_trend" validate:"required"`
	Courses       []CourseOption `json:"courses" validate:"min=1,dive"`
}

// CareerDefinition is immutable reference data for one career.
// RequiredSkills maps skill name to the required level (0-100).
type CareerDefinition struct {
	Name           string         `json:"name" validate:"required"`
	Category       Category       `json:"category" validate:"required"`
	RequiredSkills map[string]int `json:"required_skills" validate:"min=1,dive,gte=0,lte=100"`
	MedianSalary   int            `json:"median_salary" validate:"gt=0"`
	GrowthRate     int            `json:"growth_rate"`
	Education      string         `json:"education" validate:"required"`
	EntryPaths     []string       `json:"entry_paths" validate:"min=1"`
	TimeToEntry    string         `json:"time_to_entry" validate:"required"`
}
