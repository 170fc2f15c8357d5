package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/types"
)

// newTestCatalog builds a small two-skill catalog used across the scoring
// tests. Career "Analyst" requires A:80 B:50; career "Specialist" has the
// asymmetric A:100 B:20 requirements used to show the two scoring formulas
// diverge.
func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	skills := []types.SkillDefinition{
		{
			Name: "A", Description: "skill A", SalaryPremium: 10000, DemandTrend: "Stable",
			Courses: []types.CourseOption{{Name: "Course A1", Cost: 0, Duration: "4 weeks", ROI: 200}},
		},
		{
			Name: "B", Description: "skill B", SalaryPremium: 5000, DemandTrend: "Growing",
			Courses: []types.CourseOption{{Name: "Course B1", Cost: 100, Duration: "2 weeks", ROI: 300}},
		},
	}
	careers := []types.CareerDefinition{
		{
			Name: "Analyst", Category: types.CategoryBusiness,
			RequiredSkills: map[string]int{"A": 80, "B": 50},
			MedianSalary:   90000, GrowthRate: 10, Education: "Bachelor's Degree",
			EntryPaths: []string{"Any Degree"}, TimeToEntry: "12-24 months",
		},
		{
			Name: "Specialist", Category: types.CategoryBusiness,
			RequiredSkills: map[string]int{"A": 100, "B": 20},
			MedianSalary:   100000, GrowthRate: 12, Education: "Bachelor's Degree",
			EntryPaths: []string{"Any Degree"}, TimeToEntry: "6-18 months",
		},
	}

	cat, err := catalog.New("test", skills, careers)
	require.NoError(t, err)
	return cat
}
