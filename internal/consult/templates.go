package consult

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/careercraft/internal/types"
)

// sortedGaps returns gap records ordered by gap size descending, name
// ascending on ties, so responses are stable across calls.
func sortedGaps(gaps map[string]types.GapRecord) []types.GapRecord {
	out := make([]types.GapRecord, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gap != out[j].Gap {
			return out[i].Gap > out[j].Gap
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

func respondROI(ctx Context) string {
	var sb strings.Builder
	sb.WriteString("## Skill Investment ROI Analysis\n\n")
	sb.WriteString("Based on your profile, here are the skills with the highest ROI for your goals:\n\n")

	gaps := sortedGaps(ctx.Gaps)
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}
	for _, gap := range gaps {
		def, ok := ctx.Catalog.Skill(gap.Skill)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("**%s** (Gap: %d points)\n", gap.Skill, gap.Gap))
		sb.WriteString(fmt.Sprintf("- Salary premium: +$%d/year at high proficiency\n", def.SalaryPremium))
		sb.WriteString(fmt.Sprintf("- Demand: %s\n", def.DemandTrend))
		sb.WriteString(fmt.Sprintf("- Top course: %s\n\n", def.Courses[0].Name))
	}

	sb.WriteString("ROI formula used: `Skill ROI = (Salary Premium x Improvement %) / Course Cost`\n\n")
	sb.WriteString("The skills listed above offer the best return based on your current gaps and market demand.")
	return sb.String()
}

func respondCourses(ctx Context) string {
	var sb strings.Builder
	sb.WriteString("## Recommended Learning Path\n\n")
	sb.WriteString("Based on your skill gaps, here is your prioritized learning plan:\n\n")

	shown := 0
	for _, gap := range sortedGaps(ctx.Gaps) {
		if gap.Priority != types.PriorityHigh {
			continue
		}
		def, ok := ctx.Catalog.Skill(gap.Skill)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("### %s (Priority: High)\n", gap.Skill))
		courses := def.Courses
		if len(courses) > 2 {
			courses = courses[:2]
		}
		for _, course := range courses {
			cost := "Free"
			if course.Cost > 0 {
				cost = fmt.Sprintf("$%d", course.Cost)
			}
			sb.WriteString(fmt.Sprintf("- **%s** | %s | %s | ROI: %d%%\n", course.Name, cost, course.Duration, course.ROI))
		}
		sb.WriteString("\n")

		shown++
		if shown == 2 {
			break
		}
	}

	sb.WriteString("Tip: start with free courses to validate interest before investing in paid programs.")
	return sb.String()
}

func respondGaps(ctx Context) string {
	var sb strings.Builder
	sb.WriteString("## Your Skill Gap Analysis\n\n")

	for _, gap := range sortedGaps(ctx.Gaps) {
		if gap.Gap <= 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("- [%s] **%s**: you're at %d%%, need %d%% (gap: %d points)\n",
			gap.Priority, gap.Skill, gap.UserLevel, gap.RequiredLevel, gap.Gap))
	}

	sb.WriteString("\nAction plan:\n")
	sb.WriteString("1. Focus on High priority gaps first\n")
	sb.WriteString("2. Aim for 10-15 point improvements per quarter\n")
	sb.WriteString("3. Use the course recommendations for specific next steps")
	return sb.String()
}

func respondSalary(ctx Context) string {
	var sb strings.Builder
	sb.WriteString("## Salary & Earnings Analysis\n\n")

	targets := ctx.TargetCareers
	if len(targets) > 3 {
		targets = targets[:3]
	}
	for _, name := range targets {
		career, ok := ctx.Catalog.Career(name)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("**%s**\n", career.Name))
		sb.WriteString(fmt.Sprintf("- Median salary: $%d\n", career.MedianSalary))
		sb.WriteString(fmt.Sprintf("- Growth rate: %d%%\n", career.GrowthRate))
		sb.WriteString(fmt.Sprintf("- Education: %s\n\n", career.Education))
	}

	sb.WriteString("Salary boosters:\n")
	sb.WriteString("- Each high-demand skill at expert level adds $5K-$15K\n")
	sb.WriteString("- Leadership roles add 20-40% to base\n")
	sb.WriteString("- Certifications can add 10-20% premium")
	return sb.String()
}

func respondDefault(ctx Context) string {
	role := ctx.CurrentRole
	if role == "" {
		role = "Not specified"
	}
	targets := "Not yet selected"
	if len(ctx.TargetCareers) > 0 {
		shown := ctx.TargetCareers
		if len(shown) > 3 {
			shown = shown[:3]
		}
		targets = strings.Join(shown, ", ")
	}

	var sb strings.Builder
	sb.WriteString("## Career Consultation\n\n")
	sb.WriteString("I'm here to help you navigate your career journey. Based on your profile:\n\n")
	sb.WriteString(fmt.Sprintf("**Current role:** %s\n", role))
	sb.WriteString(fmt.Sprintf("**Target careers:** %s\n\n", targets))
	sb.WriteString("Quick actions:\n")
	sb.WriteString("1. Ask about \"skill ROI\" to see which skills offer the best return\n")
	sb.WriteString("2. Ask about \"courses\" for personalized learning recommendations\n")
	sb.WriteString("3. Ask about \"skill gaps\" for detailed improvement areas\n")
	sb.WriteString("4. Ask about \"salary\" for earnings analysis")
	return sb.String()
}
