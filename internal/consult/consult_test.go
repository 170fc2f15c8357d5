package consult

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/recommend"
	"github.com/jonathan/careercraft/internal/types"
)

func testContext(t *testing.T) Context {
	t.Helper()

	cat := catalog.Default()
	ratings := types.SkillRatings{
		"Programming": 30, "Problem Solving": 60, "Critical Thinking": 60,
		"Communication": 70, "Teamwork": 70, "Time Management": 70,
		"Creativity": 60, "Attention to Detail": 50,
	}
	targets := []string{"Software Developer", "Data Scientist"}
	return Context{
		Catalog:       cat,
		CurrentRole:   "QA Engineer",
		TargetCareers: targets,
		Gaps:          recommend.MergeGaps(cat, ratings, targets),
	}
}

func TestRespond_ROITrigger(t *testing.T) {
	ctx := testContext(t)

	for _, msg := range []string{"What's my best skill ROI?", "Is it worth it?", "Where should I invest?"} {
		response := Respond(msg, ctx)
		assert.Contains(t, response, "ROI Analysis", "message %q", msg)
		assert.Contains(t, response, "Programming", "largest gap leads the list")
	}
}

func TestRespond_CoursesTrigger(t *testing.T) {
	ctx := testContext(t)

	response := Respond("What courses should I take?", ctx)
	assert.Contains(t, response, "Recommended Learning Path")
	// Programming has a 65-point gap: High priority, so its courses appear.
	assert.Contains(t, response, "Python for Everybody (Coursera)")
	assert.Contains(t, response, "Free")
}

func TestRespond_GapsTrigger(t *testing.T) {
	ctx := testContext(t)

	response := Respond("show my skill gaps", ctx)
	assert.Contains(t, response, "Skill Gap Analysis")
	assert.Contains(t, response, "Programming")
	assert.Contains(t, response, "[High]")
}

func TestRespond_SalaryTrigger(t *testing.T) {
	ctx := testContext(t)

	response := Respond("how much money can I earn?", ctx)
	assert.Contains(t, response, "Salary & Earnings Analysis")
	assert.Contains(t, response, "Software Developer")
	assert.Contains(t, response, "$110000")
}

func TestRespond_FirstMatchWins(t *testing.T) {
	ctx := testContext(t)

	// "invest" (roi rule) and "course" (courses rule) both appear; the roi
	// rule is earlier in the table and must win.
	response := Respond("should I invest in a course?", ctx)
	assert.Contains(t, response, "ROI Analysis")
	assert.NotContains(t, response, "Recommended Learning Path")
}

func TestRespond_DefaultTemplate(t *testing.T) {
	ctx := testContext(t)

	response := Respond("hello there", ctx)
	assert.Contains(t, response, "Career Consultation")
	assert.Contains(t, response, "QA Engineer")
	assert.Contains(t, response, "Software Developer, Data Scientist")
}

func TestRespond_DefaultWithEmptyProfile(t *testing.T) {
	response := Respond("hi", Context{Catalog: catalog.Default()})
	assert.Contains(t, response, "Not specified")
	assert.Contains(t, response, "Not yet selected")
}

func TestRespond_Deterministic(t *testing.T) {
	ctx := testContext(t)

	for _, msg := range []string{"roi", "courses", "gaps", "salary", "anything else"} {
		first := Respond(msg, ctx)
		second := Respond(msg, ctx)
		assert.Equal(t, first, second, "message %q", msg)
	}
}

func TestRespond_CaseInsensitiveTriggers(t *testing.T) {
	ctx := testContext(t)

	lower := Respond("show my gaps", ctx)
	upper := Respond("SHOW MY GAPS", ctx)
	assert.True(t, strings.HasPrefix(upper, "## Your Skill Gap Analysis"))
	assert.Equal(t, lower, upper)
}
