// Package consult implements the career consultation feature as an ordered
// rule table: each rule pairs keyword triggers with a template over
// already-computed gap, ROI, and catalog data. Evaluation is first match
// wins with a default template fallback. There is no inference anywhere in
// this package; identical inputs always produce the identical response.
package consult

import (
	"strings"

	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/types"
)

// Context carries the precomputed data a template may draw on.
type Context struct {
	Catalog       *catalog.Catalog
	CurrentRole   string
	TargetCareers []string
	// Gaps is the merged max-gap map across the target careers
	// (recommend.MergeGaps output).
	Gaps map[string]types.GapRecord
}

// Rule pairs a trigger predicate with a response template.
type Rule struct {
	Name     string
	Triggers []string
	Respond  func(Context) string
}

// matches reports whether any trigger substring occurs in the lowercased
// message.
func (r Rule) matches(messageLower string) bool {
	for _, t := range r.Triggers {
		if strings.Contains(messageLower, t) {
			return true
		}
	}
	return false
}

// rules is evaluated in order; keep the more specific topics before the
// catch-all salary rule.
var rules = []Rule{
	{Name: "roi", Triggers: []string{"roi", "worth", "invest"}, Respond: respondROI},
	{Name: "courses", Triggers: []string{"course", "learn", "train"}, Respond: respondCourses},
	{Name: "gaps", Triggers: []string{"gap", "improve", "weak"}, Respond: respondGaps},
	{Name: "salary", Triggers: []string{"salary", "money", "earn"}, Respond: respondSalary},
}

// Respond generates the consultation reply for a user message. The first
// rule whose trigger appears in the message wins; anything else gets the
// default orientation response.
func Respond(message string, ctx Context) string {
	messageLower := strings.ToLower(message)
	for _, rule := range rules {
		if rule.matches(messageLower) {
			return rule.Respond(ctx)
		}
	}
	return respondDefault(ctx)
}
