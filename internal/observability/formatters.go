// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/careercraft/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCareerMatches outputs the top N ranked careers with match percentages.
func (p *Printer) PrintCareerMatches(matches []types.CareerMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total careers matched: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, m.Career, m.Category))
		sb.WriteString(fmt.Sprintf("    Match: %.1f%%  Salary: $%d  Growth: %d%%\n",
			m.MatchPct, m.MedianSalary, m.GrowthRate))
		if m.HighPriorityGaps > 0 {
			sb.WriteString(fmt.Sprintf("    High priority gaps: %d\n", m.HighPriorityGaps))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more careers", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP CAREER MATCHES", sb.String())
}

// PrintGapAnalysis outputs the merged skill gaps for the target careers.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGapAnalysis(gaps []types.GapRecord) {
	open := 0
	for _, g := range gaps {
		if g.Gap > 0 {
			open++
		}
	}
	if open == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO OPEN SKILL GAPS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d open gaps:\n\n", open))

	shown := 0
	for _, g := range gaps {
		if g.Gap <= 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("⚠ %s [%s]\n", g.Skill, g.Priority))
		sb.WriteString(fmt.Sprintf("  at %d%%, need %d%% (gap %d)\n", g.UserLevel, g.RequiredLevel, g.Gap))
		shown++
		if shown == maxItemsToShow {
			break
		}
		sb.WriteString("\n")
	}
	if open > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more gaps", open-maxItemsToShow))
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the prioritized course recommendations.
func (p *Printer) PrintRecommendations(recs []types.SkillRecommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommending %d skills:\n\n", len(recs)))

	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("• %s [%s] gap %d\n", rec.Skill, rec.Gap.Priority, rec.Gap.Gap))
		if len(rec.Courses) > 0 {
			course := rec.Courses[0]
			name := course.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  Start with: %s\n", name))
		}
		if rec.ROI.PotentialSalaryIncrease > 0 {
			sb.WriteString(fmt.Sprintf("  Potential salary increase: $%.0f/year\n", rec.ROI.PotentialSalaryIncrease))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(recs)-maxItemsToShow))
	}

	p.printBox("COURSE RECOMMENDATIONS", sb.String())
}

// PrintReadiness outputs the overall readiness score and its band.
func (p *Printer) PrintReadiness(report *types.ReadinessReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.1f / 100\n", report.Score))
	sb.WriteString(fmt.Sprintf("Band:     %s\n", report.Band.Label))
	sb.WriteString("\n")

	// Wrap the disclaimer to the box width.
	for _, line := range wrap(report.Disclaimer, boxWidth-4) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	p.printBox("CAREER READINESS", strings.TrimSuffix(sb.String(), "\n"))
}

// wrap splits text into lines no longer than width, breaking on spaces.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
