package scoring

import (
	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/types"
)

// WeightedMatch scores how well a profile satisfies one career's
// requirements, as a percentage. Each required skill contributes
// min(effective/required, 1) weighted by required/100, so heavily-required
// skills dominate the aggregate. Practice-adjusted effective levels are used
// throughout. Unknown careers and careers with zero total weight score 0.
//
// This is deliberately a different number from Readiness: the weighted form
// drives career ranking, the unweighted mean drives the readiness display.
// The two diverge whenever requirements are non-uniform.
func WeightedMatch(cat *catalog.Catalog, ratings types.SkillRatings, freq types.PracticeFrequencies, careerName string) float64 {
	career, ok := cat.Career(careerName)
	if !ok {
		return 0
	}

	totalMatch := 0.0
	totalWeight := 0.0
	for skill, required := range career.RequiredSkills {
		effective := EffectiveLevel(ratings[skill], freq[skill])
		weight := float64(required) / 100
		totalMatch += skillMatch(effective, required) * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}
	return totalMatch / totalWeight * 100
}

// Readiness is the unweighted variant: the arithmetic mean of per-skill
// match ratios across a career's requirements, as a percentage. Unknown
// careers and empty requirement sets score 0.
func Readiness(cat *catalog.Catalog, ratings types.SkillRatings, freq types.PracticeFrequencies, careerName string) float64 {
	career, ok := cat.Career(careerName)
	if !ok {
		return 0
	}
	if len(career.RequiredSkills) == 0 {
		return 0
	}

	totalMatch := 0.0
	for skill, required := range career.RequiredSkills {
		effective := EffectiveLevel(ratings[skill], freq[skill])
		totalMatch += skillMatch(effective, required)
	}
	return totalMatch / float64(len(career.RequiredSkills)) * 100
}

// OverallReadiness averages per-career readiness across the target careers.
// Unknown career names are skipped; no valid targets scores 0.
func OverallReadiness(cat *catalog.Catalog, ratings types.SkillRatings, freq types.PracticeFrequencies, targets []string) float64 {
	total := 0.0
	count := 0
	for _, name := range targets {
		if _, ok := cat.Career(name); !ok {
			continue
		}
		total += Readiness(cat, ratings, freq, name)
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// ReadinessReport bundles an overall readiness score with its band and the
// methodology disclaimer.
func ReadinessReport(cat *catalog.Catalog, ratings types.SkillRatings, freq types.PracticeFrequencies, targets []string) types.ReadinessReport {
	score := OverallReadiness(cat, ratings, freq, targets)
	return types.ReadinessReport{
		Score:      score,
		Band:       Band(score),
		Disclaimer: BandDisclaimer,
	}
}

// skillMatch is the per-skill satisfaction ratio, capped at 1. A requirement
// of 0 is trivially satisfied.
func skillMatch(effective float64, required int) float64 {
	if required <= 0 {
		return 1.0
	}
	ratio := effective / float64(required)
	if ratio > 1 {
		return 1.0
	}
	return ratio
}
