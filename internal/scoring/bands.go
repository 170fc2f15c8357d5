package scoring

import "github.com/jonathan/careercraft/internal/types"

// Band thresholds. Heuristic, not yet calibrated against real outcomes.
const (
	balancedThreshold = 75.0
	stretchThreshold  = 55.0
)

// BandDisclaimer accompanies every readiness figure shown to a user.
const BandDisclaimer = "Readiness bands are heuristic estimates, not predictions. This is decision support, not career advice."

var (
	bandBalanced = types.ReadinessBand{
		Name:  "balanced",
		Label: "Balanced path (about 1 in 2 if you follow through)",
		Color: "#2ecc71",
	}
	bandStretch = types.ReadinessBand{
		Name:  "stretch",
		Label: "Stretch path (about 1 in 3-4 if you commit seriously)",
		Color: "#f39c12",
	}
	bandLongShot = types.ReadinessBand{
		Name:  "long_shot",
		Label: "Long-shot path (about 1 in 5+; consider alternatives)",
		Color: "#e74c3c",
	}
)

// Band maps a readiness score to its honesty-framed band. Scores are clamped
// into [0, 100] before banding, so out-of-range callers still get a defined
// answer. Boundaries are inclusive lower bounds: 75 is balanced, 55 is
// stretch.
func Band(score float64) types.ReadinessBand {
	score = clampScore(score)
	switch {
	case score >= balancedThreshold:
		return bandBalanced
	case score >= stretchThreshold:
		return bandStretch
	default:
		return bandLongShot
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
