// Package scoring implements the pure functions at the heart of the engine:
// practice-frequency weighting, skill-gap calculation, match and readiness
// scoring, and readiness banding. Everything here is a deterministic function
// of its inputs; unknown names fail open with empty or zero results rather
// than errors.
package scoring

import "strings"

// Practice-frequency multipliers. Skills practiced often are fresher than
// skills rarely used, so ratings are scaled before matching.
const (
	weightOften     = 1.2
	weightSometimes = 1.0
	weightRarely    = 0.8
)

// Weight maps a practice-frequency label to its multiplier. Labels are
// trimmed and case-folded first. Unrecognized or empty labels get the
// neutral 1.0 so a missing answer never penalizes (or crashes) a profile.
func Weight(freq string) float64 {
	switch strings.ToLower(strings.TrimSpace(freq)) {
	case "often", "weekly", "daily", "weekly+":
		return weightOften
	case "sometimes", "monthly", "a few times":
		return weightSometimes
	case "rarely", "never", "rarely/never":
		return weightRarely
	default:
		return weightSometimes
	}
}

// EffectiveLevel adjusts a raw rating by the practice-frequency multiplier,
// capped at 100. The cap keeps effective levels in [0, 100]: a 90 rated
// "often" is 100, not 108.
func EffectiveLevel(base int, freq string) float64 {
	level := float64(base) * Weight(freq)
	if level > 100 {
		return 100
	}
	return level
}
