package types

// SkillRatings maps skill name to a raw self-rating (0-100).
type SkillRatings map[string]int

// PracticeFrequencies maps skill name to a practice-frequency label
// ("often", "sometimes", "rarely", plus recognized synonyms). Skills without
// an entry are treated as "sometimes".
type PracticeFrequencies map[string]string

// Clone returns an independent copy so callers can mutate without aliasing.
func (r SkillRatings) Clone() SkillRatings {
	out := make(SkillRatings, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy so callers can mutate without aliasing.
func (f PracticeFrequencies) Clone() PracticeFrequencies {
	out := make(PracticeFrequencies, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
