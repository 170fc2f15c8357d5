package types

// CareerMatch is one ranked entry produced by the career matcher.
type CareerMatch struct {
	Career           string   `json:"career"`
	Category         Category `json:"category"`
	MatchPct         float64  `json:"match_pct"`
	MedianSalary     int      `json:"median_salary"`
	GrowthRate       int      `json:"growth_rate"`
	HighPriorityGaps int      `json:"high_priority_gaps"`
	Education        string   `json:"education"`
	TimeToEntry      string   `json:"time_to_entry"`
}
