package types

// ReadinessBand is one of three fixed honesty-framed buckets derived from a
// 0-100 readiness score.
type ReadinessBand struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// ReadinessReport pairs a readiness score with its band for display.
// Disclaimer carries the methodology caveat verbatim so front ends cannot
// present the score as a calibrated prediction.
type ReadinessReport struct {
	Score      float64       `json:"score"`
	Band       ReadinessBand `json:"band"`
	Disclaimer string        `json:"disclaimer"`
}
