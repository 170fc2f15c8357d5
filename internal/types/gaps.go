package types

// Priority buckets a skill gap by magnitude.
type Priority string

// Priority tiers. Thresholds: gap > 30 is High, gap > 15 is Medium, else Low.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank returns the sort rank for a priority (High=0, Medium=1, Low=2).
// Unknown values rank after Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// GapRecord is the per-(career, skill) shortfall between required and actual
// level. Derived on demand, never persisted.
type GapRecord struct {
	Skill         string   `json:"skill"`
	UserLevel     int      `json:"user_level"`
	RequiredLevel int      `json:"required_level"`
	Gap           int      `json:"gap"`
	Priority      Priority `json:"priority"`
}
