package matching

import (
	"sort"

	"github.com/jonathan/careercraft/internal/types"
)

// SortKey selects a secondary ordering for an already-ranked match list.
type SortKey string

// Supported secondary sort keys.
const (
	SortByMatch       SortKey = "match"
	SortBySalary      SortKey = "salary"
	SortByGrowth      SortKey = "growth"
	SortByTimeToEntry SortKey = "time_to_entry"
)

// Resort reorders matches in place by the given key. Salary and growth sort
// descending. Time-to-entry sorts by plain string comparison on the
// free-text range label ("12-24 months" before "6-18 months"); that naive
// ordering is a known limitation carried over intentionally. Unknown keys
// and SortByMatch leave the ranked order untouched.
func Resort(matches []types.CareerMatch, key SortKey) {
	switch key {
	case SortBySalary:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].MedianSalary > matches[j].MedianSalary
		})
	case SortByGrowth:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].GrowthRate > matches[j].GrowthRate
		})
	case SortByTimeToEntry:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].TimeToEntry < matches[j].TimeToEntry
		})
	}
}
