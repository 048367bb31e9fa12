package common

import "sort"

// SortPunches sorts a punch list ascending by position in place, matching
// invariant I2. Ties are kept stable so callers that assemble a list from
// several ordered sources (e.g. corner brackets before user stub
// positions) keep their relative insertion order.
func SortPunches(p []Punch) {
	sort.SliceStable(p, func(i, j int) bool {
		return p[i].PositionMM < p[j].PositionMM
	})
}
