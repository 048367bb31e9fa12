// Package common holds the constants, enums and shared types that every
// other punchplan package depends on: the punch-geometry registry, the
// profile/hole/variant enums and the half-millimetre quantisation helper
// used throughout the planner to keep position arithmetic exact.
package common

import "math"

// RoundHalf implements spec's round_half(x) = round(2x)/2: quantising a
// position to the nearest half-millimetre is the one place rounding drift
// could enter the system, so every planner and CSV boundary passes its
// float64 mm values through this function rather than rounding ad hoc.
func RoundHalf(mm float64) float64 {
	return math.Round(mm*2) / 2
}
