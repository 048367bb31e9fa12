package planner

import (
	"math"

	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
)

// joistNormal implements spec.md §4.3.4 (joist, normal mode).
func joistNormal(spec common.ProfileSpec, scalars common.Layout, sess *debug.Session) common.Layout {
	length := float64(spec.LengthMM)
	b := newBuilder(scalars, length, sess)

	if spec.PunchStations.Enabled(common.BoltHole) {
		b.addBolt(common.EndBoltPosition)
		b.addBolt(length - common.EndBoltPosition)
	}

	if spec.PunchStations.Enabled(common.Dimple) {
		for _, pos := range joistDimplePositions(length) {
			b.addDimple(pos)
		}
	}

	var serviceHoles []float64
	if spec.PunchStations.Enabled(common.Service) && spec.HoleType != common.HoleNone {
		kind := serviceHoleKind(spec.HoleType)
		serviceHoles = centeredSeries(length/2, scalars.HoleQty, scalars.OpeningCentresMM)
		for _, pos := range serviceHoles {
			b.addServiceHole(pos, kind)
		}
	}

	if spec.PunchStations.Enabled(common.WebTab) && len(serviceHoles) >= 2 {
		first, last := serviceHoles[0], serviceHoles[len(serviceHoles)-1]
		minTabs := joistMinWebTabs(last - first)
		candidates := joistWebTabCandidates(first, last, minTabs)
		tabPositions := resolveWebTabConflicts(candidates, serviceHoles)
		for _, pos := range tabPositions {
			b.addWebTab(pos)
		}
		for _, pos := range tabPositions {
			if pos <= common.MinClearance || pos >= length-common.MinClearance {
				continue
			}
			if nearAny(b.layout.BoltHoles, pos, common.MinClearance) {
				continue
			}
			b.addBolt(pos)
		}
	}

	if spec.PunchStations.Enabled(common.CornerBrackets) {
		b.addStub(common.CornerBracketPosition, common.CornerBrackets)
		b.addStub(length-common.CornerBracketPosition, common.CornerBrackets)
	}

	return b.finalize()
}

// joistDimplePositions implements the "paired-offset" pattern of spec.md
// §4.3.4 step 2: {75}, then base±75 for base in {600, 1200, 1800, ...}
// while base < length−75, finally length−75.
func joistDimplePositions(length float64) []float64 {
	positions := []float64{75}
	for base := common.DimpleBaseIntervalJoist; base < length-75; base += common.DimpleBaseIntervalJoist {
		positions = append(positions, base-common.DimpleOffsetJoist)
		if base+common.DimpleOffsetJoist < length-75 {
			positions = append(positions, base+common.DimpleOffsetJoist)
		}
	}
	positions = append(positions, length-75)
	return positions
}

// joistMinWebTabs computes ceil(span/MAX) per spec.md §4.3.4 step 3, using
// MinSpacingTolerance as the fixed tolerance applied to the 2400 mm
// nominal maximum web-tab spacing (the spec names MAX/MIN but ties the
// tolerance to no other constant, so MinSpacingTolerance is the closest
// named value).
func joistMinWebTabs(span float64) int {
	const nominalMax = 2400.0
	max := nominalMax + common.MinSpacingTolerance
	n := int(math.Ceil(span / max))
	if n < 1 {
		n = 1
	}
	return n
}

// joistWebTabCandidates returns the ideal evenly-spaced interior positions
// between the first and last service hole.
func joistWebTabCandidates(first, last float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	step := (last - first) / float64(n+1)
	positions := make([]float64, n)
	for i := 1; i <= n; i++ {
		positions[i-1] = first + float64(i)*step
	}
	return positions
}

// resolveWebTabConflicts enforces the 150 mm service-hole clearance of
// spec.md §4.3.4 step 3: centre between adjacent holes within ±650 mm of
// the ideal position, else shift ±150 mm off the conflicting hole, else
// drop the candidate.
func resolveWebTabConflicts(candidates, holes []float64) []float64 {
	const clearance = 150.0
	var resolved []float64
	for _, ideal := range candidates {
		pos := ideal
		conflict, hasConflictPos := nearestConflictingHole(pos, holes, clearance)
		if hasConflictPos {
			if mid, ok := centreBetweenAdjacent(pos, holes, clearance); ok && math.Abs(mid-ideal) <= 650 {
				pos = mid
			} else if plus := conflict + clearance; !hasConflict(plus, holes, clearance) {
				pos = plus
			} else if minus := conflict - clearance; !hasConflict(minus, holes, clearance) {
				pos = minus
			} else {
				continue
			}
		}
		resolved = append(resolved, pos)
	}
	return resolved
}

func hasConflict(pos float64, holes []float64, clearance float64) bool {
	for _, h := range holes {
		if math.Abs(pos-h) < clearance {
			return true
		}
	}
	return false
}

func nearestConflictingHole(pos float64, holes []float64, clearance float64) (float64, bool) {
	best := 0.0
	bestDist := math.MaxFloat64
	found := false
	for _, h := range holes {
		d := math.Abs(pos - h)
		if d < clearance && d < bestDist {
			bestDist, best, found = d, h, true
		}
	}
	return best, found
}

func centreBetweenAdjacent(pos float64, holes []float64, clearance float64) (float64, bool) {
	lo, hi := math.Inf(-1), math.Inf(1)
	foundLo, foundHi := false, false
	for _, h := range holes {
		if h < pos && h > lo {
			lo, foundLo = h, true
		}
		if h > pos && h < hi {
			hi, foundHi = h, true
		}
	}
	if !foundLo || !foundHi {
		return 0, false
	}
	mid := (lo + hi) / 2
	if hasConflict(mid, holes, clearance) {
		return 0, false
	}
	return mid, true
}

// centeredSeries returns n positions spaced evenly by spacing, centred on
// mid. Used for service-hole placement on both joists and (via the
// bearer-specific count formula) bearers.
func centeredSeries(mid float64, n int, spacing float64) []float64 {
	if n <= 0 || spacing <= 0 {
		return nil
	}
	start := mid - float64(n-1)/2*spacing
	positions := make([]float64, n)
	for i := 0; i < n; i++ {
		positions[i] = start + float64(i)*spacing
	}
	return positions
}
