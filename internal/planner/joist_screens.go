package planner

import (
	"math"

	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
)

// joistScreens implements spec.md §4.3.5 (joist, screens mode).
func joistScreens(spec common.ProfileSpec, scalars common.Layout, sess *debug.Session) common.Layout {
	length := float64(spec.LengthMM)
	b := newBuilder(scalars, length, sess)

	tabPositions := joistScreensWebTabPositions(length)
	if spec.PunchStations.Enabled(common.WebTab) {
		for _, pos := range tabPositions {
			b.addWebTab(pos)
		}
	}

	if spec.PunchStations.Enabled(common.Service) && spec.HoleType != common.HoleNone {
		kind := serviceHoleKind(spec.HoleType)
		for _, pos := range joistScreensServiceHoles(tabPositions) {
			b.addServiceHole(pos, kind)
		}
	}

	if spec.PunchStations.Enabled(common.BoltHole) {
		for _, pos := range tabPositions {
			b.addBolt(pos)
		}
	}

	return b.finalize()
}

// joistScreensWebTabPositions returns {425, 425+Δ, ..., length−425} with
// Δ = (length−850)/ceil((length−850)/1200), the evenly-spaced pattern
// capped at 1200 mm (spec.md §4.3.5).
func joistScreensWebTabPositions(length float64) []float64 {
	span := length - 2*common.ScreensJoistFirstTab
	if span <= 0 {
		return []float64{length / 2}
	}
	segments := math.Ceil(span / common.ScreensMaxTabSpacing)
	if segments < 1 {
		segments = 1
	}
	delta := span / segments
	n := int(segments) + 1
	positions := make([]float64, n)
	for i := 0; i < n; i++ {
		positions[i] = common.ScreensJoistFirstTab + float64(i)*delta
	}
	return positions
}

// joistScreensServiceHoles distributes service holes evenly between each
// consecutive pair of web tabs at (as close as possible to) 650 mm
// spacing (spec.md §4.3.5).
func joistScreensServiceHoles(tabPositions []float64) []float64 {
	var holes []float64
	for i := 0; i+1 < len(tabPositions); i++ {
		a, b := tabPositions[i], tabPositions[i+1]
		segLen := b - a
		n := int(math.Round(segLen / common.ServiceHoleSpacing))
		if n < 1 {
			continue
		}
		spacing := segLen / float64(n)
		for j := 1; j < n; j++ {
			holes = append(holes, a+float64(j)*spacing)
		}
	}
	return holes
}
