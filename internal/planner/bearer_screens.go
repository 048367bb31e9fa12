package planner

import (
	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
)

// bearerScreens implements spec.md §4.3.3 (bearer, screens mode). End
// bolts, dimples, service holes and stubs follow the same rules as normal
// mode (§4.3.1); only the web-tab placement and its paired-bolt offsets
// use the screens-specific fixed edge offset (475 mm).
func bearerScreens(spec common.ProfileSpec, scalars common.Layout, sess *debug.Session) common.Layout {
	length := float64(spec.LengthMM)
	b := newBuilder(scalars, length, sess)

	if spec.PunchStations.Enabled(common.BoltHole) {
		b.addBolt(common.EndBoltPosition)
		b.addBolt(length - common.EndBoltPosition)
	}

	if spec.PunchStations.Enabled(common.Dimple) {
		for pos := common.DimpleStartBearer; pos <= length-270.5; pos += common.DimpleSpacingBearer {
			b.addDimple(pos)
		}
	}

	if spec.PunchStations.Enabled(common.Service) && spec.HoleType != common.HoleNone {
		kind := serviceHoleKind(spec.HoleType)
		for _, pos := range symmetricBearerServiceHoles(length, scalars.OpeningCentresMM) {
			b.addServiceHole(pos, kind)
		}
	}

	var tabPositions []float64
	if spec.PunchStations.Enabled(common.WebTab) {
		tabPositions = screensWebTabPositions(length, float64(spec.JoistSpacingMM), common.ScreensBearerFirstTab)
		for _, pos := range tabPositions {
			b.addWebTab(pos)
		}
	}
	pairBoltsOverWebTabs(b, tabPositions, length)

	if spec.StubsEnabled && spec.PunchStations.Enabled(common.Service) {
		addBearerStubs(b, spec, length)
	}

	return b.finalize()
}

// bearerScreensBoxMode implements spec.md §4.3.3's joist_box ∧ screens
// combination: web tabs are replaced by a triple Service hit per joist
// position plus a centred bolt (no offset).
func bearerScreensBoxMode(spec common.ProfileSpec, scalars common.Layout, sess *debug.Session) common.Layout {
	length := float64(spec.LengthMM)
	b := newBuilder(scalars, length, sess)

	if spec.PunchStations.Enabled(common.BoltHole) {
		b.addBolt(common.EndBoltPosition)
		b.addBolt(length - common.EndBoltPosition)
	}

	if spec.PunchStations.Enabled(common.Dimple) {
		for pos := common.DimpleStartBearer; pos <= length-270.5; pos += common.DimpleSpacingBearer {
			b.addDimple(pos)
		}
	}

	if spec.PunchStations.Enabled(common.Service) && spec.HoleType != common.HoleNone {
		kind := serviceHoleKind(spec.HoleType)
		for _, pos := range symmetricBearerServiceHoles(length, scalars.OpeningCentresMM) {
			b.addServiceHole(pos, kind)
		}
	}

	spacing := float64(spec.JoistSpacingMM)
	if spec.PunchStations.Enabled(common.Service) {
		for pos := spacing; pos <= length-spacing; pos += spacing {
			b.addStub(pos-12, common.Service)
			b.addStub(pos, common.Service)
			b.addStub(pos+12, common.Service)
		}
	}
	if spec.PunchStations.Enabled(common.BoltHole) {
		for pos := spacing; pos <= length-spacing; pos += spacing {
			if pos > common.MinClearance && pos < length-common.MinClearance {
				b.addBolt(pos)
			}
		}
	}

	if spec.StubsEnabled && spec.PunchStations.Enabled(common.Service) {
		addBearerStubs(b, spec, length)
	}

	return b.finalize()
}

// screensWebTabPositions generates {first, first+Δ, ..., length-first},
// i.e. the fixed-edge-offset pattern shared by bearer and joist screens
// modes (spec.md §4.3.3, §4.3.5), clipping intermediate points to the
// open interval (first, length-first).
func screensWebTabPositions(length, spacing, first float64) []float64 {
	last := length - first
	positions := []float64{first}
	for p := first + spacing; p < last; p += spacing {
		positions = append(positions, p)
	}
	positions = append(positions, last)
	return positions
}
