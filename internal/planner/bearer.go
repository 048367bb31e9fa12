package planner

import (
	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
)

// bearerNormal implements spec.md §4.3.1 (bearer, normal mode).
func bearerNormal(spec common.ProfileSpec, scalars common.Layout, sess *debug.Session) common.Layout {
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
		spacing := float64(spec.JoistSpacingMM)
		for pos := spacing; pos <= length-spacing; pos += spacing {
			b.addWebTab(pos)
			tabPositions = append(tabPositions, pos)
		}
	}

	pairBoltsOverWebTabs(b, tabPositions, length)

	if spec.StubsEnabled && spec.PunchStations.Enabled(common.Service) {
		addBearerStubs(b, spec, length)
	}

	return b.finalize()
}

// bearerNormalBoxMode implements spec.md §4.3.2 (bearer, joist-box mode).
func bearerNormalBoxMode(spec common.ProfileSpec, scalars common.Layout, sess *debug.Session) common.Layout {
	length := float64(spec.LengthMM)
	b := newBuilder(scalars, length, sess)

	// End bolts are replaced by end dimples in box mode.
	if spec.PunchStations.Enabled(common.Dimple) {
		b.addDimple(common.EndBoltPosition)
		b.addDimple(length - common.EndBoltPosition)
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
			b.addStub(pos+12, common.Service)
		}
	}
	if spec.PunchStations.Enabled(common.Dimple) {
		for pos := spacing; pos <= length-spacing; pos += spacing {
			if pos > common.MinClearance && pos < length-common.MinClearance {
				b.addDimple(pos)
			}
		}
	}

	if spec.StubsEnabled && spec.PunchStations.Enabled(common.Service) {
		addBearerStubs(b, spec, length)
	}

	return b.finalize()
}

// symmetricBearerServiceHoles places n service holes centred about the
// member midpoint with spacing = openingCentres, per spec.md §4.3.1 step 3.
func symmetricBearerServiceHoles(length, openingCentres float64) []float64 {
	if openingCentres <= 0 {
		return nil
	}
	n := int((length - 2*openingCentres) / openingCentres)
	if n <= 0 {
		return nil
	}
	return centeredSeries(length/2, n, openingCentres)
}

// pairBoltsOverWebTabs implements spec.md §4.3.1 step 5 and §4.3.3's bolt
// rule: a bolt at web-tab position + alternating ±29.5 offset, skipped if
// it would land outside the member's interior or duplicate an existing
// bolt within POSITION_TOLERANCE.
func pairBoltsOverWebTabs(b *builder, tabPositions []float64, length float64) {
	for i, w := range tabPositions {
		offset := common.BoltOffsetEven
		if i%2 == 1 {
			offset = common.BoltOffsetOdd
		}
		pos := w + offset
		if pos <= common.MinClearance || pos >= length-common.MinClearance {
			continue
		}
		if nearAny(b.layout.BoltHoles, pos, common.PositionTolerance) {
			continue
		}
		b.addBolt(pos)
	}
}

// addBearerStubs implements spec.md §4.3.1 step 6: corner brackets at 131
// and length-131, plus any user-supplied stub positions that lie strictly
// inside the member.
func addBearerStubs(b *builder, spec common.ProfileSpec, length float64) {
	b.addStub(common.CornerBracketPosition, common.CornerBrackets)
	b.addStub(length-common.CornerBracketPosition, common.CornerBrackets)

	for _, p := range spec.StubPositions {
		pf := float64(p)
		if pf > 0 && pf < length {
			b.addStub(pf, common.Service)
		}
	}
}
