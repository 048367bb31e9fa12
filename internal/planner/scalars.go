package planner

import (
	"math"

	"github.com/joistcore/punchplan/internal/common"
)

// deriveScalars computes the scalar fields every dispatch branch shares
// before generating punch positions (spec.md §4.3, first paragraph).
func deriveScalars(spec common.ProfileSpec) common.Layout {
	length := float64(spec.LengthMM)

	// A HoleType outside the closed set keeps the legacy diameter that
	// Diameter reports for it; only HoleNone takes the variant default.
	diam, _, _ := spec.HoleType.Diameter()
	if spec.HoleType == common.HoleNone {
		if spec.Variant.IsJoist() {
			diam = common.DefaultHoleDiameterJoist
		} else {
			diam = common.DefaultHoleDiameterBearer
		}
	}

	endExclusion := 2 * (diam/2 + common.EndExclusionBase)
	lengthMod := length - endExclusion

	openingCount := math.Floor(lengthMod / float64(spec.HoleSpacingMM))
	if openingCount < 1 {
		openingCount = 1
	}
	openingCentres := lengthMod / openingCount

	flange := common.FlangeJoist
	if spec.Variant.IsBearer() {
		flange = common.FlangeBearer
	}

	tabOffset := 0.0
	if spec.Variant.IsBearer() {
		tabOffset = common.BoltOffsetOdd
	}

	return common.Layout{
		EndExclusionMM:     endExclusion,
		LengthModMM:        lengthMod,
		OpeningCentresMM:   openingCentres,
		HoleQty:            int(openingCount),
		TabOffsetMM:        tabOffset,
		FlangeMM:           flange,
		ThicknessMM:        common.ThicknessMM,
		HoleDiameterMM:     diam,
		HoleEdgeDistanceMM: diam / 2,
	}
}

// serviceHoleKind resolves the PunchKind used for service holes under
// spec, falling back to SmallServiceHole at the legacy diameter for a
// HoleType outside the closed set (spec.md §7).
func serviceHoleKind(ht common.HoleType) common.PunchKind {
	_, kind, ok := ht.Diameter()
	if !ok {
		return common.SmallServiceHole
	}
	return kind
}
