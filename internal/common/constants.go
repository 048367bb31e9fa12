package common

// Numeric constants of the manufacturing rule set (spec.md §4.1). These
// values must be reproduced bit-identically: the span table and dimple
// rules are specified against them and have visible manufacturing
// consequences.
const (
	EndExclusionBase = 300.0
	MinClearance     = 50.0
	WebTabClearance  = 22.5
	ServiceClearance = 250.0

	DimpleSpacingBearer = 450.0
	DimpleStartBearer   = 479.5

	DimpleBaseIntervalJoist = 600.0
	DimpleOffsetJoist       = 75.0

	ServiceHoleSpacing = 650.0

	PositionTolerance     = 10.0
	SpacingTolerancePct   = 0.15
	MinSpacingTolerance   = 100.0
	EndBoltPosition       = 30.0
	CornerBracketPosition = 131.0
	FirstStubPosition     = 331.0
	ScreensBearerFirstTab = 475.0
	ScreensJoistFirstTab  = 425.0
	ScreensMaxTabSpacing  = 1200.0

	// BoltOffsetEven/Odd are the alternating ±29.5 mm pattern applied to
	// bolts paired over web tabs (spec.md §4.3.1 step 5, §4.3.3).
	BoltOffsetEven = -29.5
	BoltOffsetOdd  = +29.5

	// Legacy joist dimple clash constants. The planner itself generates
	// joist dimples with the 600 mm paired-offset pattern (§4.3.4); the
	// clash detector still validates against these older constants. This
	// is a faithful reproduction of the documented inconsistency
	// (spec.md §9), not a bug to reconcile.
	DimpleSpacingJoistLegacy = 409.5
	DimpleStartJoistLegacy   = 509.5

	FlangeJoist  = 59.0
	FlangeBearer = 63.0
	ThicknessMM  = 1.8

	// Default hole diameters used in end-exclusion maths when HoleType is
	// None (spec.md I4).
	DefaultHoleDiameterJoist  = 200.0
	DefaultHoleDiameterBearer = 200.0

	// UnsupportedHoleTypeDiameter is the legacy default diameter applied
	// when a HoleType value outside the closed set is encountered
	// (spec.md §7, ErrUnsupportedHoleType).
	UnsupportedHoleTypeDiameter = 110.0
)

// SpanLimit maps a kPa rating to its maximum span in mm (spec.md §4.1).
var SpanLimit = map[float64]float64{
	2.5: 11750,
	5.0: 9300,
}
