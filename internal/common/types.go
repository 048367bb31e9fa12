package common

import "fmt"

// ProfileVariant is the member family being planned.
type ProfileVariant int

const (
	JoistSingle ProfileVariant = iota
	JoistBox
	BearerSingle
	BearerBox
)

func (v ProfileVariant) String() string {
	switch v {
	case JoistSingle:
		return "JoistSingle"
	case JoistBox:
		return "JoistBox"
	case BearerSingle:
		return "BearerSingle"
	case BearerBox:
		return "BearerBox"
	default:
		return fmt.Sprintf("ProfileVariant(%d)", int(v))
	}
}

// IsBearer reports whether the variant is a bearer (as opposed to a joist).
func (v ProfileVariant) IsBearer() bool {
	return v == BearerSingle || v == BearerBox
}

// IsJoist reports whether the variant is a joist.
func (v ProfileVariant) IsJoist() bool {
	return v == JoistSingle || v == JoistBox
}

// IsBox reports whether the variant is the box (doubled-up) form.
func (v ProfileVariant) IsBox() bool {
	return v == JoistBox || v == BearerBox
}

// HoleType selects the service-hole style, driving both the PunchKind
// emitted for service holes and the diameter used in end-exclusion and
// clearance maths (spec.md §3).
type HoleType int

const (
	HoleNone HoleType = iota
	HoleR50
	HoleR115
	HoleR200
	HoleOval200x400
)

func (h HoleType) String() string {
	switch h {
	case HoleNone:
		return "None"
	case HoleR50:
		return "R50"
	case HoleR115:
		return "R115"
	case HoleR200:
		return "R200"
	case HoleOval200x400:
		return "Oval200x400"
	default:
		return fmt.Sprintf("HoleType(%d)", int(h))
	}
}

// Diameter returns the mm value used in end-exclusion and edge-clearance
// maths for this HoleType, and the PunchKind emitted for its service
// holes. ok is false for a HoleType value outside the closed set; callers
// should treat that as ErrUnsupportedHoleType and fall back to
// UnsupportedHoleTypeDiameter/SmallServiceHole (spec.md §7, §9).
//
// R115 and R200 map onto the registry's nominal Ø115/Ø200 kinds exactly;
// Oval200x400 maps onto LargeServiceHole, whose registry width (400) is
// the value get_hole_diameter returns per spec.md §9. R50 has no matching
// nominal kind in the C1 registry (the smallest registered round service
// hole is Ø115): it is planned as a SmallServiceHole station with its own
// 50 mm diameter substituted for clearance/exclusion math, the smallest
// faithful reading of "determines both the service_hole_kind ... and the
// numeric diameter" that does not invent a sixth PunchKind.
func (h HoleType) Diameter() (mm float64, kind PunchKind, ok bool) {
	switch h {
	case HoleNone:
		return 0, Service, true // diameter resolved by caller's default (joist/bearer)
	case HoleR50:
		return 50, SmallServiceHole, true
	case HoleR115:
		return 115, SmallServiceHole, true
	case HoleR200:
		return 200, MServiceHole, true
	case HoleOval200x400:
		return 400, LargeServiceHole, true
	default:
		return UnsupportedHoleTypeDiameter, SmallServiceHole, false
	}
}

// PunchStations is a closed, constant-time mapping from PunchKind to
// whether that station is enabled for a plan (spec.md §9 design note:
// "prefer a closed mapping ... so enabling/querying is constant-time and
// total").
type PunchStations map[PunchKind]bool

// Enabled reports whether kind is enabled. Unset kinds default to
// disabled, matching ProfileSpec's zero value being "nothing enabled".
func (p PunchStations) Enabled(kind PunchKind) bool {
	return p[kind]
}

// ProfileSpec is the full input to the Layout Planner (spec.md §3).
type ProfileSpec struct {
	Variant         ProfileVariant
	LengthMM        int
	ProfileHeightMM int
	JoistLengthMM   *int // bearers only; drives span-table lookup
	JoistSpacingMM  int
	StubSpacingMM   int
	StubPositions   []int // ordered; bearer only
	StubsEnabled    bool
	HoleType        HoleType
	HoleSpacingMM   int
	PunchStations   PunchStations
	EndBoxJoist     bool // joist only
	ScreensEnabled  bool
	JoistBox        bool // bearer only
	KPaRating       *float64
}

// Punch is a single planned position on the member (spec.md §3).
type Punch struct {
	PositionMM float64
	Kind       PunchKind
	Active     bool
}

// Layout is the full planner output: five ordered-by-position sequences
// plus the derived scalars used by the clash detector and CSV encoder
// (spec.md §3).
type Layout struct {
	BoltHoles    []Punch // flange plane
	Dimples      []Punch // flange plane
	WebTabs      []Punch // web-face plane
	ServiceHoles []Punch // web-face plane
	Stubs        []Punch // web-face plane

	EndExclusionMM     float64
	LengthModMM        float64
	OpeningCentresMM   float64
	HoleQty            int
	TabOffsetMM        float64
	FlangeMM           float64
	ThicknessMM        float64
	HoleDiameterMM     float64
	HoleEdgeDistanceMM float64
}

// ActivePunches flattens the five position lists into one slice of the
// active punches, for callers that want to iterate uniformly (e.g. the
// CSV encoder).
func (l *Layout) ActivePunches() []Punch {
	var out []Punch
	for _, list := range [][]Punch{l.BoltHoles, l.Dimples, l.WebTabs, l.ServiceHoles, l.Stubs} {
		for _, p := range list {
			if p.Active {
				out = append(out, p)
			}
		}
	}
	return out
}
