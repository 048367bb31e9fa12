package common

import "fmt"

// PunchKind is the closed set of punch classes the press brake recognises.
// Each kind has a fixed hit code, shape and nominal dimensions (§3, §4.1).
type PunchKind int

const (
	// BoltHole is an 11x11 square hole, hit code .1.
	BoltHole PunchKind = iota
	// Dimple is a Ø5 round stitch, hit code .2.
	Dimple
	// WebTab is a 45x70 rectangular slot, hit code .3.
	WebTab
	// Service is the 115x300 stub/corner-bracket rectangle, hit code .4.
	Service
	// SmallServiceHole is a Ø115 round hole, hit code .5.
	SmallServiceHole
	// MServiceHole is a Ø200 round hole, hit code .6.
	MServiceHole
	// LargeServiceHole is a 400x200 oval, hit code .7.
	LargeServiceHole
	// CornerBrackets aliases Service on emit (same hit code, same station name).
	CornerBrackets
)

// Shape is the punch's cut geometry.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeRound
	ShapeRectangular
	ShapeOval
)

func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeRound:
		return "round"
	case ShapeRectangular:
		return "rectangular"
	case ShapeOval:
		return "oval"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Plane is the structural face a punch lies on. Punches on different planes
// never produce geometric-overlap clash diagnostics against each other
// (spec.md §4.5).
type Plane int

const (
	// FlangePlane holds bolt holes and dimples.
	FlangePlane Plane = iota
	// WebPlane holds web tabs, service holes and stubs/corner brackets.
	WebPlane
)

func (p Plane) String() string {
	if p == FlangePlane {
		return "flange"
	}
	return "web"
}

// Plane reports which structural face kind lies on.
func (k PunchKind) Plane() Plane {
	switch k {
	case BoltHole, Dimple:
		return FlangePlane
	default:
		return WebPlane
	}
}

// PunchSpec is one row of the C1 dimensions registry: the geometry the
// press brake expects for a given PunchKind.
type PunchSpec struct {
	HitCode string
	Station string // uppercase station name emitted in the CSV record
	Shape   Shape
	Width   float64 // mm; 0 for round shapes
	Height  float64 // mm; 0 for round shapes
	Diam    float64 // mm; 0 for rectangular/oval shapes
}

// punchSpecs is the immutable C1 registry. Every PunchKind maps to exactly
// one row (I6: the hit-code mapping is total over PunchKind).
var punchSpecs = map[PunchKind]PunchSpec{
	BoltHole:         {HitCode: ".1", Station: "BOLT HOLE", Shape: ShapeSquare, Width: 11, Height: 11},
	Dimple:           {HitCode: ".2", Station: "DIMPLE", Shape: ShapeRound, Diam: 5},
	WebTab:           {HitCode: ".3", Station: "WEB TAB", Shape: ShapeRectangular, Width: 45, Height: 70},
	Service:          {HitCode: ".4", Station: "SERVICE", Shape: ShapeRectangular, Width: 115, Height: 300},
	SmallServiceHole: {HitCode: ".5", Station: "SMALL SERVICE HOLE", Shape: ShapeRound, Diam: 115},
	MServiceHole:     {HitCode: ".6", Station: "M SERVICE HOLE", Shape: ShapeRound, Diam: 200},
	LargeServiceHole: {HitCode: ".7", Station: "LARGE SERVICE HOLE", Shape: ShapeOval, Width: 400, Height: 200},
	// CornerBrackets aliases Service on emit: same hit code and station name (I6).
	CornerBrackets: {HitCode: ".4", Station: "SERVICE", Shape: ShapeRectangular, Width: 115, Height: 300},
}

// PunchSpecFor returns the C1 registry row for kind. Every PunchKind has an
// entry; callers never need to handle a "missing" case.
func PunchSpecFor(kind PunchKind) PunchSpec {
	return punchSpecs[kind]
}

// stationToKind is the reverse of punchSpecs' station names, used by the
// CSV decoder. "SERVICE" resolves to Service, never CornerBrackets: the
// two alias on emit (I6), and decoding cannot recover which one a given
// record originally was (spec.md §8 P5).
var stationToKind = map[string]PunchKind{
	"BOLT HOLE":          BoltHole,
	"DIMPLE":             Dimple,
	"WEB TAB":            WebTab,
	"SERVICE":            Service,
	"SMALL SERVICE HOLE": SmallServiceHole,
	"M SERVICE HOLE":     MServiceHole,
	"LARGE SERVICE HOLE": LargeServiceHole,
}

// KindForStation resolves a CSV station name back to a PunchKind.
func KindForStation(station string) (PunchKind, bool) {
	k, ok := stationToKind[station]
	return k, ok
}

// Clearance returns the half-width (rectangular/oval) or radius (round)
// used by overlap and edge-clearance maths (spec.md §4.5 rule 10).
func (s PunchSpec) Clearance() float64 {
	if s.Shape == ShapeRound {
		return s.Diam / 2
	}
	return s.Width / 2
}

func (k PunchKind) String() string {
	switch k {
	case BoltHole:
		return "BoltHole"
	case Dimple:
		return "Dimple"
	case WebTab:
		return "WebTab"
	case Service:
		return "Service"
	case SmallServiceHole:
		return "SmallServiceHole"
	case MServiceHole:
		return "MServiceHole"
	case LargeServiceHole:
		return "LargeServiceHole"
	case CornerBrackets:
		return "CornerBrackets"
	default:
		return fmt.Sprintf("PunchKind(%d)", int(k))
	}
}
