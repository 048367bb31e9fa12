package clash

import (
	"fmt"
	"math"

	"github.com/joistcore/punchplan/internal/common"
)

// requiredWebTabServiceClearance returns the centre-to-centre distance
// spec.md §4.5 rule 2 requires between a web tab and a service hole of
// the given kind.
func requiredWebTabServiceClearance(kind common.PunchKind) float64 {
	switch kind {
	case common.MServiceHole:
		return 145
	case common.LargeServiceHole:
		return 245
	case common.SmallServiceHole:
		return 102.5
	default:
		radius := common.PunchSpecFor(kind).Clearance()
		return 22.5 + radius + 22.5
	}
}

// ruleWebTabServiceHoleClearance implements spec.md §4.5 rule 2.
func ruleWebTabServiceHoleClearance(layout common.Layout) []Diagnostic {
	var out []Diagnostic
	for _, tab := range layout.WebTabs {
		if !tab.Active {
			continue
		}
		for _, hole := range layout.ServiceHoles {
			if !hole.Active {
				continue
			}
			required := requiredWebTabServiceClearance(hole.Kind)
			if d := math.Abs(tab.PositionMM - hole.PositionMM); d < required {
				out = append(out, newPairDiagnostic("web_tab_service_hole", tab, hole, Warning,
					fmt.Sprintf("web tab at %.1f is %.1fmm from service hole at %.1f, required %.1f",
						tab.PositionMM, d, hole.PositionMM, required)))
			}
		}
	}
	return out
}

// ruleStubServiceHoleClearance implements spec.md §4.5 rule 3.
func ruleStubServiceHoleClearance(layout common.Layout) []Diagnostic {
	const required = 250.0
	var out []Diagnostic
	for _, stub := range layout.Stubs {
		if !stub.Active {
			continue
		}
		for _, hole := range layout.ServiceHoles {
			if !hole.Active {
				continue
			}
			if d := math.Abs(stub.PositionMM - hole.PositionMM); d < required {
				out = append(out, newPairDiagnostic("stub_service_hole", stub, hole, Warning,
					fmt.Sprintf("stub at %.1f is %.1fmm from service hole at %.1f, required %.1f",
						stub.PositionMM, d, hole.PositionMM, required)))
			}
		}
	}
	return out
}

// ruleFlangeConflict implements spec.md §4.5 rule 5: dimples and bolts
// must be at least 13mm apart centre-to-centre.
func ruleFlangeConflict(layout common.Layout) []Diagnostic {
	// Dimple radius (2.5) + bolt-hole half-width (5.5) + 5mm clearance = 13mm.
	const required = 13.0
	var out []Diagnostic
	for _, bolt := range layout.BoltHoles {
		if !bolt.Active {
			continue
		}
		for _, dimple := range layout.Dimples {
			if !dimple.Active {
				continue
			}
			if d := math.Abs(bolt.PositionMM - dimple.PositionMM); d < required {
				out = append(out, newPairDiagnostic("flange_conflict", bolt, dimple, Warning,
					fmt.Sprintf("bolt at %.1f is %.1fmm from dimple at %.1f, required %.1f",
						bolt.PositionMM, d, dimple.PositionMM, required)))
			}
		}
	}
	return out
}

// ruleFacePlaneOverlap implements spec.md §4.5 rule 10: every pair of
// active face (web-plane) punches must clear clearance(a)+clearance(b)+
// POSITION_TOLERANCE, with violations under 5mm promoted to Error.
func ruleFacePlaneOverlap(layout common.Layout) []Diagnostic {
	var facePunches []common.Punch
	for _, list := range [][]common.Punch{layout.WebTabs, layout.ServiceHoles, layout.Stubs} {
		for _, p := range list {
			if p.Active {
				facePunches = append(facePunches, p)
			}
		}
	}
	common.SortPunches(facePunches)

	var out []Diagnostic
	for i := 0; i < len(facePunches); i++ {
		for j := i + 1; j < len(facePunches); j++ {
			a, b := facePunches[i], facePunches[j]
			required := common.PunchSpecFor(a.Kind).Clearance() + common.PunchSpecFor(b.Kind).Clearance() + common.PositionTolerance
			d := math.Abs(a.PositionMM - b.PositionMM)
			if d >= required {
				continue
			}
			sev := Warning
			if d < 5 {
				sev = Error
			}
			out = append(out, newPairDiagnostic("face_plane_overlap", a, b, sev,
				fmt.Sprintf("%v at %.1f overlaps %v at %.1f (%.1fmm apart, required %.1f)",
					a.Kind, a.PositionMM, b.Kind, b.PositionMM, d, required)))
		}
	}
	return out
}
