package clash

import (
	"fmt"
	"math"

	"github.com/joistcore/punchplan/internal/common"
)

// ruleDimpleGrid implements spec.md §4.5 rule 6. Joists are checked
// against the legacy DIMPLE_SPACING_JOIST/DIMPLE_START_JOIST constants
// even though the planner itself generates joist dimples with the
// 600mm paired-offset pattern (spec.md §9) — this is a faithful
// reproduction of the documented inconsistency, not a bug to fix.
func ruleDimpleGrid(layout common.Layout, spec common.ProfileSpec) []Diagnostic {
	var out []Diagnostic
	if len(layout.Dimples) == 0 {
		return out
	}

	if spec.Variant.IsBearer() {
		first := layout.Dimples[0]
		if math.Abs(first.PositionMM-common.DimpleStartBearer) > 1 {
			out = append(out, newDiagnostic("dimple_grid", first, Warning,
				fmt.Sprintf("first bearer dimple at %.1f, expected %.1f", first.PositionMM, common.DimpleStartBearer)))
		}
		for i := 1; i < len(layout.Dimples); i++ {
			want := common.DimpleStartBearer + float64(i)*common.DimpleSpacingBearer
			if got := layout.Dimples[i]; math.Abs(got.PositionMM-want) > 1 {
				out = append(out, newDiagnostic("dimple_grid", got, Warning,
					fmt.Sprintf("dimple at %.1f off bearer grid, expected ~%.1f", got.PositionMM, want)))
			}
		}
		return out
	}

	for i, d := range layout.Dimples {
		want := common.DimpleStartJoistLegacy + float64(i)*common.DimpleSpacingJoistLegacy
		if math.Abs(d.PositionMM-want) > 1 {
			out = append(out, newDiagnostic("dimple_grid", d, Warning,
				fmt.Sprintf("dimple at %.1f off legacy joist grid, expected ~%.1f", d.PositionMM, want)))
		}
	}
	return out
}

// ruleWebTabSpacing implements spec.md §4.5 rule 8.
func ruleWebTabSpacing(layout common.Layout, spec common.ProfileSpec) []Diagnostic {
	spacing := float64(spec.JoistSpacingMM)
	tolerance := math.Max(common.SpacingTolerancePct*spacing, common.MinSpacingTolerance)

	var out []Diagnostic
	for i := 1; i < len(layout.WebTabs); i++ {
		a, b := layout.WebTabs[i-1], layout.WebTabs[i]
		if !a.Active || !b.Active {
			continue
		}
		delta := b.PositionMM - a.PositionMM
		if math.Abs(delta-spacing) > tolerance {
			out = append(out, newPairDiagnostic("web_tab_spacing", a, b, Warning,
				fmt.Sprintf("web tab spacing %.1f between %.1f and %.1f deviates from %.1f by more than %.1f",
					delta, a.PositionMM, b.PositionMM, spacing, tolerance)))
		}
	}
	return out
}

// ruleServiceHoleSpacing implements spec.md §4.5 rule 9, skipped entirely
// when spec.ScreensEnabled (screens mode uses a different service-hole
// distribution rule, §4.3.5).
func ruleServiceHoleSpacing(layout common.Layout, spec common.ProfileSpec) []Diagnostic {
	if spec.ScreensEnabled {
		return nil
	}
	length := float64(spec.LengthMM)

	var nonCorner []common.Punch
	for _, p := range layout.ServiceHoles {
		if !p.Active {
			continue
		}
		if p.PositionMM <= 150 || p.PositionMM >= length-150 {
			continue // excluded: corner-bracket zone
		}
		nonCorner = append(nonCorner, p)
	}

	var out []Diagnostic
	for i := 1; i < len(nonCorner); i++ {
		a, b := nonCorner[i-1], nonCorner[i]
		delta := b.PositionMM - a.PositionMM
		if math.Abs(delta-common.ServiceHoleSpacing) > 100 {
			out = append(out, newPairDiagnostic("service_hole_spacing", a, b, Warning,
				fmt.Sprintf("service hole spacing %.1f between %.1f and %.1f deviates from %.1f by more than 100",
					delta, a.PositionMM, b.PositionMM, common.ServiceHoleSpacing)))
		}
	}
	return out
}
