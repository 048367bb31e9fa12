package clash

import (
	"fmt"

	"github.com/joistcore/punchplan/internal/common"
)

// ruleEdgeClearance implements spec.md §4.5 rule 1.
func ruleEdgeClearance(layout common.Layout, spec common.ProfileSpec) []Diagnostic {
	length := float64(spec.LengthMM)
	var out []Diagnostic

	for _, p := range layout.BoltHoles {
		if !p.Active {
			continue
		}
		if p.PositionMM <= 35 || p.PositionMM >= length-35 {
			continue // canonical end bolt, exempted
		}
		if p.PositionMM < common.MinClearance || p.PositionMM > length-common.MinClearance {
			out = append(out, newDiagnostic("edge_clearance", p, Error,
				fmt.Sprintf("bolt hole at %.1f is within %vmm of member end", p.PositionMM, common.MinClearance)))
		}
	}

	for _, p := range layout.WebTabs {
		if !p.Active {
			continue
		}
		if p.PositionMM < common.WebTabClearance || p.PositionMM > length-common.WebTabClearance {
			out = append(out, newDiagnostic("edge_clearance", p, Error,
				fmt.Sprintf("web tab at %.1f violates %vmm edge clearance", p.PositionMM, common.WebTabClearance)))
		}
	}

	for _, p := range layout.ServiceHoles {
		if !p.Active {
			continue
		}
		radius := common.PunchSpecFor(p.Kind).Clearance()
		if p.PositionMM < radius || p.PositionMM > length-radius {
			out = append(out, newDiagnostic("edge_clearance", p, Error,
				fmt.Sprintf("service hole at %.1f violates %.1fmm edge clearance", p.PositionMM, radius)))
		}
	}

	return out
}

// ruleSpanLimits implements spec.md §4.5 rule 7.
func ruleSpanLimits(spec common.ProfileSpec) []Diagnostic {
	if spec.KPaRating == nil {
		return nil
	}
	limit, ok := common.SpanLimit[*spec.KPaRating]
	if !ok {
		return nil
	}

	var out []Diagnostic
	if spec.Variant.IsJoist() {
		if float64(spec.LengthMM) > limit {
			out = append(out, newDiagnostic("span_limit", common.Punch{PositionMM: float64(spec.LengthMM)}, Error,
				fmt.Sprintf("joist length %v exceeds %.0fkPa span limit %.0f", spec.LengthMM, *spec.KPaRating, limit)))
		}
		return out
	}

	if spec.JoistLengthMM != nil && float64(*spec.JoistLengthMM) > limit {
		out = append(out, newDiagnostic("span_limit", common.Punch{PositionMM: float64(*spec.JoistLengthMM)}, Warning,
			fmt.Sprintf("joist length %v exceeds %.0fkPa span limit %.0f", *spec.JoistLengthMM, *spec.KPaRating, limit)))
	}
	return out
}
