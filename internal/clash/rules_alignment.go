package clash

import (
	"fmt"
	"math"

	"github.com/joistcore/punchplan/internal/common"
)

// ruleBoltOverWebTabAlignment implements spec.md §4.5 rule 4: on bearers,
// every web tab must have a paired interior bolt within POSITION_TOLERANCE
// of its alternating ±29.5 offset position.
func ruleBoltOverWebTabAlignment(layout common.Layout, spec common.ProfileSpec) []Diagnostic {
	if !spec.Variant.IsBearer() {
		return nil
	}
	length := float64(spec.LengthMM)

	var out []Diagnostic
	for i, tab := range layout.WebTabs {
		if !tab.Active {
			continue
		}
		offset := common.BoltOffsetEven
		if i%2 == 1 {
			offset = common.BoltOffsetOdd
		}
		want := tab.PositionMM + offset
		if want <= common.MinClearance || want >= length-common.MinClearance {
			continue
		}

		found := false
		for _, bolt := range layout.BoltHoles {
			if !bolt.Active || bolt.PositionMM <= common.MinClearance || bolt.PositionMM >= length-common.MinClearance {
				continue
			}
			if math.Abs(bolt.PositionMM-want) <= common.PositionTolerance {
				found = true
				break
			}
		}
		if !found {
			out = append(out, newDiagnostic("bolt_web_tab_alignment", tab, Warning,
				fmt.Sprintf("web tab at %.1f has no paired bolt near %.1f", tab.PositionMM, want)))
		}
	}
	return out
}
