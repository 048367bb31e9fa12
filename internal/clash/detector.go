package clash

import (
	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
)

// DetectClashes runs the ten ordered rules of spec.md §4.5 over layout and
// spec, returning diagnostics in rule order and, within each rule, in
// ascending position order.
func DetectClashes(layout common.Layout, spec common.ProfileSpec) Diagnostics {
	return DetectClashesTraced(layout, spec, nil)
}

// DetectClashesTraced is DetectClashes with an optional debug session;
// sess may be nil. Each rule's diagnostic count is recorded as it runs.
func DetectClashesTraced(layout common.Layout, spec common.ProfileSpec, sess *debug.Session) Diagnostics {
	var d Diagnostics

	run := func(rule string, items []Diagnostic) {
		d.add(items...)
		sess.Emit("clash", "Rule", debug.ClashRuleData{Rule: rule, Diagnostics: len(items)})
	}

	run("edge_clearance", ruleEdgeClearance(layout, spec))
	run("web_tab_service_hole_clearance", ruleWebTabServiceHoleClearance(layout))
	run("stub_service_hole_clearance", ruleStubServiceHoleClearance(layout))
	run("bolt_over_web_tab_alignment", ruleBoltOverWebTabAlignment(layout, spec))
	run("flange_conflict", ruleFlangeConflict(layout))
	run("dimple_grid", ruleDimpleGrid(layout, spec))
	run("span_limits", ruleSpanLimits(spec))
	run("web_tab_spacing", ruleWebTabSpacing(layout, spec))
	run("service_hole_spacing", ruleServiceHoleSpacing(layout, spec))
	run("face_plane_overlap", ruleFacePlaneOverlap(layout))

	return d
}
