// Package planner implements the Layout Planner (C3): the dispatch
// lattice over member family, screens mode and joist-box mode that turns
// a ProfileSpec into a fully-populated Layout (spec.md §4.3).
package planner

import (
	"time"

	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
)

// Plan dispatches spec to the branch function named by its variant,
// screens and joist-box flags (spec.md §4.3's six-way lattice) and
// returns the resulting Layout.
func Plan(spec common.ProfileSpec) common.Layout {
	return PlanTraced(spec, nil)
}

// PlanTraced is Plan with an optional debug session. sess may be nil (the
// default, zero-overhead path); when non-nil it records the dispatch
// decision and a summary of the resulting Layout.
func PlanTraced(spec common.ProfileSpec, sess *debug.Session) common.Layout {
	start := time.Now()
	sess.Emit("plan", "Start", debug.PlanStartData{
		Variant:  spec.Variant.String(),
		LengthMM: spec.LengthMM,
		Screens:  spec.ScreensEnabled,
		JoistBox: spec.JoistBox,
	})
	if _, _, ok := spec.HoleType.Diameter(); !ok {
		sess.Emit("plan", "Error", debug.ErrorData{
			Type:    "ErrUnsupportedHoleType",
			Message: common.ErrUnsupportedHoleType.Error(),
		})
	}

	scalars := deriveScalars(spec)

	var branch string
	var layout common.Layout
	switch {
	case spec.Variant.IsBearer() && !spec.ScreensEnabled && !spec.JoistBox:
		branch, layout = "bearer_normal", bearerNormal(spec, scalars, sess)
	case spec.Variant.IsBearer() && !spec.ScreensEnabled && spec.JoistBox:
		branch, layout = "bearer_normal_boxmode", bearerNormalBoxMode(spec, scalars, sess)
	case spec.Variant.IsBearer() && spec.ScreensEnabled && !spec.JoistBox:
		branch, layout = "bearer_screens", bearerScreens(spec, scalars, sess)
	case spec.Variant.IsBearer() && spec.ScreensEnabled && spec.JoistBox:
		branch, layout = "bearer_screens_boxmode", bearerScreensBoxMode(spec, scalars, sess)
	case spec.Variant.IsJoist() && !spec.ScreensEnabled:
		branch, layout = "joist_normal", joistNormal(spec, scalars, sess)
	default:
		branch, layout = "joist_screens", joistScreens(spec, scalars, sess)
	}
	sess.Emit("plan", "Dispatch", debug.PlanDispatchData{Branch: branch})

	sess.Emit("plan", "End", debug.PlanEndData{
		BoltHoles:    len(layout.BoltHoles),
		Dimples:      len(layout.Dimples),
		WebTabs:      len(layout.WebTabs),
		ServiceHoles: len(layout.ServiceHoles),
		Stubs:        len(layout.Stubs),
		ElapsedMs:    time.Since(start).Milliseconds(),
	})
	return layout
}
