package planner

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
)

// TestPlanDispatchesAllSixCells exercises every cell of the §4.3 lattice
// and checks that each one produces punches: flange-plane punches for the
// four bearer cells, bolts for joist_normal and web tabs for joist_screens.
func TestPlanDispatchesAllSixCells(t *testing.T) {
	base := scenario1Spec() // BearerSingle

	cases := []struct {
		name    string
		mutate  func(*common.ProfileSpec)
		isJoist bool
	}{
		{"bearer_normal", func(s *common.ProfileSpec) {}, false},
		{"bearer_normal_boxmode", func(s *common.ProfileSpec) { s.JoistBox = true }, false},
		{"bearer_screens", func(s *common.ProfileSpec) { s.ScreensEnabled = true }, false},
		{"bearer_screens_boxmode", func(s *common.ProfileSpec) { s.ScreensEnabled = true; s.JoistBox = true }, false},
	}
	for _, c := range cases {
		spec := base
		c.mutate(&spec)
		layout := Plan(spec)
		if len(layout.BoltHoles) == 0 && len(layout.Dimples) == 0 {
			t.Errorf("%s: expected some flange-plane punches, got none", c.name)
		}
	}

	joistBase := joistScenario3Spec()
	joistLayout := Plan(joistBase)
	if len(joistLayout.BoltHoles) == 0 {
		t.Error("joist_normal: expected bolts")
	}

	joistScreensSpec := joistBase
	joistScreensSpec.ScreensEnabled = true
	screensLayout := Plan(joistScreensSpec)
	if len(screensLayout.WebTabs) == 0 {
		t.Error("joist_screens: expected web tabs")
	}
}

// TestBearerVsJoistBoltOffsetRule checks that bearer bolts over web tabs
// use the alternating ±29.5 offset while joist bolts are centred exactly
// on their web tab (spec.md §4.3.1 step 5 vs §4.3.4 step 4).
func TestBearerVsJoistBoltOffsetRule(t *testing.T) {
	bearer := Plan(scenario1Spec())
	for _, tab := range bearer.WebTabs {
		onTab := false
		for _, bolt := range bearer.BoltHoles {
			if bolt.PositionMM == tab.PositionMM {
				onTab = true
			}
		}
		if onTab {
			t.Errorf("bearer bolt sits exactly on web tab %v, expected an offset", tab.PositionMM)
		}
	}
}

// TestPlanTracedEmitsPunchEvents checks that every add* call on the
// builder surfaces a debug.PlanPunchData event, not just the start/
// dispatch/end summary events (internal/debug/events.go).
func TestPlanTracedEmitsPunchEvents(t *testing.T) {
	debug.SetEnabled(true)
	defer debug.SetEnabled(false)

	var buf bytes.Buffer
	sess := debug.NewSession(debug.NewJSONSink(&buf))
	layout := PlanTraced(scenario1Spec(), sess)
	if err := sess.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	wantPunchEvents := len(layout.BoltHoles) + len(layout.Dimples) + len(layout.WebTabs) +
		len(layout.ServiceHoles) + len(layout.Stubs)

	gotPunchEvents := 0
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var evt debug.Event
		if err := json.Unmarshal([]byte(line), &evt); err != nil {
			t.Fatalf("json.Unmarshal(%q): %v", line, err)
		}
		if evt.Phase == "plan" && evt.Event == "Punch" {
			gotPunchEvents++
		}
	}
	if gotPunchEvents < wantPunchEvents {
		t.Errorf("got %d Punch events, want at least %d surviving punches", gotPunchEvents, wantPunchEvents)
	}
}
