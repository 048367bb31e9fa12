package override

import (
	"bytes"
	"testing"

	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
)

func testSpec() common.ProfileSpec {
	stations := common.PunchStations{
		common.BoltHole:       true,
		common.Dimple:         true,
		common.WebTab:         true,
		common.Service:        true,
		common.CornerBrackets: true,
	}
	return common.ProfileSpec{
		Variant:        common.BearerSingle,
		LengthMM:       5200,
		JoistSpacingMM: 600,
		StubSpacingMM:  1200,
		HoleType:       common.HoleNone,
		HoleSpacingMM:  650,
		StubsEnabled:   true,
		PunchStations:  stations,
	}
}

func TestUpdateCalculationsBumpsVersion(t *testing.T) {
	c := NewController(nil)
	if c.GetUpdateVersion() != 0 {
		t.Fatalf("initial version = %d, want 0", c.GetUpdateVersion())
	}
	c.UpdateCalculations(testSpec())
	if c.GetUpdateVersion() != 1 {
		t.Fatalf("version after update = %d, want 1", c.GetUpdateVersion())
	}
	c.UpdateCalculations(testSpec())
	if c.GetUpdateVersion() != 2 {
		t.Fatalf("version after second update = %d, want 2", c.GetUpdateVersion())
	}
}

func TestSetManualPunchesEntersManualMode(t *testing.T) {
	c := NewController(nil)
	c.UpdateCalculations(testSpec())

	manual := []common.Punch{
		{PositionMM: 30, Kind: common.BoltHole, Active: true},
		{PositionMM: 100, Kind: common.Dimple, Active: true},
	}
	c.SetManualPunches(manual)

	if c.Mode() != Manual {
		t.Fatalf("mode = %v, want Manual", c.Mode())
	}
	layout := c.GetCalculations()
	if len(layout.Dimples) != 1 || layout.Dimples[0].PositionMM != 100 {
		t.Errorf("dimples = %+v, want [{100 ...}]", layout.Dimples)
	}
}

func TestUpdateCalculationsClearsManual(t *testing.T) {
	c := NewController(nil)
	c.UpdateCalculations(testSpec())
	c.SetManualPunches([]common.Punch{{PositionMM: 30, Kind: common.BoltHole, Active: true}})
	if c.Mode() != Manual {
		t.Fatal("expected Manual after SetManualPunches")
	}
	c.UpdateCalculations(testSpec())
	if c.Mode() != Computed {
		t.Fatal("expected Computed after UpdateCalculations")
	}
}

func TestClearManualModeIsNoOpFromComputed(t *testing.T) {
	c := NewController(nil)
	c.UpdateCalculations(testSpec())
	before := c.GetUpdateVersion()
	c.ClearManualMode()
	if c.GetUpdateVersion() != before {
		t.Errorf("version changed on no-op clear: %d -> %d", before, c.GetUpdateVersion())
	}
}

func TestWithSessionRecordsTransitions(t *testing.T) {
	debug.SetEnabled(true)
	defer debug.SetEnabled(false)

	var buf bytes.Buffer
	sess := debug.NewSession(debug.NewJSONSink(&buf))

	c := NewController(nil).WithSession(sess)
	c.UpdateCalculations(testSpec())
	c.SetManualPunches([]common.Punch{{PositionMM: 30, Kind: common.BoltHole, Active: true}})
	if err := sess.Close(); err != nil {
		t.Fatalf("sess.Close() = %v", err)
	}

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("update_calculations")) {
		t.Errorf("expected update_calculations transition in trace, got %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("set_manual_punches")) {
		t.Errorf("expected set_manual_punches transition in trace, got %q", out)
	}
}

func TestBoltResyncKeepsOnlyEndBoltsAndWebTabPairs(t *testing.T) {
	length := 5200.0
	layout := common.Layout{
		BoltHoles: []common.Punch{
			{PositionMM: 30, Kind: common.BoltHole, Active: true},
			{PositionMM: 2600, Kind: common.BoltHole, Active: true}, // stray interior bolt, not over a tab
			{PositionMM: length - 30, Kind: common.BoltHole, Active: true},
		},
		WebTabs: []common.Punch{
			{PositionMM: 600, Kind: common.WebTab, Active: true},
			{PositionMM: 1200, Kind: common.WebTab, Active: true},
		},
	}

	resynced := BoltResync(layout, length)

	wantPositions := map[float64]bool{
		30:          true,
		length - 30: true,
		600 - 29.5:  true,
		1200 + 29.5: true,
	}
	if len(resynced) != len(wantPositions) {
		t.Fatalf("got %d bolts, want %d: %+v", len(resynced), len(wantPositions), resynced)
	}
	for _, p := range resynced {
		if !wantPositions[p.PositionMM] {
			t.Errorf("unexpected bolt at %v", p.PositionMM)
		}
	}
}

func TestBoltResyncIdempotent(t *testing.T) {
	length := 5200.0
	layout := common.Layout{
		BoltHoles: []common.Punch{
			{PositionMM: 30, Kind: common.BoltHole, Active: true},
			{PositionMM: length - 30, Kind: common.BoltHole, Active: true},
		},
		WebTabs: []common.Punch{
			{PositionMM: 600, Kind: common.WebTab, Active: true},
			{PositionMM: 1200, Kind: common.WebTab, Active: true},
		},
	}

	once := BoltResync(layout, length)
	layout.BoltHoles = once
	twice := BoltResync(layout, length)

	if len(once) != len(twice) {
		t.Fatalf("resync not idempotent: %d bolts then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("bolt[%d] changed: %+v -> %+v", i, once[i], twice[i])
		}
	}
}
