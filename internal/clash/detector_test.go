package clash

import (
	"testing"

	"github.com/joistcore/punchplan/internal/common"
)

// TestCanonicalLayoutHasNoClashes implements P10: a layout with only end
// bolts reports exactly zero diagnostics.
func TestCanonicalLayoutHasNoClashes(t *testing.T) {
	spec := common.ProfileSpec{Variant: common.BearerSingle, LengthMM: 5200, JoistSpacingMM: 600}
	layout := common.Layout{
		BoltHoles: []common.Punch{
			{PositionMM: 30, Kind: common.BoltHole, Active: true},
			{PositionMM: 5170, Kind: common.BoltHole, Active: true},
		},
	}

	d := DetectClashes(layout, spec)
	if len(d.Items) != 0 {
		t.Fatalf("expected zero diagnostics, got %+v", d.Items)
	}
}

func TestEdgeClearanceFlagsNearEndNonCanonicalBolt(t *testing.T) {
	spec := common.ProfileSpec{Variant: common.BearerSingle, LengthMM: 5200}
	layout := common.Layout{
		BoltHoles: []common.Punch{
			{PositionMM: 40, Kind: common.BoltHole, Active: true}, // not within 35 of end, below MinClearance(50)
		},
	}
	d := DetectClashes(layout, spec)
	if len(d.Items) == 0 {
		t.Fatal("expected an edge-clearance diagnostic")
	}
	if d.Items[0].Severity != Error {
		t.Errorf("expected Error severity, got %v", d.Items[0].Severity)
	}
}

func TestSpanLimitErrorOnJoistOverLimit(t *testing.T) {
	kpa := 5.0
	spec := common.ProfileSpec{Variant: common.JoistBox, LengthMM: 12000, KPaRating: &kpa}
	d := DetectClashes(common.Layout{}, spec)

	foundError := false
	for _, item := range d.Items {
		if item.Rule == "span_limit" && item.Severity == Error {
			foundError = true
		}
	}
	if !foundError {
		t.Fatalf("expected a span_limit Error, got %+v", d.Items)
	}
}

func TestSpanLimitWarningOnBearerJoistLengthOverLimit(t *testing.T) {
	kpa := 5.0
	joistLen := 12000
	spec := common.ProfileSpec{Variant: common.BearerSingle, LengthMM: 5200, JoistLengthMM: &joistLen, KPaRating: &kpa}
	d := DetectClashes(common.Layout{}, spec)

	foundWarning := false
	for _, item := range d.Items {
		if item.Rule == "span_limit" && item.Severity == Warning {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Fatalf("expected a span_limit Warning, got %+v", d.Items)
	}
}

func TestFacePlaneOverlapSeverityBySeparation(t *testing.T) {
	layout := common.Layout{
		WebTabs: []common.Punch{
			{PositionMM: 1000, Kind: common.WebTab, Active: true},
			{PositionMM: 1002, Kind: common.WebTab, Active: true}, // 2mm apart -> Error
		},
	}
	out := ruleFacePlaneOverlap(layout)
	if len(out) != 1 || out[0].Severity != Error {
		t.Fatalf("expected one Error diagnostic, got %+v", out)
	}
}

func TestBoltOverWebTabAlignmentMissingPair(t *testing.T) {
	spec := common.ProfileSpec{Variant: common.BearerSingle, LengthMM: 5200}
	layout := common.Layout{
		WebTabs: []common.Punch{
			{PositionMM: 600, Kind: common.WebTab, Active: true},
		},
		// no bolt near 600-29.5
	}
	out := ruleBoltOverWebTabAlignment(layout, spec)
	if len(out) != 1 {
		t.Fatalf("expected one alignment diagnostic, got %+v", out)
	}
}
