package csvcodec

import (
	"strings"
	"testing"

	"github.com/joistcore/punchplan/internal/common"
)

func sampleLayout() common.Layout {
	return common.Layout{
		BoltHoles: []common.Punch{
			{PositionMM: 30, Kind: common.BoltHole, Active: true},
			{PositionMM: 5170, Kind: common.BoltHole, Active: true},
		},
		Stubs: []common.Punch{
			{PositionMM: 131, Kind: common.CornerBrackets, Active: true},
			{PositionMM: 5069, Kind: common.CornerBrackets, Active: true},
		},
		LengthModMM:    4600,
		EndExclusionMM: 600,
	}
}

func TestEncodeBeginsWithExpectedPrefixFields(t *testing.T) {
	out := Encode(sampleLayout(), Meta{PartCode: "B_5200_J600_S1200", Qty: 2, Variant: common.BearerSingle})

	wantPrefix := "csvCOMPONENT,B1-1,B_5200_J600_S1200,BEARER,NORMAL,2,5200,0,0,5200,0,50"
	if !strings.HasPrefix(out, wantPrefix) {
		t.Fatalf("Encode() = %q, want prefix %q", out, wantPrefix)
	}
}

func TestEncodeComponentCodeFromPartCode(t *testing.T) {
	out := Encode(common.Layout{}, Meta{PartCode: "J_6000", Qty: 1, Variant: common.JoistSingle})
	if !strings.HasPrefix(out, "csvCOMPONENT,J1-1,J_6000,JOIST,NORMAL") {
		t.Fatalf("Encode() = %q, want J1-1 component code", out)
	}
}

func TestEncodeHasNoTrailingNewline(t *testing.T) {
	out := Encode(sampleLayout(), Meta{PartCode: "B1", Qty: 1, Variant: common.BearerSingle})
	if strings.ContainsAny(out, "\n\r") {
		t.Errorf("Encode() output contains a newline: %q", out)
	}
}

// TestRoundTrip implements P5: parse(encode(layout)) reproduces the same
// ordered multiset of (kind, position) pairs, with CornerBrackets aliased
// to Service.
func TestRoundTrip(t *testing.T) {
	layout := sampleLayout()
	encoded := Encode(layout, Meta{PartCode: "B1", Qty: 1, Variant: common.BearerSingle})

	punches, meta, err := Parse(encoded)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if meta.PartCode != "B1" || meta.Qty != 1 {
		t.Errorf("meta = %+v", meta)
	}

	want := sortedActivePunches(layout)
	if len(punches) != len(want) {
		t.Fatalf("got %d punches, want %d", len(punches), len(want))
	}
	for i, p := range punches {
		wantKind := want[i].Kind
		if wantKind == common.CornerBrackets {
			wantKind = common.Service
		}
		if p.Kind != wantKind || p.PositionMM != want[i].PositionMM {
			t.Errorf("punch[%d] = %+v, want {%v %v}", i, p, want[i].PositionMM, wantKind)
		}
	}
}

func TestParseRejectsMissingPrefix(t *testing.T) {
	if _, _, err := Parse("not,a,valid,record"); err == nil {
		t.Fatal("expected error for missing csvCOMPONENT prefix")
	}
}

func TestFormatPositionTrailingZero(t *testing.T) {
	if got := formatPosition(30); got != "30" {
		t.Errorf("formatPosition(30) = %q, want %q", got, "30")
	}
	if got := formatPosition(479.5); got != "479.5" {
		t.Errorf("formatPosition(479.5) = %q, want %q", got, "479.5")
	}
}
