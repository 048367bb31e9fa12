// Package csvcodec implements the CSV Encoder (C6) and its inverse, a
// decoder supplemented for round-trip testing (spec.md §4.6, §8 P5).
package csvcodec

import (
	"strconv"
	"strings"

	"github.com/joistcore/punchplan/internal/common"
)

// Meta carries the encoder fields that don't come from the Layout itself.
type Meta struct {
	PartCode string
	Qty      int
	Variant  common.ProfileVariant
}

const (
	header         = "csvCOMPONENT"
	fallbackLength = 5200.0
)

// Encode renders layout and meta into the single-line CSV record of
// spec.md §4.6.
func Encode(layout common.Layout, meta Meta) string {
	componentCode := "J1-1"
	if strings.HasPrefix(meta.PartCode, "B") {
		componentCode = "B1-1"
	}

	variantToken := "JOIST"
	if meta.Variant.IsBearer() {
		variantToken = "BEARER"
	}

	length := layout.LengthModMM + layout.EndExclusionMM
	if length == 0 {
		length = fallbackLength
	}
	lengthStr := formatPosition(length)

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte(',')
	b.WriteString(componentCode)
	b.WriteByte(',')
	b.WriteString(meta.PartCode)
	b.WriteByte(',')
	b.WriteString(variantToken)
	b.WriteString(",NORMAL,")
	b.WriteString(strconv.Itoa(meta.Qty))
	b.WriteByte(',')
	b.WriteString(lengthStr)
	b.WriteString(",0,0,")
	b.WriteString(lengthStr)
	b.WriteString(",0,50")

	for _, p := range sortedActivePunches(layout) {
		b.WriteByte(',')
		b.WriteString(common.PunchSpecFor(p.Kind).Station)
		b.WriteByte(',')
		b.WriteString(formatPosition(p.PositionMM))
	}

	return b.String()
}

// sortedActivePunches merges the five lists' active punches and sorts by
// position, keeping ties in the flange-then-web insertion order the
// source lists are already built in (spec.md §4.6).
func sortedActivePunches(layout common.Layout) []common.Punch {
	punches := layout.ActivePunches()
	common.SortPunches(punches)
	return punches
}

// formatPosition renders a half-mm-quantised position with up to one
// decimal place, trailing ".0" permitted (spec.md §6.3).
func formatPosition(mm float64) string {
	r := common.RoundHalf(mm)
	if r == float64(int64(r)) {
		return strconv.FormatInt(int64(r), 10)
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}
