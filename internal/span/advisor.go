// Package span implements the C2 span-table advisor: a pure lookup from
// (length, kPa rating) to a recommended profile variant and joist spacing.
package span

import (
	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
)

// row is one step of the advisory table, evaluated top-to-bottom; the
// first row whose MaxLength is not exceeded wins (spec.md §4.2).
type row struct {
	MaxLength float64
	Variant   common.ProfileVariant
	Spacing   int
}

// table25 is the 2.5 kPa advisory table. Rows 4 and 5 are deliberately
// non-monotonic: the Single-300 row (limit 9550) is listed before the
// Box-600 row (limit 9100), so lengths in (9100, 9550] match Single first.
// This ordering is part of the manufacturing contract (spec.md §4.2, §9)
// and is reproduced exactly rather than "corrected".
var table25 = []row{
	{6800, common.JoistSingle, 600},
	{7600, common.JoistSingle, 500},
	{8600, common.JoistSingle, 400},
	{9550, common.JoistSingle, 300},
	{9100, common.JoistBox, 600},
	{9750, common.JoistBox, 500},
	{10600, common.JoistBox, 400},
	{11750, common.JoistBox, 300},
}

// table50 is the 5.0 kPa advisory table.
var table50 = []row{
	{4500, common.JoistSingle, 600},
	{5100, common.JoistSingle, 500},
	{5850, common.JoistSingle, 400},
	{7000, common.JoistSingle, 300},
	{7700, common.JoistBox, 500},
	{8350, common.JoistBox, 400},
	{9300, common.JoistBox, 300},
}

// Advice is the result of Advise.
type Advice struct {
	Variant      common.ProfileVariant // JoistSingle or JoistBox
	JoistSpacing int                   // one of 600, 500, 400, 300
	ExceedsLimit bool
}

// Advise maps (length, kPa) to a recommended variant and joist spacing
// using the ordered step table in spec.md §4.2. Lengths beyond the last
// row fall back to the last (Box, 300) row with ExceedsLimit set.
//
// Bearers use the same table with JoistLengthMM as the length argument;
// callers apply only the JoistSpacing field and ignore Variant for bearers
// (spec.md §4.2).
func Advise(lengthMM float64, kpa float64) Advice {
	return AdviseTraced(lengthMM, kpa, nil)
}

// AdviseTraced is Advise with an optional debug session; sess may be nil.
func AdviseTraced(lengthMM float64, kpa float64, sess *debug.Session) Advice {
	table := table25
	if kpa == 5.0 {
		table = table50
	}

	for _, r := range table {
		if lengthMM <= r.MaxLength {
			adv := Advice{Variant: r.Variant, JoistSpacing: r.Spacing}
			sess.Emit("advise", "Lookup", debug.AdviseLookupData{
				LengthMM: lengthMM, KPaRating: kpa,
				Variant: adv.Variant.String(), JoistSpacing: adv.JoistSpacing,
				ExceedsLimit: adv.ExceedsLimit,
			})
			return adv
		}
	}

	last := table[len(table)-1]
	adv := Advice{Variant: last.Variant, JoistSpacing: last.Spacing, ExceedsLimit: true}
	sess.Emit("advise", "Lookup", debug.AdviseLookupData{
		LengthMM: lengthMM, KPaRating: kpa,
		Variant: adv.Variant.String(), JoistSpacing: adv.JoistSpacing,
		ExceedsLimit: adv.ExceedsLimit,
	})
	return adv
}
