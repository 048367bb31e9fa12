package planner

import (
	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
)

// builder accumulates punches into a Layout while enforcing invariants I1
// and I3 by construction: out-of-range positions are dropped silently
// (spec.md §7, "invariant-level invalidity is prevented by construction")
// and every position is quantised to the nearest half millimetre.
type builder struct {
	layout   common.Layout
	lengthMM float64
	sess     *debug.Session
}

func newBuilder(scalars common.Layout, lengthMM float64, sess *debug.Session) *builder {
	b := &builder{layout: scalars, lengthMM: lengthMM, sess: sess}
	return b
}

func (b *builder) inRange(pos float64) bool {
	return pos >= 0 && pos <= b.lengthMM
}

// trace emits a PlanPunchData event for every candidate position a branch
// function proposes, before invariant-level range dropping decides whether
// it survives into the Layout. No-op when b.sess is nil.
func (b *builder) trace(kind common.PunchKind, pos float64, dropped bool) {
	b.sess.Emit("plan", "Punch", debug.PlanPunchData{
		Kind:       kind.String(),
		PositionMM: pos,
		Dropped:    dropped,
	})
}

func (b *builder) addBolt(pos float64) {
	dropped := !b.inRange(pos)
	b.trace(common.BoltHole, pos, dropped)
	if dropped {
		return
	}
	b.layout.BoltHoles = append(b.layout.BoltHoles, common.Punch{
		PositionMM: common.RoundHalf(pos), Kind: common.BoltHole, Active: true,
	})
}

func (b *builder) addDimple(pos float64) {
	dropped := !b.inRange(pos)
	b.trace(common.Dimple, pos, dropped)
	if dropped {
		return
	}
	b.layout.Dimples = append(b.layout.Dimples, common.Punch{
		PositionMM: common.RoundHalf(pos), Kind: common.Dimple, Active: true,
	})
}

func (b *builder) addWebTab(pos float64) {
	dropped := !b.inRange(pos)
	b.trace(common.WebTab, pos, dropped)
	if dropped {
		return
	}
	b.layout.WebTabs = append(b.layout.WebTabs, common.Punch{
		PositionMM: common.RoundHalf(pos), Kind: common.WebTab, Active: true,
	})
}

func (b *builder) addServiceHole(pos float64, kind common.PunchKind) {
	dropped := !b.inRange(pos)
	b.trace(kind, pos, dropped)
	if dropped {
		return
	}
	b.layout.ServiceHoles = append(b.layout.ServiceHoles, common.Punch{
		PositionMM: common.RoundHalf(pos), Kind: kind, Active: true,
	})
}

func (b *builder) addStub(pos float64, kind common.PunchKind) {
	dropped := !b.inRange(pos)
	b.trace(kind, pos, dropped)
	if dropped {
		return
	}
	b.layout.Stubs = append(b.layout.Stubs, common.Punch{
		PositionMM: common.RoundHalf(pos), Kind: kind, Active: true,
	})
}

// nearAny reports whether pos lies within tol of any existing punch in
// list, used by the bolt-over-web-tab pairing step to avoid duplicate
// bolts at the member ends (spec.md §4.3.1 step 5).
func nearAny(list []common.Punch, pos, tol float64) bool {
	for _, p := range list {
		d := p.PositionMM - pos
		if d < 0 {
			d = -d
		}
		if d <= tol {
			return true
		}
	}
	return false
}

// finalize sorts every list ascending by position (invariant I2) and
// returns the completed Layout.
func (b *builder) finalize() common.Layout {
	common.SortPunches(b.layout.BoltHoles)
	common.SortPunches(b.layout.Dimples)
	common.SortPunches(b.layout.WebTabs)
	common.SortPunches(b.layout.ServiceHoles)
	common.SortPunches(b.layout.Stubs)
	return b.layout
}
