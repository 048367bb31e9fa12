// Package override implements the Manual Override Engine (C4): the
// Computed/Manual state machine that lets a host either recompute a
// Layout from a ProfileSpec or pin one down by hand (spec.md §4.4).
package override

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/debug"
	"github.com/joistcore/punchplan/internal/planner"
)

// Mode is the controller's tagged state (spec.md §9: "implement as an
// explicit tagged variant rather than a flag").
type Mode int

const (
	Computed Mode = iota
	Manual
)

func (m Mode) String() string {
	if m == Manual {
		return "Manual"
	}
	return "Computed"
}

// Transition records one state change for Controller.History.
type Transition struct {
	Event   string
	Mode    Mode
	Version uint64
	At      time.Time
}

const historyCapacity = 64

// Controller holds the single "current" Layout plus its update_version,
// guarded the way the teacher's FontCache guards concurrent access: an
// RWMutex for the state, atomics for the counters that callers poll
// without needing the full lock (spec.md §5: single-writer, many-reader).
type Controller struct {
	mu   sync.RWMutex
	mode Mode
	spec common.ProfileSpec
	cur  common.Layout

	version atomic.Uint64
	history []Transition

	log  *logrus.Logger
	sess *debug.Session
}

// NewController returns a Controller in Computed mode with update_version
// 0 and an empty Layout. log may be nil, in which case a disabled logger
// is used so callers never need a nil check.
func NewController(log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Controller{mode: Computed, log: log}
}

// WithSession attaches a debug session that records every state
// transition as an OverrideTransitionData event. sess may be nil to
// disable tracing (the default).
func (c *Controller) WithSession(sess *debug.Session) *Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sess = sess
	return c
}

// UpdateCalculations recomputes the Layout via the planner (C3). From
// either state it clears Manual mode, per spec.md §4.4's transition
// table.
func (c *Controller) UpdateCalculations(spec common.ProfileSpec) common.Layout {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.spec = spec
	c.cur = planner.PlanTraced(spec, c.sess)
	c.mode = Computed
	c.bumpLocked("update_calculations")

	c.log.WithFields(logrus.Fields{
		"variant": spec.Variant.String(),
		"length":  spec.LengthMM,
		"version": c.version.Load(),
	}).Debug("recomputed layout")

	return c.cur
}

// SetManualPunches partitions list by kind into the five Layout lists,
// sorts each ascending, enters (or stays in) Manual mode, and — if the
// active variant is a bearer — applies bolt-resync (spec.md §4.4).
func (c *Controller) SetManualPunches(list []common.Punch) common.Layout {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.cur
	next.BoltHoles = nil
	next.Dimples = nil
	next.WebTabs = nil
	next.ServiceHoles = nil
	next.Stubs = nil

	for _, p := range list {
		switch p.Kind {
		case common.BoltHole:
			next.BoltHoles = append(next.BoltHoles, p)
		case common.Dimple:
			next.Dimples = append(next.Dimples, p)
		case common.WebTab:
			next.WebTabs = append(next.WebTabs, p)
		case common.SmallServiceHole, common.MServiceHole, common.LargeServiceHole:
			next.ServiceHoles = append(next.ServiceHoles, p)
		case common.Service, common.CornerBrackets:
			next.Stubs = append(next.Stubs, p)
		}
	}
	common.SortPunches(next.BoltHoles)
	common.SortPunches(next.Dimples)
	common.SortPunches(next.WebTabs)
	common.SortPunches(next.ServiceHoles)
	common.SortPunches(next.Stubs)

	if c.spec.Variant.IsBearer() {
		next.BoltHoles = BoltResync(next, float64(c.spec.LengthMM))
	}

	c.cur = next
	c.mode = Manual
	c.bumpLocked("set_manual_punches")

	c.log.WithFields(logrus.Fields{
		"punches": len(list),
		"version": c.version.Load(),
	}).Debug("applied manual override")

	return c.cur
}

// ClearManualMode returns to Computed. It is a no-op from Computed; from
// Manual the current Layout is kept as-is until the next
// UpdateCalculations call repopulates it (spec.md §4.4).
func (c *Controller) ClearManualMode() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == Computed {
		return
	}
	c.mode = Computed
	c.bumpLocked("clear_manual_mode")
}

// GetCalculations returns the controller's current Layout.
func (c *Controller) GetCalculations() common.Layout {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cur
}

// GetUpdateVersion returns the monotonically increasing version counter
// (spec.md P9); safe to call without holding the state lock.
func (c *Controller) GetUpdateVersion() uint64 {
	return c.version.Load()
}

// Mode reports whether the controller is Computed or Manual.
func (c *Controller) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// History returns a copy of the bounded transition ring, most recent
// last. This is an observability aid, not part of the core state
// machine: the spec only requires the version counter.
func (c *Controller) History() []Transition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Transition, len(c.history))
	copy(out, c.history)
	return out
}

// bumpLocked increments the version counter and appends to history.
// Callers must hold c.mu.
func (c *Controller) bumpLocked(event string) {
	v := c.version.Add(1)
	c.history = append(c.history, Transition{Event: event, Mode: c.mode, Version: v, At: time.Now()})
	if len(c.history) > historyCapacity {
		c.history = c.history[len(c.history)-historyCapacity:]
	}
	c.sess.Emit("override", "Transition", debug.OverrideTransitionData{
		Event: event, Mode: c.mode.String(), Version: v,
	})
}

// BoltResync implements spec.md §4.4's bearer bolt-resync step: keep only
// end bolts (within 50 mm of either end), then re-pair a bolt over every
// active web tab using the same alternating ±29.5 offset as the planner.
func BoltResync(layout common.Layout, length float64) []common.Punch {
	var kept []common.Punch
	for _, p := range layout.BoltHoles {
		if p.PositionMM <= common.MinClearance || p.PositionMM >= length-common.MinClearance {
			kept = append(kept, p)
		}
	}

	for i, w := range layout.WebTabs {
		if !w.Active {
			continue
		}
		offset := common.BoltOffsetEven
		if i%2 == 1 {
			offset = common.BoltOffsetOdd
		}
		pos := common.RoundHalf(w.PositionMM + offset)
		if pos <= common.MinClearance || pos >= length-common.MinClearance {
			continue
		}
		kept = append(kept, common.Punch{PositionMM: pos, Kind: common.BoltHole, Active: true})
	}

	common.SortPunches(kept)
	return kept
}
