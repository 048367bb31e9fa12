// Package punchplan computes NC punch programs for roll-formed steel
// joists and bearers.
//
// A typical call sequence is: [Advise] a variant and joist spacing from a
// target length and loading, [Plan] a full [Layout] from a [ProfileSpec],
// run [DetectClashes] over the result, and [Encode] it to the wire CSV
// format consumed by the punch press. A [Controller] wraps Plan with the
// Computed/Manual override state machine (spec.md §4.4) for hosts that
// let an operator hand-edit punch positions.
//
// # Concurrency
//
// Plan, Advise, DetectClashes and Encode are pure functions: they take no
// lock and are safe to call concurrently from any number of goroutines.
// Controller is internally synchronised (an RWMutex guards its state,
// atomics guard its version counter) and safe for concurrent use by
// multiple goroutines, matching the single-writer, many-reader access
// pattern described in spec.md §5.
package punchplan

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/joistcore/punchplan/internal/clash"
	"github.com/joistcore/punchplan/internal/common"
	"github.com/joistcore/punchplan/internal/csvcodec"
	"github.com/joistcore/punchplan/internal/debug"
	"github.com/joistcore/punchplan/internal/override"
	"github.com/joistcore/punchplan/internal/planner"
	"github.com/joistcore/punchplan/internal/span"
)

// Re-exported domain types, so callers never need to import the internal
// packages directly.
type (
	// ProfileVariant is the member family being planned.
	ProfileVariant = common.ProfileVariant
	// HoleType selects the service-hole style (spec.md §3).
	HoleType = common.HoleType
	// PunchKind identifies a station in the C1 constants registry.
	PunchKind = common.PunchKind
	// PunchStations is a closed kind->enabled mapping (spec.md §9).
	PunchStations = common.PunchStations
	// ProfileSpec is the full input to the Layout Planner.
	ProfileSpec = common.ProfileSpec
	// Punch is a single planned position on the member.
	Punch = common.Punch
	// Layout is the full planner output.
	Layout = common.Layout
	// Advice is the result of Advise.
	Advice = span.Advice
	// Diagnostic is one clash-detector finding.
	Diagnostic = clash.Diagnostic
	// Diagnostics is the full result of DetectClashes.
	Diagnostics = clash.Diagnostics
	// Severity classifies a Diagnostic as Warning or Error.
	Severity = clash.Severity
	// Meta carries the CSV encoder fields not derived from a Layout.
	Meta = csvcodec.Meta
	// Controller is the Manual Override Engine (C4).
	Controller = override.Controller
	// Mode is a Controller's Computed/Manual state.
	Mode = override.Mode
	// Session is a debug trace session; see EnableDebug.
	Session = debug.Session
	// Sink is a debug event output destination.
	Sink = debug.Sink
	// Logger is the logging type accepted by NewController.
	Logger = logrus.Logger
)

// Re-exported sentinel errors (spec.md §7); use errors.Is/As as usual.
var (
	ErrInvalidProfileSpec  = common.ErrInvalidProfileSpec
	ErrUnsupportedHoleType = common.ErrUnsupportedHoleType
)

// InvalidFieldError names the offending ProfileSpec field and reason.
type InvalidFieldError = common.InvalidFieldError

// Re-exported constants and variant/kind values.
const (
	JoistSingle  = common.JoistSingle
	JoistBox     = common.JoistBox
	BearerSingle = common.BearerSingle
	BearerBox    = common.BearerBox

	HoleNone        = common.HoleNone
	HoleR50         = common.HoleR50
	HoleR115        = common.HoleR115
	HoleR200        = common.HoleR200
	HoleOval200x400 = common.HoleOval200x400

	BoltHole         = common.BoltHole
	Dimple           = common.Dimple
	WebTab           = common.WebTab
	Service          = common.Service
	SmallServiceHole = common.SmallServiceHole
	MServiceHole     = common.MServiceHole
	LargeServiceHole = common.LargeServiceHole
	CornerBrackets   = common.CornerBrackets

	Computed = override.Computed
	Manual   = override.Manual

	Warning = clash.Warning
	Error   = clash.Error
)

// Advise maps (length, kPa rating) to a recommended variant and joist
// spacing using the ordered step table of spec.md §4.2.
func Advise(lengthMM float64, kpa float64) Advice {
	return span.Advise(lengthMM, kpa)
}

// Plan computes the full Layout for spec (spec.md §4.3).
func Plan(spec ProfileSpec) Layout {
	return planner.Plan(spec)
}

// DetectClashes runs the ten ordered clash rules over layout and spec
// (spec.md §4.5).
func DetectClashes(layout Layout, spec ProfileSpec) Diagnostics {
	return clash.DetectClashes(layout, spec)
}

// Encode renders layout and meta into the single-line CSV record
// consumed by the punch press (spec.md §4.6).
func Encode(layout Layout, meta Meta) string {
	return csvcodec.Encode(layout, meta)
}

// ParseCSV decodes a record produced by Encode back into its punch list
// and Meta. It is a supplemented capability used for round-trip testing
// (spec.md §8 P5); CornerBrackets is unrecoverable and always decodes as
// Service.
func ParseCSV(record string) ([]Punch, Meta, error) {
	return csvcodec.Parse(record)
}

// NewController returns a Controller in Computed mode with update_version
// 0. log may be nil.
func NewController(log *Logger) *Controller {
	return override.NewController(log)
}

// BoltResync re-pairs a bearer's bolt holes over its active web tabs,
// keeping only end bolts otherwise (spec.md §4.4).
func BoltResync(layout Layout, length float64) []Punch {
	return override.BoltResync(layout, length)
}

// EnableDebug turns on structured tracing for Plan, Advise, DetectClashes
// and Controller. It should be called once at program startup; see also
// InitDebugFromEnv.
func EnableDebug(on bool) {
	debug.SetEnabled(on)
}

// InitDebugFromEnv enables debug tracing if PUNCHPLAN_DEBUG=1 is set.
func InitDebugFromEnv() {
	debug.InitFromEnv()
}

// NewDebugSession opens a new trace session writing events to sink, or
// returns nil if debug tracing is not enabled.
func NewDebugSession(sink Sink) *Session {
	return debug.NewSession(sink)
}

// NewJSONDebugSink returns a Sink that writes JSON Lines events to w.
func NewJSONDebugSink(w io.Writer) debug.Sink {
	return debug.NewJSONSink(w)
}

// NewPrettyDebugSink returns a Sink that writes human-readable events to w.
func NewPrettyDebugSink(w io.Writer) debug.Sink {
	return debug.NewPrettySink(w)
}

// PlanTraced is Plan with an optional debug session.
func PlanTraced(spec ProfileSpec, sess *Session) Layout {
	return planner.PlanTraced(spec, sess)
}

// AdviseTraced is Advise with an optional debug session.
func AdviseTraced(lengthMM, kpa float64, sess *Session) Advice {
	return span.AdviseTraced(lengthMM, kpa, sess)
}

// DetectClashesTraced is DetectClashes with an optional debug session.
func DetectClashesTraced(layout Layout, spec ProfileSpec, sess *Session) Diagnostics {
	return clash.DetectClashesTraced(layout, spec, sess)
}
