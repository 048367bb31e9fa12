// Package debug provides structured tracing for the planner, advisor,
// override and clash-detector operations.
//
// The debug system follows these principles:
//   - Single switch: PUNCHPLAN_DEBUG=1 or --debug enables everything
//   - Zero overhead: no allocation or I/O when disabled
//   - Session scoped: each operation gets a unique session ID for
//     concurrent safety
//   - Machine parsable: JSON Lines by default, pretty format optional
package debug

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var enabled uint32

// SetEnabled configures debug mode globally. This should be called once
// at program startup.
func SetEnabled(on bool) {
	if on {
		atomic.StoreUint32(&enabled, 1)
	} else {
		atomic.StoreUint32(&enabled, 0)
	}
}

// Enabled returns true if debug mode is active.
func Enabled() bool {
	return atomic.LoadUint32(&enabled) == 1
}

// InitFromEnv initialises debug settings from environment variables.
// Only PUNCHPLAN_DEBUG=1 is recognised: it enables debug mode. The output
// format is not read from the environment; it follows the Sink passed to
// NewSession.
func InitFromEnv() {
	if os.Getenv("PUNCHPLAN_DEBUG") == "1" {
		SetEnabled(true)
	}
}

// Session represents a debug session for a single plan/advise/clash
// operation. Sessions are safe for concurrent use within a single
// operation but should not be shared across concurrent operations.
type Session struct {
	sessionID string
	sink      Sink
	startTime time.Time
}

// NewSession creates a new debug session with the provided sink. Returns
// nil if debug mode is not enabled, so callers can unconditionally defer
// s.Close() and call s.Emit without a nil check slowing the hot path.
func NewSession(sink Sink) *Session {
	if !Enabled() || sink == nil {
		return nil
	}

	s := &Session{
		sessionID: uuid.NewString(),
		sink:      sink,
		startTime: time.Now(),
	}
	s.Emit("session", "Start", map[string]interface{}{"version": "1.0"})
	return s
}

// SessionID returns the unique identifier for this session.
func (s *Session) SessionID() string {
	if s == nil {
		return ""
	}
	return s.sessionID
}

// Emit sends an event to the sink. This is a no-op if the session is nil
// (the fast path for disabled debug).
func (s *Session) Emit(phase, event string, data interface{}) {
	if s == nil {
		return
	}
	evt := Event{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		SessionID: s.sessionID,
		Phase:     phase,
		Event:     event,
		Data:      data,
	}
	//nolint:errcheck // debug sink errors are non-critical
	s.sink.Write(evt)
}

// Close flushes and closes the debug session.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	elapsed := time.Since(s.startTime).Milliseconds()
	s.Emit("session", "End", map[string]int64{"elapsed_ms": elapsed})
	return s.sink.Close()
}

// Event is the base envelope for all debug events.
type Event struct {
	Timestamp string      `json:"ts"`
	SessionID string      `json:"session_id"`
	Phase     string      `json:"phase"`
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
}
