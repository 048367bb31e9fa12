package debug

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Sink is the interface for debug output destinations.
type Sink interface {
	Write(event Event) error
	Flush() error
	Close() error
}

// JSONSink writes events in JSON Lines format.
type JSONSink struct {
	w       *bufio.Writer
	encoder *json.Encoder
}

// NewJSONSink creates a new JSON Lines sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:       bw,
		encoder: json.NewEncoder(bw),
	}
}

// Write encodes and writes an event as a JSON line.
func (s *JSONSink) Write(event Event) error {
	return s.encoder.Encode(event)
}

// Flush writes any buffered data to the underlying writer.
func (s *JSONSink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *JSONSink) Close() error {
	return s.Flush()
}

// PrettySink writes events in human-readable format.
type PrettySink struct {
	w *bufio.Writer
}

// NewPrettySink creates a new pretty-format sink writing to w.
func NewPrettySink(w io.Writer) *PrettySink {
	return &PrettySink{
		w: bufio.NewWriter(w),
	}
}

// Write formats and writes an event in human-readable format.
func (s *PrettySink) Write(event Event) error {
	// Format: [timestamp] [phase/event]
	fmt.Fprintf(s.w, "[%s] [%s/%s] session=%s\n", event.Timestamp, event.Phase, event.Event, event.SessionID)

	// Pretty print data based on type
	switch d := event.Data.(type) {
	case PlanStartData:
		s.writePlanStart(d)
	case PlanDispatchData:
		fmt.Fprintf(s.w, "  branch: %s\n", d.Branch)
	case PlanPunchData:
		s.writePlanPunch(d)
	case PlanEndData:
		s.writePlanEnd(d)
	case AdviseLookupData:
		s.writeAdviseLookup(d)
	case ClashRuleData:
		fmt.Fprintf(s.w, "  rule: %s, diagnostics: %d\n", d.Rule, d.Diagnostics)
	case OverrideTransitionData:
		fmt.Fprintf(s.w, "  event: %s, mode: %s, version: %d\n", d.Event, d.Mode, d.Version)
	case ErrorData:
		fmt.Fprintf(s.w, "  error: %s: %s\n", d.Type, d.Message)
	case map[string]interface{}:
		s.writeMap(d)
	case map[string]int64:
		s.writeMapInt64(d)
	default:
		fmt.Fprintf(s.w, "  data: %+v\n", d)
	}

	return nil
}

func (s *PrettySink) writePlanStart(d PlanStartData) {
	fmt.Fprintf(s.w, "  variant: %s, length_mm: %d\n", d.Variant, d.LengthMM)
	fmt.Fprintf(s.w, "  screens_enabled: %t, joist_box: %t\n", d.Screens, d.JoistBox)
}

func (s *PrettySink) writePlanPunch(d PlanPunchData) {
	fmt.Fprintf(s.w, "  kind: %s, position_mm: %.1f", d.Kind, d.PositionMM)
	if d.Dropped {
		fmt.Fprintf(s.w, " (dropped: out of range)")
	}
	fmt.Fprintln(s.w)
}

func (s *PrettySink) writePlanEnd(d PlanEndData) {
	fmt.Fprintf(s.w, "  bolt_holes: %d, dimples: %d, web_tabs: %d, service_holes: %d, stubs: %d\n",
		d.BoltHoles, d.Dimples, d.WebTabs, d.ServiceHoles, d.Stubs)
	fmt.Fprintf(s.w, "  elapsed_ms: %d\n", d.ElapsedMs)
}

func (s *PrettySink) writeAdviseLookup(d AdviseLookupData) {
	fmt.Fprintf(s.w, "  length_mm: %.1f, kpa: %.1f\n", d.LengthMM, d.KPaRating)
	fmt.Fprintf(s.w, "  variant: %s, joist_spacing: %d, exceeds_limit: %t\n",
		d.Variant, d.JoistSpacing, d.ExceedsLimit)
}

func (s *PrettySink) writeMap(d map[string]interface{}) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %v\n", k, v)
	}
}

func (s *PrettySink) writeMapInt64(d map[string]int64) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %d\n", k, v)
	}
}

// Flush writes any buffered data to the underlying writer.
func (s *PrettySink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *PrettySink) Close() error {
	return s.Flush()
}
