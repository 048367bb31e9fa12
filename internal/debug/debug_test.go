package debug

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSessionNilWhenDisabled(t *testing.T) {
	SetEnabled(false)
	s := NewSession(NewJSONSink(&bytes.Buffer{}))
	if s != nil {
		t.Fatal("expected nil session when debug disabled")
	}
	// Emit/Close on a nil session must be safe no-ops.
	s.Emit("plan", "Start", PlanStartData{})
	if err := s.Close(); err != nil {
		t.Errorf("Close on nil session returned %v, want nil", err)
	}
}

func TestSessionEmitsJSONLines(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	var buf bytes.Buffer
	s := NewSession(NewJSONSink(&buf))
	if s == nil {
		t.Fatal("expected non-nil session when debug enabled")
	}
	if s.SessionID() == "" {
		t.Error("expected a non-empty session ID")
	}

	s.Emit("plan", "Dispatch", PlanDispatchData{Branch: "bearer_normal"})
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 { // session start, our event, session end
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	var evt Event
	if err := json.Unmarshal([]byte(lines[1]), &evt); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if evt.Phase != "plan" || evt.Event != "Dispatch" {
		t.Errorf("event = %+v, want phase=plan event=Dispatch", evt)
	}
}

func TestPrettySinkDoesNotError(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	var buf bytes.Buffer
	s := NewSession(NewPrettySink(&buf))
	s.Emit("clash", "Rule", ClashRuleData{Rule: "edge_clearance", Diagnostics: 2})
	s.Emit("override", "Transition", OverrideTransitionData{Event: "update_calculations", Mode: "Computed", Version: 1})
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected pretty sink to write something")
	}
}

func TestInitFromEnvRespectsVariable(t *testing.T) {
	SetEnabled(false)
	t.Setenv("PUNCHPLAN_DEBUG", "1")
	InitFromEnv()
	if !Enabled() {
		t.Error("expected Enabled() to be true after InitFromEnv with PUNCHPLAN_DEBUG=1")
	}
	SetEnabled(false)
}
