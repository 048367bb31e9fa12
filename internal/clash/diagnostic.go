// Package clash implements the Clash Detector (C5): a fixed, ordered set
// of geometric and logical rules run over a planned Layout (spec.md §4.5).
package clash

import (
	"github.com/google/uuid"

	"github.com/joistcore/punchplan/internal/common"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "Error"
	}
	return "Warning"
}

// Diagnostic is a single clash-detector finding (spec.md §4.5).
type Diagnostic struct {
	ID       string
	Rule     string
	Position float64
	HasB     bool
	ElementA common.Punch
	ElementB common.Punch
	Message  string
	Severity Severity
}

func newDiagnostic(rule string, a common.Punch, sev Severity, msg string) Diagnostic {
	return Diagnostic{
		ID:       uuid.NewString(),
		Rule:     rule,
		Position: a.PositionMM,
		ElementA: a,
		Message:  msg,
		Severity: sev,
	}
}

func newPairDiagnostic(rule string, a, b common.Punch, sev Severity, msg string) Diagnostic {
	d := newDiagnostic(rule, a, sev, msg)
	d.ElementB = b
	d.HasB = true
	return d
}

// Diagnostics is the full output of DetectClashes: the ordered diagnostic
// list plus tallies by severity.
type Diagnostics struct {
	Items        []Diagnostic
	ErrorCount   int
	WarningCount int
}

func (d *Diagnostics) add(items ...Diagnostic) {
	for _, it := range items {
		d.Items = append(d.Items, it)
		switch it.Severity {
		case Error:
			d.ErrorCount++
		default:
			d.WarningCount++
		}
	}
}
