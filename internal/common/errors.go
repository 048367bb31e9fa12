package common

import (
	"errors"
	"fmt"
)

// Sentinel errors for the punch-planning core (spec.md §7). ClashDiagnostic
// is never an error value — clash findings are always returned as data.
var (
	// ErrInvalidProfileSpec is returned when a ProfileSpec field is out of
	// its documented range. Wrapped with field detail by InvalidFieldError.
	ErrInvalidProfileSpec = errors.New("invalid profile spec")

	// ErrUnsupportedHoleType names a HoleType value outside the closed set.
	// It is non-fatal: Plan never returns it, but reports it as an ErrorData
	// event on the debug session and plans with the legacy diameter.
	ErrUnsupportedHoleType = errors.New("unsupported hole type")
)

// InvalidFieldError names the offending ProfileSpec field and the reason it
// failed validation. It wraps ErrInvalidProfileSpec so callers can use
// errors.Is(err, common.ErrInvalidProfileSpec).
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid profile spec: field %q: %s", e.Field, e.Reason)
}

func (e *InvalidFieldError) Unwrap() error {
	return ErrInvalidProfileSpec
}

// Validate checks every numeric range documented in spec.md §3. It returns
// the first violation found; no partial state change occurs in callers
// that validate before mutating (spec.md §7).
func (s ProfileSpec) Validate() error {
	switch {
	case s.LengthMM < 1000 || s.LengthMM > 15000:
		return &InvalidFieldError{"LengthMM", "must be in range 1000..15000"}
	case !validProfileHeight(s.ProfileHeightMM):
		return &InvalidFieldError{"ProfileHeightMM", "must be one of 200, 250, 300, 350"}
	case s.JoistSpacingMM < 400 || s.JoistSpacingMM > 1200:
		return &InvalidFieldError{"JoistSpacingMM", "must be in range 400..1200"}
	case s.StubSpacingMM < 600 || s.StubSpacingMM > 2400:
		return &InvalidFieldError{"StubSpacingMM", "must be in range 600..2400"}
	case s.HoleSpacingMM < 400 || s.HoleSpacingMM > 1000:
		return &InvalidFieldError{"HoleSpacingMM", "must be in range 400..1000"}
	case s.JoistLengthMM != nil && (*s.JoistLengthMM < 1000 || *s.JoistLengthMM > 15000):
		return &InvalidFieldError{"JoistLengthMM", "must be in range 1000..15000"}
	case s.KPaRating != nil && *s.KPaRating != 2.5 && *s.KPaRating != 5.0:
		return &InvalidFieldError{"KPaRating", "must be 2.5 or 5.0"}
	}
	return nil
}

func validProfileHeight(h int) bool {
	switch h {
	case 200, 250, 300, 350:
		return true
	default:
		return false
	}
}
