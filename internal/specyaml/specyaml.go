// Package specyaml converts the human-authored YAML profile fixtures used
// by cmd/punchplan and cmd/gen-goldens into common.ProfileSpec, mapping
// its enum fields to and from lowercase snake_case tokens.
package specyaml

import (
	"fmt"

	"github.com/joistcore/punchplan/internal/common"
)

// Spec is the on-disk shape of a profile fixture.
type Spec struct {
	Variant         string   `yaml:"variant"`
	LengthMM        int      `yaml:"length_mm"`
	ProfileHeightMM int      `yaml:"profile_height_mm"`
	JoistLengthMM   *int     `yaml:"joist_length_mm"`
	JoistSpacingMM  int      `yaml:"joist_spacing_mm"`
	StubSpacingMM   int      `yaml:"stub_spacing_mm"`
	StubPositions   []int    `yaml:"stub_positions"`
	StubsEnabled    bool     `yaml:"stubs_enabled"`
	HoleType        string   `yaml:"hole_type"`
	HoleSpacingMM   int      `yaml:"hole_spacing_mm"`
	Stations        []string `yaml:"punch_stations"`
	EndBoxJoist     bool     `yaml:"end_box_joist"`
	ScreensEnabled  bool     `yaml:"screens_enabled"`
	JoistBox        bool     `yaml:"joist_box"`
	KPaRating       *float64 `yaml:"kpa_rating"`
}

// ToProfileSpec converts s into a common.ProfileSpec, resolving its
// string-keyed variant/hole-type/station fields against the closed sets
// spec.md §3 defines.
func (s Spec) ToProfileSpec() (common.ProfileSpec, error) {
	variant, err := parseVariant(s.Variant)
	if err != nil {
		return common.ProfileSpec{}, err
	}
	holeType, err := parseHoleType(s.HoleType)
	if err != nil {
		return common.ProfileSpec{}, err
	}
	stations, err := parseStations(s.Stations)
	if err != nil {
		return common.ProfileSpec{}, err
	}

	return common.ProfileSpec{
		Variant:         variant,
		LengthMM:        s.LengthMM,
		ProfileHeightMM: s.ProfileHeightMM,
		JoistLengthMM:   s.JoistLengthMM,
		JoistSpacingMM:  s.JoistSpacingMM,
		StubSpacingMM:   s.StubSpacingMM,
		StubPositions:   s.StubPositions,
		StubsEnabled:    s.StubsEnabled,
		HoleType:        holeType,
		HoleSpacingMM:   s.HoleSpacingMM,
		PunchStations:   stations,
		EndBoxJoist:     s.EndBoxJoist,
		ScreensEnabled:  s.ScreensEnabled,
		JoistBox:        s.JoistBox,
		KPaRating:       s.KPaRating,
	}, nil
}

func parseVariant(s string) (common.ProfileVariant, error) {
	switch s {
	case "joist_single", "":
		return common.JoistSingle, nil
	case "joist_box":
		return common.JoistBox, nil
	case "bearer_single":
		return common.BearerSingle, nil
	case "bearer_box":
		return common.BearerBox, nil
	default:
		return 0, fmt.Errorf("specyaml: unknown variant %q", s)
	}
}

func parseHoleType(s string) (common.HoleType, error) {
	switch s {
	case "none", "":
		return common.HoleNone, nil
	case "r50":
		return common.HoleR50, nil
	case "r115":
		return common.HoleR115, nil
	case "r200":
		return common.HoleR200, nil
	case "oval200x400":
		return common.HoleOval200x400, nil
	default:
		return 0, fmt.Errorf("specyaml: unknown hole_type %q", s)
	}
}

var stationNames = map[string]common.PunchKind{
	"bolt_hole":          common.BoltHole,
	"dimple":             common.Dimple,
	"web_tab":            common.WebTab,
	"service":            common.Service,
	"small_service_hole": common.SmallServiceHole,
	"m_service_hole":     common.MServiceHole,
	"large_service_hole": common.LargeServiceHole,
	"corner_brackets":    common.CornerBrackets,
}

func parseStations(names []string) (common.PunchStations, error) {
	stations := make(common.PunchStations, len(names))
	for _, n := range names {
		kind, ok := stationNames[n]
		if !ok {
			return nil, fmt.Errorf("specyaml: unknown punch_stations entry %q", n)
		}
		stations[kind] = true
	}
	return stations, nil
}
