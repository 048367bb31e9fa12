package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joistcore/punchplan"
	"github.com/joistcore/punchplan/internal/specyaml"
)

func loadSpec(path string) (punchplan.ProfileSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return punchplan.ProfileSpec{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var y specyaml.Spec
	if err := yaml.Unmarshal(data, &y); err != nil {
		return punchplan.ProfileSpec{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return y.ToProfileSpec()
}
