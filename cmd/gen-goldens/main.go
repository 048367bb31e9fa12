// Command gen-goldens regenerates testdata/golden/*.csv from the profile
// fixtures in testdata/profiles/*.yaml, writing one Plan+Encode record per
// fixture. No test in the module reads the generated files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joistcore/punchplan"
	"github.com/joistcore/punchplan/internal/specyaml"
)

var (
	profileDir = flag.String("profiles", "testdata/profiles", "Directory of YAML profile fixtures")
	goldenDir  = flag.String("goldens", "testdata/golden", "Output directory for golden CSV files")
	strict     = flag.Bool("strict", false, "Exit on any warning instead of continuing")
)

// profileFixture is a testdata/profiles/*.yaml file: a specyaml.Spec plus
// the CSV Meta fields the encoder needs.
type profileFixture struct {
	specyaml.Spec `yaml:",inline"`
	PartCode      string `yaml:"part_code"`
	Qty           int    `yaml:"qty"`
}

func main() {
	flag.Parse()

	entries, err := os.ReadDir(*profileDir)
	if err != nil {
		log.Fatalf("reading %s: %v", *profileDir, err)
	}
	if err := os.MkdirAll(*goldenDir, 0o755); err != nil {
		log.Fatalf("creating %s: %v", *goldenDir, err)
	}

	var count int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".yaml")
		if err := generateGolden(name); err != nil {
			if *strict {
				log.Fatalf("generating golden for %s: %v", name, err)
			}
			log.Printf("warning: %v", err)
			continue
		}
		count++
	}
	log.Printf("wrote %d golden fixture(s) to %s", count, *goldenDir)
}

func generateGolden(name string) error {
	profilePath := filepath.Join(*profileDir, name+".yaml")
	data, err := os.ReadFile(profilePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", profilePath, err)
	}

	var fx profileFixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("parsing %s: %w", profilePath, err)
	}

	spec, err := fx.ToProfileSpec()
	if err != nil {
		return fmt.Errorf("%s: %w", profilePath, err)
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("%s: %w", profilePath, err)
	}

	layout := punchplan.Plan(spec)
	csv := punchplan.Encode(layout, punchplan.Meta{
		PartCode: fx.PartCode,
		Qty:      fx.Qty,
		Variant:  spec.Variant,
	})

	outPath := filepath.Join(*goldenDir, name+".csv")
	if err := os.WriteFile(outPath, []byte(csv+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Printf("wrote %s", outPath)
	return nil
}
