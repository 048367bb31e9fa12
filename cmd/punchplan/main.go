// Command punchplan computes an NC punch program for a roll-formed steel
// joist or bearer.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/joistcore/punchplan"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		specPath    string
		partCode    string
		qty         int
		resolve     bool
		kpaRating   float64
		showVersion bool
		showHelp    bool
		debugMode   bool
		debugFile   string
		debugPretty bool
	)

	pflag.StringVarP(&specPath, "spec", "s", "", "Path to a YAML profile spec file")
	pflag.StringVar(&partCode, "part-code", "J1-1", "Part code written into the CSV record")
	pflag.IntVar(&qty, "qty", 1, "Quantity written into the CSV record")
	pflag.BoolVar(&resolve, "resolve", false, "Resolve variant and joist spacing via the span advisor before planning")
	pflag.Float64Var(&kpaRating, "kpa", 2.5, "Loading rating (2.5 or 5.0) used when --resolve is set")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.BoolVar(&debugMode, "debug", false, "Enable debug tracing (written to stderr)")
	pflag.StringVar(&debugFile, "debug-file", "", "Write debug trace to file instead of stderr")
	pflag.BoolVar(&debugPretty, "debug-pretty", false, "Use pretty format for debug output (default: JSON)")
	pflag.Parse()

	if showHelp {
		printHelp()
		return 0
	}
	if showVersion {
		fmt.Printf("punchplan version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}
	if specPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --spec is required")
		printHelp()
		return 1
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)

	spec, err := loadSpec(specPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading spec: %v\n", err)
		return 1
	}
	if err := spec.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid spec: %v\n", err)
		return 1
	}

	var session *punchplan.Session
	if debugMode || debugFile != "" || os.Getenv("PUNCHPLAN_DEBUG") == "1" {
		punchplan.EnableDebug(true)
		punchplan.InitDebugFromEnv()

		var output io.Writer = os.Stderr
		if debugFile != "" {
			file, err := os.Create(debugFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating debug file: %v\n", err)
				return 1
			}
			defer file.Close()
			output = file
		}

		if debugPretty {
			session = punchplan.NewDebugSession(punchplan.NewPrettyDebugSink(output))
		} else {
			session = punchplan.NewDebugSession(punchplan.NewJSONDebugSink(output))
		}
		if session != nil {
			defer session.Close()
		}
	}

	if resolve {
		adviseLength := float64(spec.LengthMM)
		if spec.Variant.IsBearer() && spec.JoistLengthMM != nil {
			adviseLength = float64(*spec.JoistLengthMM)
		}
		advice := punchplan.AdviseTraced(adviseLength, kpaRating, session)
		if spec.Variant.IsJoist() {
			spec.Variant = advice.Variant
		}
		spec.JoistSpacingMM = advice.JoistSpacing
		log.WithField("exceeds_limit", advice.ExceedsLimit).Info("resolved span advice")
	}

	layout := punchplan.PlanTraced(spec, session)
	diags := punchplan.DetectClashesTraced(layout, spec, session)

	for _, d := range diags.Items {
		fmt.Fprintf(os.Stderr, "%s [%s] %s\n", d.Severity, d.Rule, d.Message)
	}

	csv := punchplan.Encode(layout, punchplan.Meta{PartCode: partCode, Qty: qty, Variant: spec.Variant})
	fmt.Println(csv)

	if diags.ErrorCount > 0 {
		return 1
	}
	return 0
}

func printHelp() {
	fmt.Println("Usage: punchplan --spec <file.yaml> [flags]")
	pflag.PrintDefaults()
}
