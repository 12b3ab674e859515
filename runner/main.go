package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bench-compare/runner/analyzer"
	"github.com/bench-compare/runner/comparator"
	"github.com/bench-compare/runner/config"
	"github.com/bench-compare/runner/exporter"
	"github.com/bench-compare/runner/generator"
	"github.com/bench-compare/runner/metrics"
	"github.com/bench-compare/runner/parser"
	"github.com/bench-compare/runner/schema"
	"github.com/bench-compare/runner/types"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("bench-compare", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: bench-compare [flags] <baseline.json> <current.json>")
		fmt.Fprintln(stderr, "\nCompares two benchmark result files and detects performance regressions.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	threshold := flags.Float64("threshold", 0.05, "Regression threshold as a fraction (0.05 = 5%)")
	outputPath := flags.String("output", "", "Write the full JSON report to this path")
	htmlPath := flags.String("html", "", "Write an HTML report to this path")
	csvPath := flags.String("csv", "", "Write a CSV export to this path")
	markdownPath := flags.String("markdown", "", "Write a Markdown summary to this path")
	promPath := flags.String("prom", "", "Write Prometheus textfile metrics to this path")
	configPath := flags.String("config", "", "Path to a YAML run configuration file")
	failOnRegression := flags.Bool("fail-on-regression", false, "Exit with a non-zero code if regressions are detected")
	noColor := flags.Bool("no-color", false, "Disable ANSI colors in the text report")
	verbose := flags.Bool("v", false, "Enable debug logging")

	if err := flags.Parse(args); err != nil {
		return comparator.ExitFailure
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return comparator.ExitFailure
	}
	baselinePath, currentPath := flags.Arg(0), flags.Arg(1)

	log := logrus.New()
	log.SetOutput(stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFromFile(*configPath)
		if err != nil {
			log.Errorf("Failed to load configuration: %v", err)
			return comparator.ExitFailure
		}
		cfg = loaded
	}
	applyFlagOverrides(flags, cfg, flagValues{
		threshold:        *threshold,
		outputPath:       *outputPath,
		htmlPath:         *htmlPath,
		csvPath:          *csvPath,
		markdownPath:     *markdownPath,
		promPath:         *promPath,
		failOnRegression: *failOnRegression,
		noColor:          *noColor,
	})

	if err := cfg.Validate(); err != nil {
		log.Errorf("Invalid run parameters: %v", err)
		return comparator.ExitFailure
	}

	report, hasRegression, err := runComparison(cfg, baselinePath, currentPath, log)
	if err != nil {
		log.Error(err.Error())
		return comparator.ExitFailure
	}

	generator.WriteTextReport(stdout, report, !cfg.NoColor)

	if err := writeOutputs(cfg, report, log); err != nil {
		log.Error(err.Error())
		return comparator.ExitFailure
	}

	// The verdict is the last thing evaluated, after every report is out.
	return comparator.ResolveVerdict(hasRegression, cfg.FailOnRegression)
}

// runComparison executes the normalize -> compare -> report pipeline over the
// two input documents.
func runComparison(cfg *config.Config, baselinePath, currentPath string, log logrus.FieldLogger) (*types.ComparisonReport, bool, error) {
	p := parser.New(cfg.MetricPriority, log)

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, false, err
	}

	var diagnostics []types.Diagnostic

	loadMetrics := func(path string) (types.MetricMap, error) {
		records, diags, err := p.LoadDocument(path)
		if err != nil {
			return nil, err
		}
		diagnostics = append(diagnostics, diags...)

		schemaDiags, err := validator.ValidateRecords(records)
		if err != nil {
			return nil, err
		}
		diagnostics = append(diagnostics, schemaDiags...)

		metricMap, extractDiags := p.ExtractMetrics(records)
		diagnostics = append(diagnostics, extractDiags...)
		return metricMap, nil
	}

	log.Infof("Loading baseline benchmarks from: %s", baselinePath)
	baseline, err := loadMetrics(baselinePath)
	if err != nil {
		return nil, false, err
	}

	log.Infof("Loading current benchmarks from: %s", currentPath)
	current, err := loadMetrics(currentPath)
	if err != nil {
		return nil, false, err
	}

	log.Infof("Found %d baseline benchmarks", len(baseline))
	log.Infof("Found %d current benchmarks", len(current))

	hasRegression, results, compareDiags, err := comparator.Compare(baseline, current, cfg.Threshold, log)
	if err != nil {
		return nil, false, err
	}
	diagnostics = append(diagnostics, compareDiags...)

	report := analyzer.BuildReport(analyzer.ReportInput{
		BaselineFile:  baselinePath,
		CurrentFile:   currentPath,
		Threshold:     cfg.Threshold,
		HasRegression: hasRegression,
		Results:       results,
		Diagnostics:   diagnostics,
	})

	return report, hasRegression, nil
}

func writeOutputs(cfg *config.Config, report *types.ComparisonReport, log logrus.FieldLogger) error {
	if cfg.Outputs.JSON != "" {
		if err := generator.WriteJSONReport(cfg.Outputs.JSON, report); err != nil {
			return err
		}
		log.Infof("Detailed results saved to: %s", cfg.Outputs.JSON)
	}
	if cfg.Outputs.HTML != "" {
		if err := generator.WriteHTMLReport(cfg.Outputs.HTML, report); err != nil {
			return err
		}
		log.Infof("HTML report saved to: %s", cfg.Outputs.HTML)
	}
	if cfg.Outputs.CSV != "" {
		if err := exporter.ExportCSV(cfg.Outputs.CSV, report); err != nil {
			return err
		}
		log.Infof("CSV export saved to: %s", cfg.Outputs.CSV)
	}
	if cfg.Outputs.Markdown != "" {
		if err := exporter.ExportMarkdown(cfg.Outputs.Markdown, report); err != nil {
			return err
		}
		log.Infof("Markdown summary saved to: %s", cfg.Outputs.Markdown)
	}
	if cfg.Outputs.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Outputs.Textfile, report); err != nil {
			return err
		}
		log.Infof("Prometheus metrics saved to: %s", cfg.Outputs.Textfile)
	}
	return nil
}

type flagValues struct {
	threshold        float64
	outputPath       string
	htmlPath         string
	csvPath          string
	markdownPath     string
	promPath         string
	failOnRegression bool
	noColor          bool
}

// applyFlagOverrides copies explicitly set flags over the file configuration.
// Flags left at their defaults never clobber config file values.
func applyFlagOverrides(flags *flag.FlagSet, cfg *config.Config, values flagValues) {
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["threshold"] {
		cfg.Threshold = values.threshold
	}
	if set["fail-on-regression"] {
		cfg.FailOnRegression = values.failOnRegression
	}
	if set["no-color"] {
		cfg.NoColor = values.noColor
	}
	if set["output"] {
		cfg.Outputs.JSON = values.outputPath
	}
	if set["html"] {
		cfg.Outputs.HTML = values.htmlPath
	}
	if set["csv"] {
		cfg.Outputs.CSV = values.csvPath
	}
	if set["markdown"] {
		cfg.Outputs.Markdown = values.markdownPath
	}
	if set["prom"] {
		cfg.Outputs.Textfile = values.promPath
	}
}
