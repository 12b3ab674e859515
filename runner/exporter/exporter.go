package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/bench-compare/runner/types"
)

// ExportCSV writes one row per comparison result. Rows keep the canonical
// name ordering and full benchmark names so the file is safe to diff and
// join across runs.
func ExportCSV(path string, report *types.ComparisonReport) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV export %q: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"Benchmark", "Baseline (ms)", "Current (ms)",
		"Absolute Change (ms)", "Relative Change (%)", "Status",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, result := range report.Results {
		change := ""
		absolute := ""
		if result.Status != types.StatusUndefined {
			change = strconv.FormatFloat(result.RelativeChangePercent, 'f', 2, 64)
			absolute = strconv.FormatFloat(result.AbsoluteChange, 'f', 2, 64)
		}
		row := []string{
			result.Name,
			strconv.FormatFloat(result.BaselineTime, 'f', 2, 64),
			strconv.FormatFloat(result.CurrentTime, 'f', 2, 64),
			absolute,
			change,
			string(result.Status),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// ExportMarkdown writes a Markdown summary suitable for CI job summaries and
// pull request comments.
func ExportMarkdown(path string, report *types.ComparisonReport) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create Markdown export %q: %w", path, err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Benchmark Comparison Report\n\n")
	fmt.Fprintf(file, "**Baseline:** %s\n", report.BaselineFile)
	fmt.Fprintf(file, "**Current:** %s\n", report.CurrentFile)
	fmt.Fprintf(file, "**Threshold:** ±%.1f%%\n\n", report.Threshold*100)

	if report.Summary.HasRegression {
		fmt.Fprintf(file, "❌ **Performance regression detected** (%d of %d benchmarks)\n\n",
			report.Summary.Regressions, report.Summary.Total)
	} else {
		fmt.Fprintf(file, "✅ **No significant performance regressions** (%d benchmarks compared)\n\n",
			report.Summary.Total)
	}

	fmt.Fprintf(file, "| Benchmark | Baseline | Current | Change | Status |\n")
	fmt.Fprintf(file, "|-----------|----------|---------|--------|--------|\n")
	for _, result := range report.Results {
		change := "n/a"
		if result.Status != types.StatusUndefined {
			change = fmt.Sprintf("%+.1f%%", result.RelativeChangePercent)
		}
		fmt.Fprintf(file, "| %s | %.2fms | %.2fms | %s | %s |\n",
			result.Name, result.BaselineTime, result.CurrentTime, change, result.Status)
	}

	if report.Stats != nil {
		fmt.Fprintf(file, "\n**Average change:** %+.2f%% · **Median change:** %+.2f%%\n",
			report.Stats.MeanChangePercent, report.Stats.MedianChangePercent)
		if report.Stats.WorstRegression != nil {
			fmt.Fprintf(file, "**Worst regression:** %s (%+.1f%%)\n",
				report.Stats.WorstRegression.Name, report.Stats.WorstRegression.RelativeChangePercent)
		}
		if report.Stats.BestImprovement != nil {
			fmt.Fprintf(file, "**Best improvement:** %s (%+.1f%%)\n",
				report.Stats.BestImprovement.Name, report.Stats.BestImprovement.RelativeChangePercent)
		}
	}

	return nil
}
