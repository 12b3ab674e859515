package generator

import (
	"fmt"
	"io"
	"sort"

	"github.com/bench-compare/runner/types"
)

const (
	bannerLine    = "================================================================================"
	detailRule    = "----------------------------------------------------------------------------------------"
	maxNameLength = 37
	// Names longer than maxNameLength are shown as the first truncatedLength
	// characters plus "...". Display only; machine outputs keep full names.
	truncatedLength = 34
)

const (
	colorRed    = "\033[91m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorReset  = "\033[0m"
)

// WriteTextReport renders the human-readable comparison report: summary
// counts, a detail table sorted worst regression first, aggregate statistics,
// and the closing pass/fail banner.
func WriteTextReport(w io.Writer, report *types.ComparisonReport, useColor bool) {
	fmt.Fprintf(w, "\n%s\n", bannerLine)
	fmt.Fprintln(w, "BENCHMARK COMPARISON REPORT")
	fmt.Fprintln(w, bannerLine)

	writeSummary(w, report)

	if len(report.Results) > 0 {
		writeDetails(w, report.Results, useColor)
	}
	if report.Stats != nil {
		writeStats(w, report.Stats)
	}
	if len(report.Diagnostics) > 0 {
		writeDiagnostics(w, report.Diagnostics)
	}

	writeVerdictBanner(w, report)
}

func writeSummary(w io.Writer, report *types.ComparisonReport) {
	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "  Total benchmarks: %d\n", report.Summary.Total)
	fmt.Fprintf(w, "  Regressions: %d\n", report.Summary.Regressions)
	fmt.Fprintf(w, "  Improvements: %d\n", report.Summary.Improvements)
	fmt.Fprintf(w, "  Neutral: %d\n", report.Summary.Neutral)
	if report.Summary.Undefined > 0 {
		fmt.Fprintf(w, "  Undefined: %d\n", report.Summary.Undefined)
	}
	fmt.Fprintf(w, "  Threshold: ±%.1f%%\n", report.Threshold*100)
}

func writeDetails(w io.Writer, results []types.ComparisonResult, useColor bool) {
	fmt.Fprintln(w, "\nDetailed Results:")
	fmt.Fprintf(w, "%-40s %-12s %-12s %-12s %s\n", "Benchmark", "Baseline", "Current", "Change", "Status")
	fmt.Fprintln(w, detailRule)

	for _, result := range sortForDisplay(results) {
		change := "n/a"
		if result.Status != types.StatusUndefined {
			change = fmt.Sprintf("%+.1f%%", result.RelativeChangePercent)
		}
		fmt.Fprintf(w, "%-40s %-12s %-12s %-12s %s\n",
			truncateName(result.Name),
			fmt.Sprintf("%.2fms", result.BaselineTime),
			fmt.Sprintf("%.2fms", result.CurrentTime),
			change,
			statusLabel(result.Status, useColor),
		)
	}
}

func writeStats(w io.Writer, stats *types.Stats) {
	fmt.Fprintln(w, "\nPerformance Statistics:")
	fmt.Fprintf(w, "  Average change: %+.2f%%\n", stats.MeanChangePercent)
	fmt.Fprintf(w, "  Median change: %+.2f%%\n", stats.MedianChangePercent)
	if stats.WorstRegression != nil {
		fmt.Fprintf(w, "  Worst regression: %s (%+.1f%%)\n",
			stats.WorstRegression.Name, stats.WorstRegression.RelativeChangePercent)
	}
	if stats.BestImprovement != nil {
		fmt.Fprintf(w, "  Best improvement: %s (%+.1f%%)\n",
			stats.BestImprovement.Name, stats.BestImprovement.RelativeChangePercent)
	}
}

func writeDiagnostics(w io.Writer, diags []types.Diagnostic) {
	fmt.Fprintln(w, "\nWarnings:")
	for _, diag := range diags {
		fmt.Fprintf(w, "  - %s\n", diag.Message)
	}
}

func writeVerdictBanner(w io.Writer, report *types.ComparisonReport) {
	fmt.Fprintf(w, "\n%s\n", bannerLine)
	if report.Summary.HasRegression {
		fmt.Fprintln(w, "❌ PERFORMANCE REGRESSION DETECTED!")
		fmt.Fprintf(w, "   One or more benchmarks are >%.1f%% slower than baseline\n", report.Threshold*100)
	} else {
		fmt.Fprintln(w, "✅ NO SIGNIFICANT PERFORMANCE REGRESSIONS")
		fmt.Fprintf(w, "   All benchmarks are within ±%.1f%% of baseline\n", report.Threshold*100)
	}
	fmt.Fprintln(w, bannerLine)
}

// sortForDisplay orders results by relative change descending, worst
// regression first. UNDEFINED rows have no meaningful change and sink to the
// bottom. The comparator's canonical name ordering is left untouched.
func sortForDisplay(results []types.ComparisonResult) []types.ComparisonResult {
	sorted := make([]types.ComparisonResult, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		iUndefined := sorted[i].Status == types.StatusUndefined
		jUndefined := sorted[j].Status == types.StatusUndefined
		if iUndefined != jUndefined {
			return jUndefined
		}
		return sorted[i].RelativeChange > sorted[j].RelativeChange
	})

	return sorted
}

func truncateName(name string) string {
	if len(name) > maxNameLength {
		return name[:truncatedLength] + "..."
	}
	return name
}

func statusLabel(status types.Status, useColor bool) string {
	if !useColor {
		return string(status)
	}
	switch status {
	case types.StatusRegression:
		return colorRed + string(status) + colorReset
	case types.StatusImprovement:
		return colorGreen + string(status) + colorReset
	case types.StatusNeutral:
		return colorYellow + string(status) + colorReset
	default:
		return string(status)
	}
}
