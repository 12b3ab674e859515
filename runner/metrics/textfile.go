package metrics

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/bench-compare/runner/types"
)

const namespace = "benchmark_compare"

// WriteTextfile renders the comparison summary as Prometheus gauges in text
// exposition format, for consumption by the node_exporter textfile collector.
// The tool runs to completion, so metrics are written to a file instead of
// being served.
func WriteTextfile(path string, report *types.ComparisonReport) error {
	registry := prometheus.NewRegistry()

	summaryGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "benchmarks",
		Help:      "Number of compared benchmarks by classification status.",
	}, []string{"status"})

	hasRegression := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "has_regression",
		Help:      "1 if at least one benchmark regressed beyond the threshold.",
	})

	threshold := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "threshold",
		Help:      "Fractional change threshold used for classification.",
	})

	relativeChange := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "relative_change",
		Help:      "Fractional change of each benchmark versus baseline (positive = slower).",
	}, []string{"name", "status"})

	registry.MustRegister(summaryGauge, hasRegression, threshold, relativeChange)

	summaryGauge.WithLabelValues(string(types.StatusRegression)).Set(float64(report.Summary.Regressions))
	summaryGauge.WithLabelValues(string(types.StatusImprovement)).Set(float64(report.Summary.Improvements))
	summaryGauge.WithLabelValues(string(types.StatusNeutral)).Set(float64(report.Summary.Neutral))
	summaryGauge.WithLabelValues(string(types.StatusUndefined)).Set(float64(report.Summary.Undefined))

	if report.Summary.HasRegression {
		hasRegression.Set(1)
	}
	threshold.Set(report.Threshold)

	for _, result := range report.Results {
		if result.Status == types.StatusUndefined {
			continue
		}
		relativeChange.WithLabelValues(result.Name, string(result.Status)).Set(result.RelativeChange)
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file %q: %w", path, err)
	}
	defer file.Close()

	encoder := expfmt.NewEncoder(file, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("failed to encode metric family %q: %w", family.GetName(), err)
		}
	}

	return nil
}
