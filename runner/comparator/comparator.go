package comparator

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/bench-compare/runner/types"
)

// Compare matches the baseline and current metric maps by exact benchmark
// name and classifies every matched pair against the threshold. Names present
// in only one map are ignored. The returned results are ordered by benchmark
// name ascending regardless of map iteration order; presentation layers may
// re-sort for display.
//
// Classification per matched name, with rel = (current - baseline) / baseline:
//
//	rel > threshold  -> REGRESSION
//	rel < -threshold -> IMPROVEMENT
//	otherwise        -> NEUTRAL
//
// The inequalities are strict: a change of exactly ±threshold is NEUTRAL.
// A baseline of exactly zero is classified UNDEFINED with zeroed change
// fields; it contributes neither to aggregate statistics nor to the
// has_regression outcome.
func Compare(baseline, current types.MetricMap, threshold float64, log logrus.FieldLogger) (bool, []types.ComparisonResult, []types.Diagnostic, error) {
	if threshold <= 0 {
		return false, nil, nil, &types.ValidationError{Msg: "threshold must be positive"}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("component", "comparator")

	names := commonNames(baseline, current)
	if len(names) == 0 {
		diag := types.Warningf("no common benchmarks found between baseline and current results")
		log.Warn(diag.Message)
		return false, nil, []types.Diagnostic{diag}, nil
	}

	var diags []types.Diagnostic
	results := make([]types.ComparisonResult, 0, len(names))
	hasRegression := false

	for _, name := range names {
		baselineTime := baseline[name]
		currentTime := current[name]

		if baselineTime == 0 {
			diag := types.Warningf("benchmark %q has a zero baseline time, relative change is undefined", name)
			diags = append(diags, diag)
			log.Warn(diag.Message)
			results = append(results, types.ComparisonResult{
				Name:         name,
				BaselineTime: baselineTime,
				CurrentTime:  currentTime,
				Status:       types.StatusUndefined,
			})
			continue
		}

		relativeChange := (currentTime - baselineTime) / baselineTime
		status := classify(relativeChange, threshold)
		if status == types.StatusRegression {
			hasRegression = true
		}

		results = append(results, types.ComparisonResult{
			Name:                  name,
			BaselineTime:          baselineTime,
			CurrentTime:           currentTime,
			AbsoluteChange:        currentTime - baselineTime,
			RelativeChange:        relativeChange,
			RelativeChangePercent: relativeChange * 100,
			Status:                status,
		})
	}

	log.WithFields(logrus.Fields{
		"compared":       len(results),
		"has_regression": hasRegression,
	}).Debug("Comparison complete")

	return hasRegression, results, diags, nil
}

func classify(relativeChange, threshold float64) types.Status {
	switch {
	case relativeChange > threshold:
		return types.StatusRegression
	case relativeChange < -threshold:
		return types.StatusImprovement
	default:
		return types.StatusNeutral
	}
}

// commonNames returns the sorted intersection of the two maps' key sets.
func commonNames(baseline, current types.MetricMap) []string {
	names := make([]string, 0, len(baseline))
	for name := range baseline {
		if _, ok := current[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
