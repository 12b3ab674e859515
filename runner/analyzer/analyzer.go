package analyzer

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bench-compare/runner/types"
)

// ReportInput carries everything the analyzer needs to assemble a report.
type ReportInput struct {
	BaselineFile  string
	CurrentFile   string
	Threshold     float64
	HasRegression bool
	Results       []types.ComparisonResult
	Diagnostics   []types.Diagnostic
}

// BuildReport assembles the full comparison report: per-status counts,
// aggregate statistics, and run metadata. The result list keeps the
// comparator's canonical name ordering.
func BuildReport(input ReportInput) *types.ComparisonReport {
	return &types.ComparisonReport{
		ID:           uuid.New().String(),
		GeneratedAt:  time.Now().UTC(),
		BaselineFile: input.BaselineFile,
		CurrentFile:  input.CurrentFile,
		Threshold:    input.Threshold,
		Summary:      summarize(input.Results, input.HasRegression),
		Stats:        computeStats(input.Results),
		Results:      input.Results,
		Diagnostics:  input.Diagnostics,
	}
}

func summarize(results []types.ComparisonResult, hasRegression bool) types.Summary {
	summary := types.Summary{
		Total:         len(results),
		HasRegression: hasRegression,
	}
	for _, result := range results {
		switch result.Status {
		case types.StatusRegression:
			summary.Regressions++
		case types.StatusImprovement:
			summary.Improvements++
		case types.StatusNeutral:
			summary.Neutral++
		case types.StatusUndefined:
			summary.Undefined++
		}
	}
	return summary
}

// computeStats calculates the mean and median relative change plus the single
// worst regression and best improvement. UNDEFINED results carry no usable
// relative change and are excluded throughout. Returns nil when no result
// qualifies.
func computeStats(results []types.ComparisonResult) *types.Stats {
	var changes []float64
	var worst, best *types.Extreme

	for _, result := range results {
		if result.Status == types.StatusUndefined {
			continue
		}
		changes = append(changes, result.RelativeChange)

		switch result.Status {
		case types.StatusRegression:
			if worst == nil || result.RelativeChangePercent > worst.RelativeChangePercent {
				worst = &types.Extreme{
					Name:                  result.Name,
					RelativeChangePercent: result.RelativeChangePercent,
				}
			}
		case types.StatusImprovement:
			if best == nil || result.RelativeChangePercent < best.RelativeChangePercent {
				best = &types.Extreme{
					Name:                  result.Name,
					RelativeChangePercent: result.RelativeChangePercent,
				}
			}
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return &types.Stats{
		MeanChangePercent:   mean(changes) * 100,
		MedianChangePercent: median(changes) * 100,
		WorstRegression:     worst,
		BestImprovement:     best,
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
