package types

import "time"

// Status classifies the outcome of a single benchmark comparison.
type Status string

const (
	StatusRegression  Status = "REGRESSION"
	StatusImprovement Status = "IMPROVEMENT"
	StatusNeutral     Status = "NEUTRAL"
	// StatusUndefined marks a matched benchmark whose baseline time is exactly
	// zero. No relative change can be computed for it, so it is excluded from
	// aggregate statistics and from the regression verdict.
	StatusUndefined Status = "UNDEFINED"
)

// BenchmarkRecord is a single per-benchmark entry after the input document
// shape has been resolved into a flat sequence.
type BenchmarkRecord struct {
	Name   string
	Fields map[string]interface{}
}

// MetricMap maps a benchmark name to its primary time metric.
type MetricMap map[string]float64

// ComparisonResult represents the comparison of one benchmark present in both
// the baseline and the current run.
type ComparisonResult struct {
	Name                  string  `json:"name"`
	BaselineTime          float64 `json:"baseline_time"`
	CurrentTime           float64 `json:"current_time"`
	AbsoluteChange        float64 `json:"absolute_change"`
	RelativeChange        float64 `json:"relative_change"`
	RelativeChangePercent float64 `json:"relative_change_percent"`
	Status                Status  `json:"status"`
}

// Summary holds the per-status counts for a comparison run.
type Summary struct {
	Total         int  `json:"total_benchmarks"`
	Regressions   int  `json:"regressions"`
	Improvements  int  `json:"improvements"`
	Neutral       int  `json:"neutral"`
	Undefined     int  `json:"undefined,omitempty"`
	HasRegression bool `json:"has_regression"`
}

// Extreme identifies the single worst regression or best improvement.
type Extreme struct {
	Name                  string  `json:"name"`
	RelativeChangePercent float64 `json:"relative_change_percent"`
}

// Stats holds aggregate statistics over all results that have a defined
// relative change.
type Stats struct {
	MeanChangePercent   float64  `json:"mean_change_percent"`
	MedianChangePercent float64  `json:"median_change_percent"`
	WorstRegression     *Extreme `json:"worst_regression,omitempty"`
	BestImprovement     *Extreme `json:"best_improvement,omitempty"`
}

// ComparisonReport is the full structured output of a comparison run.
type ComparisonReport struct {
	ID           string             `json:"id"`
	GeneratedAt  time.Time          `json:"generated_at"`
	BaselineFile string             `json:"baseline_file"`
	CurrentFile  string             `json:"current_file"`
	Threshold    float64            `json:"threshold"`
	Summary      Summary            `json:"summary"`
	Stats        *Stats             `json:"stats,omitempty"`
	Results      []ComparisonResult `json:"results"`
	Diagnostics  []Diagnostic       `json:"diagnostics,omitempty"`
}
