package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bench-compare/runner/types"
)

func TestBuildReport(t *testing.T) {
	results := []types.ComparisonResult{
		{Name: "a", RelativeChange: 0.20, RelativeChangePercent: 20, Status: types.StatusRegression},
		{Name: "b", RelativeChange: 0.10, RelativeChangePercent: 10, Status: types.StatusRegression},
		{Name: "c", RelativeChange: -0.30, RelativeChangePercent: -30, Status: types.StatusImprovement},
		{Name: "d", RelativeChange: 0.01, RelativeChangePercent: 1, Status: types.StatusNeutral},
		{Name: "e", Status: types.StatusUndefined},
	}

	report := BuildReport(ReportInput{
		BaselineFile:  "baseline.json",
		CurrentFile:   "current.json",
		Threshold:     0.05,
		HasRegression: true,
		Results:       results,
	})

	t.Run("Metadata", func(t *testing.T) {
		assert.NotEmpty(t, report.ID)
		assert.False(t, report.GeneratedAt.IsZero())
		assert.Equal(t, "baseline.json", report.BaselineFile)
		assert.Equal(t, "current.json", report.CurrentFile)
		assert.Equal(t, 0.05, report.Threshold)
	})

	t.Run("SummaryCounts", func(t *testing.T) {
		assert.Equal(t, 5, report.Summary.Total)
		assert.Equal(t, 2, report.Summary.Regressions)
		assert.Equal(t, 1, report.Summary.Improvements)
		assert.Equal(t, 1, report.Summary.Neutral)
		assert.Equal(t, 1, report.Summary.Undefined)
		assert.True(t, report.Summary.HasRegression)
	})

	t.Run("StatsExcludeUndefined", func(t *testing.T) {
		require.NotNil(t, report.Stats)
		// mean of 0.20, 0.10, -0.30, 0.01 = 0.0025
		assert.InDelta(t, 0.25, report.Stats.MeanChangePercent, 1e-9)
		// median of -0.30, 0.01, 0.10, 0.20 = 0.055
		assert.InDelta(t, 5.5, report.Stats.MedianChangePercent, 1e-9)
	})

	t.Run("WorstAndBest", func(t *testing.T) {
		require.NotNil(t, report.Stats.WorstRegression)
		assert.Equal(t, "a", report.Stats.WorstRegression.Name)
		assert.InDelta(t, 20.0, report.Stats.WorstRegression.RelativeChangePercent, 1e-9)

		require.NotNil(t, report.Stats.BestImprovement)
		assert.Equal(t, "c", report.Stats.BestImprovement.Name)
		assert.InDelta(t, -30.0, report.Stats.BestImprovement.RelativeChangePercent, 1e-9)
	})
}

func TestBuildReportOddMedian(t *testing.T) {
	results := []types.ComparisonResult{
		{Name: "a", RelativeChange: 0.10, Status: types.StatusNeutral},
		{Name: "b", RelativeChange: 0.30, Status: types.StatusNeutral},
		{Name: "c", RelativeChange: -0.20, Status: types.StatusNeutral},
	}

	report := BuildReport(ReportInput{Threshold: 0.5, Results: results})
	require.NotNil(t, report.Stats)
	assert.InDelta(t, 10.0, report.Stats.MedianChangePercent, 1e-9)
	assert.Nil(t, report.Stats.WorstRegression)
	assert.Nil(t, report.Stats.BestImprovement)
}

func TestBuildReportEmptyResults(t *testing.T) {
	report := BuildReport(ReportInput{Threshold: 0.05})
	assert.Nil(t, report.Stats)
	assert.Zero(t, report.Summary.Total)
	assert.False(t, report.Summary.HasRegression)
}

func TestBuildReportOnlyUndefinedResults(t *testing.T) {
	results := []types.ComparisonResult{
		{Name: "z", Status: types.StatusUndefined},
	}

	report := BuildReport(ReportInput{Threshold: 0.05, Results: results})
	assert.Nil(t, report.Stats)
	assert.Equal(t, 1, report.Summary.Undefined)
	assert.False(t, report.Summary.HasRegression)
}
