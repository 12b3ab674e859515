package comparator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bench-compare/runner/types"
)

func TestCompareClassification(t *testing.T) {
	threshold := 0.05

	tests := []struct {
		name     string
		baseline float64
		current  float64
		want     types.Status
	}{
		{"above threshold is regression", 100, 120, types.StatusRegression},
		{"below negative threshold is improvement", 100, 90, types.StatusImprovement},
		{"small change is neutral", 100, 102, types.StatusNeutral},
		{"exactly at threshold is neutral", 100, 105, types.StatusNeutral},
		{"exactly at negative threshold is neutral", 100, 95, types.StatusNeutral},
		{"just past threshold is regression", 100, 105.01, types.StatusRegression},
		{"just past negative threshold is improvement", 100, 94.99, types.StatusImprovement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline := types.MetricMap{"bench": tt.baseline}
			current := types.MetricMap{"bench": tt.current}

			hasRegression, results, _, err := Compare(baseline, current, threshold, nil)
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, tt.want, results[0].Status)
			assert.Equal(t, tt.want == types.StatusRegression, hasRegression)
		})
	}
}

func TestCompareResultFields(t *testing.T) {
	baseline := types.MetricMap{"X": 100}
	current := types.MetricMap{"X": 120}

	hasRegression, results, diags, err := Compare(baseline, current, 0.05, nil)
	require.NoError(t, err)
	assert.True(t, hasRegression)
	assert.Empty(t, diags)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, "X", result.Name)
	assert.Equal(t, 100.0, result.BaselineTime)
	assert.Equal(t, 120.0, result.CurrentTime)
	assert.InDelta(t, 20.0, result.AbsoluteChange, 1e-9)
	assert.InDelta(t, 0.20, result.RelativeChange, 1e-9)
	assert.InDelta(t, 20.0, result.RelativeChangePercent, 1e-9)
}

func TestCompareAgainstItselfIsNeutral(t *testing.T) {
	metrics := types.MetricMap{"a": 10, "b": 25.5, "c": 0.001}

	hasRegression, results, diags, err := Compare(metrics, metrics, 0.05, nil)
	require.NoError(t, err)
	assert.False(t, hasRegression)
	assert.Empty(t, diags)
	require.Len(t, results, 3)
	for _, result := range results {
		assert.Equal(t, types.StatusNeutral, result.Status)
		assert.Zero(t, result.RelativeChange)
	}
}

func TestCompareIntersectionOnly(t *testing.T) {
	baseline := types.MetricMap{"A": 1, "B": 2}
	current := types.MetricMap{"B": 2, "C": 3}

	_, results, _, err := Compare(baseline, current, 0.05, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "B", results[0].Name)
}

func TestCompareNoCommonBenchmarks(t *testing.T) {
	baseline := types.MetricMap{"A": 1}
	current := types.MetricMap{"B": 2}

	hasRegression, results, diags, err := Compare(baseline, current, 0.05, nil)
	require.NoError(t, err)
	assert.False(t, hasRegression)
	assert.Empty(t, results)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "no common benchmarks")
}

func TestCompareZeroBaselineIsUndefined(t *testing.T) {
	baseline := types.MetricMap{"Z": 0, "ok": 10}
	current := types.MetricMap{"Z": 5, "ok": 10}

	hasRegression, results, diags, err := Compare(baseline, current, 0.05, nil)
	require.NoError(t, err)
	assert.False(t, hasRegression)
	require.Len(t, results, 2)

	undefined := results[0]
	assert.Equal(t, "Z", undefined.Name)
	assert.Equal(t, types.StatusUndefined, undefined.Status)
	assert.Zero(t, undefined.RelativeChange)
	assert.Zero(t, undefined.AbsoluteChange)
	assert.Equal(t, 5.0, undefined.CurrentTime)

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "zero baseline")
}

func TestCompareOrderedByName(t *testing.T) {
	baseline := types.MetricMap{"zeta": 1, "alpha": 1, "mid": 1}
	current := types.MetricMap{"zeta": 1, "alpha": 1, "mid": 1}

	_, results, _, err := Compare(baseline, current, 0.05, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "alpha", results[0].Name)
	assert.Equal(t, "mid", results[1].Name)
	assert.Equal(t, "zeta", results[2].Name)
}

func TestCompareRejectsNonPositiveThreshold(t *testing.T) {
	for _, threshold := range []float64{0, -0.05} {
		_, _, _, err := Compare(types.MetricMap{}, types.MetricMap{}, threshold, nil)
		require.Error(t, err)

		var validationErr *types.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	}
}

func TestResolveVerdict(t *testing.T) {
	assert.Equal(t, ExitFailure, ResolveVerdict(true, true))
	assert.Equal(t, ExitSuccess, ResolveVerdict(true, false))
	assert.Equal(t, ExitSuccess, ResolveVerdict(false, true))
	assert.Equal(t, ExitSuccess, ResolveVerdict(false, false))
}
