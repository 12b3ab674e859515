package generator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bench-compare/runner/types"
)

func TestWriteJSONReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSONReport(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded types.ComparisonReport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "test-report", decoded.ID)
	assert.Equal(t, 0.05, decoded.Threshold)
	assert.True(t, decoded.Summary.HasRegression)
	assert.Equal(t, 3, decoded.Summary.Total)
	require.Len(t, decoded.Results, 3)

	// Canonical ordering and full field coverage survive serialization.
	assert.Equal(t, "fast", decoded.Results[0].Name)
	assert.Equal(t, types.StatusRegression, decoded.Results[1].Status)
	assert.InDelta(t, 0.20, decoded.Results[1].RelativeChange, 1e-9)
	assert.InDelta(t, 20.0, decoded.Results[1].RelativeChangePercent, 1e-9)
	require.NotNil(t, decoded.Stats)
	assert.Equal(t, "slow", decoded.Stats.WorstRegression.Name)
}

func TestWriteJSONReportBadPath(t *testing.T) {
	err := WriteJSONReport(filepath.Join(t.TempDir(), "missing", "report.json"), sampleReport())
	assert.Error(t, err)
}
