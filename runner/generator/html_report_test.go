package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bench-compare/runner/types"
)

func TestWriteHTMLReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteHTMLReport(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<title>Benchmark Comparison Report</title>")
	assert.Contains(t, out, "Performance regression detected")
	assert.Contains(t, out, "badge-danger")
	assert.Contains(t, out, "badge-success")
	assert.Contains(t, out, "slow")
	assert.Contains(t, out, "test-report")

	// Display ordering: worst regression row first.
	assert.Less(t, strings.Index(out, ">slow<"), strings.Index(out, ">steady<"))
}

func TestWriteHTMLReportPassVerdict(t *testing.T) {
	report := sampleReport()
	report.Summary.HasRegression = false
	report.Summary.Regressions = 0

	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteHTMLReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No significant performance regressions")
}

func TestWriteHTMLReportUndefinedRow(t *testing.T) {
	report := sampleReport()
	report.Results = append(report.Results, types.ComparisonResult{
		Name: "zero-base", CurrentTime: 5, Status: types.StatusUndefined,
	})

	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteHTMLReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "badge-muted")
	assert.Contains(t, out, "n/a")
}
