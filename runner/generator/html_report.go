package generator

import (
	"fmt"
	"html/template"
	"os"

	"github.com/bench-compare/runner/types"
)

// htmlReportTemplate is the template for the standalone HTML report.
const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Benchmark Comparison Report</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1100px;
            margin: 0 auto;
            padding: 20px;
        }
        h1, h2 {
            color: #2c3e50;
        }
        .summary {
            background-color: #f8f9fa;
            border-radius: 5px;
            padding: 20px;
            margin-bottom: 20px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 20px;
        }
        th, td {
            padding: 12px 15px;
            text-align: left;
            border-bottom: 1px solid #ddd;
        }
        th {
            background-color: #f2f2f2;
        }
        tr:hover {
            background-color: #f5f5f5;
        }
        .badge {
            display: inline-block;
            padding: 3px 7px;
            border-radius: 3px;
            font-size: 12px;
            font-weight: bold;
        }
        .badge-success { background-color: #28a745; color: white; }
        .badge-warning { background-color: #ffc107; color: #212529; }
        .badge-danger { background-color: #dc3545; color: white; }
        .badge-muted { background-color: #6c757d; color: white; }
        .verdict {
            border-radius: 5px;
            padding: 15px 20px;
            font-weight: bold;
        }
        .verdict-pass { background-color: #d4edda; color: #155724; }
        .verdict-fail { background-color: #f8d7da; color: #721c24; }
        .footer {
            margin-top: 40px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            font-size: 14px;
            color: #777;
        }
    </style>
</head>
<body>
    <h1>Benchmark Comparison Report</h1>

    <div class="summary">
        <h2>Summary</h2>
        <p><strong>Generated:</strong> {{.Report.GeneratedAt.Format "2006-01-02 15:04:05 UTC"}}</p>
        <p><strong>Baseline:</strong> {{.Report.BaselineFile}}</p>
        <p><strong>Current:</strong> {{.Report.CurrentFile}}</p>
        <p><strong>Threshold:</strong> &plusmn;{{printf "%.1f" .ThresholdPercent}}%</p>
        <p><strong>Total benchmarks:</strong> {{.Report.Summary.Total}} &mdash;
           {{.Report.Summary.Regressions}} regressions,
           {{.Report.Summary.Improvements}} improvements,
           {{.Report.Summary.Neutral}} neutral{{if .Report.Summary.Undefined}},
           {{.Report.Summary.Undefined}} undefined{{end}}</p>
    </div>

    {{if .Report.Summary.HasRegression}}
    <div class="verdict verdict-fail">Performance regression detected: one or more benchmarks are more than {{printf "%.1f" .ThresholdPercent}}% slower than baseline.</div>
    {{else}}
    <div class="verdict verdict-pass">No significant performance regressions: all benchmarks are within &plusmn;{{printf "%.1f" .ThresholdPercent}}% of baseline.</div>
    {{end}}

    <h2>Results</h2>
    <table>
        <thead>
            <tr>
                <th>Benchmark</th>
                <th>Baseline (ms)</th>
                <th>Current (ms)</th>
                <th>Change</th>
                <th>Status</th>
            </tr>
        </thead>
        <tbody>
            {{range .Results}}
            <tr>
                <td>{{.Name}}</td>
                <td>{{printf "%.2f" .BaselineTime}}</td>
                <td>{{printf "%.2f" .CurrentTime}}</td>
                <td>{{if eq .Status "UNDEFINED"}}n/a{{else}}{{printf "%+.1f" .RelativeChangePercent}}%{{end}}</td>
                <td><span class="badge {{badgeClass .Status}}">{{.Status}}</span></td>
            </tr>
            {{end}}
        </tbody>
    </table>

    {{with .Report.Stats}}
    <h2>Performance Statistics</h2>
    <ul>
        <li><strong>Average change:</strong> {{printf "%+.2f" .MeanChangePercent}}%</li>
        <li><strong>Median change:</strong> {{printf "%+.2f" .MedianChangePercent}}%</li>
        {{with .WorstRegression}}<li><strong>Worst regression:</strong> {{.Name}} ({{printf "%+.1f" .RelativeChangePercent}}%)</li>{{end}}
        {{with .BestImprovement}}<li><strong>Best improvement:</strong> {{.Name}} ({{printf "%+.1f" .RelativeChangePercent}}%)</li>{{end}}
    </ul>
    {{end}}

    {{if .Report.Diagnostics}}
    <h2>Warnings</h2>
    <ul>
        {{range .Report.Diagnostics}}<li>{{.Message}}</li>{{end}}
    </ul>
    {{end}}

    <div class="footer">Report {{.Report.ID}}</div>
</body>
</html>
`

type htmlReportData struct {
	Report           *types.ComparisonReport
	Results          []types.ComparisonResult
	ThresholdPercent float64
}

// WriteHTMLReport renders the standalone HTML report. The result table uses
// the display ordering (worst regression first) with full benchmark names.
func WriteHTMLReport(path string, report *types.ComparisonReport) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"badgeClass": badgeClass,
	}).Parse(htmlReportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse HTML report template: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML report %q: %w", path, err)
	}
	defer file.Close()

	data := htmlReportData{
		Report:           report,
		Results:          sortForDisplay(report.Results),
		ThresholdPercent: report.Threshold * 100,
	}
	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to render HTML report %q: %w", path, err)
	}

	return nil
}

func badgeClass(status types.Status) string {
	switch status {
	case types.StatusRegression:
		return "badge-danger"
	case types.StatusImprovement:
		return "badge-success"
	case types.StatusNeutral:
		return "badge-warning"
	default:
		return "badge-muted"
	}
}
