package parser

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bench-compare/runner/types"
)

// MetricFieldPriority is the ordered list of candidate timing fields consulted
// for each benchmark record. The first field present wins, so a record that
// carries both a real time and a generic duration is measured by its real
// time. The order is a contract, not a convenience.
var MetricFieldPriority = []string{"real_time", "cpu_time", "wall_time", "time", "duration"}

// Parser normalizes benchmark result documents into metric maps.
type Parser struct {
	priority []string
	log      logrus.FieldLogger
}

// New creates a parser using the given metric field priority. A nil or empty
// priority falls back to MetricFieldPriority.
func New(priority []string, log logrus.FieldLogger) *Parser {
	if len(priority) == 0 {
		priority = MetricFieldPriority
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Parser{
		priority: priority,
		log:      log.WithField("component", "parser"),
	}
}

// LoadDocument reads a benchmark results file and resolves its shape into a
// flat record sequence. Accepted shapes:
//
//  1. {"benchmarks": [{...}, {...}]}
//  2. [{...}, {...}]
//  3. {...} (a single record, wrapped into a one-element sequence)
//
// An unreadable path yields a types.NotFoundError, invalid JSON a
// types.ParseError.
func (p *Parser) LoadDocument(path string) ([]types.BenchmarkRecord, []types.Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &types.NotFoundError{Path: path, Err: err}
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, &types.ParseError{Path: path, Err: err}
	}

	entries, diags := resolveShape(doc)
	records := make([]types.BenchmarkRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, recordFromEntry(entry))
	}

	p.log.WithFields(logrus.Fields{
		"file":       path,
		"benchmarks": len(records),
	}).Debug("Loaded benchmark document")

	return records, diags, nil
}

// resolveShape flattens the three accepted document shapes into one canonical
// entry slice. Non-object elements inside a sequence are dropped with a
// warning rather than aborting the whole document.
func resolveShape(doc interface{}) ([]map[string]interface{}, []types.Diagnostic) {
	var raw []interface{}

	switch v := doc.(type) {
	case map[string]interface{}:
		if benchmarks, ok := v["benchmarks"].([]interface{}); ok {
			raw = benchmarks
		} else {
			raw = []interface{}{v}
		}
	case []interface{}:
		raw = v
	default:
		return nil, []types.Diagnostic{
			types.Warningf("document is neither an object nor an array, no benchmarks extracted"),
		}
	}

	var diags []types.Diagnostic
	entries := make([]map[string]interface{}, 0, len(raw))
	for i, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			diags = append(diags, types.Warningf("benchmark entry %d is not an object, skipping", i))
			continue
		}
		entries = append(entries, entry)
	}

	return entries, diags
}

// recordFromEntry extracts the benchmark name, defaulting to "unknown" when
// the field is absent or not a string.
func recordFromEntry(entry map[string]interface{}) types.BenchmarkRecord {
	name := "unknown"
	if n, ok := entry["name"].(string); ok {
		name = n
	}
	return types.BenchmarkRecord{Name: name, Fields: entry}
}

// ExtractMetrics builds the name -> time mapping from a record sequence.
// Records without any recognized timing field are dropped with a warning; a
// benchmark with no timing data must never compare as zero. Non-numeric
// values of a recognized field count as missing.
func (p *Parser) ExtractMetrics(records []types.BenchmarkRecord) (types.MetricMap, []types.Diagnostic) {
	metrics := make(types.MetricMap, len(records))
	var diags []types.Diagnostic

	for _, record := range records {
		value, ok := p.metricValue(record.Fields)
		if !ok {
			diag := types.Warningf("no time metric found for benchmark %q, dropping it", record.Name)
			diags = append(diags, diag)
			p.log.Warn(diag.Message)
			continue
		}
		metrics[record.Name] = value
	}

	return metrics, diags
}

// metricValue scans the priority list in order and returns the first numeric
// candidate present.
func (p *Parser) metricValue(fields map[string]interface{}) (float64, bool) {
	for _, key := range p.priority {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if value, ok := raw.(float64); ok {
			return value, true
		}
	}
	return 0, false
}
