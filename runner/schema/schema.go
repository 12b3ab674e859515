package schema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/bench-compare/runner/types"
)

// benchmarkRecordSchema describes the shape of a single benchmark record.
// None of the timing fields is required (the extraction rules handle absent
// metrics), but fields that are present must carry the right type so that a
// record like {"real_time": "fast"} is flagged instead of silently dropped.
const benchmarkRecordSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name":      {"type": "string"},
		"real_time": {"type": "number"},
		"cpu_time":  {"type": "number"},
		"wall_time": {"type": "number"},
		"time":      {"type": "number"},
		"duration":  {"type": "number"}
	}
}`

// Validator checks benchmark records against the embedded record schema.
// Violations are reported as warning diagnostics, never as fatal errors.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles the embedded benchmark record schema.
func NewValidator() (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(benchmarkRecordSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile benchmark record schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// ValidateRecords validates each record and collects one diagnostic per
// schema violation.
func (v *Validator) ValidateRecords(records []types.BenchmarkRecord) ([]types.Diagnostic, error) {
	var diags []types.Diagnostic

	for _, record := range records {
		result, err := v.schema.Validate(gojsonschema.NewGoLoader(record.Fields))
		if err != nil {
			return nil, fmt.Errorf("schema validation failed for benchmark %q: %w", record.Name, err)
		}
		for _, violation := range result.Errors() {
			diags = append(diags, types.Warningf("benchmark %q: %s", record.Name, violation.String()))
		}
	}

	return diags, nil
}
