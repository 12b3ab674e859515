package generator

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bench-compare/runner/types"
)

// WriteJSONReport serializes the full structured report to a file. Results
// keep their canonical name ordering and untruncated names.
func WriteJSONReport(path string, report *types.ComparisonReport) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON report %q: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to write JSON report %q: %w", path, err)
	}

	return nil
}
