package types

import "fmt"

// Diagnostic levels.
const (
	LevelWarning = "warning"
)

// Diagnostic is a recoverable condition reported alongside results. It is the
// side channel for conditions that must be visible to the user without
// aborting the run, such as dropped records or an empty benchmark
// intersection.
type Diagnostic struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Warningf builds a warning-level diagnostic.
func Warningf(format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Level:   LevelWarning,
		Message: fmt.Sprintf(format, args...),
	}
}
