package types

import "fmt"

// NotFoundError indicates that an input path does not resolve to a readable
// document. Fatal, exit code 1.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("benchmark file %q not found: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError indicates that a document is not valid JSON. Fatal, exit code 1.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError indicates invalid run parameters, such as a non-positive
// threshold. Fatal, exit code 1, raised before any benchmark data is read.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
