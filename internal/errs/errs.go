// Package errs defines the error taxonomy of the pipeline: load/validation
// failures, degenerate analysis results, and artifact write failures.
package errs

import "fmt"

// DataError reports a load or validation failure. Fatal to the run.
type DataError struct {
	Op   string
	Path string
	Err  error
}

func (e *DataError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("data error in %s (%s): %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("data error in %s: %v", e.Op, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// NewDataError wraps err as a load/validation failure.
func NewDataError(op, path string, err error) *DataError {
	return &DataError{Op: op, Path: path, Err: err}
}

// AnalysisError reports an unexpected empty or degenerate aggregate.
// Fatal to the run.
type AnalysisError struct {
	Op  string
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis error in %s: %v", e.Op, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// NewAnalysisError wraps err as an analysis failure.
func NewAnalysisError(op string, err error) *AnalysisError {
	return &AnalysisError{Op: op, Err: err}
}

// RenderError reports a failure producing one output artifact. Rendering is
// best-effort: a RenderError never aborts the run, it is collected into the
// run summary instead.
type RenderError struct {
	Artifact string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error for %s: %v", e.Artifact, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// NewRenderError wraps err as an artifact render failure.
func NewRenderError(artifact string, err error) *RenderError {
	return &RenderError{Artifact: artifact, Err: err}
}
