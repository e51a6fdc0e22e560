package raster

import "fmt"

// RasterizationError wraps any failure on the tree-to-image path with the
// stage it happened in. Callers surface it as a failed generation; no
// retry happens here.
type RasterizationError struct {
	Stage string
	Err   error
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("rasterization failed at %s: %v", e.Stage, e.Err)
}

func (e *RasterizationError) Unwrap() error { return e.Err }

func failure(stage string, err error) *RasterizationError {
	return &RasterizationError{Stage: stage, Err: err}
}
