package mxgraph

import "fmt"

// The error taxonomy is deliberately small and typed so callers can match
// with errors.As and decide whether corrected input is worth a retry. Every
// error here stems from invalid input; none are transient.

// InvalidShapeError reports a non-positive size or unrecognized shape or
// style kind, detected at construction time.
type InvalidShapeError struct {
	Name   string
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid shape %q: %s", e.Name, e.Reason)
}

// UnknownElementError reports a connector endpoint that names no element in
// the diagram. Detected before any markup is emitted.
type UnknownElementError struct {
	Name string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("connector references unknown element %q", e.Name)
}

// LayoutConstraintError reports layout parameters that cannot produce a
// collision-free placement, e.g. a grid too small for the element count or
// an empty cycle.
type LayoutConstraintError struct {
	Reason string
}

func (e *LayoutConstraintError) Error() string {
	return fmt.Sprintf("layout constraint violated: %s", e.Reason)
}
