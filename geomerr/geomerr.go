// Package geomerr defines the tagged failure enum used across the noding
// core in place of exceptions for control flow. Every fallible operation
// returns a *geomerr.Error (or nil) rather than panicking; the noder never
// retries on its own.
package geomerr

import "fmt"

// Kind identifies the category of a noding failure.
type Kind uint8

const (
	// InvalidInput indicates a segment string with fewer than 2 distinct
	// points, a non-finite ordinate, or a negative precision-model scale.
	InvalidInput Kind = iota

	// PrecisionMismatch indicates non-integer vertices were fed to the
	// snap-rounding engine without a scaling wrapper, or the engine was
	// given a precision model other than Fixed.
	PrecisionMismatch

	// TopologyCollapse indicates the validator (or a downstream consumer)
	// detected that rounding merged independent components.
	TopologyCollapse

	// RobustnessFailure indicates the intersector produced mutually
	// inconsistent orientation signs. This should never happen with a
	// correct robust predicate; it is a defensive diagnostic.
	RobustnessFailure
)

// String returns the Kind's name.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case PrecisionMismatch:
		return "PrecisionMismatch"
	case TopologyCollapse:
		return "TopologyCollapse"
	case RobustnessFailure:
		return "RobustnessFailure"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Coordinate is a minimal (X, Y) pair, duplicated here rather than imported
// from package coordinate so that geomerr has no dependency on the rest of
// the noding core and can be imported from any layer, including coordinate
// itself.
type Coordinate struct {
	X, Y float64
}

// Error is the value returned by fallible noding operations. It carries
// enough context (offending coordinate, segment-string index) for a caller
// to report or act on the failure without re-deriving it.
type Error struct {
	Kind               Kind
	Message            string
	Coordinate         *Coordinate
	SegmentStringIndex int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Coordinate != nil {
		return fmt.Sprintf("noding: %s: %s (at %v, segment string #%d)", e.Kind, e.Message, *e.Coordinate, e.SegmentStringIndex)
	}
	return fmt.Sprintf("noding: %s: %s", e.Kind, e.Message)
}

// New builds a bare Error with no coordinate or segment-string context.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithCoordinate returns a copy of e annotated with the offending coordinate.
func (e *Error) WithCoordinate(x, y float64) *Error {
	cp := *e
	c := Coordinate{X: x, Y: y}
	cp.Coordinate = &c
	return &cp
}

// WithSegmentStringIndex returns a copy of e annotated with the index of the
// failing segment string.
func (e *Error) WithSegmentStringIndex(index int) *Error {
	cp := *e
	cp.SegmentStringIndex = index
	return &cp
}
