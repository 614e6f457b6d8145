// Package options implements the functional-options pattern used throughout
// the noding core to configure optional, rarely-changed parameters (an
// epsilon tolerance, an early-termination flag) without growing every
// function's positional parameter list.
package options

// NodingOptionsFunc modifies a [NodingOptions] value. Functions that accept
// a variadic slice of NodingOptionsFunc allow callers to customize behavior
// without changing the primary function signature.
type NodingOptionsFunc func(*NodingOptions)

// NodingOptions holds the configurable parameters recognised across the
// noding core.
type NodingOptions struct {
	// Epsilon is the tolerance used by robustness helpers (orientation
	// tests, envelope comparisons). Zero disables epsilon adjustment.
	Epsilon float64

	// CheckEndSegmentsOnly restricts InteriorIntersectionFinder's work to
	// end-segments of each segment string, valid only when the caller has
	// already guaranteed interior nodedness upstream.
	CheckEndSegmentsOnly bool
}

// Apply applies opts to defaults in order and returns the resulting value.
func Apply(defaults NodingOptions, opts ...NodingOptionsFunc) NodingOptions {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// WithEpsilon sets the Epsilon field. A negative epsilon is clamped to zero.
func WithEpsilon(epsilon float64) NodingOptionsFunc {
	return func(o *NodingOptions) {
		if epsilon < 0 {
			epsilon = 0
		}
		o.Epsilon = epsilon
	}
}

// WithEndSegmentsOnly enables or disables CheckEndSegmentsOnly.
func WithEndSegmentsOnly(only bool) NodingOptionsFunc {
	return func(o *NodingOptions) {
		o.CheckEndSegmentsOnly = only
	}
}
