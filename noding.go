// Package noding provides the robust noding core of a 2D computational-geometry
// library: a segment-string model, a monotone-chain spatial index, a robust
// line intersector, and a Hobby/Guibas-Marimont snap-rounding engine.
//
// # Overview
//
// Clients hand a set of segment strings (see [github.com/iancw/noding/segstring])
// and a precision model (see [github.com/iancw/noding/coordinate]) to a
// [github.com/iancw/noding/noder.Noder]. The noder produces a fully noded
// arrangement: a collection of substrings in which no two substrings share an
// interior point.
//
// # Packages
//
//   - coordinate: fixed-precision 2D coordinates, precision models, envelopes.
//   - intersect: the robust line intersector (C2).
//   - segstring: the segment-string model and noded-substring aggregation (C3).
//   - chain: monotone chains and the STR-packed spatial index (C4).
//   - noder: the single-pass MCIndex noder and segment-intersector strategies (C5).
//   - hotpixel: the hot-pixel segment/pixel predicate (C6).
//   - snapround: the three-phase snap-rounding engine (C7).
//   - scalednoder: the float-to-integer scaling wrapper (C8).
//   - validate: the noding postcondition validator (C9).
//   - geomerr: the tagged failure enum shared across all of the above.
//
// # Precision
//
// This library guarantees robustness only when every coordinate fed to the
// snap-rounding core has already been rounded to a uniform integer grid
// (scale >= 1). Floating-point input must be lifted into that domain first,
// either by the caller or by [github.com/iancw/noding/scalednoder.Noder].
package noding

import "sync/atomic"

// defaultEpsilon holds the package-wide tolerance returned by GetEpsilon.
var defaultEpsilon atomic.Value

func init() {
	defaultEpsilon.Store(1e-9)
	logDebugf("noding: default epsilon initialised")
}

// GetEpsilon returns the package-wide default epsilon (1e-9 unless changed
// by SetEpsilon). No package of this module reads it: the noders and
// intersector finders take their tolerance from options.WithEpsilon and use
// zero when none is given.
func GetEpsilon() float64 {
	return defaultEpsilon.Load().(float64)
}

// SetEpsilon overrides the package-wide default epsilon. A negative value is
// clamped to zero, disabling epsilon adjustment entirely.
func SetEpsilon(epsilon float64) {
	if epsilon < 0 {
		epsilon = 0
	}
	defaultEpsilon.Store(epsilon)
}
