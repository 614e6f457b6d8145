package noder

import (
	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/intersect"
	"github.com/iancw/noding/options"
	"github.com/iancw/noding/segstring"
)

// IntersectionFinderAdder runs the robust line intersector over every
// candidate pair it is handed and, for every interior intersection, records
// the point on both participating segment strings.
type IntersectionFinderAdder struct {
	pm      coordinate.PrecisionModel
	epsilon float64

	// Intersections accumulates every interior intersection coordinate
	// found across the run, in discovery order. A point found by several
	// segment pairs appears once per pair.
	Intersections []coordinate.Coordinate

	found bool
}

// NewIntersectionFinderAdder builds an IntersectionFinderAdder that rounds
// every discovered intersection through pm. Use [options.WithEpsilon] to set
// the tolerance the underlying intersector uses when deciding orientation;
// it defaults to zero.
func NewIntersectionFinderAdder(pm coordinate.PrecisionModel, opts ...options.NodingOptionsFunc) *IntersectionFinderAdder {
	o := options.Apply(options.NodingOptions{}, opts...)
	return &IntersectionFinderAdder{pm: pm, epsilon: o.Epsilon}
}

// ProcessIntersections computes the intersection of segment i of ss0 and
// segment j of ss1 and, if it is an interior intersection, records it on
// both strings.
func (f *IntersectionFinderAdder) ProcessIntersections(ss0 *segstring.SegmentString, i int, ss1 *segstring.SegmentString, j int) {
	a0, a1 := ss0.SegmentStart(i), ss0.SegmentEnd(i)
	b0, b1 := ss1.SegmentStart(j), ss1.SegmentEnd(j)

	result, err := intersect.Compute(f.pm, a0, a1, b0, b1, f.epsilon)
	if err != nil || !result.HasIntersection() || !result.Interior {
		return
	}
	if onlyAtSharedAdjacentVertex(ss0, i, ss1, j, result.Points) {
		return
	}

	for _, pt := range result.Points {
		ss0.AddIntersection(pt, i)
		ss1.AddIntersection(pt, j)
		f.Intersections = append(f.Intersections, pt)
	}
	f.found = true
}

// IsDone always returns false: IntersectionFinderAdder must see every
// candidate pair to build a complete intersection set.
func (f *IntersectionFinderAdder) IsDone() bool {
	return false
}

// Found reports whether any interior intersection has been recorded so
// far.
func (f *IntersectionFinderAdder) Found() bool {
	return f.found
}

// InteriorIntersectionFinder stops at the first interior intersection it
// finds, for use as a cheap validity check rather than a full noding pass.
type InteriorIntersectionFinder struct {
	pm      coordinate.PrecisionModel
	epsilon float64

	// checkEndSegmentsOnly restricts the search to each string's first and
	// last segment, appropriate when upstream processing has already
	// guaranteed interior nodedness and only the string endpoints remain
	// suspect. Set via [options.WithEndSegmentsOnly].
	checkEndSegmentsOnly bool

	found    bool
	hitPoint coordinate.Coordinate
}

// NewInteriorIntersectionFinder builds an InteriorIntersectionFinder that
// rounds through pm. Use [options.WithEpsilon] and
// [options.WithEndSegmentsOnly] to configure it.
func NewInteriorIntersectionFinder(pm coordinate.PrecisionModel, opts ...options.NodingOptionsFunc) *InteriorIntersectionFinder {
	o := options.Apply(options.NodingOptions{}, opts...)
	return &InteriorIntersectionFinder{pm: pm, epsilon: o.Epsilon, checkEndSegmentsOnly: o.CheckEndSegmentsOnly}
}

// ProcessIntersections checks segment i of ss0 against segment j of ss1,
// recording the first interior intersection found.
func (f *InteriorIntersectionFinder) ProcessIntersections(ss0 *segstring.SegmentString, i int, ss1 *segstring.SegmentString, j int) {
	if f.found {
		return
	}
	if f.checkEndSegmentsOnly && !isEndSegment(ss0, i) && !isEndSegment(ss1, j) {
		return
	}

	a0, a1 := ss0.SegmentStart(i), ss0.SegmentEnd(i)
	b0, b1 := ss1.SegmentStart(j), ss1.SegmentEnd(j)

	result, err := intersect.Compute(f.pm, a0, a1, b0, b1, f.epsilon)
	if err != nil || !result.HasIntersection() || !result.Interior {
		return
	}
	if onlyAtSharedAdjacentVertex(ss0, i, ss1, j, result.Points) {
		return
	}

	f.found = true
	f.hitPoint = result.Points[0]
}

// IsDone reports whether an interior intersection has already been found.
func (f *InteriorIntersectionFinder) IsDone() bool {
	return f.found
}

// HasIntersection reports whether any interior intersection was found.
func (f *InteriorIntersectionFinder) HasIntersection() bool {
	return f.found
}

// IntersectionPoint returns the first interior intersection point found,
// valid only when HasIntersection is true.
func (f *InteriorIntersectionFinder) IntersectionPoint() coordinate.Coordinate {
	return f.hitPoint
}

func isEndSegment(ss *segstring.SegmentString, segIndex int) bool {
	return segIndex == 0 || segIndex == ss.SegmentCount()-1
}

// onlyAtSharedAdjacentVertex reports whether i and j are adjacent segments
// of the same segment string and every point in points falls on the vertex
// they already share. Such a point is never recorded as a fresh interior
// intersection, since that vertex is already part of both segments' noding.
func onlyAtSharedAdjacentVertex(ss0 *segstring.SegmentString, i int, ss1 *segstring.SegmentString, j int, points []coordinate.Coordinate) bool {
	if ss0 != ss1 {
		return false
	}

	var shared coordinate.Coordinate
	switch {
	case j == i+1:
		shared = ss0.SegmentEnd(i)
	case i == j+1:
		shared = ss0.SegmentEnd(j)
	default:
		return false
	}

	for _, pt := range points {
		if !pt.Eq(shared, 0) {
			return false
		}
	}
	return true
}
