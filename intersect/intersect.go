// Package intersect implements the robust line intersector (component C2 of
// the noding core): given two closed segments, it classifies their
// intersection and returns the intersection coordinate(s), every numerical
// result rounded through the active [coordinate.PrecisionModel].
//
// The algorithm follows five steps, mirroring the structure the rest of the
// noding core (hot pixels, snap rounding) assumes:
//
//  1. envelope reject: disjoint bounding boxes mean no intersection.
//  2. orientation test: using [coordinate.OrientationIndex], reject when both
//     endpoints of one segment lie strictly on the same side of the other.
//  3. collinear branch: all four orientations zero.
//  4. proper-point branch: all four orientations nonzero; solve via a
//     translate-to-origin, cross-product formulation to limit cancellation.
//  5. improper branch: exactly one endpoint lies on the other segment.
package intersect

import (
	"math"

	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/geomerr"
)

// Kind classifies the result of intersecting two closed segments.
type Kind uint8

const (
	// NoIntersection indicates the segments share no point.
	NoIntersection Kind = iota

	// PointIntersection indicates the segments share exactly one point.
	PointIntersection

	// CollinearIntersection indicates the segments are collinear and share
	// a (possibly degenerate) sub-segment.
	CollinearIntersection
)

// String returns the Kind's name.
func (k Kind) String() string {
	switch k {
	case NoIntersection:
		return "NoIntersection"
	case PointIntersection:
		return "PointIntersection"
	case CollinearIntersection:
		return "CollinearIntersection"
	default:
		return "Unknown"
	}
}

// Result is the outcome of intersecting two closed segments [a0,a1] and
// [b0,b1].
type Result struct {
	Kind Kind

	// Points holds 0, 1, or 2 coordinates: empty for NoIntersection, one
	// coordinate for PointIntersection, and the two endpoints of the shared
	// sub-segment for CollinearIntersection.
	Points []coordinate.Coordinate

	// Proper is true when the intersection point is interior to both
	// segments (not equal to any endpoint of either).
	Proper bool

	// Interior is true when the intersection point lies in the interior of
	// at least one of the two segments.
	Interior bool
}

// HasIntersection reports whether the segments share any point.
func (r Result) HasIntersection() bool {
	return r.Kind != NoIntersection
}

// IntersectionNum returns 0, 1, or 2: the number of distinct intersection
// coordinates carried by r.
func (r Result) IntersectionNum() int {
	return len(r.Points)
}

// Compute classifies the intersection of closed segments [a0,a1] and
// [b0,b1] under the given precision model and epsilon.
func Compute(pm coordinate.PrecisionModel, a0, a1, b0, b1 coordinate.Coordinate, epsilon float64) (Result, *geomerr.Error) {
	envA := coordinate.NewEnvelope(a0, a1)
	envB := coordinate.NewEnvelope(b0, b1)
	if !envA.Intersects(envB) {
		return Result{Kind: NoIntersection}, nil
	}

	o1 := coordinate.OrientationIndex(a0, a1, b0, epsilon)
	o2 := coordinate.OrientationIndex(a0, a1, b1, epsilon)
	if o1 != coordinate.Collinear && o1 == o2 {
		return Result{Kind: NoIntersection}, nil
	}

	o3 := coordinate.OrientationIndex(b0, b1, a0, epsilon)
	o4 := coordinate.OrientationIndex(b0, b1, a1, epsilon)
	if o3 != coordinate.Collinear && o3 == o4 {
		return Result{Kind: NoIntersection}, nil
	}

	allCollinear := o1 == coordinate.Collinear && o2 == coordinate.Collinear &&
		o3 == coordinate.Collinear && o4 == coordinate.Collinear
	if allCollinear {
		return computeCollinear(pm, a0, a1, b0, b1)
	}

	anyCollinear := o1 == coordinate.Collinear || o2 == coordinate.Collinear ||
		o3 == coordinate.Collinear || o4 == coordinate.Collinear
	if anyCollinear {
		return computeImproper(pm, a0, a1, b0, b1, o1, o2, o3, o4)
	}

	return computeProper(pm, a0, a1, b0, b1)
}

func computeCollinear(pm coordinate.PrecisionModel, a0, a1, b0, b1 coordinate.Coordinate) (Result, *geomerr.Error) {
	// Project onto whichever axis has the larger extent to avoid dividing
	// by a near-zero span.
	useX := math.Abs(a1.X-a0.X) >= math.Abs(a1.Y-a0.Y)

	key := func(c coordinate.Coordinate) float64 {
		if useX {
			return c.X
		}
		return c.Y
	}

	aLo, aHi := order(a0, a1, key)
	bLo, bHi := order(b0, b1, key)

	lo := aLo
	if key(bLo) > key(aLo) {
		lo = bLo
	}
	hi := aHi
	if key(bHi) < key(aHi) {
		hi = bHi
	}

	if key(lo) > key(hi) {
		return Result{Kind: NoIntersection}, nil
	}

	p0 := pm.MakeCoordinatePrecise(lo)
	p1 := pm.MakeCoordinatePrecise(hi)

	interior := false
	for _, p := range []coordinate.Coordinate{p0, p1} {
		endOfA := p.Eq(a0, 0) || p.Eq(a1, 0)
		endOfB := p.Eq(b0, 0) || p.Eq(b1, 0)
		if !endOfA || !endOfB {
			interior = true
		}
	}
	return Result{
		Kind:     CollinearIntersection,
		Points:   []coordinate.Coordinate{p0, p1},
		Proper:   false,
		Interior: interior,
	}, nil
}

func order(p, q coordinate.Coordinate, key func(coordinate.Coordinate) float64) (lo, hi coordinate.Coordinate) {
	if key(p) <= key(q) {
		return p, q
	}
	return q, p
}

func computeImproper(pm coordinate.PrecisionModel, a0, a1, b0, b1 coordinate.Coordinate, o1, o2, o3, o4 coordinate.Orientation) (Result, *geomerr.Error) {
	var pt coordinate.Coordinate
	switch {
	case o1 == coordinate.Collinear && onSegment(b0, a0, a1):
		pt = b0
	case o2 == coordinate.Collinear && onSegment(b1, a0, a1):
		pt = b1
	case o3 == coordinate.Collinear && onSegment(a0, b0, b1):
		pt = a0
	case o4 == coordinate.Collinear && onSegment(a1, b0, b1):
		pt = a1
	default:
		return Result{Kind: NoIntersection}, nil
	}

	pt = pm.MakeCoordinatePrecise(pt)
	isEndpointOfA := pt.Eq(a0, 0) || pt.Eq(a1, 0)
	isEndpointOfB := pt.Eq(b0, 0) || pt.Eq(b1, 0)

	return Result{
		Kind:     PointIntersection,
		Points:   []coordinate.Coordinate{pt},
		Proper:   false,
		Interior: !isEndpointOfA || !isEndpointOfB,
	}, nil
}

// onSegment reports whether c lies within the closed envelope of [p,q],
// given that c has already been shown collinear with the line through p, q.
func onSegment(c, p, q coordinate.Coordinate) bool {
	return coordinate.NewEnvelope(p, q).ContainsCoordinate(c)
}

func computeProper(pm coordinate.PrecisionModel, a0, a1, b0, b1 coordinate.Coordinate) (Result, *geomerr.Error) {
	// Translate so that the segment with the smaller envelope sits at the
	// origin, then solve for the intersection parameter along A using the
	// cross-product formulation. Translation removes the dominant source of
	// cancellation error for coordinates far from the origin.
	origin := a0
	if envelopeSize(b0, b1) < envelopeSize(a0, a1) {
		origin = b0
	}

	pa0 := a0.Sub(origin)
	pa1 := a1.Sub(origin)
	pb0 := b0.Sub(origin)
	pb1 := b1.Sub(origin)

	da := pa1.Sub(pa0)
	db := pb1.Sub(pb0)

	denom := da.CrossProduct(db)
	if denom == 0 {
		// The caller has already ruled out the all-collinear and
		// any-collinear branches via OrientationIndex, so the lines should
		// never be parallel here. A zero denominator means the orientation
		// test and this determinant disagreed, which should never happen
		// for a correct robust predicate.
		return Result{}, geomerr.New(geomerr.RobustnessFailure, "orientation test and intersection determinant disagree on parallelism")
	}

	diff := pb0.Sub(pa0)
	t := diff.CrossProduct(db) / denom
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	pt := pa0.Add(da.Scale(coordinate.Coordinate{}, t)).Add(origin)
	pt = pm.MakeCoordinatePrecise(pt)

	return Result{
		Kind:     PointIntersection,
		Points:   []coordinate.Coordinate{pt},
		Proper:   true,
		Interior: true,
	}, nil
}

func envelopeSize(p, q coordinate.Coordinate) float64 {
	e := coordinate.NewEnvelope(p, q)
	return (e.MaxX - e.MinX) + (e.MaxY - e.MinY)
}
