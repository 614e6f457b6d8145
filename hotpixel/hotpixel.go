// Package hotpixel implements the hot pixel (component C6 of the noding
// core): the small square region around a discovered intersection or
// vertex that every segment passing nearby gets snapped onto during snap
// rounding.
package hotpixel

import (
	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/intersect"
)

// HotPixel is the half-open square region
// [center.X-0.5/scale, center.X+0.5/scale) x [center.Y-0.5/scale, center.Y+0.5/scale)
// surrounding a snap-rounding grid point.
type HotPixel struct {
	Center coordinate.Coordinate
	Scale  float64
}

// New builds a HotPixel at center for the given grid scale.
func New(center coordinate.Coordinate, scale float64) HotPixel {
	return HotPixel{Center: center, Scale: scale}
}

// Envelope returns the pixel's bounding square, closed for the purposes of
// the cheap envelope-reject test (the half-open ownership rule is applied
// separately, in Intersects).
func (h HotPixel) Envelope() coordinate.Envelope {
	half := 0.5 / h.Scale
	return coordinate.Envelope{
		MinX: h.Center.X - half,
		MinY: h.Center.Y - half,
		MaxX: h.Center.X + half,
		MaxY: h.Center.Y + half,
	}
}

// contains reports whether q lies within the pixel's half-open square: the
// pixel owns its bottom and left edges and its interior, but not its top
// or right edges.
func (h HotPixel) contains(q coordinate.Coordinate) bool {
	half := 0.5 / h.Scale
	return q.X >= h.Center.X-half && q.X < h.Center.X+half &&
		q.Y >= h.Center.Y-half && q.Y < h.Center.Y+half
}

// Intersects reports whether segment [p0,p1] intersects the pixel, honoring
// the half-open ownership rule: a segment that only grazes the pixel's top
// or right edge does not count.
func (h HotPixel) Intersects(p0, p1 coordinate.Coordinate) bool {
	segEnv := coordinate.NewEnvelope(p0, p1)
	pixEnv := h.Envelope()
	if !segEnv.Intersects(pixEnv) {
		return false
	}

	if h.contains(p0) || h.contains(p1) {
		return true
	}

	corners := h.corners()

	var hasCCW, hasCW bool
	for _, c := range corners {
		switch coordinate.OrientationIndex(p0, p1, c, 0) {
		case coordinate.CounterClockwise:
			hasCCW = true
		case coordinate.Clockwise:
			hasCW = true
		}
	}
	if hasCCW && hasCW {
		// The segment's line separates two corners, so it crosses the
		// pixel's open interior, which is owned regardless of which edges
		// the segment enters and exits through.
		return true
	}
	if !hasCCW && !hasCW {
		return false
	}

	// No transversal crossing is possible, so the segment can only touch
	// the pixel by grazing one of its four edges. Only the bottom and
	// left edges are owned under the half-open rule.
	return h.touchesOwnedEdge(p0, p1, corners[0], corners[1], corners[1]) ||
		h.touchesOwnedEdge(p0, p1, corners[3], corners[0], corners[3])
}

// touchesOwnedEdge reports whether segment [p0,p1] touches the closed edge
// [edgeA,edgeB] anywhere other than at excluded, the edge's far corner that
// belongs to one of the pixel's unowned (top or right) edges too.
func (h HotPixel) touchesOwnedEdge(p0, p1, edgeA, edgeB, excluded coordinate.Coordinate) bool {
	pm := coordinate.NewFloatingPrecisionModel()
	result, _ := intersect.Compute(pm, p0, p1, edgeA, edgeB, 0)
	for _, pt := range result.Points {
		if !pt.Eq(excluded, 0) {
			return true
		}
	}
	return false
}

// corners returns the pixel's four corners, lower-left first, counter-
// clockwise, matching the half-open ownership convention used by contains.
func (h HotPixel) corners() [4]coordinate.Coordinate {
	half := 0.5 / h.Scale
	cx, cy := h.Center.X, h.Center.Y
	return [4]coordinate.Coordinate{
		coordinate.New(cx-half, cy-half),
		coordinate.New(cx+half, cy-half),
		coordinate.New(cx+half, cy+half),
		coordinate.New(cx-half, cy+half),
	}
}
