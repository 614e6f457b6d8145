// Package snapround implements the snap-rounding noder (component C7): a
// Noder that guarantees every segment string it returns is fully noded onto
// a uniform integer grid, by construction rather than by validation.
//
// It runs three phases, in order, with no back-edges between them:
//
//  1. scanIntersections - run the C5 noder with IntersectionFinderAdder to
//     discover every interior intersection among the input segment strings.
//  2. snapToPixels - build a hot pixel around each discovered intersection
//     and record it on every segment it touches.
//  3. snapToVertices - build a hot pixel around every input vertex and
//     record it on every segment of every string (including its own) it
//     touches, so a vertex of one string that merely grazes another
//     string's segment still gets noded onto it.
package snapround

import (
	"github.com/google/btree"

	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/geomerr"
	"github.com/iancw/noding/hotpixel"
	"github.com/iancw/noding/noder"
	"github.com/iancw/noding/options"
	"github.com/iancw/noding/segstring"
)

// phase tracks where a Noder run is in the three-stage pipeline. It only
// ever advances forward.
type phase uint8

const (
	scanIntersections phase = iota
	snapToPixels
	snapToVertices
	done
)

// Noder snap-rounds a set of segment strings onto pm's grid. pm must be a
// Fixed precision model; every input vertex must already be precise under
// it (use scalednoder to scale arbitrary input onto an integer grid first).
type Noder struct {
	pm      coordinate.PrecisionModel
	epsilon float64

	segStrings []*segstring.SegmentString
	phase      phase
}

// New builds a snap-rounding Noder. Use [options.WithEpsilon] to set the
// tolerance the underlying robust intersector uses when deciding
// orientation; it defaults to zero.
func New(pm coordinate.PrecisionModel, opts ...options.NodingOptionsFunc) *Noder {
	o := options.Apply(options.NodingOptions{}, opts...)
	return &Noder{pm: pm, epsilon: o.Epsilon}
}

// ComputeNodes runs the full scan/snap-to-pixels/snap-to-vertices pipeline
// over segStrings, mutating each string's recorded intersections in place.
func (n *Noder) ComputeNodes(segStrings []*segstring.SegmentString) error {
	if n.pm.Type() != coordinate.Fixed {
		return geomerr.New(geomerr.PrecisionMismatch, "snap-rounding noder requires a Fixed precision model")
	}
	for i, ss := range segStrings {
		for _, c := range ss.Coordinates() {
			if !n.pm.IsPrecise(c.X) || !n.pm.IsPrecise(c.Y) {
				return geomerr.New(geomerr.PrecisionMismatch, "input vertex is not on the precision model's grid").
					WithCoordinate(c.X, c.Y).WithSegmentStringIndex(i)
			}
		}
	}

	n.segStrings = segStrings
	n.phase = scanIntersections

	intersections, err := n.scanIntersections()
	if err != nil {
		return err
	}

	n.phase = snapToPixels
	n.snapToPixels(intersections)

	n.phase = snapToVertices
	n.snapToVertices()

	n.phase = done
	return nil
}

// GetNodedSubstrings returns the fully noded substrings implied by the
// intersections recorded during ComputeNodes.
func (n *Noder) GetNodedSubstrings() []*segstring.SegmentString {
	subs, err := segstring.NodedSubstrings(n.segStrings)
	if err != nil {
		return nil
	}
	return subs
}

// scanIntersections runs the candidate-pair noder with an
// IntersectionFinderAdder and returns the distinct interior intersection
// coordinates it discovered, in a deterministic left-to-right, bottom-to-top
// order.
func (n *Noder) scanIntersections() ([]coordinate.Coordinate, *geomerr.Error) {
	finder := noder.NewIntersectionFinderAdder(n.pm, options.WithEpsilon(n.epsilon))
	inner := noder.NewMCIndexNoder(finder)
	if err := inner.ComputeNodes(n.segStrings); err != nil {
		if ge, ok := err.(*geomerr.Error); ok {
			return nil, ge
		}
		return nil, geomerr.New(geomerr.RobustnessFailure, err.Error())
	}

	less := func(a, b coordinate.Coordinate) bool {
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	}
	set := btree.NewG(32, less)
	for _, pt := range finder.Intersections {
		set.ReplaceOrInsert(pt)
	}

	ordered := make([]coordinate.Coordinate, 0, set.Len())
	set.Ascend(func(pt coordinate.Coordinate) bool {
		ordered = append(ordered, pt)
		return true
	})
	return ordered, nil
}

// snapToPixels records each discovered intersection on every segment of
// every string it is a hot pixel for.
func (n *Noder) snapToPixels(intersections []coordinate.Coordinate) {
	scale := n.pm.Scale()
	for _, pt := range intersections {
		px := hotpixel.New(pt, scale)
		for _, ss := range n.segStrings {
			for i := 0; i < ss.SegmentCount(); i++ {
				if px.Intersects(ss.SegmentStart(i), ss.SegmentEnd(i)) {
					ss.AddIntersection(pt, i)
				}
			}
		}
	}
}

// snapToVertices records every input vertex on every segment (of every
// string, including its own) that passes through the vertex's hot pixel, so that a vertex
// which merely grazes a foreign segment still gets noded onto it. s0 == s1
// is allowed, mirroring the candidate-pair noder's self-pairing: a vertex
// is still tested against the rest of its own string's segments, skipping
// only the two segments it already terminates.
func (n *Noder) snapToVertices() {
	scale := n.pm.Scale()
	for i0, s0 := range n.segStrings {
		for vi := 0; vi < s0.Size(); vi++ {
			v := s0.GetCoordinate(vi)
			px := hotpixel.New(v, scale)

			for i1, s1 := range n.segStrings {
				for j := 0; j < s1.SegmentCount(); j++ {
					if i0 == i1 && (j == vi || j+1 == vi) {
						continue
					}
					if !px.Intersects(s1.SegmentStart(j), s1.SegmentEnd(j)) {
						continue
					}
					s1.AddIntersection(v, j)
				}
			}
		}
	}
}

var _ noder.Noder = (*Noder)(nil)
