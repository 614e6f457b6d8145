// Package chain implements component C4 of the noding core: monotone
// chains and the STR-packed spatial index used to find candidate
// intersection pairs among them without an O(n^2) scan.
//
// A MonotoneChain is a maximal run of consecutive segments that does not
// change direction quadrant (the JTS "monotone chain" construction). Two
// chains whose envelopes don't overlap cannot intersect, so grouping
// segments into chains and indexing the chains by envelope lets a noder
// prune the vast majority of segment pairs before ever calling the
// intersector.
package chain

import (
	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/geomerr"
)

// Quadrant classifies the direction of a two-point vector into one of four
// compass quadrants, used to detect where a chain must split.
type Quadrant uint8

const (
	NE Quadrant = iota
	NW
	SW
	SE
)

func quadrant(p0, p1 coordinate.Coordinate) Quadrant {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if dx >= 0 {
		if dy >= 0 {
			return NE
		}
		return SE
	}
	if dy >= 0 {
		return NW
	}
	return SW
}

// MonotoneChain is a maximal run of coords whose consecutive segments all
// fall in the same direction quadrant, carried alongside the envelope that
// bounds it and an opaque context (typically the owning segment string and
// starting segment index) used to recover which original segment an
// intersection point belongs to.
type MonotoneChain struct {
	Coords   []coordinate.Coordinate
	Envelope coordinate.Envelope
	Context  any

	// StartIndex is the index into the original coordinate slice passed to
	// Build where this chain's first vertex (Coords[0]) came from, letting
	// callers recover the original segment index of any Coords[i] boundary.
	StartIndex int
}

// SegmentCount returns the number of segments the chain covers.
func (c *MonotoneChain) SegmentCount() int {
	return len(c.Coords) - 1
}

// Overlaps reports whether c's envelope overlaps other's.
func (c *MonotoneChain) Overlaps(other *MonotoneChain) bool {
	return c.Envelope.Intersects(other.Envelope)
}

// Build splits coords into monotone chains, tagging every chain with the
// given context.
func Build(coords []coordinate.Coordinate, context any) ([]*MonotoneChain, *geomerr.Error) {
	if len(coords) < 2 {
		return nil, geomerr.New(geomerr.InvalidInput, "chain requires at least two coordinates")
	}

	var chains []*MonotoneChain
	start := 0
	for start < len(coords)-1 {
		end := findChainEnd(coords, start)
		chainCoords := coords[start : end+1]
		chains = append(chains, &MonotoneChain{
			Coords:     chainCoords,
			Envelope:   coordinate.NewEnvelopeFromCoordinates(chainCoords),
			Context:    context,
			StartIndex: start,
		})
		start = end
	}
	return chains, nil
}

// findChainEnd returns the index of the last vertex belonging to the chain
// that starts at coords[start].
func findChainEnd(coords []coordinate.Coordinate, start int) int {
	if start >= len(coords)-2 {
		return len(coords) - 1
	}
	q := quadrant(coords[start], coords[start+1])
	last := start + 1
	for last < len(coords)-1 {
		if quadrant(coords[last], coords[last+1]) != q {
			break
		}
		last++
	}
	return last
}
