// Package noder implements the single-pass noder (component C5 of the
// noding core): it finds every candidate pair of segments across a
// collection of segment strings using the chain spatial index, then hands
// each pair to a pluggable strategy that decides what to do with the
// result.
package noder

import (
	"github.com/iancw/noding/chain"
	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/segstring"
)

// Noder computes the noded form of a set of segment strings.
type Noder interface {
	ComputeNodes(segStrings []*segstring.SegmentString) error
	GetNodedSubstrings() []*segstring.SegmentString
}

// SegmentIntersector is the noder's strategy plug-in point: it is handed
// every candidate segment pair the spatial index could not rule out, and
// decides what to do with it.
type SegmentIntersector interface {
	// ProcessIntersections observes one candidate segment pair: segment i
	// of ss0 against segment j of ss1.
	ProcessIntersections(ss0 *segstring.SegmentString, i int, ss1 *segstring.SegmentString, j int)

	// IsDone reports whether the noder may stop driving further pairs to
	// this intersector.
	IsDone() bool
}

// MCIndexNoder drives a SegmentIntersector over every segment pair whose
// monotone chains the STR-packed index cannot rule out by envelope alone.
type MCIndexNoder struct {
	intersector SegmentIntersector
	segStrings  []*segstring.SegmentString
}

// NewMCIndexNoder builds a noder that reports every candidate pair to
// intersector.
func NewMCIndexNoder(intersector SegmentIntersector) *MCIndexNoder {
	return &MCIndexNoder{intersector: intersector}
}

// ComputeNodes builds monotone chains for every segment string, indexes
// them, and drives the configured SegmentIntersector over every candidate
// pair the index turns up.
func (n *MCIndexNoder) ComputeNodes(segStrings []*segstring.SegmentString) error {
	n.segStrings = segStrings

	var allChains []*chain.MonotoneChain
	for _, ss := range segStrings {
		chains, cErr := chain.Build(ss.Coordinates(), ss)
		if cErr != nil {
			return cErr
		}
		allChains = append(allChains, chains...)
	}

	ordinal := make(map[*chain.MonotoneChain]int, len(allChains))
	for i, c := range allChains {
		ordinal[c] = i
	}

	index := chain.NewIndex(allChains)

	for i, c := range allChains {
		if n.intersector.IsDone() {
			break
		}
		for _, d := range index.Query(c.Envelope) {
			if ordinal[d] < i {
				continue
			}
			if n.intersector.IsDone() {
				break
			}
			processChainOverlaps(c, d, 0, c.SegmentCount(), 0, d.SegmentCount(), n.intersector)
		}
	}

	return nil
}

// GetNodedSubstrings returns every substring implied by the intersections
// recorded on the segment strings ComputeNodes was last run over.
func (n *MCIndexNoder) GetNodedSubstrings() []*segstring.SegmentString {
	subs, err := segstring.NodedSubstrings(n.segStrings)
	if err != nil {
		return nil
	}
	return subs
}

// processChainOverlaps recursively bisects the [startA,endA) and
// [startB,endB) segment ranges of chains a and b, pruning any half whose
// envelope cannot overlap the other side, down to individual segment
// pairs: alternating midpoint subdivision.
func processChainOverlaps(a, b *chain.MonotoneChain, startA, endA, startB, endB int, intersector SegmentIntersector) {
	if intersector.IsDone() {
		return
	}

	leafA := endA-startA == 1
	leafB := endB-startB == 1

	if leafA && leafB {
		ssA, _ := a.Context.(*segstring.SegmentString)
		ssB, _ := b.Context.(*segstring.SegmentString)
		segA := a.StartIndex + startA
		segB := b.StartIndex + startB
		if ssA == ssB && segA == segB {
			return
		}
		intersector.ProcessIntersections(ssA, segA, ssB, segB)
		return
	}

	if !chainRangeEnvelope(a, startA, endA).Intersects(chainRangeEnvelope(b, startB, endB)) {
		return
	}

	switch {
	case leafA:
		midB := (startB + endB) / 2
		processChainOverlaps(a, b, startA, endA, startB, midB, intersector)
		processChainOverlaps(a, b, startA, endA, midB, endB, intersector)
	case leafB:
		midA := (startA + endA) / 2
		processChainOverlaps(a, b, startA, midA, startB, endB, intersector)
		processChainOverlaps(a, b, midA, endA, startB, endB, intersector)
	default:
		midA := (startA + endA) / 2
		midB := (startB + endB) / 2
		processChainOverlaps(a, b, startA, midA, startB, midB, intersector)
		processChainOverlaps(a, b, startA, midA, midB, endB, intersector)
		processChainOverlaps(a, b, midA, endA, startB, midB, intersector)
		processChainOverlaps(a, b, midA, endA, midB, endB, intersector)
	}
}

// chainRangeEnvelope computes the bounding envelope of the vertices
// covering segments [start,end) of chain c.
func chainRangeEnvelope(c *chain.MonotoneChain, start, end int) coordinate.Envelope {
	return coordinate.NewEnvelopeFromCoordinates(c.Coords[start : end+1])
}
