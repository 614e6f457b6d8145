// Package segstring implements the noding core's segment string (component
// C3): an ordered vertex chain carrying an opaque data payload, plus the
// accumulation of intersection points discovered against it during noding.
//
// Apart from [SegmentString.SetCoordinates], which scalednoder uses to
// rescale output, a SegmentString never rewrites its own vertex list in place. Intersections
// are recorded separately, keyed by which segment of the chain they fall on
// and how far along that segment, then [NodedSubstrings] replays the
// original vertices together with the recorded intersections, in order, to
// produce the final noded chains.
package segstring

import (
	"sort"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/geomerr"
)

// SegmentString is an ordered chain of coordinates together with an opaque
// data payload carried through noding unchanged.
type SegmentString struct {
	coords        []coordinate.Coordinate
	data          any
	intersections *rbt.Tree
}

// intersectionKey orders recorded intersections first by which segment of
// the chain they belong to, then by how far along that segment they fall.
type intersectionKey struct {
	segmentIndex int
	t            float64
}

func intersectionComparator(a, b interface{}) int {
	ka := a.(intersectionKey)
	kb := b.(intersectionKey)
	if ka.segmentIndex != kb.segmentIndex {
		if ka.segmentIndex < kb.segmentIndex {
			return -1
		}
		return 1
	}
	switch {
	case ka.t < kb.t:
		return -1
	case ka.t > kb.t:
		return 1
	default:
		return 0
	}
}

// New builds a SegmentString from an ordered vertex chain and an opaque
// data payload. At least two distinct coordinates are required.
func New(coords []coordinate.Coordinate, data any) (*SegmentString, *geomerr.Error) {
	if len(coords) < 2 {
		return nil, geomerr.New(geomerr.InvalidInput, "segment string requires at least two coordinates")
	}
	allEqual := true
	for _, c := range coords[1:] {
		if !c.Eq(coords[0], 0) {
			allEqual = false
			break
		}
	}
	if allEqual {
		return nil, geomerr.New(geomerr.InvalidInput, "segment string requires at least two distinct coordinates")
	}

	cp := make([]coordinate.Coordinate, len(coords))
	copy(cp, coords)

	return &SegmentString{
		coords:        cp,
		data:          data,
		intersections: rbt.NewWith(intersectionComparator),
	}, nil
}

// Coordinates returns the original, unmodified vertex chain.
func (s *SegmentString) Coordinates() []coordinate.Coordinate {
	return s.coords
}

// SetCoordinates overwrites s's vertex chain in place, leaving its data
// payload and any recorded intersections untouched. It exists for
// scalednoder's rescale step, which needs to move a noded substring's
// endpoints back into the caller's coordinate space without disturbing its
// identity; ordinary noding never calls it. replacement must have the same
// length as the chain it replaces.
func (s *SegmentString) SetCoordinates(replacement []coordinate.Coordinate) {
	copy(s.coords, replacement)
}

// Data returns the opaque payload supplied at construction.
func (s *SegmentString) Data() any {
	return s.data
}

// Size returns the number of vertices in the chain.
func (s *SegmentString) Size() int {
	return len(s.coords)
}

// SegmentCount returns the number of segments in the chain.
func (s *SegmentString) SegmentCount() int {
	return len(s.coords) - 1
}

// IsClosed reports whether the first and last vertices coincide.
func (s *SegmentString) IsClosed() bool {
	return s.coords[0].Eq(s.coords[len(s.coords)-1], 0)
}

// GetCoordinate returns the vertex at index i.
func (s *SegmentString) GetCoordinate(i int) coordinate.Coordinate {
	return s.coords[i]
}

// SegmentStart returns the start coordinate of the segment at segmentIndex.
func (s *SegmentString) SegmentStart(segmentIndex int) coordinate.Coordinate {
	return s.coords[segmentIndex]
}

// SegmentEnd returns the end coordinate of the segment at segmentIndex.
func (s *SegmentString) SegmentEnd(segmentIndex int) coordinate.Coordinate {
	return s.coords[segmentIndex+1]
}

// AddIntersection records pt as an intersection lying on the segment at
// segmentIndex. The parameter t (pt's fractional distance from the
// segment's start to its end) is computed here so that [NodedSubstrings]
// can later replay intersections for a segment in chain order.
func (s *SegmentString) AddIntersection(pt coordinate.Coordinate, segmentIndex int) {
	start := s.SegmentStart(segmentIndex)
	end := s.SegmentEnd(segmentIndex)

	t := segmentParameter(start, end, pt)
	key := intersectionKey{segmentIndex: segmentIndex, t: t}
	s.intersections.Put(key, pt)
}

// AddIntersections records every point in pts as lying on the segment at
// segmentIndex.
func (s *SegmentString) AddIntersections(pts []coordinate.Coordinate, segmentIndex int) {
	for _, pt := range pts {
		s.AddIntersection(pt, segmentIndex)
	}
}

// segmentParameter returns how far along [start,end] pt falls, as a
// fraction in [0,1] clamped against the segment's dominant axis.
func segmentParameter(start, end, pt coordinate.Coordinate) float64 {
	dx := end.X - start.X
	dy := end.Y - start.Y

	var t float64
	if dx*dx >= dy*dy {
		if dx == 0 {
			return 0
		}
		t = (pt.X - start.X) / dx
	} else {
		if dy == 0 {
			return 0
		}
		t = (pt.Y - start.Y) / dy
	}

	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}

// NodedSubstrings splits s at every original vertex and every recorded
// intersection and returns the resulting two-point noded substrings, in
// chain order, each inheriting s's data payload.
// Adjacent duplicate vertices introduced by intersections landing exactly on
// existing chain vertices are collapsed.
func (s *SegmentString) NodedSubstrings() ([]*SegmentString, *geomerr.Error) {
	nodedVertices := s.allVerticesInOrder()

	var result []*SegmentString
	for i := 0; i < len(nodedVertices)-1; i++ {
		pair := []coordinate.Coordinate{nodedVertices[i], nodedVertices[i+1]}
		if pair[0].Eq(pair[1], 0) {
			continue
		}
		ss, err := New(pair, s.data)
		if err != nil {
			return nil, err
		}
		result = append(result, ss)
	}
	return result, nil
}

// allVerticesInOrder interleaves s's original vertices with its recorded
// intersections, walking the chain segment by segment.
func (s *SegmentString) allVerticesInOrder() []coordinate.Coordinate {
	var out []coordinate.Coordinate
	out = append(out, s.coords[0])

	for segIdx := 0; segIdx < s.SegmentCount(); segIdx++ {
		pts := s.intersectionsOnSegment(segIdx)
		for _, pt := range pts {
			if len(out) == 0 || !out[len(out)-1].Eq(pt, 0) {
				out = append(out, pt)
			}
		}
		end := s.SegmentEnd(segIdx)
		if len(out) == 0 || !out[len(out)-1].Eq(end, 0) {
			out = append(out, end)
		}
	}
	return out
}

func (s *SegmentString) intersectionsOnSegment(segmentIndex int) []coordinate.Coordinate {
	var keys []intersectionKey
	it := s.intersections.Iterator()
	for it.Next() {
		k := it.Key().(intersectionKey)
		if k.segmentIndex == segmentIndex {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].t < keys[j].t })

	pts := make([]coordinate.Coordinate, 0, len(keys))
	for _, k := range keys {
		v, _ := s.intersections.Get(k)
		pts = append(pts, v.(coordinate.Coordinate))
	}
	return pts
}

// NodedSubstrings collects the noded substrings of every SegmentString in
// strs, in input order.
func NodedSubstrings(strs []*SegmentString) ([]*SegmentString, *geomerr.Error) {
	var all []*SegmentString
	for _, s := range strs {
		subs, err := s.NodedSubstrings()
		if err != nil {
			return nil, err
		}
		all = append(all, subs...)
	}
	return all, nil
}
