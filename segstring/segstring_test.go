package segstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/geomerr"
)

func TestNew_RequiresTwoDistinctCoordinates(t *testing.T) {
	_, err := New([]coordinate.Coordinate{coordinate.New(0, 0)}, nil)
	require.NotNil(t, err)
	assert.Equal(t, geomerr.InvalidInput, err.Kind)

	_, err = New([]coordinate.Coordinate{coordinate.New(1, 1), coordinate.New(1, 1)}, nil)
	require.NotNil(t, err)

	ss, err := New([]coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(1, 1)}, "edge-1")
	require.Nil(t, err)
	assert.Equal(t, "edge-1", ss.Data())
	assert.Equal(t, 2, ss.Size())
	assert.Equal(t, 1, ss.SegmentCount())
}

func TestIsClosed(t *testing.T) {
	open, _ := New([]coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 0)}, nil)
	assert.False(t, open.IsClosed())

	closed, _ := New([]coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 0), coordinate.New(0, 0)}, nil)
	assert.True(t, closed.IsClosed())
}

func TestNodedSubstrings_NoIntersections(t *testing.T) {
	ss, _ := New([]coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 0)}, nil)
	subs, err := ss.NodedSubstrings()
	require.Nil(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, []coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 0)}, subs[0].Coordinates())
}

func TestNodedSubstrings_SingleIntersectionSplitsSegment(t *testing.T) {
	ss, _ := New([]coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 0)}, "edge")
	ss.AddIntersection(coordinate.New(5, 0), 0)

	subs, err := ss.NodedSubstrings()
	require.Nil(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, []coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(5, 0)}, subs[0].Coordinates())
	assert.Equal(t, []coordinate.Coordinate{coordinate.New(5, 0), coordinate.New(10, 0)}, subs[1].Coordinates())
	assert.Equal(t, "edge", subs[0].Data())
	assert.Equal(t, "edge", subs[1].Data())
}

func TestNodedSubstrings_MultipleIntersectionsOrderedByParameter(t *testing.T) {
	ss, _ := New([]coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 0)}, nil)
	// Insert out of order to verify the tree sorts by parameter, not insertion order.
	ss.AddIntersection(coordinate.New(8, 0), 0)
	ss.AddIntersection(coordinate.New(3, 0), 0)
	ss.AddIntersection(coordinate.New(5, 0), 0)

	subs, err := ss.NodedSubstrings()
	require.Nil(t, err)
	require.Len(t, subs, 4)
	assert.Equal(t, coordinate.New(0, 0), subs[0].Coordinates()[0])
	assert.Equal(t, coordinate.New(3, 0), subs[0].Coordinates()[1])
	assert.Equal(t, coordinate.New(3, 0), subs[1].Coordinates()[0])
	assert.Equal(t, coordinate.New(5, 0), subs[1].Coordinates()[1])
	assert.Equal(t, coordinate.New(5, 0), subs[2].Coordinates()[0])
	assert.Equal(t, coordinate.New(8, 0), subs[2].Coordinates()[1])
	assert.Equal(t, coordinate.New(8, 0), subs[3].Coordinates()[0])
	assert.Equal(t, coordinate.New(10, 0), subs[3].Coordinates()[1])
}

func TestNodedSubstrings_IntersectionAtExistingVertexIsNotDuplicated(t *testing.T) {
	ss, _ := New([]coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 0), coordinate.New(20, 0)}, nil)
	ss.AddIntersection(coordinate.New(10, 0), 0) // coincides with the chain's own vertex

	subs, err := ss.NodedSubstrings()
	require.Nil(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, []coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 0)}, subs[0].Coordinates())
	assert.Equal(t, []coordinate.Coordinate{coordinate.New(10, 0), coordinate.New(20, 0)}, subs[1].Coordinates())
}

func TestMultiSegmentChain_IntersectionsOnDifferentSegments(t *testing.T) {
	ss, _ := New([]coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 0), coordinate.New(10, 10)}, nil)
	ss.AddIntersection(coordinate.New(5, 0), 0)
	ss.AddIntersection(coordinate.New(10, 5), 1)

	subs, err := ss.NodedSubstrings()
	require.Nil(t, err)
	require.Len(t, subs, 4)
}

func TestPackageLevelNodedSubstrings(t *testing.T) {
	a, _ := New([]coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 0)}, "a")
	b, _ := New([]coordinate.Coordinate{coordinate.New(0, 10), coordinate.New(10, 10)}, "b")
	a.AddIntersection(coordinate.New(5, 0), 0)

	all, err := NodedSubstrings([]*SegmentString{a, b})
	require.Nil(t, err)
	assert.Len(t, all, 3)
}
