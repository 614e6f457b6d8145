package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iancw/noding/coordinate"
)

func TestBuild_SingleChainWhenNoDirectionChange(t *testing.T) {
	coords := []coordinate.Coordinate{
		coordinate.New(0, 0), coordinate.New(1, 1), coordinate.New(2, 2), coordinate.New(3, 3),
	}
	chains, err := Build(coords, "edge")
	require.Nil(t, err)
	require.Len(t, chains, 1)
	assert.Equal(t, coords, chains[0].Coords)
	assert.Equal(t, "edge", chains[0].Context)
}

func TestBuild_SplitsAtQuadrantChange(t *testing.T) {
	// NE then SE: direction flips from increasing Y to decreasing Y.
	coords := []coordinate.Coordinate{
		coordinate.New(0, 0), coordinate.New(1, 1), coordinate.New(2, 0),
	}
	chains, err := Build(coords, nil)
	require.Nil(t, err)
	require.Len(t, chains, 2)
	assert.Equal(t, []coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(1, 1)}, chains[0].Coords)
	assert.Equal(t, []coordinate.Coordinate{coordinate.New(1, 1), coordinate.New(2, 0)}, chains[1].Coords)
}

func TestBuild_RequiresTwoCoordinates(t *testing.T) {
	_, err := Build([]coordinate.Coordinate{coordinate.New(0, 0)}, nil)
	require.NotNil(t, err)
}

func TestOverlaps(t *testing.T) {
	chains, _ := Build([]coordinate.Coordinate{coordinate.New(0, 0), coordinate.New(10, 10)}, nil)
	other, _ := Build([]coordinate.Coordinate{coordinate.New(5, 5), coordinate.New(15, 15)}, nil)
	disjoint, _ := Build([]coordinate.Coordinate{coordinate.New(100, 100), coordinate.New(110, 110)}, nil)

	assert.True(t, chains[0].Overlaps(other[0]))
	assert.False(t, chains[0].Overlaps(disjoint[0]))
}
