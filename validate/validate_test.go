package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/geomerr"
	"github.com/iancw/noding/segstring"
)

func seg(t *testing.T, x0, y0, x1, y1 float64) *segstring.SegmentString {
	t.Helper()
	s, err := segstring.New([]coordinate.Coordinate{coordinate.New(x0, y0), coordinate.New(x1, y1)}, nil)
	require.Nil(t, err)
	return s
}

func TestValidate_NoViolationsForProperlyNodedSubstrings(t *testing.T) {
	substrings := []*segstring.SegmentString{
		seg(t, 0, 0, 5, 0),
		seg(t, 5, 0, 10, 0),
		seg(t, 5, 0, 5, 10),
	}
	assert.Empty(t, Validate(substrings))
}

func TestValidate_DetectsInteriorInteriorIntersection(t *testing.T) {
	substrings := []*segstring.SegmentString{
		seg(t, 0, 0, 10, 10),
		seg(t, 0, 10, 10, 0),
	}
	violations := Validate(substrings)
	require.Len(t, violations, 1)
	assert.Equal(t, geomerr.TopologyCollapse, violations[0].Kind)
}

func TestValidate_DetectsCollinearOverlap(t *testing.T) {
	substrings := []*segstring.SegmentString{
		seg(t, 0, 0, 10, 0),
		seg(t, 5, 0, 15, 0),
	}
	violations := Validate(substrings)
	require.NotEmpty(t, violations)
}

func TestValidate_DetectsDuplicateSubstrings(t *testing.T) {
	substrings := []*segstring.SegmentString{
		seg(t, 0, 0, 10, 0),
		seg(t, 0, 0, 10, 0),
	}
	violations := Validate(substrings)
	require.NotEmpty(t, violations)
}
