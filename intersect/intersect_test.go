package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iancw/noding/coordinate"
)

var fixedPM = func() coordinate.PrecisionModel {
	pm, _ := coordinate.NewFixedPrecisionModel(1)
	return pm
}()

func TestCompute_NoIntersection_EnvelopeReject(t *testing.T) {
	r, err := Compute(fixedPM, coordinate.New(0, 0), coordinate.New(1, 1), coordinate.New(5, 5), coordinate.New(6, 6), 1e-9)
	require.Nil(t, err)
	assert.Equal(t, NoIntersection, r.Kind)
	assert.False(t, r.HasIntersection())
}

func TestCompute_NoIntersection_SameSide(t *testing.T) {
	r, err := Compute(fixedPM, coordinate.New(0, 0), coordinate.New(10, 0), coordinate.New(2, 1), coordinate.New(8, 1), 1e-9)
	require.Nil(t, err)
	assert.Equal(t, NoIntersection, r.Kind)
}

func TestCompute_ProperCross_S1(t *testing.T) {
	// S1: [(0,0),(10,10)] and [(0,10),(10,0)] cross at (5,5).
	r, err := Compute(fixedPM, coordinate.New(0, 0), coordinate.New(10, 10), coordinate.New(0, 10), coordinate.New(10, 0), 1e-9)
	require.Nil(t, err)
	require.Equal(t, PointIntersection, r.Kind)
	require.Len(t, r.Points, 1)
	assert.True(t, r.Proper)
	assert.True(t, r.Interior)
	assert.InDelta(t, 5, r.Points[0].X, 1e-9)
	assert.InDelta(t, 5, r.Points[0].Y, 1e-9)
}

func TestCompute_TJunction_S3(t *testing.T) {
	// S3: [(0,0),(10,0)] and [(5,0),(5,5)] touch at (5,0).
	r, err := Compute(fixedPM, coordinate.New(0, 0), coordinate.New(10, 0), coordinate.New(5, 0), coordinate.New(5, 5), 1e-9)
	require.Nil(t, err)
	require.Equal(t, PointIntersection, r.Kind)
	assert.False(t, r.Proper)
	assert.Equal(t, coordinate.New(5, 0), r.Points[0])
}

func TestCompute_Collinear_S5(t *testing.T) {
	// S5: [(0,0),(10,0)] and [(5,0),(15,0)] overlap on [5,0]-[10,0].
	r, err := Compute(fixedPM, coordinate.New(0, 0), coordinate.New(10, 0), coordinate.New(5, 0), coordinate.New(15, 0), 1e-9)
	require.Nil(t, err)
	require.Equal(t, CollinearIntersection, r.Kind)
	require.Len(t, r.Points, 2)
	assert.Equal(t, coordinate.New(5, 0), r.Points[0])
	assert.Equal(t, coordinate.New(10, 0), r.Points[1])
}

func TestCompute_CollinearDisjoint(t *testing.T) {
	r, err := Compute(fixedPM, coordinate.New(0, 0), coordinate.New(5, 0), coordinate.New(10, 0), coordinate.New(15, 0), 1e-9)
	require.Nil(t, err)
	assert.Equal(t, NoIntersection, r.Kind)
}

func TestCompute_ParallelDisjoint(t *testing.T) {
	r, err := Compute(fixedPM, coordinate.New(0, 0), coordinate.New(10, 0), coordinate.New(0, 5), coordinate.New(10, 5), 1e-9)
	require.Nil(t, err)
	assert.Equal(t, NoIntersection, r.Kind)
}

// TestCompute_Symmetry checks testable property 6: compute(a,b) and
// compute(b,a) agree on result kind and intersection point set.
func TestCompute_Symmetry(t *testing.T) {
	segments := [][4]coordinate.Coordinate{
		{coordinate.New(0, 0), coordinate.New(10, 10), coordinate.New(0, 10), coordinate.New(10, 0)},
		{coordinate.New(0, 0), coordinate.New(10, 0), coordinate.New(5, 0), coordinate.New(5, 5)},
		{coordinate.New(0, 0), coordinate.New(10, 0), coordinate.New(5, 0), coordinate.New(15, 0)},
		{coordinate.New(0, 0), coordinate.New(1, 1), coordinate.New(5, 5), coordinate.New(6, 6)},
	}
	for _, s := range segments {
		a0, a1, b0, b1 := s[0], s[1], s[2], s[3]
		rAB, err := Compute(fixedPM, a0, a1, b0, b1, 1e-9)
		require.Nil(t, err)
		rBA, err := Compute(fixedPM, b0, b1, a0, a1, 1e-9)
		require.Nil(t, err)

		assert.Equal(t, rAB.Kind, rBA.Kind)
		assert.ElementsMatch(t, rAB.Points, rBA.Points)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NoIntersection", NoIntersection.String())
	assert.Equal(t, "PointIntersection", PointIntersection.String())
	assert.Equal(t, "CollinearIntersection", CollinearIntersection.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}

func TestResult_IntersectionNum(t *testing.T) {
	r, _ := Compute(fixedPM, coordinate.New(0, 0), coordinate.New(10, 10), coordinate.New(0, 10), coordinate.New(10, 0), 1e-9)
	assert.Equal(t, 1, r.IntersectionNum())

	r2, _ := Compute(fixedPM, coordinate.New(0, 0), coordinate.New(10, 0), coordinate.New(5, 0), coordinate.New(15, 0), 1e-9)
	assert.Equal(t, 2, r2.IntersectionNum())
}
