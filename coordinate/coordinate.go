// Package coordinate defines the foundational geometric primitive of the
// noding core: the fixed-precision [Coordinate] and its [PrecisionModel]. All
// other noding types (segment strings, hot pixels, monotone chains) are built
// on top of this package.
//
// # Overview
//
// A [Coordinate] is an (X, Y, Z) tuple of finite doubles. Equality and
// topology are defined component-wise on (X, Y) only; Z is carried through
// every transform but never inspected by any predicate.
//
// # Precision
//
// The snap-rounding core is only robust over coordinates that have already
// been rounded to a uniform integer grid. [PrecisionModel] captures that
// grid: [PrecisionModel.MakePrecise] rounds a value onto it, and
// [PrecisionModel.MakeCoordinatePrecise] rounds a Coordinate.
package coordinate

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/iancw/noding/numeric"
)

// Coordinate represents a point in 2D space with an optional Z ordinate.
// Z is carried for callers that need it (e.g. elevation data) but plays no
// part in any topological computation.
type Coordinate struct {
	X, Y, Z float64
}

// New creates a Coordinate with the given X and Y, and Z of zero.
func New(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// NewXYZ creates a Coordinate with the given X, Y, and Z.
func NewXYZ(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// Eq reports whether c and other have equal (X, Y) within epsilon. Z is not
// compared.
func (c Coordinate) Eq(other Coordinate, epsilon float64) bool {
	return numeric.FloatEquals(c.X, other.X, epsilon) && numeric.FloatEquals(c.Y, other.Y, epsilon)
}

// Less orders coordinates so that the "upper" point (greater Y, or equal Y
// and lesser X) sorts first.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Y != other.Y {
		return c.Y > other.Y
	}
	return c.X < other.X
}

// Add returns the component-wise sum of c and other, treating both as
// vectors. Z is summed too.
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// Sub returns the vector from other to c.
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y, Z: c.Z - other.Z}
}

// Scale scales c by factor k relative to the reference point ref. Z is left
// unscaled, since Z never participates in topology.
func (c Coordinate) Scale(ref Coordinate, k float64) Coordinate {
	return Coordinate{
		X: ref.X + (c.X-ref.X)*k,
		Y: ref.Y + (c.Y-ref.Y)*k,
		Z: c.Z,
	}
}

// CrossProduct returns the 2D cross product (c.X*other.Y - c.Y*other.X) of
// the vectors represented by c and other.
func (c Coordinate) CrossProduct(other Coordinate) float64 {
	return c.X*other.Y - c.Y*other.X
}

// DotProduct returns the dot product of the vectors represented by c and
// other.
func (c Coordinate) DotProduct(other Coordinate) float64 {
	return c.X*other.X + c.Y*other.Y
}

// DistanceToSquared returns the squared Euclidean distance between c and
// other, avoiding the cost of a square root when only comparisons are
// needed.
func (c Coordinate) DistanceToSquared(other Coordinate) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance between c and other.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return math.Sqrt(c.DistanceToSquared(other))
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%v, %v)", c.X, c.Y)
}

// MarshalJSON serializes Coordinate as JSON, omitting Z when zero so noded
// output for the common 2D case stays compact.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if c.Z == 0 {
		return json.Marshal(struct {
			X, Y float64
		}{c.X, c.Y})
	}
	return json.Marshal(struct {
		X, Y, Z float64
	}{c.X, c.Y, c.Z})
}

// UnmarshalJSON deserializes JSON into a Coordinate.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var temp struct {
		X, Y, Z float64
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	c.X, c.Y, c.Z = temp.X, temp.Y, temp.Z
	return nil
}
