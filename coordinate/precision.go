package coordinate

import (
	"math"

	"github.com/iancw/noding/geomerr"
)

// Type identifies the kind of precision model governing a coordinate space.
type Type uint8

const (
	// Floating applies no rounding at all.
	Floating Type = iota

	// FloatingSingle rounds every ordinate through a float32 round-trip.
	FloatingSingle

	// Fixed rounds every ordinate onto a uniform integer grid of the given
	// Scale. The snap-rounding core is robust only under this model.
	Fixed
)

// PrecisionModel is the grid onto which all coordinates produced by the
// noding core are rounded.
//
// Invariant: for the snap-rounding core to guarantee robustness, the
// effective model must be Fixed with Scale >= 1, and every input vertex
// ordinate must already equal its own rounded value.
type PrecisionModel struct {
	kind  Type
	scale float64
}

// NewFloatingPrecisionModel returns a model that applies no rounding.
func NewFloatingPrecisionModel() PrecisionModel {
	return PrecisionModel{kind: Floating}
}

// NewFloatingSinglePrecisionModel returns a model that rounds through
// float32.
func NewFloatingSinglePrecisionModel() PrecisionModel {
	return PrecisionModel{kind: FloatingSingle}
}

// NewFixedPrecisionModel returns a Fixed model at the given scale. scale
// must be finite and at least 1 (an integer grid or finer): snap rounding's
// robustness guarantee does not hold on a grid coarser than the unit square,
// so a scale below 1 returns a [geomerr.InvalidInput] error.
func NewFixedPrecisionModel(scale float64) (PrecisionModel, *geomerr.Error) {
	if scale < 1 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return PrecisionModel{}, geomerr.New(geomerr.InvalidInput, "fixed precision model scale must be at least 1 and finite")
	}
	return PrecisionModel{kind: Fixed, scale: scale}, nil
}

// Type returns the model's kind.
func (pm PrecisionModel) Type() Type {
	return pm.kind
}

// Scale returns the model's scale factor. It is meaningful only when
// Type() == Fixed.
func (pm PrecisionModel) Scale() float64 {
	return pm.scale
}

// MakePrecise rounds v onto the model's grid.
func (pm PrecisionModel) MakePrecise(v float64) float64 {
	switch pm.kind {
	case Fixed:
		return math.Round(v*pm.scale) / pm.scale
	case FloatingSingle:
		return float64(float32(v))
	default:
		return v
	}
}

// MakeCoordinatePrecise rounds both ordinates of c onto the model's grid,
// returning a new Coordinate. Z is left untouched.
func (pm PrecisionModel) MakeCoordinatePrecise(c Coordinate) Coordinate {
	return Coordinate{X: pm.MakePrecise(c.X), Y: pm.MakePrecise(c.Y), Z: c.Z}
}

// IsPrecise reports whether v already equals its own rounded value under pm.
func (pm PrecisionModel) IsPrecise(v float64) bool {
	return v == pm.MakePrecise(v)
}
