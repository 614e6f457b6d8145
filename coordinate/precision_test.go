package coordinate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iancw/noding/geomerr"
)

func TestNewFixedPrecisionModel(t *testing.T) {
	pm, err := NewFixedPrecisionModel(100)
	assert.Nil(t, err)
	assert.Equal(t, Fixed, pm.Type())
	assert.Equal(t, 100.0, pm.Scale())

	_, err = NewFixedPrecisionModel(0)
	assert.NotNil(t, err)
	assert.Equal(t, geomerr.InvalidInput, err.Kind)

	_, err = NewFixedPrecisionModel(-5)
	assert.NotNil(t, err)

	_, err = NewFixedPrecisionModel(0.5)
	assert.NotNil(t, err)
	assert.Equal(t, geomerr.InvalidInput, err.Kind)

	pm, err = NewFixedPrecisionModel(1)
	assert.Nil(t, err)
	assert.Equal(t, 1.0, pm.Scale())
}

func TestMakePrecise(t *testing.T) {
	pm, err := NewFixedPrecisionModel(100)
	assert.Nil(t, err)
	assert.Equal(t, 0.12, pm.MakePrecise(0.1234))
	assert.Equal(t, 0.99, pm.MakePrecise(0.9876))

	floating := NewFloatingPrecisionModel()
	assert.Equal(t, 0.1234, floating.MakePrecise(0.1234))
}

func TestMakeCoordinatePrecise(t *testing.T) {
	pm, err := NewFixedPrecisionModel(100)
	assert.Nil(t, err)
	c := pm.MakeCoordinatePrecise(NewXYZ(0.12, 0.34, 7))
	assert.Equal(t, 0.12, c.X)
	assert.Equal(t, 0.34, c.Y)
	assert.Equal(t, 7.0, c.Z)
}

func TestIsPrecise(t *testing.T) {
	pm, err := NewFixedPrecisionModel(1)
	assert.Nil(t, err)
	assert.True(t, pm.IsPrecise(5))
	assert.False(t, pm.IsPrecise(5.5))
}
