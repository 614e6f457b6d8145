package geomerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "InvalidInput", InvalidInput.String())
	assert.Equal(t, "RobustnessFailure", RobustnessFailure.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestErrorError(t *testing.T) {
	err := New(TopologyCollapse, "components merged").WithCoordinate(1, 2).WithSegmentStringIndex(3)
	assert.Contains(t, err.Error(), "TopologyCollapse")
	assert.Contains(t, err.Error(), "components merged")
	assert.Contains(t, err.Error(), "segment string #3")

	bare := New(InvalidInput, "too few points")
	assert.Equal(t, "noding: InvalidInput: too few points", bare.Error())
}
