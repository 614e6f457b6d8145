package coordinate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationIndex(t *testing.T) {
	tests := map[string]struct {
		p, q, r  Coordinate
		expected Orientation
	}{
		"collinear": {
			p: New(0, 0), q: New(5, 5), r: New(10, 10),
			expected: Collinear,
		},
		"counterclockwise": {
			p: New(0, 0), q: New(10, 0), r: New(5, 5),
			expected: CounterClockwise,
		},
		"clockwise": {
			p: New(0, 0), q: New(10, 0), r: New(5, -5),
			expected: Clockwise,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, OrientationIndex(tc.p, tc.q, tc.r, 1e-9))
		})
	}
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "Collinear", Collinear.String())
	assert.Equal(t, "Clockwise", Clockwise.String())
	assert.Equal(t, "CounterClockwise", CounterClockwise.String())
	assert.Equal(t, "Unknown", Orientation(99).String())
}
