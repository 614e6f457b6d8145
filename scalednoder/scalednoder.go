// Package scalednoder implements the scaled noder wrapper (component C8):
// it lifts floating-point input onto the integer grid the snap-rounding
// core needs to be robust, delegates the actual noding, then rescales the
// result back into the caller's original coordinate space.
package scalednoder

import (
	"math"

	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/geomerr"
	"github.com/iancw/noding/noder"
	"github.com/iancw/noding/segstring"
)

// Noder scales input vertices onto an integer grid, runs a delegate Noder
// over the scaled copies, and rescales the delegate's noded output back
// into the original coordinate space.
type Noder struct {
	delegate noder.Noder

	ScaleFactor float64
	OffsetX     float64
	OffsetY     float64
}

// New builds a Noder wrapping delegate at the given scale factor and
// origin offset. scaleFactor must be strictly positive.
func New(delegate noder.Noder, scaleFactor, offsetX, offsetY float64) *Noder {
	return &Noder{delegate: delegate, ScaleFactor: scaleFactor, OffsetX: offsetX, OffsetY: offsetY}
}

// identity reports whether this wrapper's scale/offset is the no-op
// configuration, letting ComputeNodes skip copying entirely.
func (n *Noder) identity() bool {
	return n.ScaleFactor == 1 && n.OffsetX == 0 && n.OffsetY == 0
}

// ComputeNodes scales segStrings onto the integer grid (dropping any
// consecutive duplicate vertices the scaling introduces) and runs the
// delegate over the scaled copies.
func (n *Noder) ComputeNodes(segStrings []*segstring.SegmentString) error {
	if n.ScaleFactor <= 0 || math.IsNaN(n.ScaleFactor) || math.IsInf(n.ScaleFactor, 0) {
		return geomerr.New(geomerr.InvalidInput, "scaled noder scale factor must be positive and finite")
	}

	if n.identity() {
		return n.delegate.ComputeNodes(segStrings)
	}

	scaled := make([]*segstring.SegmentString, 0, len(segStrings))
	for i, ss := range segStrings {
		coords := n.scaleCoordinates(ss.Coordinates())
		s, err := segstring.New(coords, ss.Data())
		if err != nil {
			return err.WithSegmentStringIndex(i)
		}
		scaled = append(scaled, s)
	}

	return n.delegate.ComputeNodes(scaled)
}

// scaleCoordinates scales every coordinate of coords onto the integer
// grid, collapsing consecutive duplicates that scaling introduces.
func (n *Noder) scaleCoordinates(coords []coordinate.Coordinate) []coordinate.Coordinate {
	out := make([]coordinate.Coordinate, 0, len(coords))
	for _, c := range coords {
		scaled := n.scale(c)
		if len(out) > 0 && out[len(out)-1].Eq(scaled, 0) {
			continue
		}
		out = append(out, scaled)
	}
	return out
}

func (n *Noder) scale(c coordinate.Coordinate) coordinate.Coordinate {
	return coordinate.Coordinate{
		X: math.Round((c.X - n.OffsetX) * n.ScaleFactor),
		Y: math.Round((c.Y - n.OffsetY) * n.ScaleFactor),
		Z: c.Z,
	}
}

func (n *Noder) rescale(c coordinate.Coordinate) coordinate.Coordinate {
	return coordinate.Coordinate{
		X: c.X/n.ScaleFactor + n.OffsetX,
		Y: c.Y/n.ScaleFactor + n.OffsetY,
		Z: c.Z,
	}
}

// GetNodedSubstrings returns the delegate's noded substrings, rescaled in
// place from the integer grid back into the original coordinate space. If
// this wrapper's scale/offset is the identity configuration, the delegate's
// substrings are returned untouched.
func (n *Noder) GetNodedSubstrings() []*segstring.SegmentString {
	subs := n.delegate.GetNodedSubstrings()
	if n.identity() {
		return subs
	}

	for _, s := range subs {
		rescaled := make([]coordinate.Coordinate, s.Size())
		for i, c := range s.Coordinates() {
			rescaled[i] = n.rescale(c)
		}
		s.SetCoordinates(rescaled)
	}
	return subs
}

var _ noder.Noder = (*Noder)(nil)
