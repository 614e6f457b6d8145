package coordinate

import "math"

// Envelope is an axis-aligned bounding box, used throughout the noding core
// as the cheap reject test ahead of an exact geometric predicate (spec step
// "envelope reject" in both the line intersector and the hot-pixel test).
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewEnvelope returns the envelope spanning p and q, regardless of their
// relative order.
func NewEnvelope(p, q Coordinate) Envelope {
	return Envelope{
		MinX: math.Min(p.X, q.X),
		MinY: math.Min(p.Y, q.Y),
		MaxX: math.Max(p.X, q.X),
		MaxY: math.Max(p.Y, q.Y),
	}
}

// NewEnvelopeFromCoordinates returns the envelope spanning all of coords.
// Panics if coords is empty; every caller in this module supplies a
// non-empty vertex list.
func NewEnvelopeFromCoordinates(coords []Coordinate) Envelope {
	e := Envelope{MinX: coords[0].X, MinY: coords[0].Y, MaxX: coords[0].X, MaxY: coords[0].Y}
	for _, c := range coords[1:] {
		e = e.ExpandToInclude(c)
	}
	return e
}

// ExpandToInclude returns the smallest envelope containing both e and c.
func (e Envelope) ExpandToInclude(c Coordinate) Envelope {
	return Envelope{
		MinX: math.Min(e.MinX, c.X),
		MinY: math.Min(e.MinY, c.Y),
		MaxX: math.Max(e.MaxX, c.X),
		MaxY: math.Max(e.MaxY, c.Y),
	}
}

// Union returns the smallest envelope containing both e and other.
func (e Envelope) Union(other Envelope) Envelope {
	return Envelope{
		MinX: math.Min(e.MinX, other.MinX),
		MinY: math.Min(e.MinY, other.MinY),
		MaxX: math.Max(e.MaxX, other.MaxX),
		MaxY: math.Max(e.MaxY, other.MaxY),
	}
}

// Intersects reports whether e and other share at least one point.
func (e Envelope) Intersects(other Envelope) bool {
	return e.MinX <= other.MaxX && e.MaxX >= other.MinX &&
		e.MinY <= other.MaxY && e.MaxY >= other.MinY
}

// ContainsCoordinate reports whether c lies within e (inclusive of its
// boundary).
func (e Envelope) ContainsCoordinate(c Coordinate) bool {
	return c.X >= e.MinX && c.X <= e.MaxX && c.Y >= e.MinY && c.Y <= e.MaxY
}

// CentreX returns the X coordinate of e's centre, used by the STR-tree
// bulk-loading pass to sort chains into vertical slices.
func (e Envelope) CentreX() float64 {
	return (e.MinX + e.MaxX) / 2
}

// CentreY returns the Y coordinate of e's centre, used by the STR-tree
// bulk-loading pass to sort chains within a slice.
func (e Envelope) CentreY() float64 {
	return (e.MinY + e.MaxY) / 2
}
