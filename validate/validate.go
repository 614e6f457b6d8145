// Package validate implements the noding validator (component C9): given a
// collection of substrings that a noder claims are already fully noded, it
// checks the postconditions noding is supposed to establish and reports any
// violation found.
package validate

import (
	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/geomerr"
	"github.com/iancw/noding/intersect"
	"github.com/iancw/noding/segstring"
)

// Violation describes one postcondition failure found in a noded
// substring collection.
type Violation struct {
	Kind        geomerr.Kind
	Message     string
	Coordinates []geomerr.Coordinate
}

// Validate checks substrings for:
//   - collinear overlaps between distinct substrings,
//   - interior-interior intersections (an intersection that does not
//     coincide with an endpoint of both participating substrings),
//   - duplicate substrings (identical vertex sequence).
//
// substrings is expected to hold already-noded, single-segment strings as
// produced by a Noder's GetNodedSubstrings, so each is compared endpoint
// to endpoint rather than chain to chain.
func Validate(substrings []*segstring.SegmentString) []Violation {
	var violations []Violation

	violations = append(violations, checkPairwise(substrings)...)
	violations = append(violations, checkDuplicates(substrings)...)

	return violations
}

func checkPairwise(substrings []*segstring.SegmentString) []Violation {
	var violations []Violation
	pm := floatingPrecisionModel()

	for i := 0; i < len(substrings); i++ {
		for j := i + 1; j < len(substrings); j++ {
			a, b := substrings[i], substrings[j]
			a0, a1 := a.GetCoordinate(0), a.GetCoordinate(1)
			b0, b1 := b.GetCoordinate(0), b.GetCoordinate(1)

			result, err := intersect.Compute(pm, a0, a1, b0, b1, 1e-9)
			if err != nil || !result.HasIntersection() {
				continue
			}

			if result.Kind == intersect.CollinearIntersection && !result.Points[0].Eq(result.Points[1], 0) {
				violations = append(violations, Violation{
					Kind:        geomerr.TopologyCollapse,
					Message:     "collinear overlap between distinct substrings",
					Coordinates: toGeomerrCoordinates(result.Points),
				})
				continue
			}

			pt := result.Points[0]
			touchesA := pt.Eq(a0, 0) || pt.Eq(a1, 0)
			touchesB := pt.Eq(b0, 0) || pt.Eq(b1, 0)
			if !touchesA || !touchesB {
				violations = append(violations, Violation{
					Kind:        geomerr.TopologyCollapse,
					Message:     "interior-interior intersection between substrings",
					Coordinates: toGeomerrCoordinates(result.Points),
				})
			}
		}
	}
	return violations
}

func checkDuplicates(substrings []*segstring.SegmentString) []Violation {
	var violations []Violation
	seen := make(map[string]bool)

	for _, s := range substrings {
		key := vertexSequenceKey(s)
		if seen[key] {
			violations = append(violations, Violation{
				Kind:    geomerr.TopologyCollapse,
				Message: "duplicate substring vertex sequence",
			})
			continue
		}
		seen[key] = true
	}
	return violations
}

func vertexSequenceKey(s *segstring.SegmentString) string {
	var key string
	for _, c := range s.Coordinates() {
		key += c.String() + "|"
	}
	return key
}

func toGeomerrCoordinates(coords []coordinate.Coordinate) []geomerr.Coordinate {
	out := make([]geomerr.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = geomerr.Coordinate{X: c.X, Y: c.Y}
	}
	return out
}

// floatingPrecisionModel is used for the pairwise topology checks: the
// substrings handed to Validate have already been rounded by whatever
// precision model produced them, so re-rounding here would only risk
// masking a real violation.
func floatingPrecisionModel() coordinate.PrecisionModel {
	return coordinate.NewFloatingPrecisionModel()
}
