package voronoi

import "github.com/jbeda/geom"

// Segment is one line segment of the island boundary. The ordered segment
// list passed next to a Diagram is the geometry the diagram was generated
// from; cells reference their generating segment by index.
type Segment struct {
	A, B geom.Coord
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.A.DistanceFrom(s.B)
}

// DistanceTo returns the Euclidean distance from p to the closest point of
// the segment.
func (s Segment) DistanceTo(p geom.Coord) float64 {
	ab := s.B.Minus(s.A)
	ap := p.Minus(s.A)

	den := ab.X*ab.X + ab.Y*ab.Y
	if den == 0 {
		// Degenerate segment: both endpoints coincide.
		return p.DistanceFrom(s.A)
	}

	t := (ap.X*ab.X + ap.Y*ab.Y) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.DistanceFrom(s.A.Plus(ab.Times(t)))
}
