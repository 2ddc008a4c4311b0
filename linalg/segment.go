package linalg

import "math"

// LineSegment is the segment bounded by the endpoints A and B.
type LineSegment struct {
	A, B Vec2D
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return s.A.Sub(s.B).Abs()
}

// Vector returns the direction vector from A to B.
func (s LineSegment) Vector() Vec2D {
	return s.B.Sub(s.A)
}

// Line returns the unbounded line through the segment.
func (s LineSegment) Line() Line {
	return Line{P: s.A, D: s.Vector()}
}

// DistanceTo returns the Euclidean distance from p to the closest point on
// the segment. The projection parameter of p onto the line through A and B is
// clamped to [0,1]; a degenerate (zero-length) segment treats the parameter
// as −1 so the distance to A is returned.
func (s LineSegment) DistanceTo(p Vec2D) float64 {
	ab := s.Vector()
	ap := p.Sub(s.A)

	lenSq := ab.Dot(ab)
	param := -1.0
	if lenSq != 0 {
		param = ap.Dot(ab) / lenSq
	}

	var closest Vec2D
	switch {
	case param < 0:
		closest = s.A
	case param > 1:
		closest = s.B
	default:
		closest = s.A.Add(ab.Scale(param))
	}
	return p.Sub(closest).Abs()
}

// onSegment reports whether q lies within the axis-aligned bounding box of
// the segment pr. Only meaningful when p, q and r are collinear.
func onSegment(p, q, r Vec2D) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// orientation classifies the turn taken at q on the path p→q→r.
// It returns 0 for collinear points, 1 for a clockwise turn and −1 for an
// anticlockwise turn.
func orientation(p, q, r Vec2D) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val > 0:
		return 1
	case val < 0:
		return -1
	default:
		return 0
	}
}

// Intersects reports whether the two segments share any point, including
// touching at an endpoint. Collinear overlap is handled by the bounding-box
// fallback.
func (s LineSegment) Intersects(other LineSegment) bool {
	p1, q1 := s.A, s.B
	p2, q2 := other.A, other.B

	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	switch {
	case o1 != o2 && o3 != o4:
		return true
	case o1 == 0 && onSegment(p1, p2, q1):
		return true
	case o2 == 0 && onSegment(p1, q2, q1):
		return true
	case o3 == 0 && onSegment(p2, p1, q2):
		return true
	case o4 == 0 && onSegment(p2, q1, q2):
		return true
	}
	return false
}
