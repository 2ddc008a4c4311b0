package linalg

// parallelTolerance bounds the dot-product test in Line.ContainsPoint.
const parallelTolerance = 3e-10

// Line is an unbounded line expressed as a position vector P and a direction
// vector D.
type Line struct {
	P, D Vec2D
}

// ContainsPoint reports whether p lies on the line.
func (l Line) ContainsPoint(p Vec2D) bool {
	return Parallel(p.Sub(l.P), l.D, parallelTolerance)
}

// ScalarsAtIntersection solves for the scalars s and t such that
// l.P + s·l.D == other.P + t·other.D, i.e. the parameters of the common point
// on each line. ok is false when the lines are parallel (the 2×2 system is
// singular) and no solution exists.
func (l Line) ScalarsAtIntersection(other Line) (s, t float64, ok bool) {
	// Solve [ l.D  −other.D ] · (s, t)ᵀ = other.P − l.P by Cramer's rule.
	rhs := other.P.Sub(l.P)
	det := l.D.X*(-other.D.Y) - (-other.D.X)*l.D.Y
	if det == 0 {
		return 0, 0, false
	}
	s = (rhs.X*(-other.D.Y) - (-other.D.X)*rhs.Y) / det
	t = (l.D.X*rhs.Y - rhs.X*l.D.Y) / det
	return s, t, true
}

// PointOfIntersection returns the point at which the two lines cross.
// ok is false for parallel lines.
func (l Line) PointOfIntersection(other Line) (Vec2D, bool) {
	s, _, ok := l.ScalarsAtIntersection(other)
	if !ok {
		return Vec2D{}, false
	}
	return l.P.Add(l.D.Scale(s)), true
}
