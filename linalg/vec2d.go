package linalg

import (
	"fmt"
	"math"
)

// Vec2D is a two-dimensional vector (or point) with float64 components.
// It is a value type: all operations return new vectors.
type Vec2D struct {
	X, Y float64
}

// Add returns the component-wise sum v + u.
func (v Vec2D) Add(u Vec2D) Vec2D {
	return Vec2D{v.X + u.X, v.Y + u.Y}
}

// Sub returns the component-wise difference v − u.
func (v Vec2D) Sub(u Vec2D) Vec2D {
	return Vec2D{v.X - u.X, v.Y - u.Y}
}

// Scale returns v multiplied by the scalar f.
func (v Vec2D) Scale(f float64) Vec2D {
	return Vec2D{v.X * f, v.Y * f}
}

// Dot returns the dot product v·u.
func (v Vec2D) Dot(u Vec2D) float64 {
	return v.X*u.X + v.Y*u.Y
}

// Abs returns the Euclidean magnitude of v.
func (v Vec2D) Abs() float64 {
	return math.Hypot(v.X, v.Y)
}

// String renders v as "(x, y)". The rendering is stable and is used by the
// persisted result formats.
func (v Vec2D) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Parallel reports whether a and b point along the same (or opposite) line,
// within tolerance.
func Parallel(a, b Vec2D, tolerance float64) bool {
	dot := math.Abs(a.Dot(b))
	lengths := a.Abs() * b.Abs()
	return lengths-dot < tolerance
}
