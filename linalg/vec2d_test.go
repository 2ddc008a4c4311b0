package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Vec2D
//----------------------------------------------------------------------------//

// TestVec2D_Abs checks the magnitude on the classic Pythagorean triples in
// all four quadrants.
func TestVec2D_Abs(t *testing.T) {
	for _, v := range []Vec2D{{3, 4}, {3, -4}, {-3, 4}, {-3, -4}} {
		assert.Equal(t, 5.0, v.Abs())
	}
	for _, v := range []Vec2D{{5, 12}, {5, -12}, {-5, 12}, {-5, -12}} {
		assert.Equal(t, 13.0, v.Abs())
	}
}

// TestVec2D_Arithmetic verifies Add, Sub and Scale component-wise.
func TestVec2D_Arithmetic(t *testing.T) {
	a := Vec2D{1, 2}
	b := Vec2D{3, -4}
	assert.Equal(t, Vec2D{4, -2}, a.Add(b))
	assert.Equal(t, Vec2D{-2, 6}, a.Sub(b))
	assert.Equal(t, Vec2D{2.5, 5}, a.Scale(2.5))
	assert.Equal(t, -5.0, a.Dot(b))
}

//----------------------------------------------------------------------------//
// Line
//----------------------------------------------------------------------------//

// TestLine_PointOfIntersection crosses the axes' diagonals and checks that
// the common point is found; parallel lines must report no solution.
func TestLine_PointOfIntersection(t *testing.T) {
	l1 := Line{P: Vec2D{0, 0}, D: Vec2D{1, 1}}
	l2 := Line{P: Vec2D{0, 1}, D: Vec2D{1, -1}}

	p, ok := l1.PointOfIntersection(l2)
	require.True(t, ok)
	assert.InDelta(t, 0.5, p.X, 1e-12)
	assert.InDelta(t, 0.5, p.Y, 1e-12)

	// Parallel lines have no solution.
	l3 := Line{P: Vec2D{0, 5}, D: Vec2D{1, 1}}
	_, ok = l1.PointOfIntersection(l3)
	assert.False(t, ok)
}

// TestLine_ScalarsAtIntersection verifies the scalar parameters on both
// lines agree on the common point.
func TestLine_ScalarsAtIntersection(t *testing.T) {
	l1 := Line{P: Vec2D{0, 0}, D: Vec2D{2, 0}}
	l2 := Line{P: Vec2D{1, -1}, D: Vec2D{0, 1}}
	s, u, ok := l1.ScalarsAtIntersection(l2)
	require.True(t, ok)
	got1 := l1.P.Add(l1.D.Scale(s))
	got2 := l2.P.Add(l2.D.Scale(u))
	assert.InDelta(t, got1.X, got2.X, 1e-12)
	assert.InDelta(t, got1.Y, got2.Y, 1e-12)
	assert.Equal(t, Vec2D{1, 0}, got1)
}
