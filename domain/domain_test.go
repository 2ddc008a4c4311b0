package domain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"
)

// TestRectangular_Containment checks the border-inclusive containment rule.
func TestRectangular_Containment(t *testing.T) {
	r := NewRectangular(10, 5)
	assert.Equal(t, 50.0, r.Area())

	inside := []linalg.Vec2D{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 5, Y: 2.5}}
	outside := []linalg.Vec2D{{X: -0.1, Y: 0}, {X: 10.1, Y: 0}, {X: 5, Y: 5.01}}
	for _, p := range inside {
		assert.True(t, r.Contains(p), "expected %v inside", p)
	}
	for _, p := range outside {
		assert.False(t, r.Contains(p), "expected %v outside", p)
	}
}

// TestRectangular_GeneratePoint draws many points with a fixed seed and
// requires every one of them to land inside the region.
func TestRectangular_GeneratePoint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := NewRectangular(3, 7)
	for i := 0; i < 1000; i++ {
		assert.True(t, r.Contains(r.GeneratePoint(rng)))
	}
}

// TestRectangular_PointGrid verifies the grid shape and spacing.
func TestRectangular_PointGrid(t *testing.T) {
	r := NewRectangular(10, 10)
	grid := r.PointGrid(5)
	require.Len(t, grid, 25)
	assert.Equal(t, linalg.Vec2D{X: 0, Y: 0}, grid[0])
	assert.Equal(t, linalg.Vec2D{X: 8, Y: 8}, grid[len(grid)-1])
}

// TestCircular_Containment verifies the disc is centred on (R,R) and open at
// the boundary.
func TestCircular_Containment(t *testing.T) {
	c := NewCircular(40)
	assert.InDelta(t, math.Pi*1600, c.Area(), 1e-9)

	assert.True(t, c.Contains(linalg.Vec2D{X: 40, Y: 40}))
	assert.True(t, c.Contains(linalg.Vec2D{X: 40, Y: 0.5}))
	assert.False(t, c.Contains(linalg.Vec2D{X: 40, Y: 80}))
	assert.False(t, c.Contains(linalg.Vec2D{X: 0, Y: 0}))
}

// TestCircular_GeneratePoint rejection-samples with a fixed seed; all points
// must fall inside the disc.
func TestCircular_GeneratePoint(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	c := NewCircular(40)
	for i := 0; i < 1000; i++ {
		assert.True(t, c.Contains(c.GeneratePoint(rng)))
	}
}

// TestCircular_PointGrid requires every grid point to be inside the disc and
// the grid to be a strict subset of the enclosure's grid.
func TestCircular_PointGrid(t *testing.T) {
	c := NewCircular(10)
	grid := c.PointGrid(20)
	enclosure := NewRectangular(20, 20).PointGrid(20)
	require.NotEmpty(t, grid)
	assert.Less(t, len(grid), len(enclosure))
	for _, p := range grid {
		assert.True(t, c.Contains(p))
	}
}

// TestCharacteristicLength: the disc has one, the rectangle does not.
func TestCharacteristicLength(t *testing.T) {
	c := NewCircular(40)
	l, err := c.CharacteristicLength()
	require.NoError(t, err)
	assert.Equal(t, 40.0, l)

	_, err = NewRectangular(1, 1).CharacteristicLength()
	assert.ErrorIs(t, err, ErrNoCharacteristicLength)
}
