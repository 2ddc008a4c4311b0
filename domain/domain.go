package domain

import (
	"errors"
	"math"
	"math/rand"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"
)

// ErrNoCharacteristicLength indicates the region has no defined
// characteristic length scale.
var ErrNoCharacteristicLength = errors.New("domain: region has no characteristic length")

// VascularDomain is a bounded 2D perfusion region.
type VascularDomain interface {
	// Area returns the total area of the region.
	Area() float64

	// Contains reports whether p lies inside the region.
	Contains(p linalg.Vec2D) bool

	// GeneratePoint returns a uniformly distributed random point inside the
	// region. Terminates with probability 1.
	GeneratePoint(rng *rand.Rand) linalg.Vec2D

	// PointGrid enumerates a uniform grid of points across the region at the
	// given subdivision count per axis.
	PointGrid(intervals int) []linalg.Vec2D

	// CharacteristicLength returns the region's diagnostic length scale, or
	// ErrNoCharacteristicLength if the region does not define one.
	CharacteristicLength() (float64, error)
}

// Rectangular is the axis-aligned region [0,W]×[0,H].
type Rectangular struct {
	W, H float64
}

// NewRectangular constructs a w×h rectangular region.
func NewRectangular(w, h float64) Rectangular {
	return Rectangular{W: w, H: h}
}

// Area returns w·h.
func (r Rectangular) Area() float64 {
	return r.W * r.H
}

// Contains reports whether p lies inside the rectangle, borders included.
func (r Rectangular) Contains(p linalg.Vec2D) bool {
	return p.X >= 0 && p.X <= r.W && p.Y >= 0 && p.Y <= r.H
}

// GeneratePoint returns a uniform random point in [0,W]×[0,H].
func (r Rectangular) GeneratePoint(rng *rand.Rand) linalg.Vec2D {
	return linalg.Vec2D{
		X: rng.Float64() * r.W,
		Y: rng.Float64() * r.H,
	}
}

// PointGrid enumerates intervals × intervals evenly spaced points.
// Complexity: O(intervals²).
func (r Rectangular) PointGrid(intervals int) []linalg.Vec2D {
	points := make([]linalg.Vec2D, 0, intervals*intervals)
	for i := 0; i < intervals; i++ {
		for j := 0; j < intervals; j++ {
			points = append(points, linalg.Vec2D{
				X: r.W * float64(i) / float64(intervals),
				Y: r.H * float64(j) / float64(intervals),
			})
		}
	}
	return points
}

// CharacteristicLength is undefined for rectangular regions.
func (r Rectangular) CharacteristicLength() (float64, error) {
	return 0, ErrNoCharacteristicLength
}

// Circular is the disc of the given radius centred at (R, R), i.e. inscribed
// in its rectangular enclosure of side 2R.
type Circular struct {
	R         float64
	enclosure Rectangular
}

// NewCircular constructs a disc of radius r.
func NewCircular(r float64) Circular {
	return Circular{R: r, enclosure: NewRectangular(2*r, 2*r)}
}

// Area returns πr².
func (c Circular) Area() float64 {
	return math.Pi * c.R * c.R
}

// Contains reports whether p lies strictly inside the disc.
func (c Circular) Contains(p linalg.Vec2D) bool {
	return p.Sub(linalg.Vec2D{X: c.R, Y: c.R}).Abs() < c.R
}

// GeneratePoint rejection-samples the enclosure until a point falls inside
// the disc. Expected iterations: 4/π.
func (c Circular) GeneratePoint(rng *rand.Rand) linalg.Vec2D {
	p := c.enclosure.GeneratePoint(rng)
	for !c.Contains(p) {
		p = c.enclosure.GeneratePoint(rng)
	}
	return p
}

// PointGrid is the enclosure's grid filtered by the disc.
func (c Circular) PointGrid(intervals int) []linalg.Vec2D {
	all := c.enclosure.PointGrid(intervals)
	points := make([]linalg.Vec2D, 0, len(all))
	for _, p := range all {
		if c.Contains(p) {
			points = append(points, p)
		}
	}
	return points
}

// CharacteristicLength of a disc is its radius.
func (c Circular) CharacteristicLength() (float64, error) {
	return c.R, nil
}
