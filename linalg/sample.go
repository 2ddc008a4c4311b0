package linalg

import "fmt"

// minSampleIntervals is the smallest meaningful subdivision count: the grid
// must at least contain the triangle's vertices.
const minSampleIntervals = 2

// TriangleGrid returns the discrete triangular sampling of the triangle with
// vertices p, q and r at n subdivisions per side:
//
//	{ p + i·(q−p)/(n−1) + j·(r−p)/(n−1) : i ≥ 0, j ≥ 0, i+j ≤ n−1 }
//
// Exactly n(n+1)/2 points are produced. Points are accumulated by repeated
// addition of the per-interval unit vectors rather than recomputed, so the
// enumeration order is row-major in i, then j.
//
// Complexity: O(n²) time and memory.
func TriangleGrid(p, q, r Vec2D, n int) []Vec2D {
	if n < minSampleIntervals {
		panic(fmt.Sprintf("linalg: TriangleGrid requires at least %d intervals, got %d", minSampleIntervals, n))
	}
	unitPQ := q.Sub(p).Scale(1 / float64(n-1))
	unitPR := r.Sub(p).Scale(1 / float64(n-1))

	points := make([]Vec2D, 0, n*(n+1)/2)
	componentPQ := Vec2D{}
	for i := 0; i < n; i++ {
		componentPR := Vec2D{}
		for j := 0; j < n-i; j++ {
			points = append(points, p.Add(componentPQ).Add(componentPR))
			componentPR = componentPR.Add(unitPR)
		}
		componentPQ = componentPQ.Add(unitPQ)
	}
	return points
}
