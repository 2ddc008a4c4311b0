// Package linalg provides the 2D geometry kernel used by the vascular tree
// and network generators.
//
// What:
//
//   - Vec2D: a plain 2D vector value with addition, subtraction, scalar
//     multiplication and magnitude.
//   - LineSegment: a bounded segment with length, point-to-segment distance
//     (clamped projection) and segment-segment intersection via the standard
//     orientation test with a collinear-overlap fallback.
//   - Line: an unbounded parametric line (position + direction) supporting
//     intersection by solving the 2×2 scalar system; parallel lines have no
//     solution.
//   - TriangleGrid: the discrete triangular sampling of the triangle spanned
//     by three reference points, used for bifurcation candidates and domain
//     discretisation.
//
// Why:
//
//   - Every structural decision in the tree generator (candidate ordering,
//     degeneracy checks, intersection rejection) reduces to these primitives,
//     so they are kept dependency-free and purely functional.
//
// Complexity:
//
//   - All operations are O(1) except TriangleGrid, which emits n(n+1)/2
//     points in O(n²).
//
// Degenerate inputs produce well-defined geometric answers: a zero-length
// segment reports the distance to its first endpoint, and intersection of
// coincident endpoints counts as an intersection.
package linalg
