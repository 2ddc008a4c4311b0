// Package vessel implements the binary tree of blood vessels grown by the
// constrained constructive optimisation driver.
//
// What:
//
//   - Origin: the anchor of a tree. It owns the absolute root radius and the
//     fixed inflow point, and has exactly one child once seeded.
//   - Vessel: an edge from its parent's distal point to its own distal point.
//     Radii are stored as scale factors relative to the parent, so the
//     absolute radius of any vessel is the product of scales down from the
//     origin.
//   - Bifurcate / RemoveBifurcation: splice a new parent and terminal into an
//     edge, and the exact inverse.
//   - Rescale: the bottom-up restoration of Murray's law and the
//     parallel-pressure balance after any structural or geometric edit.
//   - GeometricallyOptimise: moves a bifurcation point to the cheapest
//     position on a triangular sample grid.
//
// Invariants (checked on every rescale):
//
//   - Murray's law: s_A³ + s_B³ = 1 within 1e-13 at every bifurcation.
//   - Parallel pressures: (k_A+L_A)·n_A·s_A⁻⁴ = (k_B+L_B)·n_B·s_B⁻⁴ within
//     1e-10.
//
// The cost of a tree is the total volume of its vessels; it is what the
// growth driver minimises.
//
// Complexity:
//
//   - Bifurcate / RemoveBifurcation: O(depth × n) worst case for the upward
//     rescale chain (each step recounts the terminals below it).
//   - Cost, NumTerminals, Descendants: O(n) over the subtree.
//   - GeometricallyOptimise: O(grid × depth × n) for the candidate sweep.
//
// Misuse of the structural operations (bifurcating a detached vessel,
// removing a bifurcation below the origin, rescaling a non-bifurcation) is a
// programmer error and panics.
package vessel
