// Package cco drives constrained constructive optimisation: the iterative
// growth of a space-filling vascular tree inside a perfusion domain.
//
// What:
//
//   - Generator: the explicit next-step driver. Each Next call draws a new
//     terminal point, evaluates every vessel of the current tree as a
//     bifurcation candidate in order of segment distance to the terminal,
//     and commits the candidate of minimum tree cost.
//   - Terminal sampling with decay: a fresh random point is accepted only if
//     its distance to the existing tree exceeds √(area/(kπ)); after 50
//     consecutive rejections the threshold shrinks by ×0.9, so sampling
//     terminates with probability 1.
//   - Candidate validity: a bifurcation is rejected if any of the three
//     vessels involved is thicker than it is long, or if any of them
//     intersects a vessel it is not incident to.
//   - Spatial analytics over a finished tree: greatest distance from any
//     vessel or terminal, and black-box terminal counts, over a uniform
//     sample grid.
//
// Why:
//
//   - Each committed bifurcation keeps Murray's law and the resistance
//     balance of the whole tree intact (the vessel package rescales on every
//     edit), so the driver only has to enumerate, validate and pick.
//
// Ordering:
//
//   - Candidates are enumerated closest-first via a min-heap. Enumeration
//     order never changes the committed tree (ties go to the first-found
//     minimum cost) but is recorded per iteration as the winner's queue rank.
//
// Complexity:
//
//   - One iteration over a tree of n vessels costs O(n² · depth · grid) in
//     the worst case: every candidate is tried, and each trial optimises over
//     the triangular sample grid with an upward rescale and a full-tree cost
//     evaluation per point.
//
// Errors:
//
//   - ErrNoCandidate: every vessel was rejected for the drawn terminal. The
//     driver state is unchanged; calling Next again redraws a fresh terminal.
package cco
