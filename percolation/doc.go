// Package percolation grows porous transport networks on a 2D lattice by
// invasion percolation and post-processes the resulting sparse graph.
//
// What:
//
//   - Network: an X×Y grid of cells with independent uniform capacities.
//     Growth invades the lattice from a central seed, always claiming the
//     discovered cell of lowest capacity next (a min-heap drives the front),
//     and materialises an undirected edge between every pair of reached
//     4-neighbors.
//   - Corner extraction: the first reached cell along anti-diagonals from the
//     top-left and bottom-right corners (square lattices only).
//   - Graph utilities: adjacency lists, BFS predecessor maps, shortest-path
//     edge extraction, multi-source Manhattan distance fields and dead-end
//     removal via conditional reachability (a node survives iff it lies on
//     some source→sink simple path).
//   - A steady-state pressure/flow solver: Kirchhoff conservation at every
//     reached cell except the source (the sink absorbs one unit of flow),
//     unit Ohmic drop per edge and a zero-pressure gauge at the sink,
//     assembled and solved densely with gonum.
//
// Invariants after growth:
//
//   - Exactly N+1 cells are reached (seed plus N = round(X·Y·occupancy)).
//   - Every edge connects two reached 4-neighbors; the reached set is
//     4-connected.
//   - If a cell is reached, all its lattice neighbors are at least
//     discovered.
//
// Complexity:
//
//   - Growth: O(N log N) heap operations.
//   - BFS / Manhattan fields: O(V + E).
//   - RemoveDeadEnds: O(V·E) worst case — acceptable for the intended
//     lattice sizes (≤ 100²).
//   - PressuresFlows: dense solve in O((V+E)³).
//
// Errors:
//
//   - ErrOccupancyRange: occupancy outside [0,1].
//   - ErrEmptyLattice: a lattice dimension is not positive.
//   - ErrNotSquare: corner extraction requested on a non-square lattice.
//   - ErrSingularSystem: the pressure system has no unique solution.
//   - ErrLeakyUnsupported: the leaky solver variant is not implemented.
package percolation
