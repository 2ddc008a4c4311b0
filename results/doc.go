// Package results renders the persisted tab-separated result formats
// consumed by the downstream visualisers.
//
// What:
//
//   - WriteTree: one row per vessel of a tree, identified v0..v{n-1} in
//     pre-order from the origin's child, with geometry, scaling and
//     resistance columns. Missing parent/child references are blank.
//   - WriteDistanceField: the invasion-percolation distance table — one row
//     per reached cell with its hop distance in the full cluster, the
//     dead-end-free subgraph and the shortest path.
//   - WriteVesselDistances / WriteTerminalDistances: per-sample-point
//     distance tables over a domain grid.
//
// Format stability matters: the visualisers parse these files by column
// position, so column order and the "(x, y)" point rendering are part of the
// contract.
package results
