// Package domain models the bounded 2D perfusion regions that vascular trees
// grow into.
//
// What:
//
//   - VascularDomain: the capability set shared by all regions — area,
//     containment, uniform random point generation and a uniform point grid
//     for diagnostics.
//   - Rectangular: an axis-aligned w×h region with direct uniform sampling.
//   - Circular: a disc built atop its rectangular enclosure; points are
//     rejection-sampled until they fall inside, and the grid is the
//     enclosure's grid filtered by the disc.
//
// Why:
//
//   - The growth driver is polymorphic over the region shape: it only needs
//     area (for the terminal-sampling threshold), random points and
//     containment.
//
// Randomness:
//
//   - All sampling takes an explicit *rand.Rand; the package keeps no global
//     generator state. Rejection sampling on the disc terminates with
//     probability 1 (the disc covers π/4 of its enclosure).
//
// Errors:
//
//   - ErrNoCharacteristicLength: the region has no defined characteristic
//     length (currently the rectangular region).
package domain
