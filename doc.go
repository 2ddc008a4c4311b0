// Package vasculature is the root of a 2D vascular and porous network
// modelling toolkit.
//
// 🩸 What is it?
//
//	Two coupled generative engines for perfusion modelling:
//
//	  • CCO trees: space-filling binary vascular trees grown by constrained
//	    constructive optimisation, keeping Murray's law and the Poiseuille
//	    resistance balance intact after every insertion
//	  • Invasion percolation: porous transport networks grown on a lattice,
//	    with dead-end pruning, shortest-path extraction and a steady-state
//	    pressure/flow solution
//
// Everything is organised under flat, single-concern packages:
//
//	linalg/       — 2D vectors, segments, line intersection, triangular sampling
//	domain/       — rectangular and circular perfusion regions
//	vessel/       — the vascular tree: bifurcate, rescale, optimise, copy
//	cco/          — the growth driver and spatial analytics
//	percolation/  — lattice growth, graph utilities, pressure/flow solver
//	results/      — the persisted tab-separated result formats
//	config/       — YAML run configuration
//	cmd/          — the vasculature CLI
//
// Randomness is always passed in as an explicit *rand.Rand, so every run is
// reproducible from its seed.
package vasculature
