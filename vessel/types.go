package vessel

import "github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"

// Gamma is the Murray's law exponent: at every bifurcation the child scale
// factors satisfy s_A^Gamma + s_B^Gamma = 1.
const Gamma = 3

// Tolerances for the structural invariants verified during rescale.
const (
	murrayTolerance           = 1e-13
	parallelPressureTolerance = 1e-10
)

// Node is a tree node: either the *Origin anchor or a *Vessel. It provides
// the upward navigation needed by rescaling and subtree copies. Only types in
// this package implement it.
type Node interface {
	// Radius returns the absolute radius at this node.
	Radius() float64

	// DistalPoint returns the node's distal (outflow) point.
	DistalPoint() linalg.Vec2D

	// CreateChild attaches a new vessel with the given scale factor and
	// distal point and returns it.
	CreateChild(scale float64, distal linalg.Vec2D) *Vessel

	addChild(v *Vessel)
	replaceChild(old, repl *Vessel)
	rescale()
	copyAsParent(old, clone *Vessel)
}
