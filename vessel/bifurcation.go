package vessel

import (
	"fmt"
	"math"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"
)

// OptimiseIntervals is the subdivision count of the triangular sample grid
// searched by GeometricallyOptimise.
const OptimiseIntervals = 10

// Bifurcate attaches a new terminal to the tree by splitting this vessel at
// the midpoint of its current segment. See BifurcateAt.
func (v *Vessel) Bifurcate(terminalPoint linalg.Vec2D) {
	midpoint := v.ProximalPoint().Add(v.DistalPoint()).Scale(0.5)
	v.BifurcateAt(terminalPoint, midpoint)
}

// BifurcateAt inserts a new parent vessel between this vessel's former parent
// and this vessel, positioned at bifurcationPoint, and attaches a new
// terminal at terminalPoint as the second child. By convention the existing
// vessel becomes child 0 and the new terminal child 1. The tree is rescaled
// upward from the new parent.
func (v *Vessel) BifurcateAt(terminalPoint, bifurcationPoint linalg.Vec2D) {
	if v.parent == nil {
		panic("vessel: cannot bifurcate a detached vessel")
	}
	// Wire the new parent into this vessel's child slot with placeholder
	// scale factors; the upward rescale assigns the real ones.
	old := v.parent
	newParent := newVessel(1.0, old, bifurcationPoint)
	old.replaceChild(v, newParent)
	v.parent = newParent
	newParent.addChild(v)
	newParent.CreateChild(1.0, terminalPoint)
	newParent.Rescale()
}

// RemoveBifurcation is the inverse of Bifurcate: it splices this vessel back
// into its grandparent's child slot, adopts the removed parent's scale factor
// and rescales upward. The parent must itself be a vessel, not the origin.
func (v *Vessel) RemoveBifurcation() {
	parent, ok := v.parent.(*Vessel)
	if !ok {
		panic("vessel: cannot remove a bifurcation directly below the origin")
	}
	newScale := parent.scale
	grand := parent.parent
	grand.replaceChild(parent, v)
	v.parent = grand
	v.setScale(newScale)
	grand.rescale()
}

// Rescale recomputes the scale factors of this vessel's two children and its
// cached subtree resistance coefficient, then recurses toward the origin:
//
//	res_A = k_A + L_A;  res_B = k_B + L_B
//	s_B/s_A = ((n_B·res_B)/(n_A·res_A))^(1/4)
//	s_A = (1 + (s_B/s_A)^γ)^(−1/γ);  s_B = (1 + (s_A/s_B)^γ)^(−1/γ)
//	k = 1 / (s_A⁴/res_A + s_B⁴/res_B)
//
// Murray's law and the parallel-pressure balance are verified after every
// step; violation is a programmer error.
func (v *Vessel) Rescale() {
	if len(v.children) != 2 {
		panic("vessel: rescale of a vessel without exactly two children")
	}

	va, vb := v.children[0], v.children[1]

	ntA := float64(va.NumTerminals())
	ntB := float64(vb.NumTerminals())

	resA := va.kRes + va.Length()
	resB := vb.kRes + vb.Length()

	sRatio := math.Pow((ntB*resB)/(ntA*resA), 0.25) // = s_B / s_A

	sA := math.Pow(1+math.Pow(sRatio, Gamma), -1.0/Gamma)
	sB := math.Pow(1+math.Pow(sRatio, -Gamma), -1.0/Gamma)

	kNew := 1 / (math.Pow(sA, 4)/resA + math.Pow(sB, 4)/resB)
	v.kRes = kNew

	if err := math.Abs(1 - math.Pow(sA, Gamma) - math.Pow(sB, Gamma)); err >= murrayTolerance {
		panic(fmt.Sprintf("vessel: Murray's law violated by %g", err))
	}
	if err := math.Abs(resA*ntA*math.Pow(sA, -4) - resB*ntB*math.Pow(sB, -4)); err >= parallelPressureTolerance {
		panic(fmt.Sprintf("vessel: parallel pressures unbalanced by %g", err))
	}

	va.setScale(sA)
	vb.setScale(sB)
	v.parent.rescale()
}

// rescale implements the Node recursion step.
func (v *Vessel) rescale() {
	v.Rescale()
}

// GeometricallyOptimise searches the triangular grid spanned by the parent's
// proximal point and the two child distal points for the bifurcation position
// of minimum tree cost, and commits the best position found. Candidate
// positions that collapse any of the three involved vessels to zero length
// are skipped. The three fixed triangle vertices and the overall tree
// structure are unchanged.
func (v *Vessel) GeometricallyOptimise() {
	va, ok := v.parent.(*Vessel)
	if !ok {
		panic("vessel: cannot optimise a bifurcation directly below the origin")
	}
	vb, vc := va.children[0], va.children[1]
	if vb != v {
		panic("vessel: optimise must be called on the bifurcation's child 0")
	}
	origin := v.findOrigin()

	xa := va.ProximalPoint()
	xb := vb.DistalPoint()
	xc := vc.DistalPoint()

	bestCost := origin.Cost()
	bestPoint := va.DistalPoint()
	for _, p := range linalg.TriangleGrid(xa, xb, xc, OptimiseIntervals) {
		va.SetDistalPoint(p)
		if va.Length() == 0 || vb.Length() == 0 || vc.Length() == 0 {
			continue
		}
		va.Rescale()
		if c := origin.Cost(); c < bestCost {
			bestCost = c
			bestPoint = p
		}
	}
	va.SetDistalPoint(bestPoint)
	va.Rescale()
}

// findOrigin walks parent references up to the tree's origin.
func (v *Vessel) findOrigin() *Origin {
	node := v.parent
	for {
		switch n := node.(type) {
		case *Origin:
			return n
		case *Vessel:
			node = n.parent
		default:
			panic("vessel: unknown node type in parent chain")
		}
	}
}
