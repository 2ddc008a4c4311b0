package vessel

import "github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"

// Origin anchors a vascular tree. It holds the absolute root radius and the
// fixed inflow point, and transitively owns every vessel reachable from it.
type Origin struct {
	radius   float64
	distal   linalg.Vec2D
	children []*Vessel
}

// NewOrigin constructs an anchored root with no child yet. The tree is seeded
// by a single CreateChild call.
func NewOrigin(radius float64, distal linalg.Vec2D) *Origin {
	return &Origin{radius: radius, distal: distal}
}

// Radius returns the configured absolute root radius.
func (o *Origin) Radius() float64 {
	return o.radius
}

// DistalPoint returns the inflow point of the tree.
func (o *Origin) DistalPoint() linalg.Vec2D {
	return o.distal
}

// Root returns the single vessel fed directly by the origin.
func (o *Origin) Root() *Vessel {
	if len(o.children) == 0 {
		panic("vessel: origin has no root vessel")
	}
	return o.children[0]
}

// CreateChild seeds the root vessel. The origin feeds exactly one vessel.
func (o *Origin) CreateChild(scale float64, distal linalg.Vec2D) *Vessel {
	child := newVessel(scale, o, distal)
	o.addChild(child)
	return child
}

func (o *Origin) addChild(v *Vessel) {
	o.children = append(o.children, v)
}

// replaceChild swaps repl into old's child slot, preserving sibling order.
func (o *Origin) replaceChild(old, repl *Vessel) {
	for i, c := range o.children {
		if c == old {
			o.children[i] = repl
			return
		}
	}
	panic("vessel: replaceChild of a vessel that is not a child")
}

// NumTerminals returns the number of terminals reachable from the origin.
func (o *Origin) NumTerminals() int {
	return o.Root().NumTerminals()
}

// Descendants returns every vessel of the tree in pre-order from the root
// vessel. The origin itself is not included.
func (o *Origin) Descendants() []*Vessel {
	return o.Root().Descendants()
}

// Cost returns the total volume of the tree: Σ π·r²·L over all vessels, with
// radii resolved from the origin's absolute radius downward.
func (o *Origin) Cost() float64 {
	return o.Root().costFromRadius(o.radius)
}

// CopySubtree returns a structurally identical, independently owned tree.
// Mutations on either side do not affect the other.
func (o *Origin) CopySubtree() *Origin {
	clone := NewOrigin(o.radius, o.distal)
	for _, c := range o.children {
		cc := c.CopySubtree()
		cc.parent = clone
		clone.addChild(cc)
	}
	return clone
}

// CopyWholeTree on the origin is a whole-tree copy.
func (o *Origin) CopyWholeTree() *Origin {
	return o.CopySubtree()
}

// copyAsParent rebuilds the origin on the clone side, terminating the upward
// copy recursion started by Vessel.CopyWholeTree.
func (o *Origin) copyAsParent(old, clone *Vessel) {
	if o.Root() != old {
		panic("vessel: copyAsParent called for a vessel that is not the root")
	}
	v := NewOrigin(o.radius, o.distal)
	clone.parent = v
	v.addChild(clone)
}

// rescale on the origin terminates the upward rescale recursion.
func (o *Origin) rescale() {}

// Equal reports structural equality of two trees: equal radii, equal distal
// points and pairwise equal children throughout.
func (o *Origin) Equal(other *Origin) bool {
	if other == nil || o.radius != other.radius || o.distal != other.distal {
		return false
	}
	if len(o.children) != len(other.children) {
		return false
	}
	for i := range o.children {
		if !o.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}
