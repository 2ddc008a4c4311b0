package vessel

import (
	"math"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"
)

// Vessel is a single blood vessel: the edge from its parent's distal point to
// its own distal point. The radius is stored as a scale factor relative to
// the parent, and kRes caches the resistance coefficient of the distal
// subtree (zero for a terminal).
type Vessel struct {
	parent   Node
	scale    float64
	distal   linalg.Vec2D
	kRes     float64
	children []*Vessel
}

func newVessel(scale float64, parent Node, distal linalg.Vec2D) *Vessel {
	return &Vessel{parent: parent, scale: scale, distal: distal}
}

// Radius returns the absolute radius: the parent's radius scaled by this
// vessel's scale factor, recursively up to the origin.
func (v *Vessel) Radius() float64 {
	return v.parent.Radius() * v.scale
}

// Scale returns the vessel's scale factor relative to its parent.
func (v *Vessel) Scale() float64 {
	return v.scale
}

func (v *Vessel) setScale(s float64) {
	v.scale = s
}

// ProximalPoint returns the inflow end of the vessel: the parent's distal
// point.
func (v *Vessel) ProximalPoint() linalg.Vec2D {
	return v.parent.DistalPoint()
}

// DistalPoint returns the outflow end of the vessel.
func (v *Vessel) DistalPoint() linalg.Vec2D {
	return v.distal
}

// SetDistalPoint moves the outflow end. Callers must rescale afterwards to
// restore the resistance bookkeeping.
func (v *Vessel) SetDistalPoint(p linalg.Vec2D) {
	v.distal = p
}

// Parent returns the node feeding this vessel.
func (v *Vessel) Parent() Node {
	return v.parent
}

// Children returns the vessels fed by this one: empty for a terminal, two for
// a bifurcation.
func (v *Vessel) Children() []*Vessel {
	return v.children
}

// IsTerminal reports whether the vessel is a leaf of the tree.
func (v *Vessel) IsTerminal() bool {
	return len(v.children) == 0
}

// CreateChild attaches a new child vessel and returns it.
func (v *Vessel) CreateChild(scale float64, distal linalg.Vec2D) *Vessel {
	child := newVessel(scale, v, distal)
	v.addChild(child)
	return child
}

func (v *Vessel) addChild(c *Vessel) {
	v.children = append(v.children, c)
}

// replaceChild swaps repl into old's child slot, preserving sibling order.
func (v *Vessel) replaceChild(old, repl *Vessel) {
	for i, w := range v.children {
		if w == old {
			v.children[i] = repl
			return
		}
	}
	panic("vessel: replaceChild of a vessel that is not a child")
}

// Segment returns the line segment spanned by the vessel.
func (v *Vessel) Segment() linalg.LineSegment {
	return linalg.LineSegment{A: v.ProximalPoint(), B: v.distal}
}

// Length returns the vessel's length.
func (v *Vessel) Length() float64 {
	return v.Segment().Length()
}

// NumTerminals returns the number of terminals in this vessel's subtree. A
// terminal counts itself.
func (v *Vessel) NumTerminals() int {
	if len(v.children) == 0 {
		return 1
	}
	n := 0
	for _, c := range v.children {
		n += c.NumTerminals()
	}
	return n
}

// Descendants returns this vessel and its whole subtree in pre-order.
func (v *Vessel) Descendants() []*Vessel {
	out := make([]*Vessel, 0, 8)
	var walk func(*Vessel)
	walk = func(w *Vessel) {
		out = append(out, w)
		for _, c := range w.children {
			walk(c)
		}
	}
	walk(v)
	return out
}

// ResistanceConstant returns the cached resistance coefficient of the distal
// subtree (zero for a terminal).
func (v *Vessel) ResistanceConstant() float64 {
	return v.kRes
}

// Resistance approximates the vessel's hydraulic resistance as L/r⁴.
func (v *Vessel) Resistance() float64 {
	r := v.Radius()
	return v.Length() / (r * r * r * r)
}

// SubtreeResistance returns the total resistance of this vessel in series
// with the parallel combination of its children's subtrees.
func (v *Vessel) SubtreeResistance() float64 {
	distal := 0.0
	if len(v.children) > 0 {
		inv := 0.0
		for _, c := range v.children {
			inv += 1 / c.SubtreeResistance()
		}
		distal = 1 / inv
	}
	return v.Resistance() + distal
}

// Cost returns the volume of this vessel's subtree.
func (v *Vessel) Cost() float64 {
	return v.costFromRadius(v.parent.Radius())
}

// costFromRadius computes the subtree volume given the parent's absolute
// radius, avoiding the repeated upward radius resolution on the hot path.
func (v *Vessel) costFromRadius(radius float64) float64 {
	r := radius * v.scale
	length := v.Length()
	cost := math.Pi * r * r * length
	for _, c := range v.children {
		cost += c.costFromRadius(r)
	}
	return cost
}

// CopySubtree returns a copy of this vessel whose descendants are all copies.
// The copy's parent pointer still references the original parent until the
// caller reattaches it.
func (v *Vessel) CopySubtree() *Vessel {
	clone := newVessel(v.scale, v.parent, v.distal)
	clone.kRes = v.kRes
	for _, c := range v.children {
		cc := c.CopySubtree()
		cc.parent = clone
		clone.addChild(cc)
	}
	return clone
}

// CopyWholeTree returns this vessel cloned inside a full clone of the
// enclosing tree, so that candidate evaluation never mutates the committed
// tree in place. The returned vessel is navigable up to the cloned origin.
func (v *Vessel) CopyWholeTree() *Vessel {
	clone := v.CopySubtree()
	v.parent.copyAsParent(v, clone)
	return clone
}

// copyAsParent clones this vessel as the parent of clone, grafting the rest
// of the sibling structure, and recurses toward the origin.
func (v *Vessel) copyAsParent(old, clone *Vessel) {
	p := newVessel(v.scale, v.parent, v.distal)
	p.kRes = v.kRes
	for _, c := range v.children {
		if c != old {
			cc := c.CopySubtree()
			cc.parent = p
			p.addChild(cc)
		} else {
			clone.parent = p
			p.addChild(clone)
		}
	}
	v.parent.copyAsParent(v, p)
}

// Equal reports structural equality of two subtrees: same radius, same
// distal point, pairwise equal children.
func (v *Vessel) Equal(other *Vessel) bool {
	if other == nil || v.Radius() != other.Radius() || v.distal != other.distal {
		return false
	}
	if len(v.children) != len(other.children) {
		return false
	}
	for i := range v.children {
		if !v.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}
