package cco

import (
	"container/heap"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/domain"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/vessel"
)

// newDiscGenerator builds the reference setup: unit-radius root at the rim
// of a disc of radius 40, fixed seed.
func newDiscGenerator(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return NewGenerator(1, linalg.Vec2D{X: 40, Y: 0}, domain.NewCircular(40), DefaultOptions(rng))
}

// checkTreeInvariants checks Murray's law, the resistance balance and the
// no-crossing rule on a committed tree.
func checkTreeInvariants(t *testing.T, tree *vessel.Origin) {
	t.Helper()
	descendants := tree.Descendants()
	for _, v := range descendants {
		if v.IsTerminal() {
			require.Empty(t, v.Children())
			continue
		}
		require.Len(t, v.Children(), 2)
		a, b := v.Children()[0], v.Children()[1]

		sA, sB := a.Scale(), b.Scale()
		assert.InDelta(t, 1.0, math.Pow(sA, 3)+math.Pow(sB, 3), 1e-13, "Murray's law")

		resA := a.ResistanceConstant() + a.Length()
		resB := b.ResistanceConstant() + b.Length()
		balA := resA * float64(a.NumTerminals()) * math.Pow(sA, -4)
		balB := resB * float64(b.NumTerminals()) * math.Pow(sB, -4)
		assert.InDelta(t, balA, balB, 1e-10, "resistance balance")
	}

	// Committed vessels never cross vessels they are not incident to.
	for _, v := range descendants {
		incident := map[*vessel.Vessel]bool{v: true}
		if p, ok := v.Parent().(*vessel.Vessel); ok {
			incident[p] = true
			for _, s := range p.Children() {
				incident[s] = true
			}
		}
		for _, c := range v.Children() {
			incident[c] = true
		}
		for _, w := range descendants {
			if incident[w] {
				continue
			}
			assert.False(t, v.Segment().Intersects(w.Segment()),
				"vessels %v and %v intersect", v.Segment(), w.Segment())
		}
	}
}

// TestGenerator_Seed: the first Next yields a single random vessel anchored
// at the configured inflow point.
func TestGenerator_Seed(t *testing.T) {
	g := newDiscGenerator(1)
	tree, err := g.Next()
	require.NoError(t, err)
	require.NotNil(t, tree)

	assert.Equal(t, 1, tree.NumTerminals())
	assert.Equal(t, linalg.Vec2D{X: 40, Y: 0}, tree.DistalPoint())
	assert.Equal(t, 1.0, tree.Radius())
	assert.True(t, domain.NewCircular(40).Contains(tree.Root().DistalPoint()))
}

// TestGenerator_TwoIterations runs two iterations on the disc:
// the second tree has exactly two terminals and satisfies the bifurcation invariants.
func TestGenerator_TwoIterations(t *testing.T) {
	g := newDiscGenerator(7)
	trees, err := g.GenerateTrees(2)
	require.NoError(t, err)
	require.Len(t, trees, 2)

	final := trees[1]
	assert.Equal(t, 2, final.NumTerminals())
	checkTreeInvariants(t, final)
}

// TestGenerator_TerminalCount checks the terminal count across a longer run: after k
// committed iterations the tree has exactly k terminals, and each stage's
// invariants hold.
func TestGenerator_TerminalCount(t *testing.T) {
	g := newDiscGenerator(11)
	trees, err := g.GenerateTrees(6)
	require.NoError(t, err)
	require.Len(t, trees, 6)

	for k, tree := range trees {
		assert.Equal(t, k+1, tree.NumTerminals())
	}
	checkTreeInvariants(t, trees[5])
}

// TestGenerator_SnapshotIsolation: trees yielded at earlier stages must not
// be mutated by later iterations.
func TestGenerator_SnapshotIsolation(t *testing.T) {
	g := newDiscGenerator(3)
	first, err := g.Next()
	require.NoError(t, err)
	snapshot := first.CopySubtree()

	_, err = g.NextWithRetry()
	require.NoError(t, err)

	assert.True(t, first.Equal(snapshot))
}

// TestGenerator_Winners: one observability record per committed iteration,
// with sane rank and distance values.
func TestGenerator_Winners(t *testing.T) {
	g := newDiscGenerator(5)
	_, err := g.GenerateTrees(4)
	require.NoError(t, err)

	records := g.Winners()
	require.Len(t, records, 3) // the seed iteration commits no bifurcation
	for i, rec := range records {
		assert.Equal(t, i+1, rec.Iteration)
		assert.GreaterOrEqual(t, rec.Rank, 0)
		assert.GreaterOrEqual(t, rec.Distance, 0.0)
	}
}

// TestGenerateTerminalPoint_Decay exercises the decay path: with a tree that spans
// its tiny domain no point can clear the initial threshold, so the sampler
// must decay the threshold and still terminate.
func TestGenerateTerminalPoint_Decay(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	dom := domain.NewRectangular(1, 1)
	opts := DefaultOptions(rng)
	g := NewGenerator(0.01, linalg.Vec2D{X: 0, Y: 0.5}, dom, opts)

	// Seed by hand with a vessel crossing the whole domain, so every sample
	// starts within ~0.5 of the tree while the initial threshold is
	// √(1/π) ≈ 0.56.
	g.origin = vessel.NewOrigin(0.01, linalg.Vec2D{X: 0, Y: 0.5})
	g.origin.CreateChild(1.0, linalg.Vec2D{X: 1, Y: 0.5})
	g.iteration = 1

	p := g.generateTerminalPoint(1)
	assert.True(t, dom.Contains(p))
}

//----------------------------------------------------------------------------//
// Candidate queue
//----------------------------------------------------------------------------//

// TestCandidateQueue_Order pops candidates in increasing segment distance.
func TestCandidateQueue_Order(t *testing.T) {
	o := vessel.NewOrigin(1, linalg.Vec2D{X: 0, Y: 0})
	v1 := o.CreateChild(1, linalg.Vec2D{X: 10, Y: 0})
	v1.Bifurcate(linalg.Vec2D{X: 5, Y: 5})

	xd := linalg.Vec2D{X: 10, Y: 1}
	q := newCandidateQueue(o.Descendants(), xd)

	prev := -1.0
	for q.Len() > 0 {
		c := heap.Pop(q).(candidate)
		assert.GreaterOrEqual(t, c.distance, prev)
		prev = c.distance
	}
}
