package cco

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/domain"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/vessel"
)

// Generator grows a vascular tree one terminal per step. It is a sequential
// lazy producer: each Next call yields the tree after one more committed
// bifurcation (the first call yields the seeded single-vessel tree).
type Generator struct {
	radius  float64
	initial linalg.Vec2D
	dom     domain.VascularDomain
	opts    Options

	origin    *vessel.Origin
	iteration int
	winners   []WinnerRecord
}

// NewGenerator constructs a driver for a tree rooted at initialPoint with the
// given absolute root radius, perfusing dom.
func NewGenerator(radius float64, initialPoint linalg.Vec2D, dom domain.VascularDomain, opts Options) *Generator {
	if opts.RNG == nil {
		panic("cco: Options.RNG must be provided")
	}
	if opts.SampleRetries <= 0 {
		opts.SampleRetries = DefaultSampleRetries
	}
	if opts.ThresholdDecay <= 0 || opts.ThresholdDecay >= 1 {
		opts.ThresholdDecay = DefaultThresholdDecay
	}
	if opts.NoCandidateRetries <= 0 {
		opts.NoCandidateRetries = DefaultNoCandidateRetries
	}
	return &Generator{
		radius:  radius,
		initial: initialPoint,
		dom:     dom,
		opts:    opts,
	}
}

// Tree returns the current committed tree (nil before the first Next call).
func (g *Generator) Tree() *vessel.Origin {
	return g.origin
}

// NumTerminals returns the number of terminals committed so far.
func (g *Generator) NumTerminals() int {
	return g.iteration
}

// Winners returns the per-iteration observability records: the queue rank of
// each committed candidate and its distance to the terminal.
func (g *Generator) Winners() []WinnerRecord {
	return g.winners
}

// Next advances the growth by one terminal and returns the committed tree.
// The first call seeds the tree with a single random vessel. On
// ErrNoCandidate the committed state is unchanged and a later call retries
// with a freshly drawn terminal.
func (g *Generator) Next() (*vessel.Origin, error) {
	if g.origin == nil {
		g.seed()
		return g.origin, nil
	}

	xd := g.generateTerminalPoint(g.iteration)

	// Snapshot so candidate trials cannot contaminate the prior iteration.
	trial := g.origin.CopySubtree()

	pq := newCandidateQueue(trial.Descendants(), xd)
	best, ok := g.evaluateCandidates(trial, pq, xd)
	if !ok {
		return nil, ErrNoCandidate
	}

	best.vessel.Bifurcate(xd)
	best.vessel.GeometricallyOptimise()
	g.origin = trial
	g.winners = append(g.winners, WinnerRecord{Iteration: g.iteration, Rank: best.rank, Distance: best.distance})
	g.opts.Logger.Info().
		Int("iteration", g.iteration).
		Int("winner_rank", best.rank).
		Float64("winner_distance", best.distance).
		Msg("committed bifurcation")
	g.iteration++
	return g.origin, nil
}

// GenerateTrees yields the trees at stages 1..k. Iterations that fail with
// ErrNoCandidate are retried with fresh terminals up to the configured bound.
func (g *Generator) GenerateTrees(k int) ([]*vessel.Origin, error) {
	if k <= 0 {
		panic("cco: GenerateTrees requires at least one iteration")
	}
	trees := make([]*vessel.Origin, 0, k)
	for len(trees) < k {
		tree, err := g.NextWithRetry()
		if err != nil {
			return trees, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

// Run generates k trees and returns the final one.
func (g *Generator) Run(k int) (*vessel.Origin, error) {
	trees, err := g.GenerateTrees(k)
	if err != nil {
		return nil, err
	}
	return trees[len(trees)-1], nil
}

// NextWithRetry is Next with the ErrNoCandidate recovery applied: failed
// iterations redraw a fresh terminal up to the configured retry bound.
func (g *Generator) NextWithRetry() (*vessel.Origin, error) {
	var err error
	for attempt := 0; attempt < g.opts.NoCandidateRetries; attempt++ {
		var tree *vessel.Origin
		tree, err = g.Next()
		if err == nil {
			return tree, nil
		}
		g.opts.Logger.Warn().
			Int("iteration", g.iteration).
			Int("attempt", attempt+1).
			Msg("no valid candidate, redrawing terminal")
	}
	return nil, fmt.Errorf("cco: iteration %d failed after %d redrawn terminals: %w",
		g.iteration, g.opts.NoCandidateRetries, err)
}

// seed constructs the origin and its single root vessel at a random domain
// point.
func (g *Generator) seed() {
	g.origin = vessel.NewOrigin(g.radius, g.initial)
	p := g.dom.GeneratePoint(g.opts.RNG)
	g.origin.CreateChild(1.0, p)
	g.iteration = 1
	g.opts.Logger.Info().Msg("seeded root vessel")
}

// generateTerminalPoint draws random domain points until one lies further
// than the acceptance threshold from every vessel. The threshold starts at
// √(area/(kπ)) and decays by the configured factor after every run of
// rejections, so the loop terminates with probability 1.
func (g *Generator) generateTerminalPoint(kTerm int) linalg.Vec2D {
	dThresh := math.Sqrt(g.dom.Area() / (float64(kTerm) * math.Pi))
	g.opts.Logger.Debug().Float64("d_thresh", dThresh).Msg("sampling terminal")
	descendants := g.origin.Descendants()
	for i := 0; ; i++ {
		if i == g.opts.SampleRetries {
			i = 0
			dThresh *= g.opts.ThresholdDecay
			g.opts.Logger.Debug().Float64("d_thresh", dThresh).Msg("threshold decayed")
		}
		p := g.dom.GeneratePoint(g.opts.RNG)
		dCrit := math.Inf(1)
		for _, v := range descendants {
			if d := v.Segment().DistanceTo(p); d < dCrit {
				dCrit = d
			}
		}
		if dCrit > dThresh {
			return p
		}
	}
}

// winner is the best candidate found during evaluation.
type winner struct {
	vessel   *vessel.Vessel
	cost     float64
	distance float64
	rank     int
}

// evaluateCandidates tries every queued vessel in order: bifurcate, optimise,
// validate, cost, undo. It returns the minimum-cost valid candidate.
func (g *Generator) evaluateCandidates(trial *vessel.Origin, pq *candidateQueue, xd linalg.Vec2D) (winner, bool) {
	var best winner
	found := false
	for rank := 0; pq.Len() > 0; rank++ {
		c := heap.Pop(pq).(candidate)
		vj := c.vessel

		vj.Bifurcate(xd)
		vj.GeometricallyOptimise()

		if g.validBifurcation(trial, vj) {
			if cost := trial.Cost(); !found || cost < best.cost {
				best = winner{vessel: vj, cost: cost, distance: c.distance, rank: rank}
				found = true
			}
		}
		vj.RemoveBifurcation()
	}
	return best, found
}

// validBifurcation applies the degeneracy and intersection checks to the
// three vessels involved in the trial bifurcation rooted at vj's new parent.
func (g *Generator) validBifurcation(trial *vessel.Origin, vj *vessel.Vessel) bool {
	parent := vj.Parent().(*vessel.Vessel)
	involved := []*vessel.Vessel{parent.Children()[0], parent.Children()[1], parent}

	// Degeneracy: a vessel thicker than it is long is rejected outright.
	for _, v := range involved {
		if v.Radius() > v.Length() {
			return false
		}
	}

	// Intersection: each involved vessel may only touch vessels it is
	// incident to (its parent, its siblings and its children).
	descendants := trial.Descendants()
	for _, v := range involved {
		incident := make(map[*vessel.Vessel]bool, 6)
		if p, ok := v.Parent().(*vessel.Vessel); ok {
			incident[p] = true
			for _, s := range p.Children() {
				incident[s] = true
			}
		} else {
			incident[v] = true
		}
		for _, c := range v.Children() {
			incident[c] = true
		}
		seg := v.Segment()
		for _, w := range descendants {
			if incident[w] {
				continue
			}
			if seg.Intersects(w.Segment()) {
				return false
			}
		}
	}
	return true
}
