package cco

import (
	"container/heap"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/vessel"
)

// candidate pairs a vessel with its segment distance to the terminal point
// being attached.
type candidate struct {
	distance float64
	vessel   *vessel.Vessel
}

// candidateQueue is a min-heap of candidates keyed by distance, so that
// bifurcation sites are enumerated closest-first.
type candidateQueue []candidate

// newCandidateQueue keys every vessel of the tree by its segment distance to
// xd and heapifies. Complexity: O(n).
func newCandidateQueue(vessels []*vessel.Vessel, xd linalg.Vec2D) *candidateQueue {
	q := make(candidateQueue, len(vessels))
	for i, v := range vessels {
		q[i] = candidate{distance: v.Segment().DistanceTo(xd), vessel: v}
	}
	heap.Init(&q)
	return &q
}

func (q candidateQueue) Len() int           { return len(q) }
func (q candidateQueue) Less(i, j int) bool { return q[i].distance < q[j].distance }
func (q candidateQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *candidateQueue) Push(x any) {
	*q = append(*q, x.(candidate))
}

func (q *candidateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
