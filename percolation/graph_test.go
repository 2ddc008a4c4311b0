package percolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cellSet reduces a cell slice to coordinate pairs for comparison.
func cellSet(cells []*Cell) map[[2]int]bool {
	set := make(map[[2]int]bool, len(cells))
	for _, c := range cells {
		set[[2]int{c.I, c.J}] = true
	}
	return set
}

// simplePathNodes brute-force enumerates every simple source→sink path over
// the edge graph and returns the union of their nodes. Exponential; only for
// tiny test lattices.
func simplePathNodes(n *Network, source, sink *Cell) map[[2]int]bool {
	adj := n.AdjacencyList()
	onPath := make(map[[2]int]bool)
	visited := make(map[*Cell]bool)
	var path []*Cell

	var dfs func(u *Cell)
	dfs = func(u *Cell) {
		visited[u] = true
		path = append(path, u)
		if u == sink {
			for _, p := range path {
				onPath[[2]int{p.I, p.J}] = true
			}
		} else {
			for _, v := range adj[u] {
				if !visited[v] {
					dfs(v)
				}
			}
		}
		path = path[:len(path)-1]
		visited[u] = false
	}
	dfs(source)
	return onPath
}

// TestAdjacencyList mirrors the edge list: symmetric, reached-only, degree
// consistent with incident edges.
func TestAdjacencyList(t *testing.T) {
	n := mustNetwork(t, 8, 8, 0.5, 19)
	adj := n.AdjacencyList()

	require.Len(t, adj, len(n.ReachedCells()))
	degrees := 0
	for c, nbrs := range adj {
		assert.True(t, c.IsReached())
		degrees += len(nbrs)
		for _, b := range nbrs {
			assert.Contains(t, adj[b], c, "adjacency must be symmetric")
		}
	}
	assert.Equal(t, 2*len(n.Edges()), degrees)
}

// TestBFS_PredecessorMap: every reached cell other than the start has a
// predecessor, and each predecessor is joined to its cell by an edge.
func TestBFS_PredecessorMap(t *testing.T) {
	n := mustNetwork(t, 10, 10, 0.5, 23)
	seed := n.Cell(5, 5)
	backrefs := n.BFS(seed)

	require.Len(t, backrefs, len(n.ReachedCells())-1)
	for c, pred := range backrefs {
		require.NotNil(t, pred)
		// The predecessor relation must follow a materialised edge.
		assert.NotPanics(t, func() { pred.EdgeTo(c) })
	}
}

// TestShortestPathEdges walks the reconstructed corner-to-corner path and
// checks it is a connected edge chain of at least the Manhattan distance.
func TestShortestPathEdges(t *testing.T) {
	n := mustNetwork(t, 10, 10, 0.5, 42)
	tl, err := n.TopLeft()
	require.NoError(t, err)
	br, err := n.BottomRight()
	require.NoError(t, err)

	edges, err := n.ShortestPathEdges()
	require.NoError(t, err)
	require.NotEmpty(t, edges)

	manhattan := abs(tl.I-br.I) + abs(tl.J-br.J)
	assert.GreaterOrEqual(t, len(edges), manhattan)
	assert.Less(t, len(edges), len(n.ReachedCells()))

	// The walk runs sink-to-source: first edge touches the sink, last edge
	// touches the source, and consecutive edges share a cell.
	assert.True(t, edges[0].Touches(br))
	assert.True(t, edges[len(edges)-1].Touches(tl))
	for i := 1; i < len(edges); i++ {
		shared := edges[i].Touches(edges[i-1].A) || edges[i].Touches(edges[i-1].B)
		assert.True(t, shared, "path edges %d and %d do not share a cell", i-1, i)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TestManhattanDistances: reached cells are sources at distance 0, their
// lattice neighbors sit at distance 1, and an always-false predicate leaves
// the whole field unset.
func TestManhattanDistances(t *testing.T) {
	n := mustNetwork(t, 10, 10, 0.3, 31)

	dist := n.ManhattanDistances(func(c *Cell) bool { return c.IsReached() })
	for i := 0; i < n.X; i++ {
		for j := 0; j < n.Y; j++ {
			c := n.Cell(i, j)
			if c.IsReached() {
				assert.Equal(t, 0, dist[i][j])
				continue
			}
			require.GreaterOrEqual(t, dist[i][j], 1)
			// A cell at distance d must have a neighbor at d−1.
			best := dist[i][j]
			ok := false
			for _, b := range n.neighbours(c) {
				if dist[b.I][b.J] == best-1 {
					ok = true
				}
			}
			assert.True(t, ok)
		}
	}

	empty := n.ManhattanDistances(func(*Cell) bool { return false })
	for i := range empty {
		for j := range empty[i] {
			assert.Equal(t, -1, empty[i][j])
		}
	}
}

// TestRemoveDeadEnds checks, on a small lattice, that the surviving node set
// equals the union of all simple source→sink paths, and the operation is
// idempotent.
func TestRemoveDeadEnds(t *testing.T) {
	n := mustNetwork(t, 5, 5, 0.55, 99)
	source, err := n.TopLeft()
	require.NoError(t, err)
	sink, err := n.BottomRight()
	require.NoError(t, err)
	require.NotSame(t, source, sink)

	nodes, edges, err := n.RemoveDeadEnds()
	require.NoError(t, err)

	want := simplePathNodes(n, source, sink)
	assert.Equal(t, want, cellSet(nodes))

	// Surviving edges connect surviving nodes only.
	surviving := cellSet(nodes)
	for _, e := range edges {
		assert.True(t, surviving[[2]int{e.A.I, e.A.J}])
		assert.True(t, surviving[[2]int{e.B.I, e.B.J}])
	}

	// Idempotence: a second run reproduces the same answer.
	nodes2, edges2, err := n.RemoveDeadEnds()
	require.NoError(t, err)
	assert.Equal(t, cellSet(nodes), cellSet(nodes2))
	assert.Len(t, edges2, len(edges))
}

// TestRemoveDeadEnds_Seeds repeats the simple-path check over several seeds to cover
// different cluster shapes.
func TestRemoveDeadEnds_Seeds(t *testing.T) {
	for _, seed := range []int64{2, 17, 54, 101} {
		n := mustNetwork(t, 5, 5, 0.55, seed)
		source, err := n.TopLeft()
		require.NoError(t, err)
		sink, err := n.BottomRight()
		require.NoError(t, err)
		if source == sink {
			continue
		}
		nodes, _, err := n.RemoveDeadEnds()
		require.NoError(t, err)
		assert.Equal(t, simplePathNodes(n, source, sink), cellSet(nodes), "seed %d", seed)
	}
}
