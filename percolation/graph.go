package percolation

// AdjacencyList returns, for every reached cell, its reached neighbors via
// the materialised edges. Reached cells without edges map to empty slices.
func (n *Network) AdjacencyList() map[*Cell][]*Cell {
	adj := make(map[*Cell][]*Cell, n.N+1)
	for _, c := range n.ReachedCells() {
		adj[c] = nil
	}
	for _, e := range n.edges {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	return adj
}

// BFS performs a breadth-first search over the edge graph from start and
// returns the predecessor map: backrefs[v] is the cell from which v was first
// reached. The start cell is not a key; unreachable cells are absent.
func (n *Network) BFS(start *Cell) map[*Cell]*Cell {
	adj := n.AdjacencyList()
	backrefs := make(map[*Cell]*Cell, len(adj))
	visited := map[*Cell]bool{start: true}
	queue := []*Cell{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				backrefs[v] = u
				queue = append(queue, v)
			}
		}
	}
	return backrefs
}

// ShortestPathEdges reconstructs a fewest-hop path between the designated
// corners by walking BFS predecessors from the bottom-right cell back to the
// top-left cell. The edges are returned sink-to-source.
func (n *Network) ShortestPathEdges() ([]*Edge, error) {
	start, err := n.TopLeft()
	if err != nil {
		return nil, err
	}
	sink, err := n.BottomRight()
	if err != nil {
		return nil, err
	}
	backrefs := n.BFS(start)

	var edges []*Edge
	for succ := sink; succ != start; {
		pred, ok := backrefs[succ]
		if !ok {
			// The reached set is 4-connected, so both corners share a
			// component; a missing predecessor is a broken invariant.
			panic("percolation: corner unreachable in BFS predecessor map")
		}
		edges = append(edges, pred.EdgeTo(succ))
		succ = pred
	}
	return edges, nil
}

// ManhattanDistances runs a multi-source BFS over the full lattice (4-neighbor
// adjacency, reached or not) from every cell satisfying pred, and returns the
// hop-count field indexed [i][j]. Cells satisfying pred are at distance 0;
// with no sources all cells are at -1.
func (n *Network) ManhattanDistances(pred func(*Cell) bool) [][]int {
	dist := make([][]int, n.X)
	for i := range dist {
		dist[i] = make([]int, n.Y)
		for j := range dist[i] {
			dist[i][j] = never
		}
	}

	var queue []*Cell
	for i := 0; i < n.X; i++ {
		for j := 0; j < n.Y; j++ {
			if c := n.cells[i][j]; pred(c) {
				dist[i][j] = 0
				queue = append(queue, c)
			}
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.neighbours(u) {
			if dist[v.I][v.J] == never {
				dist[v.I][v.J] = dist[u.I][u.J] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// RemoveDeadEnds returns the transport-relevant subgraph: the cells and edges
// lying on some simple path between the top-left and bottom-right corners.
//
// For each edge (a,b): if no path from a to either corner exists that avoids
// b, the whole component reachable from a without crossing b is deleted
// (and symmetrically with the roles swapped). Surviving nodes are those never
// deleted; surviving edges have both endpoints surviving.
//
// Complexity: O(V·E) worst case.
func (n *Network) RemoveDeadEnds() ([]*Cell, []*Edge, error) {
	source, err := n.TopLeft()
	if err != nil {
		return nil, nil, err
	}
	sink, err := n.BottomRight()
	if err != nil {
		return nil, nil, err
	}
	adj := n.AdjacencyList()
	deleted := make(map[*Cell]bool, len(adj))

	// canFind reports whether either corner is reachable from start without
	// visiting noVisit.
	canFind := func(start, noVisit *Cell) bool {
		discovered := map[*Cell]bool{start: true}
		stack := []*Cell{start}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if u == source || u == sink {
				return true
			}
			for _, v := range adj[u] {
				if v != noVisit && !discovered[v] {
					discovered[v] = true
					stack = append(stack, v)
				}
			}
		}
		return false
	}

	// deleteComponentIf marks the component of start (avoiding noVisit) as
	// deleted when it is cut off from both corners.
	deleteComponentIf := func(start, noVisit *Cell) {
		if canFind(start, noVisit) {
			return
		}
		deleted[start] = true
		stack := []*Cell{start}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range adj[u] {
				if v != noVisit && !deleted[v] {
					deleted[v] = true
					stack = append(stack, v)
				}
			}
		}
	}

	for _, e := range n.edges {
		deleteComponentIf(e.A, e.B)
		deleteComponentIf(e.B, e.A)
	}

	nodes := make([]*Cell, 0, len(adj))
	for _, c := range n.ReachedCells() {
		if !deleted[c] {
			nodes = append(nodes, c)
		}
	}
	edges := make([]*Edge, 0, len(n.edges))
	for _, e := range n.edges {
		if !deleted[e.A] && !deleted[e.B] {
			edges = append(edges, e)
		}
	}
	return nodes, edges, nil
}
