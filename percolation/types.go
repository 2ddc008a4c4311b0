package percolation

import "errors"

// Sentinel errors for network construction and post-processing.
var (
	// ErrOccupancyRange indicates an occupancy outside [0,1].
	ErrOccupancyRange = errors.New("percolation: occupancy must be within [0,1]")
	// ErrEmptyLattice indicates a non-positive lattice dimension.
	ErrEmptyLattice = errors.New("percolation: lattice dimensions must be positive")
	// ErrNotSquare indicates corner extraction on a non-square lattice.
	ErrNotSquare = errors.New("percolation: corner extraction requires a square lattice")
	// ErrSingularSystem indicates the pressure/flow system has no unique
	// solution (disconnected or empty network).
	ErrSingularSystem = errors.New("percolation: singular pressure system")
	// ErrLeakyUnsupported indicates the leaky solver variant was requested.
	ErrLeakyUnsupported = errors.New("percolation: leaky pressure solver is not implemented")
)

// never marks a timestamp slot as unset.
const never = -1

// Cell is a single lattice site. Capacity is its invasion threshold;
// DiscoveredAt and ReachedAt are growth timestamps (never = -1).
type Cell struct {
	I, J         int
	Capacity     float64
	DiscoveredAt int
	ReachedAt    int

	edges []*Edge
}

// IsDiscovered reports whether the growth front has seen the cell.
func (c *Cell) IsDiscovered() bool {
	return c.DiscoveredAt != never
}

// IsReached reports whether the cell has been invaded.
func (c *Cell) IsReached() bool {
	return c.ReachedAt != never
}

// Edges returns the undirected edges incident to the cell.
func (c *Cell) Edges() []*Edge {
	return c.edges
}

// EdgeTo returns the unique edge joining c and other. It panics if the cells
// are not joined by exactly one edge; callers obtain the endpoints from
// adjacency structures that guarantee it.
func (c *Cell) EdgeTo(other *Cell) *Edge {
	var found *Edge
	for _, e := range c.edges {
		if e.Touches(other) {
			if found != nil {
				panic("percolation: duplicate edge between cells")
			}
			found = e
		}
	}
	if found == nil {
		panic("percolation: no edge between cells")
	}
	return found
}

// Edge is an undirected link between two reached 4-neighbor cells.
type Edge struct {
	A, B *Cell
}

// newEdge links a and b and registers the edge on both cells.
func newEdge(a, b *Cell) *Edge {
	e := &Edge{A: a, B: b}
	a.edges = append(a.edges, e)
	b.edges = append(b.edges, e)
	return e
}

// Touches reports whether c is one of the edge's endpoints.
func (e *Edge) Touches(c *Cell) bool {
	return e.A == c || e.B == c
}

// Other returns the endpoint opposite c.
func (e *Edge) Other(c *Cell) *Cell {
	switch c {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		panic("percolation: cell is not an endpoint of the edge")
	}
}
