package percolation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// edgeResistance is the uniform per-edge hydraulic resistance.
const edgeResistance = 1.0

// EdgeFlow pairs an edge with its solved flow. Flow is positive in the
// canonical From→To direction, where From is the endpoint of lower lattice
// index.
type EdgeFlow struct {
	Edge     *Edge
	From, To *Cell
	Flow     float64
}

// CellPressure pairs a reached cell with its solved pressure.
type CellPressure struct {
	Cell     *Cell
	Pressure float64
}

// PressuresFlows solves the steady-state pressure and flow distribution of
// the grown network with one unit of flow entering at the top-left cell and
// leaving at the bottom-right cell. The leaky variant is not implemented and
// errors out when requested.
//
// The linear system has |E|+|V| unknowns (one flow per edge, one pressure
// per reached cell): flow conservation at every reached cell except the
// source (with a net unit inflow at the sink), an Ohmic drop p_a − p_b = R·q
// per edge, and the gauge p_sink = 0. Singular systems (empty or
// disconnected networks) are reported as ErrSingularSystem.
func (n *Network) PressuresFlows(leaky bool) ([]EdgeFlow, []CellPressure, error) {
	if leaky {
		return nil, nil, ErrLeakyUnsupported
	}
	source, err := n.TopLeft()
	if err != nil {
		return nil, nil, err
	}
	sink, err := n.BottomRight()
	if err != nil {
		return nil, nil, err
	}
	return n.solvePressuresFlows(source, sink)
}

// solvePressuresFlows assembles and solves the Kirchhoff system for an
// explicit source/sink pair.
func (n *Network) solvePressuresFlows(source, sink *Cell) ([]EdgeFlow, []CellPressure, error) {
	reached := n.ReachedCells()
	if len(n.edges) == 0 || source == sink {
		return nil, nil, ErrSingularSystem
	}

	nEdges := len(n.edges)
	nCells := len(reached)
	dim := nEdges + nCells

	cellCol := make(map[*Cell]int, nCells)
	for k, c := range reached {
		cellCol[c] = nEdges + k
	}
	edgeCol := make(map[*Edge]int, nEdges)
	from := make([]*Cell, nEdges)
	to := make([]*Cell, nEdges)
	for k, e := range n.edges {
		edgeCol[e] = k
		a, b := e.A, e.B
		if n.index(a) > n.index(b) {
			a, b = b, a
		}
		from[k], to[k] = a, b
	}

	a := mat.NewDense(dim, dim, nil)
	rhs := mat.NewVecDense(dim, nil)
	row := 0

	// Flow conservation at every reached cell except the source; the sink
	// absorbs the one unit that leaves the network.
	for _, c := range reached {
		if c == source {
			continue
		}
		for _, e := range c.edges {
			k := edgeCol[e]
			if to[k] == c {
				a.Set(row, k, 1)
			} else {
				a.Set(row, k, -1)
			}
		}
		if c == sink {
			rhs.SetVec(row, 1)
		}
		row++
	}

	// Ohmic drop across every edge: p_from − p_to − R·q = 0.
	for k := range n.edges {
		a.Set(row, cellCol[from[k]], 1)
		a.Set(row, cellCol[to[k]], -1)
		a.Set(row, k, -edgeResistance)
		row++
	}

	// Gauge: the sink is at zero pressure.
	a.Set(row, cellCol[sink], 1)

	var x mat.VecDense
	if err := x.SolveVec(a, rhs); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	flows := make([]EdgeFlow, nEdges)
	for k, e := range n.edges {
		flows[k] = EdgeFlow{Edge: e, From: from[k], To: to[k], Flow: x.AtVec(k)}
	}
	pressures := make([]CellPressure, nCells)
	for k, c := range reached {
		pressures[k] = CellPressure{Cell: c, Pressure: x.AtVec(nEdges + k)}
	}
	return flows, pressures, nil
}
