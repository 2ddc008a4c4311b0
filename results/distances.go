package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/cco"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/domain"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/percolation"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/vessel"
)

// distanceHeader is the column contract of the percolation distance table.
var distanceHeader = []string{"Cell", "Distance", "with Dead Ends", "Shortest Path"}

// WriteDistanceField renders the three hop-distance fields of a grown
// network, one row per reached cell in row-major order.
func WriteDistanceField(w io.Writer, net *percolation.Network, full, noDeadEnds, shortestPath [][]int) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	if err := tsv.Write(distanceHeader); err != nil {
		return err
	}
	for _, c := range net.ReachedCells() {
		row := []string{
			fmt.Sprintf("(%d, %d)", c.I, c.J),
			strconv.Itoa(full[c.I][c.J]),
			strconv.Itoa(noDeadEnds[c.I][c.J]),
			strconv.Itoa(shortestPath[c.I][c.J]),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	return tsv.Error()
}

// WriteVesselDistances renders, for every grid sample point of the domain,
// the distance to the nearest vessel and that vessel's segment.
func WriteVesselDistances(w io.Writer, tree *vessel.Origin, dom domain.VascularDomain, intervals int) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	if err := tsv.Write([]string{"Point", "Distance", "Start and End Point"}); err != nil {
		return err
	}
	for _, p := range dom.PointGrid(intervals) {
		d, seg := cco.DistanceFromVessel(tree, p)
		row := []string{
			p.String(),
			formatFloat(d),
			fmt.Sprintf("%s %s", seg.A, seg.B),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	return tsv.Error()
}

// WriteTerminalDistances renders, for every grid sample point of the domain,
// the distance to the nearest terminal and that terminal's distal point.
func WriteTerminalDistances(w io.Writer, tree *vessel.Origin, dom domain.VascularDomain, intervals int) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	if err := tsv.Write([]string{"Point", "Distance", "Terminal"}); err != nil {
		return err
	}
	for _, p := range dom.PointGrid(intervals) {
		d, terminal := cco.DistanceFromTerminal(tree, p)
		row := []string{
			p.String(),
			formatFloat(d),
			terminal.String(),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	return tsv.Error()
}
