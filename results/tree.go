package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/vessel"
)

// treeHeader is the column contract of the per-iteration tree files.
var treeHeader = []string{
	"id",
	"proximal_point",
	"distal_point",
	"length",
	"radius",
	"scaling_factor",
	"resistance_constant",
	"resistance",
	"pressure_drop",
	"parent",
	"number_of_terminals",
	"left_child",
	"right_child",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteTree renders one tree as a tab-separated table, one row per vessel in
// pre-order from the origin's child.
func WriteTree(w io.Writer, tree *vessel.Origin) error {
	descendants := tree.Descendants()
	names := make(map[*vessel.Vessel]string, len(descendants))
	for i, v := range descendants {
		names[v] = fmt.Sprintf("v%d", i)
	}

	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	if err := tsv.Write(treeHeader); err != nil {
		return err
	}
	for _, v := range descendants {
		parent := ""
		if p, ok := v.Parent().(*vessel.Vessel); ok {
			parent = names[p]
		}
		left, right := "", ""
		if children := v.Children(); len(children) == 2 {
			left = names[children[0]]
			right = names[children[1]]
		}
		row := []string{
			names[v],
			v.ProximalPoint().String(),
			v.DistalPoint().String(),
			formatFloat(v.Length()),
			formatFloat(v.Radius()),
			formatFloat(v.Scale()),
			formatFloat(v.ResistanceConstant()),
			formatFloat(v.Resistance()),
			formatFloat(v.Resistance() * float64(v.NumTerminals())),
			parent,
			strconv.Itoa(v.NumTerminals()),
			left,
			right,
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	return tsv.Error()
}
