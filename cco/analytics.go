package cco

import (
	"math"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/domain"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/vessel"
)

// Spatial diagnostics over a finished tree. All of them sweep a uniform
// sample grid of the perfusion domain and reduce per-point distances.

// DistanceFromVessel returns the smallest segment distance from p to any
// vessel of the tree, along with that vessel's segment.
func DistanceFromVessel(tree *vessel.Origin, p linalg.Vec2D) (float64, linalg.LineSegment) {
	best := math.Inf(1)
	var seg linalg.LineSegment
	for _, v := range tree.Descendants() {
		s := v.Segment()
		if d := s.DistanceTo(p); d < best {
			best = d
			seg = s
		}
	}
	return best, seg
}

// DistanceFromTerminal returns the smallest Euclidean distance from p to any
// terminal's distal point, along with that terminal point.
func DistanceFromTerminal(tree *vessel.Origin, p linalg.Vec2D) (float64, linalg.Vec2D) {
	best := math.Inf(1)
	var terminal linalg.Vec2D
	for _, v := range tree.Descendants() {
		if !v.IsTerminal() {
			continue
		}
		if d := v.DistalPoint().Sub(p).Abs(); d < best {
			best = d
			terminal = v.DistalPoint()
		}
	}
	return best, terminal
}

// GreatestVesselDistance finds the grid point of the domain furthest from the
// vessel set: the maximum over sample points of the minimum segment distance.
// It returns the distance, the nearest vessel segment at that point and the
// point itself.
func GreatestVesselDistance(tree *vessel.Origin, dom domain.VascularDomain, intervals int) (float64, linalg.LineSegment, linalg.Vec2D) {
	worst := math.Inf(-1)
	var worstSeg linalg.LineSegment
	var worstPoint linalg.Vec2D
	for _, p := range dom.PointGrid(intervals) {
		if d, seg := DistanceFromVessel(tree, p); d > worst {
			worst = d
			worstSeg = seg
			worstPoint = p
		}
	}
	return worst, worstSeg, worstPoint
}

// GreatestTerminalDistance is GreatestVesselDistance restricted to terminal
// distal points.
func GreatestTerminalDistance(tree *vessel.Origin, dom domain.VascularDomain, intervals int) (float64, linalg.Vec2D, linalg.Vec2D) {
	worst := math.Inf(-1)
	var worstTerminal, worstPoint linalg.Vec2D
	for _, p := range dom.PointGrid(intervals) {
		if d, terminal := DistanceFromTerminal(tree, p); d > worst {
			worst = d
			worstTerminal = terminal
			worstPoint = p
		}
	}
	return worst, worstTerminal, worstPoint
}

// BlackBoxCount records how many terminals lie within the domain's
// characteristic length of a sample point.
type BlackBoxCount struct {
	Point linalg.Vec2D
	Count int
}

// CountBlackBoxes counts, for every grid point, the terminals within the
// domain's characteristic length. Domains without a characteristic length
// (currently the rectangular region) return the underlying error.
func CountBlackBoxes(tree *vessel.Origin, dom domain.VascularDomain, intervals int) ([]BlackBoxCount, error) {
	reach, err := dom.CharacteristicLength()
	if err != nil {
		return nil, err
	}
	terminals := make([]linalg.Vec2D, 0)
	for _, v := range tree.Descendants() {
		if v.IsTerminal() {
			terminals = append(terminals, v.DistalPoint())
		}
	}
	grid := dom.PointGrid(intervals)
	counts := make([]BlackBoxCount, 0, len(grid))
	for _, p := range grid {
		n := 0
		for _, t := range terminals {
			if t.Sub(p).Abs() <= reach {
				n++
			}
		}
		counts = append(counts, BlackBoxCount{Point: p, Count: n})
	}
	return counts, nil
}
