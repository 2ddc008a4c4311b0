package main

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/percolation"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/results"
)

var percolationCmd = &cobra.Command{
	Use:   "percolation",
	Short: "Grow an invasion-percolation network and write its distance table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewSource(cfg.Seed))
		net, err := percolation.New(cfg.Percolation.Width, cfg.Percolation.Height, cfg.Percolation.Occupancy, rng)
		if err != nil {
			return err
		}
		logger.Info().
			Int("reached", len(net.ReachedCells())).
			Int("edges", len(net.Edges())).
			Msg("network grown")

		full := net.ManhattanDistances(func(c *percolation.Cell) bool { return c.IsReached() })

		deadEndNodes, deadEndEdges, err := net.RemoveDeadEnds()
		if err != nil {
			return err
		}
		logger.Info().
			Int("nodes", len(deadEndNodes)).
			Int("edges", len(deadEndEdges)).
			Msg("dead ends removed")
		survivors := make(map[*percolation.Cell]bool, len(deadEndNodes))
		for _, c := range deadEndNodes {
			survivors[c] = true
		}
		noDeadEnds := net.ManhattanDistances(func(c *percolation.Cell) bool { return survivors[c] })

		pathEdges, err := net.ShortestPathEdges()
		if err != nil {
			return err
		}
		onPath := make(map[*percolation.Cell]bool, len(pathEdges)+1)
		for _, e := range pathEdges {
			onPath[e.A] = true
			onPath[e.B] = true
		}
		shortestPath := net.ManhattanDistances(func(c *percolation.Cell) bool { return onPath[c] })

		if err := writeDistanceFile(cfg.OutputDir, net, full, noDeadEnds, shortestPath); err != nil {
			return err
		}

		if cfg.Percolation.Solve {
			flows, pressures, err := net.PressuresFlows(false)
			switch {
			case errors.Is(err, percolation.ErrSingularSystem):
				logger.Warn().Err(err).Msg("pressure system unsolvable, skipping")
			case err != nil:
				return err
			default:
				maxP := 0.0
				for _, p := range pressures {
					if p.Pressure > maxP {
						maxP = p.Pressure
					}
				}
				logger.Info().
					Int("flows", len(flows)).
					Float64("source_pressure", maxP).
					Msg("pressure system solved")
			}
		}
		return nil
	},
}

// writeDistanceFile persists the three distance fields of the grown network.
func writeDistanceFile(dir string, net *percolation.Network, full, noDeadEnds, shortestPath [][]int) error {
	f, err := os.Create(filepath.Join(dir, "percolation.txt"))
	if err != nil {
		return err
	}
	defer f.Close()
	return results.WriteDistanceField(f, net, full, noDeadEnds, shortestPath)
}
