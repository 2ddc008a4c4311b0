package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/cco"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/domain"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/results"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/vessel"
)

var ccoCmd = &cobra.Command{
	Use:   "cco",
	Short: "Grow a vascular tree and write per-iteration result tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		dom, err := cfg.CCO.Domain.Build()
		if err != nil {
			return err
		}
		rng := rand.New(rand.NewSource(cfg.Seed))
		opts := cco.DefaultOptions(rng)
		opts.Logger = logger

		gen := cco.NewGenerator(cfg.CCO.RootRadius, cfg.CCO.InflowPoint(), dom, opts)

		var final *vessel.Origin
		for i := 0; i < cfg.CCO.Iterations; i++ {
			logger.Info().Int("iteration", i+1).Msg("starting iteration")
			tree, err := gen.NextWithRetry()
			if err != nil {
				return err
			}
			if err := writeTreeFile(cfg.OutputDir, i, tree); err != nil {
				return err
			}
			final = tree
		}

		d, _, p := cco.GreatestVesselDistance(final, dom, cfg.CCO.SampleIntervals)
		logger.Info().Float64("distance", d).Stringer("point", p).Msg("furthest point from any vessel")
		dt, _, pt := cco.GreatestTerminalDistance(final, dom, cfg.CCO.SampleIntervals)
		logger.Info().Float64("distance", dt).Stringer("point", pt).Msg("furthest point from any terminal")

		if err := writeSampleTables(cfg.OutputDir, final, dom, cfg.CCO.SampleIntervals); err != nil {
			return err
		}
		logger.Info().Int("terminals", final.NumTerminals()).Msg("run complete")
		return nil
	},
}

// writeTreeFile persists the tree of one iteration.
func writeTreeFile(dir string, iteration int, tree *vessel.Origin) error {
	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("results%d.txt", iteration)))
	if err != nil {
		return err
	}
	defer f.Close()
	return results.WriteTree(f, tree)
}

// writeSampleTables persists the per-sample-point distance tables of the
// final tree.
func writeSampleTables(dir string, tree *vessel.Origin, dom domain.VascularDomain, intervals int) error {
	vf, err := os.Create(filepath.Join(dir, "vessel.txt"))
	if err != nil {
		return err
	}
	defer vf.Close()
	if err := results.WriteVesselDistances(vf, tree, dom, intervals); err != nil {
		return err
	}

	tf, err := os.Create(filepath.Join(dir, "terminal.txt"))
	if err != nil {
		return err
	}
	defer tf.Close()
	return results.WriteTerminalDistances(tf, tree, dom, intervals)
}
