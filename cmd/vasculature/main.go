// Command vasculature grows CCO vascular trees and invasion-percolation
// networks and writes their result tables.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vasculature",
	Short: "Synthetic vascular tree and porous network generation",
	Long: `Vasculature synthesises space-filling binary vascular trees by
constrained constructive optimisation and porous transport networks by
invasion percolation, writing tab-separated result tables for the
downstream visualisers.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(ccoCmd)
	rootCmd.AddCommand(percolationCmd)
}

// setup loads the configuration and builds the run logger.
func setup() (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, zerolog.Nop(), err
	}

	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		level = parsed
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return cfg, logger, err
	}
	return cfg, logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
