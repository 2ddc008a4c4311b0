// Package config loads and validates the YAML run configuration consumed by
// the vasculature CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OmegaFusionCode/ModellingVasculatureProject/domain"
	"github.com/OmegaFusionCode/ModellingVasculatureProject/linalg"
)

// Sentinel errors for configuration validation.
var (
	// ErrUnknownDomain indicates an unrecognised domain kind.
	ErrUnknownDomain = errors.New("config: unknown domain kind")
	// ErrInvalidExtent indicates a non-positive domain or lattice extent.
	ErrInvalidExtent = errors.New("config: extents must be positive")
	// ErrInvalidIterations indicates a non-positive iteration count.
	ErrInvalidIterations = errors.New("config: iterations must be positive")
	// ErrInvalidOccupancy indicates an occupancy outside [0,1].
	ErrInvalidOccupancy = errors.New("config: occupancy must be within [0,1]")
)

// Domain kinds accepted by DomainConfig.Kind.
const (
	DomainCircular    = "circular"
	DomainRectangular = "rectangular"
)

// Config is the root of the run configuration.
type Config struct {
	LogLevel    string            `yaml:"log_level"`
	Seed        int64             `yaml:"seed"`
	OutputDir   string            `yaml:"output_dir"`
	CCO         CCOConfig         `yaml:"cco"`
	Percolation PercolationConfig `yaml:"percolation"`
}

// CCOConfig parameterises the tree generator.
type CCOConfig struct {
	RootRadius      float64      `yaml:"root_radius"`
	InflowX         float64      `yaml:"inflow_x"`
	InflowY         float64      `yaml:"inflow_y"`
	Iterations      int          `yaml:"iterations"`
	SampleIntervals int          `yaml:"sample_intervals"`
	Domain          DomainConfig `yaml:"domain"`
}

// InflowPoint returns the configured inflow point.
func (c CCOConfig) InflowPoint() linalg.Vec2D {
	return linalg.Vec2D{X: c.InflowX, Y: c.InflowY}
}

// DomainConfig selects and sizes the perfusion region.
type DomainConfig struct {
	Kind   string  `yaml:"kind"`
	Radius float64 `yaml:"radius"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Build constructs the configured vascular domain.
func (d DomainConfig) Build() (domain.VascularDomain, error) {
	switch d.Kind {
	case DomainCircular:
		if d.Radius <= 0 {
			return nil, ErrInvalidExtent
		}
		return domain.NewCircular(d.Radius), nil
	case DomainRectangular:
		if d.Width <= 0 || d.Height <= 0 {
			return nil, ErrInvalidExtent
		}
		return domain.NewRectangular(d.Width, d.Height), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, d.Kind)
	}
}

// PercolationConfig parameterises the lattice growth and its post-processing.
type PercolationConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Occupancy float64 `yaml:"occupancy"`
	Solve     bool    `yaml:"solve"`
}

// Default returns the reference configuration: a disc of radius 40 perfused
// from its rim, and a 10×10 half-occupied lattice.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Seed:      1,
		OutputDir: "results",
		CCO: CCOConfig{
			RootRadius:      1,
			InflowX:         40,
			InflowY:         0,
			Iterations:      10,
			SampleIntervals: 100,
			Domain: DomainConfig{
				Kind:   DomainCircular,
				Radius: 40,
			},
		},
		Percolation: PercolationConfig{
			Width:     10,
			Height:    10,
			Occupancy: 0.5,
			Solve:     true,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged; a path that cannot be read is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every numeric range ahead of a run.
func (c Config) Validate() error {
	if c.CCO.Iterations <= 0 {
		return ErrInvalidIterations
	}
	if c.CCO.RootRadius <= 0 || c.CCO.SampleIntervals <= 0 {
		return ErrInvalidExtent
	}
	if _, err := c.CCO.Domain.Build(); err != nil {
		return err
	}
	if c.Percolation.Width <= 0 || c.Percolation.Height <= 0 {
		return ErrInvalidExtent
	}
	if c.Percolation.Occupancy < 0 || c.Percolation.Occupancy > 1 {
		return ErrInvalidOccupancy
	}
	return nil
}
