package cco

import (
	"errors"
	"math/rand"

	"github.com/rs/zerolog"
)

// ErrNoCandidate indicates that every vessel of the tree was rejected as a
// bifurcation site for the drawn terminal point. Recoverable: the driver
// state is unchanged and the next call draws a fresh terminal.
var ErrNoCandidate = errors.New("cco: no valid bifurcation candidate for terminal")

// Default tuning values for Options.
const (
	// DefaultSampleRetries is the number of consecutive rejected terminal
	// samples tolerated before the acceptance threshold decays.
	DefaultSampleRetries = 50

	// DefaultThresholdDecay multiplies the acceptance threshold after each
	// run of rejected samples.
	DefaultThresholdDecay = 0.9

	// DefaultNoCandidateRetries bounds how often Run and GenerateTrees retry
	// an iteration that found no valid candidate.
	DefaultNoCandidateRetries = 25
)

// Options configures a Generator.
type Options struct {
	// RNG is the random source for terminal sampling. Required: the caller
	// owns all randomness.
	RNG *rand.Rand

	// Logger receives debug records of threshold decays and per-iteration
	// progress. Defaults to a disabled logger.
	Logger zerolog.Logger

	// SampleRetries is the rejected-sample run length that triggers a
	// threshold decay.
	SampleRetries int

	// ThresholdDecay is the per-run threshold multiplier.
	ThresholdDecay float64

	// NoCandidateRetries bounds the ErrNoCandidate retries in Run and
	// GenerateTrees.
	NoCandidateRetries int
}

// DefaultOptions returns production defaults with the given random source.
func DefaultOptions(rng *rand.Rand) Options {
	return Options{
		RNG:                rng,
		Logger:             zerolog.Nop(),
		SampleRetries:      DefaultSampleRetries,
		ThresholdDecay:     DefaultThresholdDecay,
		NoCandidateRetries: DefaultNoCandidateRetries,
	}
}

// WinnerRecord captures, for one committed iteration, the queue rank of the
// winning candidate (0 = the vessel closest to the terminal) and its segment
// distance to the terminal at evaluation time.
type WinnerRecord struct {
	Iteration int
	Rank      int
	Distance  float64
}
