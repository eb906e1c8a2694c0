package engine

import (
	"errors"
	"fmt"

	"plegma/internal/landscape"
)

// Replacement policies for the generational step.
const (
	// ReplacementStrict installs the child whenever it scores strictly
	// better than the incumbent.
	ReplacementStrict = "strict"
	// ReplacementProbabilistic additionally requires an acceptance draw,
	// slowing convergence.
	ReplacementProbabilistic = "probabilistic"
)

// Diversity metrics reported by Stats.
const (
	// DiversityFitnessStddev is the population standard deviation of
	// cached fitness values.
	DiversityFitnessStddev = "fitness_stddev"
	// DiversityEdgeDistance is the mean genotype distance over directed
	// topology edges.
	DiversityEdgeDistance = "edge_distance"
)

// Defaults applied by Config.withDefaults for fields left at zero.
const (
	DefaultInitBias       = 0.5
	DefaultBoundMin       = -5.12
	DefaultBoundMax       = 5.12
	DefaultSigma          = 0.1
	DefaultAcceptanceProb = 0.5
)

var ErrInvalidConfig = errors.New("invalid engine config")

// Config fixes one run. It is immutable for the lifetime of an engine;
// resetting means constructing a new engine.
type Config struct {
	PopSize      int
	GenomeLength int
	Seed         int64

	MutationRate  float64
	CrossoverRate float64

	// Topology is the graph kind; unrecognized names fall back to grid.
	Topology     string
	RewiringProb float64

	// Landscape names the fitness evaluator and thereby selects the
	// genotype kind.
	Landscape string

	// InitBias is the bit-vector initialization ones-probability. Nil
	// means unset; zero is a valid value and yields an all-zeros
	// population.
	InitBias *float64
	// BoundMin/BoundMax bound real-vector initialization.
	BoundMin float64
	BoundMax float64
	// Sigma scales real-vector mutation perturbations.
	Sigma float64

	// Replacement selects the replacement policy; AcceptanceProb applies
	// to the probabilistic policy only. Nil means unset; zero is a valid
	// value under which no improvement is ever accepted.
	Replacement    string
	AcceptanceProb *float64

	// Diversity selects the Stats diversity metric.
	Diversity string
}

func (c Config) withDefaults() Config {
	if c.InitBias == nil {
		bias := DefaultInitBias
		c.InitBias = &bias
	}
	if c.BoundMin == 0 && c.BoundMax == 0 {
		c.BoundMin = DefaultBoundMin
		c.BoundMax = DefaultBoundMax
	}
	if c.Sigma == 0 {
		c.Sigma = DefaultSigma
	}
	if c.Replacement == "" {
		c.Replacement = ReplacementStrict
	}
	if c.AcceptanceProb == nil {
		prob := DefaultAcceptanceProb
		c.AcceptanceProb = &prob
	}
	if c.Diversity == "" {
		c.Diversity = DiversityFitnessStddev
	}
	return c
}

func (c Config) validate() error {
	if c.PopSize < 1 {
		return fmt.Errorf("%w: population size must be >= 1, got %d", ErrInvalidConfig, c.PopSize)
	}
	if c.GenomeLength < 1 {
		return fmt.Errorf("%w: genome length must be >= 1, got %d", ErrInvalidConfig, c.GenomeLength)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("%w: mutation rate must be in [0,1], got %g", ErrInvalidConfig, c.MutationRate)
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return fmt.Errorf("%w: crossover rate must be in [0,1], got %g", ErrInvalidConfig, c.CrossoverRate)
	}
	if c.RewiringProb < 0 || c.RewiringProb > 1 {
		return fmt.Errorf("%w: rewiring probability must be in [0,1], got %g", ErrInvalidConfig, c.RewiringProb)
	}
	if _, err := landscape.Lookup(c.Landscape); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if *c.InitBias < 0 || *c.InitBias > 1 {
		return fmt.Errorf("%w: init bias must be in [0,1], got %g", ErrInvalidConfig, *c.InitBias)
	}
	if c.BoundMin >= c.BoundMax {
		return fmt.Errorf("%w: bound min %g must be below bound max %g", ErrInvalidConfig, c.BoundMin, c.BoundMax)
	}
	if c.Sigma <= 0 {
		return fmt.Errorf("%w: sigma must be > 0, got %g", ErrInvalidConfig, c.Sigma)
	}
	switch c.Replacement {
	case ReplacementStrict, ReplacementProbabilistic:
	default:
		return fmt.Errorf("%w: unknown replacement policy: %s", ErrInvalidConfig, c.Replacement)
	}
	if *c.AcceptanceProb < 0 || *c.AcceptanceProb > 1 {
		return fmt.Errorf("%w: acceptance probability must be in [0,1], got %g", ErrInvalidConfig, *c.AcceptanceProb)
	}
	switch c.Diversity {
	case DiversityFitnessStddev, DiversityEdgeDistance:
	default:
		return fmt.Errorf("%w: unknown diversity metric: %s", ErrInvalidConfig, c.Diversity)
	}
	return nil
}
