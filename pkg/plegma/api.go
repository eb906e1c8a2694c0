// Package plegma is the public surface of the cellular GA engine: a
// request/response facade that constructs an engine from a run request,
// drives it for a fixed number of generations and reports the fitness
// trajectory. Callers needing generation-by-generation control construct
// an engine with NewEngine and drive Evolve at their own cadence.
package plegma

import (
	"context"

	"plegma/internal/engine"
	"plegma/internal/genome"
	"plegma/internal/landscape"
	"plegma/internal/topology"
)

// Defaults applied to zero-valued RunRequest fields. The engine itself
// treats any seed as explicit; the default seed lives here.
const (
	DefaultPopulation   = 36
	DefaultGenomeLength = 32
	DefaultGenerations  = 100
	DefaultSeed         = 42
	DefaultLandscape    = "onemax"
	DefaultTopology     = "grid"
	defaultMutation     = 0.02
	defaultCrossover    = 0.9
)

// RunRequest configures one run. Zero values select the documented
// defaults; everything else is validated by the engine at construction.
// InitBias and AcceptanceProb admit zero as a meaningful value, so they
// are pointers: nil selects the engine default.
type RunRequest struct {
	Landscape      string
	Topology       string
	Population     int
	GenomeLength   int
	Generations    int
	Seed           int64
	MutationRate   float64
	CrossoverRate  float64
	RewiringProb   float64
	InitBias       *float64
	BoundMin       float64
	BoundMax       float64
	Sigma          float64
	Replacement    string
	AcceptanceProb *float64
	Diversity      string

	// Layout hints the coordinate space for rendering positions.
	LayoutWidth  float64
	LayoutHeight float64
}

// GenerationStats mirrors engine statistics for one observed generation.
type GenerationStats struct {
	Generation  int
	BestFitness float64
	MeanFitness float64
	Diversity   float64
}

// RunSummary reports a completed (or context-stopped) run.
type RunSummary struct {
	Config           engine.Config
	Generations      int
	BestByGeneration []float64
	AvgByGeneration  []float64
	Final            GenerationStats
	BestGenome       string
}

func (req RunRequest) withDefaults() RunRequest {
	if req.Landscape == "" {
		req.Landscape = DefaultLandscape
	}
	if req.Topology == "" {
		req.Topology = DefaultTopology
	}
	if req.Population <= 0 {
		req.Population = DefaultPopulation
	}
	if req.GenomeLength <= 0 {
		req.GenomeLength = DefaultGenomeLength
	}
	if req.Generations <= 0 {
		req.Generations = DefaultGenerations
	}
	if req.Seed == 0 {
		req.Seed = DefaultSeed
	}
	if req.MutationRate == 0 {
		req.MutationRate = defaultMutation
	}
	if req.CrossoverRate == 0 {
		req.CrossoverRate = defaultCrossover
	}
	return req
}

func (req RunRequest) engineConfig() engine.Config {
	return engine.Config{
		PopSize:        req.Population,
		GenomeLength:   req.GenomeLength,
		Seed:           req.Seed,
		MutationRate:   req.MutationRate,
		CrossoverRate:  req.CrossoverRate,
		Topology:       req.Topology,
		RewiringProb:   req.RewiringProb,
		Landscape:      req.Landscape,
		InitBias:       req.InitBias,
		BoundMin:       req.BoundMin,
		BoundMax:       req.BoundMax,
		Sigma:          req.Sigma,
		Replacement:    req.Replacement,
		AcceptanceProb: req.AcceptanceProb,
		Diversity:      req.Diversity,
	}
}

// NewEngine constructs a ready engine from a run request without driving
// it, for callers that control the cadence themselves.
func NewEngine(req RunRequest) (*engine.Engine, error) {
	req = req.withDefaults()
	return engine.NewWithLayout(req.engineConfig(), topology.Layout{
		Width:  req.LayoutWidth,
		Height: req.LayoutHeight,
	})
}

// Run drives a fresh engine for the requested number of generations. The
// context is checked between generations; cancellation stops the run and
// returns the trajectory so far together with the context error.
func Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	req = req.withDefaults()
	eng, err := NewEngine(req)
	if err != nil {
		return RunSummary{}, err
	}

	var runErr error
	for g := 0; g < req.Generations; g++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		eng.Evolve()
	}

	best, avg := eng.History()
	stats := eng.Stats()
	return RunSummary{
		Config:           eng.Config(),
		Generations:      eng.Generation(),
		BestByGeneration: best,
		AvgByGeneration:  avg,
		Final: GenerationStats{
			Generation:  eng.Generation(),
			BestFitness: stats.BestFitness,
			MeanFitness: stats.MeanFitness,
			Diversity:   stats.Diversity,
		},
		BestGenome: eng.BestIndividual().String(),
	}, runErr
}

// Landscapes lists the registered landscape names.
func Landscapes() []string {
	return landscape.Names()
}

// LandscapeKind reports which genotype representation a landscape evolves.
func LandscapeKind(name string) (genome.Kind, error) {
	l, err := landscape.Lookup(name)
	if err != nil {
		return "", err
	}
	return l.Kind(), nil
}
