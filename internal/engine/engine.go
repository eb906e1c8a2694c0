// Package engine implements the cellular genetic algorithm: a population
// arranged on a graph topology where each cell's offspring is bred only
// from its local neighborhood, so fitness improvements diffuse across the
// graph instead of sweeping it globally.
package engine

import (
	"math"

	"plegma/internal/genome"
	"plegma/internal/landscape"
	"plegma/internal/stream"
	"plegma/internal/topology"
)

// Stats is a read-only snapshot of the current population.
type Stats struct {
	BestFitness float64
	MeanFitness float64
	// Diversity is computed per the configured metric.
	Diversity float64
}

// Engine owns one run: the configuration, the deterministic stream, the
// population, the topology and the bounded fitness history. It is
// single-threaded; one Evolve call computes and installs exactly one
// generation before returning. There is no reset: discard the instance and
// construct a new one.
type Engine struct {
	cfg  Config
	strm *stream.Stream
	land landscape.Landscape
	top  *topology.Topology
	pop  []genome.Genome
	gen  int
	hist *history
}

// New constructs an engine with the default layout hint.
func New(cfg Config) (*Engine, error) {
	return NewWithLayout(cfg, topology.Layout{})
}

// NewWithLayout validates the configuration, seeds the stream, initializes
// and evaluates the population, then builds the topology. Initialization
// and topology construction draw from the same stream in that order, so a
// seed reproduces the whole run including small-world rewiring.
func NewWithLayout(cfg Config, layout topology.Layout) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	land, err := landscape.Lookup(cfg.Landscape)
	if err != nil {
		return nil, err
	}

	strm := stream.New(cfg.Seed)
	pop := make([]genome.Genome, cfg.PopSize)
	for i := range pop {
		var g genome.Genome
		if land.Kind() == genome.KindBits {
			g = genome.RandomBitVector(cfg.GenomeLength, *cfg.InitBias, strm)
		} else {
			g = genome.RandomRealVector(cfg.GenomeLength, cfg.BoundMin, cfg.BoundMax, cfg.Sigma, strm)
		}
		g.SetFitness(land.Evaluate(g))
		pop[i] = g
	}
	top := topology.New(cfg.PopSize, topology.Kind(cfg.Topology), cfg.RewiringProb, strm, layout)

	return &Engine{
		cfg:  cfg,
		strm: strm,
		land: land,
		top:  top,
		pop:  pop,
		hist: newHistory(),
	}, nil
}

// Config returns the run configuration with defaults resolved.
func (e *Engine) Config() Config { return e.cfg }

// Generation returns the monotonically increasing generation counter.
func (e *Engine) Generation() int { return e.gen }

// Topology exposes the neighborhood graph for read-only lookups.
func (e *Engine) Topology() *topology.Topology { return e.top }

// Population returns a copied slice of length PopSize whose elements are
// the live genomes. Callers must not mutate them.
func (e *Engine) Population() []genome.Genome {
	return append([]genome.Genome(nil), e.pop...)
}

// History returns oldest-first copies of the bounded best-fitness and
// mean-fitness series. Both are empty until the first Evolve.
func (e *Engine) History() (best, avg []float64) {
	return e.hist.bestSeries(), e.hist.avgSeries()
}

// Evolve advances exactly one generation. Every decision reads the
// previous generation only; the new population is assembled in a separate
// buffer and swapped in after all cells have been processed.
func (e *Engine) Evolve() {
	next := make([]genome.Genome, len(e.pop))
	for i := range e.pop {
		neighbors := e.top.Neighbors(i)
		candidates := make([]int, 0, len(neighbors)+1)
		candidates = append(candidates, neighbors...)
		candidates = append(candidates, i)

		parent1 := e.tournament(candidates)
		parent2 := e.tournament(candidates)

		// A single-cut crossover point is undefined for length-1 genomes;
		// such runs never draw the crossover probability.
		child := parent1
		if e.cfg.GenomeLength >= 2 && e.strm.NextFloat() < e.cfg.CrossoverRate {
			child = parent1.Crossover(parent2, e.strm)
		}
		child.Mutate(e.cfg.MutationRate, e.strm)
		child.SetFitness(e.land.Evaluate(child))

		next[i] = e.replace(e.pop[i], child)
	}
	e.pop = next
	e.gen++
	e.hist.append(minFitness(next), meanFitness(next))
}

// tournament draws two candidate cell ids and returns an independent copy
// of the one with strictly lower cached fitness; ties keep the first
// drawn. Competition is local: candidates are the cell's neighbors plus
// the cell itself.
func (e *Engine) tournament(candidates []int) genome.Genome {
	a := e.pop[stream.Pick(e.strm, candidates)]
	b := e.pop[stream.Pick(e.strm, candidates)]
	if fitnessOf(b) < fitnessOf(a) {
		return b.Copy()
	}
	return a.Copy()
}

// replace applies the configured replacement policy: the child takes the
// cell only on strict improvement, further gated by an acceptance draw
// under the probabilistic policy.
func (e *Engine) replace(incumbent, child genome.Genome) genome.Genome {
	if fitnessOf(child) >= fitnessOf(incumbent) {
		return incumbent
	}
	if e.cfg.Replacement == ReplacementProbabilistic && e.strm.NextFloat() >= *e.cfg.AcceptanceProb {
		return incumbent
	}
	return child
}

// BestIndividual returns a copy of the current argmin by cached fitness,
// first encountered on ties.
func (e *Engine) BestIndividual() genome.Genome {
	best := e.pop[0]
	for _, g := range e.pop[1:] {
		if fitnessOf(g) < fitnessOf(best) {
			best = g
		}
	}
	return best.Copy()
}

// Stats reports best, mean and the configured diversity metric for the
// current population.
func (e *Engine) Stats() Stats {
	s := Stats{
		BestFitness: minFitness(e.pop),
		MeanFitness: meanFitness(e.pop),
	}
	if e.cfg.Diversity == DiversityEdgeDistance {
		s.Diversity = e.edgeDistance()
	} else {
		s.Diversity = fitnessStddev(e.pop)
	}
	return s
}

// edgeDistance is the mean genotype distance over directed adjacency
// edges; 0 when the topology has no edges.
func (e *Engine) edgeDistance() float64 {
	sum := 0.0
	edges := 0
	for i := range e.pop {
		for _, j := range e.top.Neighbors(i) {
			sum += e.pop[i].Distance(e.pop[j])
			edges++
		}
	}
	if edges == 0 {
		return 0
	}
	return sum / float64(edges)
}

func fitnessOf(g genome.Genome) float64 {
	f, _ := g.Fitness()
	return f
}

func minFitness(pop []genome.Genome) float64 {
	best := fitnessOf(pop[0])
	for _, g := range pop[1:] {
		if f := fitnessOf(g); f < best {
			best = f
		}
	}
	return best
}

func meanFitness(pop []genome.Genome) float64 {
	sum := 0.0
	for _, g := range pop {
		sum += fitnessOf(g)
	}
	return sum / float64(len(pop))
}

// fitnessStddev is the population (not sample) standard deviation of
// cached fitness values.
func fitnessStddev(pop []genome.Genome) float64 {
	mean := meanFitness(pop)
	variance := 0.0
	for _, g := range pop {
		diff := fitnessOf(g) - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(pop)))
}
