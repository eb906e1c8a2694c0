package genome

import (
	"fmt"
	"math"
	"strings"

	"plegma/internal/stream"
)

// RealVector is an ordered sequence of bounded reals of fixed dimension.
// Mutation may drift components outside the initialization bounds; this is
// intentional and no re-clamping is applied.
type RealVector struct {
	genes     []float64
	sigma     float64
	fitness   float64
	evaluated bool
}

// NewRealVector wraps the given components without copying. Intended for
// tests and landscape evaluation fixtures.
func NewRealVector(genes []float64, sigma float64) *RealVector {
	return &RealVector{genes: genes, sigma: sigma}
}

// RandomRealVector draws dim components uniformly in [lo, hi]. Sigma is
// the perturbation scale used by Mutate and is inherited by copies and
// children.
func RandomRealVector(dim int, lo, hi, sigma float64, s *stream.Stream) *RealVector {
	genes := make([]float64, dim)
	for i := range genes {
		genes[i] = lo + s.NextFloat()*(hi-lo)
	}
	return &RealVector{genes: genes, sigma: sigma}
}

func (g *RealVector) Kind() Kind { return KindReal }

func (g *RealVector) Len() int { return len(g.genes) }

// Genes exposes the raw component buffer for evaluation. Callers must not
// mutate it.
func (g *RealVector) Genes() []float64 { return g.genes }

func (g *RealVector) Copy() Genome {
	genes := make([]float64, len(g.genes))
	copy(genes, g.genes)
	return &RealVector{genes: genes, sigma: g.sigma, fitness: g.fitness, evaluated: g.evaluated}
}

func (g *RealVector) Fitness() (float64, bool) {
	return g.fitness, g.evaluated
}

func (g *RealVector) SetFitness(f float64) {
	g.fitness = f
	g.evaluated = true
}

// Crossover blends the two parents component-wise: each child component is
// alpha*p1 + (1-alpha)*p2 with an independently drawn alpha per component.
func (g *RealVector) Crossover(other Genome, s *stream.Stream) Genome {
	p2 := other.(*RealVector)
	genes := make([]float64, len(g.genes))
	for i := range genes {
		alpha := s.NextFloat()
		genes[i] = alpha*g.genes[i] + (1-alpha)*p2.genes[i]
	}
	return &RealVector{genes: genes, sigma: g.sigma}
}

// Mutate perturbs each component independently with the given probability
// by (draw-0.5)*sigma and invalidates the fitness cache.
func (g *RealVector) Mutate(rate float64, s *stream.Stream) {
	for i := range g.genes {
		if s.NextFloat() < rate {
			g.genes[i] += (s.NextFloat() - 0.5) * g.sigma
		}
	}
	g.evaluated = false
}

// Distance is the Euclidean distance to another real vector.
func (g *RealVector) Distance(other Genome) float64 {
	p2 := other.(*RealVector)
	sum := 0.0
	for i, v := range g.genes {
		diff := v - p2.genes[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

func (g *RealVector) String() string {
	parts := make([]string, len(g.genes))
	for i, v := range g.genes {
		parts[i] = fmt.Sprintf("%.4f", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
