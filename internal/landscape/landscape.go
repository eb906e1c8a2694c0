// Package landscape provides the built-in minimization fitness landscapes
// and a registry keyed by landscape name. Scores are lower-is-better with
// 0 at the global optimum. The landscape dictates which genotype kind a
// run evolves.
package landscape

import (
	"math"

	"plegma/internal/genome"
)

// Landscape evaluates a genome of its declared kind. Evaluate is pure;
// callers cache the score on the genome themselves.
type Landscape interface {
	Name() string
	Kind() genome.Kind
	Evaluate(g genome.Genome) float64
}

// OneMax scores n minus the count of ones. Optimal at all-ones.
type OneMax struct{}

func (OneMax) Name() string      { return "onemax" }
func (OneMax) Kind() genome.Kind { return genome.KindBits }

func (OneMax) Evaluate(g genome.Genome) float64 {
	bits := g.(*genome.BitVector).Genes()
	ones := 0
	for _, v := range bits {
		ones += int(v)
	}
	return float64(len(bits) - ones)
}

// Trap is the deceptive counterpart of OneMax: 0 at all-zeros, 1 at
// all-ones, and n-k+1 for every intermediate count k, so the gradient
// points toward the local optimum at all-ones.
type Trap struct{}

func (Trap) Name() string      { return "trap" }
func (Trap) Kind() genome.Kind { return genome.KindBits }

func (Trap) Evaluate(g genome.Genome) float64 {
	bits := g.(*genome.BitVector).Genes()
	n := len(bits)
	k := 0
	for _, v := range bits {
		k += int(v)
	}
	switch k {
	case 0:
		return 0
	case n:
		return 1
	default:
		return float64(n - k + 1)
	}
}

// Sphere scores the squared Euclidean norm. Optimal at the origin.
type Sphere struct{}

func (Sphere) Name() string      { return "sphere" }
func (Sphere) Kind() genome.Kind { return genome.KindReal }

func (Sphere) Evaluate(g genome.Genome) float64 {
	sum := 0.0
	for _, x := range g.(*genome.RealVector).Genes() {
		sum += x * x
	}
	return sum
}

const rastriginA = 10.0

// Rastrigin is the highly multimodal benchmark A*d + sum(x^2 - A*cos(2*pi*x)).
// Optimal at the origin.
type Rastrigin struct{}

func (Rastrigin) Name() string      { return "rastrigin" }
func (Rastrigin) Kind() genome.Kind { return genome.KindReal }

func (Rastrigin) Evaluate(g genome.Genome) float64 {
	xs := g.(*genome.RealVector).Genes()
	sum := rastriginA * float64(len(xs))
	for _, x := range xs {
		sum += x*x - rastriginA*math.Cos(2*math.Pi*x)
	}
	return sum
}
