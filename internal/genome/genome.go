// Package genome defines the two genotype representations the engine
// evolves: fixed-length bit vectors and fixed-dimension bounded real
// vectors. The two kinds use different recombination mechanics (discrete
// cut vs continuous blend) and are never unified.
package genome

import "plegma/internal/stream"

// Kind discriminates the genotype representation. The configured fitness
// landscape selects the kind once at engine construction.
type Kind string

const (
	KindBits Kind = "bits"
	KindReal Kind = "real"
)

// Genome is the capability set the engine dispatches on. It never branches
// on the concrete type.
//
// Fitness is a cached minimization score (0 = optimal, lower = better);
// the cache is nullable and must be overwritten whenever gene content
// changes. Copy yields an independent buffer preserving the cached value
// verbatim.
//
// Crossover and Distance require the same concrete kind on both sides;
// mixing kinds inside one run is a programmer error and panics.
type Genome interface {
	Kind() Kind
	Len() int
	Copy() Genome
	Fitness() (float64, bool)
	SetFitness(f float64)
	Crossover(other Genome, s *stream.Stream) Genome
	Mutate(rate float64, s *stream.Stream)
	Distance(other Genome) float64
	String() string
}
