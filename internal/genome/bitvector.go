package genome

import (
	"strings"

	"plegma/internal/stream"
)

// BitVector is an ordered sequence of {0,1} genes of fixed length.
type BitVector struct {
	genes     []uint8
	fitness   float64
	evaluated bool
}

// NewBitVector wraps the given genes without copying. Intended for tests
// and landscape evaluation fixtures.
func NewBitVector(genes []uint8) *BitVector {
	return &BitVector{genes: genes}
}

// RandomBitVector draws length genes from the stream, setting each to 1
// with probability onesBias. Uniform initialization is onesBias = 0.5.
func RandomBitVector(length int, onesBias float64, s *stream.Stream) *BitVector {
	genes := make([]uint8, length)
	for i := range genes {
		if s.NextFloat() < onesBias {
			genes[i] = 1
		}
	}
	return &BitVector{genes: genes}
}

func (g *BitVector) Kind() Kind { return KindBits }

func (g *BitVector) Len() int { return len(g.genes) }

// Genes exposes the raw gene buffer for evaluation. Callers must not
// mutate it.
func (g *BitVector) Genes() []uint8 { return g.genes }

func (g *BitVector) Copy() Genome {
	genes := make([]uint8, len(g.genes))
	copy(genes, g.genes)
	return &BitVector{genes: genes, fitness: g.fitness, evaluated: g.evaluated}
}

func (g *BitVector) Fitness() (float64, bool) {
	return g.fitness, g.evaluated
}

func (g *BitVector) SetFitness(f float64) {
	g.fitness = f
	g.evaluated = true
}

// Crossover recombines with a single cut point drawn uniformly in
// [1, length-1]: the child takes genes [0,cut) from the receiver and
// [cut,length) from other. The caller guards length < 2, where no valid
// cut exists.
func (g *BitVector) Crossover(other Genome, s *stream.Stream) Genome {
	p2 := other.(*BitVector)
	cut := s.NextInt(1, len(g.genes)-1)
	genes := make([]uint8, len(g.genes))
	copy(genes[:cut], g.genes[:cut])
	copy(genes[cut:], p2.genes[cut:])
	return &BitVector{genes: genes}
}

// Mutate flips each gene independently with the given probability and
// invalidates the fitness cache.
func (g *BitVector) Mutate(rate float64, s *stream.Stream) {
	for i := range g.genes {
		if s.NextFloat() < rate {
			g.genes[i] ^= 1
		}
	}
	g.evaluated = false
}

// Distance is the Hamming distance to another bit vector.
func (g *BitVector) Distance(other Genome) float64 {
	p2 := other.(*BitVector)
	d := 0
	for i, v := range g.genes {
		if v != p2.genes[i] {
			d++
		}
	}
	return float64(d)
}

func (g *BitVector) String() string {
	var b strings.Builder
	b.Grow(len(g.genes))
	for _, v := range g.genes {
		if v == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
