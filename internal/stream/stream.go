// Package stream provides the deterministic pseudo-random stream every
// stochastic component of a run draws from. A Stream is a single integer
// counter; each draw consumes exactly one counter value, so a given seed
// reproduces an entire run (topology rewiring included) draw for draw.
package stream

import "math"

// Stream is a seeded draw-and-advance generator. It is not safe for
// concurrent use; a run owns exactly one instance and hands it to each
// component in a fixed order.
type Stream struct {
	seed int64
}

// New returns a stream positioned at the given seed.
func New(seed int64) *Stream {
	return &Stream{seed: seed}
}

// Seed reports the current counter value. Useful for asserting how many
// draws a construction consumed.
func (s *Stream) Seed() int64 {
	return s.seed
}

// NextFloat returns a value in [0,1) as the fractional part of
// sin(seed)*10000, then advances the counter. Repeated calls never revisit
// a counter value.
func (s *Stream) NextFloat() float64 {
	x := math.Sin(float64(s.seed)) * 10000
	s.seed++
	return x - math.Floor(x)
}

// NextInt maps a single float draw uniformly onto the inclusive range
// [min, max].
func (s *Stream) NextInt(min, max int) int {
	return int(math.Floor(s.NextFloat()*float64(max-min+1))) + min
}

// Pick returns one element of items, chosen with a single draw. Panics on
// an empty slice, which is a programmer error.
func Pick[T any](s *Stream, items []T) T {
	return items[s.NextInt(0, len(items)-1)]
}
