// Package topology builds the neighborhood graph a population lives on:
// per-cell adjacency lists plus a 2D layout position per cell. Positions
// are rendering metadata only; selection logic never reads them.
package topology

import (
	"math"

	"plegma/internal/stream"
)

// Kind names a topology shape.
type Kind string

const (
	KindRing       Kind = "ring"
	KindGrid       Kind = "grid"
	KindSmallWorld Kind = "smallworld"
)

// ParseKind maps a configured name onto a Kind. Unrecognized names fall
// back to the grid.
func ParseKind(name string) Kind {
	switch Kind(name) {
	case KindRing, KindGrid, KindSmallWorld:
		return Kind(name)
	default:
		return KindGrid
	}
}

// Position is a 2D layout coordinate for one cell.
type Position struct {
	X float64
	Y float64
}

// Layout bounds the coordinate space positions are scaled into. The zero
// value selects a 600x600 canvas.
type Layout struct {
	Width  float64
	Height float64
}

const (
	defaultLayoutSide = 600.0
	layoutPadding     = 20.0
)

func (l Layout) withDefaults() Layout {
	if l.Width <= 0 {
		l.Width = defaultLayoutSide
	}
	if l.Height <= 0 {
		l.Height = defaultLayoutSide
	}
	return l
}

// Topology is an immutable adjacency list plus layout for a fixed
// population size. Under small-world rewiring, lists need not be
// symmetric between cells.
type Topology struct {
	kind      Kind
	n         int
	adjacency [][]int
	layout    []Position
}

// New builds the adjacency and layout for n cells. Small-world rewiring
// consumes the stream in cell-id ascending, slot-index ascending order, so
// a given seed reproduces the graph exactly.
func New(n int, kind Kind, rewiringProb float64, s *stream.Stream, layout Layout) *Topology {
	kind = ParseKind(string(kind))
	layout = layout.withDefaults()

	t := &Topology{kind: kind, n: n}
	switch kind {
	case KindRing:
		t.adjacency = ringAdjacency(n)
		t.layout = ringLayout(n, layout)
	case KindSmallWorld:
		t.adjacency = ringAdjacency(n)
		rewire(t.adjacency, rewiringProb, s)
		t.layout = ringLayout(n, layout)
	default:
		t.adjacency = gridAdjacency(n)
		t.layout = gridLayout(n, layout)
	}
	return t
}

// Kind reports the resolved topology kind (after any grid fallback).
func (t *Topology) Kind() Kind { return t.kind }

// Size reports the number of cells.
func (t *Topology) Size() int { return t.n }

// Neighbors returns the ordered neighbor ids of a cell. Out-of-range ids
// yield an empty list rather than failing.
func (t *Topology) Neighbors(id int) []int {
	if id < 0 || id >= t.n {
		return nil
	}
	return t.adjacency[id]
}

// Position returns the layout coordinate of a cell; the zero Position for
// out-of-range ids.
func (t *Topology) Position(id int) Position {
	if id < 0 || id >= t.n {
		return Position{}
	}
	return t.layout[id]
}

func ringAdjacency(n int) [][]int {
	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		adjacency[i] = []int{(i - 1 + n) % n, (i + 1) % n}
	}
	return adjacency
}

// gridAdjacency lays cells row-major on a toroidal square of side
// ceil(sqrt(n)) and connects each to its 8 Moore neighbors, dropping any
// wrapped index that lands in the sparse tail beyond n.
func gridAdjacency(n int) [][]int {
	side := int(math.Ceil(math.Sqrt(float64(n))))
	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		row, col := i/side, i%side
		neighbors := make([]int, 0, 8)
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				nr := (row + dr + side) % side
				nc := (col + dc + side) % side
				idx := nr*side + nc
				if idx >= n {
					continue
				}
				neighbors = append(neighbors, idx)
			}
		}
		adjacency[i] = neighbors
	}
	return adjacency
}

// rewire replaces ring slots in place. Each slot is rewired independently
// with probability p to a uniformly drawn id distinct from the cell itself
// and from every id currently in the list, rejection-sampled. Slots with
// no legal replacement are skipped without consuming a draw.
func rewire(adjacency [][]int, p float64, s *stream.Stream) {
	n := len(adjacency)
	for i := 0; i < n; i++ {
		for slot := range adjacency[i] {
			if n <= len(adjacency[i])+1 {
				continue
			}
			if s.NextFloat() >= p {
				continue
			}
			for {
				candidate := s.NextInt(0, n-1)
				if candidate == i || contains(adjacency[i], candidate) {
					continue
				}
				adjacency[i][slot] = candidate
				break
			}
		}
	}
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func ringLayout(n int, layout Layout) []Position {
	cx, cy := layout.Width/2, layout.Height/2
	radius := math.Min(layout.Width, layout.Height)/2 - layoutPadding
	positions := make([]Position, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		positions[i] = Position{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}
	return positions
}

func gridLayout(n int, layout Layout) []Position {
	side := int(math.Ceil(math.Sqrt(float64(n))))
	cellW := (layout.Width - 2*layoutPadding) / float64(side)
	cellH := (layout.Height - 2*layoutPadding) / float64(side)
	positions := make([]Position, n)
	for i := 0; i < n; i++ {
		row, col := i/side, i%side
		positions[i] = Position{
			X: layoutPadding + (float64(col)+0.5)*cellW,
			Y: layoutPadding + (float64(row)+0.5)*cellH,
		}
	}
	return positions
}
