package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plegma/internal/stream"
)

func TestRingAdjacency(t *testing.T) {
	top := New(6, KindRing, 0, stream.New(1), Layout{})

	assert.Equal(t, []int{5, 1}, top.Neighbors(0))
	assert.Equal(t, []int{2, 4}, top.Neighbors(3))
	assert.Equal(t, []int{4, 0}, top.Neighbors(5))
}

func TestGridWrapPerfectSquare(t *testing.T) {
	top := New(9, KindGrid, 0, stream.New(1), Layout{})

	for id := 0; id < 9; id++ {
		neighbors := top.Neighbors(id)
		require.Len(t, neighbors, 8, "cell %d", id)

		seen := map[int]bool{}
		for _, n := range neighbors {
			assert.NotEqual(t, id, n, "cell %d lists itself", id)
			assert.False(t, seen[n], "cell %d lists %d twice", id, n)
			seen[n] = true
		}
	}
}

func TestGridSparseTailExcluded(t *testing.T) {
	// 7 cells on a 3x3 torus: wrapped indexes 7 and 8 do not exist.
	top := New(7, KindGrid, 0, stream.New(1), Layout{})

	for id := 0; id < 7; id++ {
		for _, n := range top.Neighbors(id) {
			assert.Less(t, n, 7)
			assert.GreaterOrEqual(t, n, 0)
		}
	}
}

func TestSmallWorldIdentityAtZeroProbability(t *testing.T) {
	ring := New(12, KindRing, 0, stream.New(1), Layout{})
	sw := New(12, KindSmallWorld, 0, stream.New(1), Layout{})

	for id := 0; id < 12; id++ {
		assert.Equal(t, ring.Neighbors(id), sw.Neighbors(id), "cell %d", id)
	}
}

func TestSmallWorldRewiringAvoidsSelfAndDuplicates(t *testing.T) {
	top := New(20, KindSmallWorld, 1.0, stream.New(42), Layout{})

	rewired := false
	for id := 0; id < 20; id++ {
		neighbors := top.Neighbors(id)
		require.Len(t, neighbors, 2)
		assert.NotEqual(t, id, neighbors[0])
		assert.NotEqual(t, id, neighbors[1])
		assert.NotEqual(t, neighbors[0], neighbors[1])
		if neighbors[0] != (id-1+20)%20 || neighbors[1] != (id+1)%20 {
			rewired = true
		}
	}
	assert.True(t, rewired, "p=1 must rewire at least one slot")
}

func TestSmallWorldDeterministic(t *testing.T) {
	a := New(15, KindSmallWorld, 0.5, stream.New(7), Layout{})
	b := New(15, KindSmallWorld, 0.5, stream.New(7), Layout{})

	for id := 0; id < 15; id++ {
		assert.Equal(t, a.Neighbors(id), b.Neighbors(id))
	}
}

func TestSmallWorldTinyPopulationSkipsRewiring(t *testing.T) {
	// With 3 cells a ring slot has no legal replacement; rewiring must be
	// skipped rather than loop forever.
	s := stream.New(3)
	top := New(3, KindSmallWorld, 1.0, s, Layout{})

	assert.Equal(t, []int{2, 1}, top.Neighbors(0))
	assert.Equal(t, int64(3), s.Seed(), "no draws consumed when no candidate exists")
}

func TestNeighborsOutOfRange(t *testing.T) {
	top := New(4, KindRing, 0, stream.New(1), Layout{})

	assert.Empty(t, top.Neighbors(-1))
	assert.Empty(t, top.Neighbors(4))
	assert.Empty(t, top.Neighbors(100))
}

func TestUnrecognizedKindFallsBackToGrid(t *testing.T) {
	top := New(9, Kind("hexagonal"), 0, stream.New(1), Layout{})

	assert.Equal(t, KindGrid, top.Kind())
	assert.Len(t, top.Neighbors(4), 8)
}

func TestRingLayoutOnCircle(t *testing.T) {
	top := New(8, KindRing, 0, stream.New(1), Layout{Width: 200, Height: 200})

	for id := 0; id < 8; id++ {
		p := top.Position(id)
		dx, dy := p.X-100, p.Y-100
		assert.InDelta(t, 80*80, dx*dx+dy*dy, 1e-9, "cell %d not on the circle", id)
	}
	assert.Equal(t, Position{}, top.Position(8))
}

func TestGridLayoutRowMajorWithinBounds(t *testing.T) {
	top := New(9, KindGrid, 0, stream.New(1), Layout{Width: 300, Height: 300})

	for id := 0; id < 9; id++ {
		p := top.Position(id)
		assert.Greater(t, p.X, 0.0)
		assert.Less(t, p.X, 300.0)
		assert.Greater(t, p.Y, 0.0)
		assert.Less(t, p.Y, 300.0)
	}
	// Row-major: cells 0..2 share a row, 0,3,6 share a column.
	assert.Equal(t, top.Position(0).Y, top.Position(2).Y)
	assert.Equal(t, top.Position(0).X, top.Position(6).X)
	assert.Less(t, top.Position(0).X, top.Position(1).X)
	assert.Less(t, top.Position(0).Y, top.Position(3).Y)
}
