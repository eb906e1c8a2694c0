package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextFloatRangeAndAdvance(t *testing.T) {
	s := New(42)
	for i := 0; i < 1000; i++ {
		v := s.NextFloat()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
	assert.Equal(t, int64(42+1000), s.Seed())
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 200; i++ {
		require.Equal(t, a.NextFloat(), b.NextFloat())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.NextFloat() != b.NextFloat() {
			same = false
		}
	}
	assert.False(t, same)
}

func TestNextIntInclusiveBounds(t *testing.T) {
	s := New(99)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.NextInt(3, 7)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 7)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "expected every value in [3,7] to appear")
}

func TestNextIntDegenerateRange(t *testing.T) {
	s := New(5)
	for i := 0; i < 50; i++ {
		assert.Equal(t, 4, s.NextInt(4, 4))
	}
}

func TestPickDrawsOneValue(t *testing.T) {
	items := []string{"a", "b", "c"}
	s := New(11)
	mirror := New(11)
	want := items[mirror.NextInt(0, 2)]
	assert.Equal(t, want, Pick(s, items))
	assert.Equal(t, mirror.Seed(), s.Seed())
}
