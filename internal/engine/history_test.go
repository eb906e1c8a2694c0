package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppendAndReadOut(t *testing.T) {
	h := newHistory()
	assert.Equal(t, 0, h.len())

	h.append(3, 4.5)
	h.append(2, 3.5)
	require.Equal(t, 2, h.len())
	assert.Equal(t, []float64{3, 2}, h.bestSeries())
	assert.Equal(t, []float64{4.5, 3.5}, h.avgSeries())
}

func TestHistoryTruncatesOldestFIFO(t *testing.T) {
	h := newHistory()
	for i := 0; i < HistoryCap+50; i++ {
		h.append(float64(i), float64(i)+0.5)
	}

	require.Equal(t, HistoryCap, h.len())
	best := h.bestSeries()
	avg := h.avgSeries()
	require.Len(t, best, HistoryCap)
	require.Len(t, avg, HistoryCap)
	assert.Equal(t, 50.0, best[0], "oldest surviving entry")
	assert.Equal(t, float64(HistoryCap+49), best[HistoryCap-1], "newest entry")
	assert.Equal(t, 50.5, avg[0])
}
