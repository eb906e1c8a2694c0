package engine

// HistoryCap bounds the per-generation fitness log; the oldest entries are
// dropped FIFO once the cap is reached.
const HistoryCap = 300

// history keeps two parallel bounded series (best and mean fitness per
// generation) in fixed-capacity ring buffers with O(1) append.
type history struct {
	best []float64
	avg  []float64
	head int
	size int
}

func newHistory() *history {
	return &history{
		best: make([]float64, HistoryCap),
		avg:  make([]float64, HistoryCap),
	}
}

func (h *history) append(best, avg float64) {
	idx := (h.head + h.size) % HistoryCap
	h.best[idx] = best
	h.avg[idx] = avg
	if h.size < HistoryCap {
		h.size++
		return
	}
	h.head = (h.head + 1) % HistoryCap
}

func (h *history) len() int { return h.size }

func (h *history) bestSeries() []float64 { return h.series(h.best) }

func (h *history) avgSeries() []float64 { return h.series(h.avg) }

// series copies a ring out oldest-first.
func (h *history) series(buf []float64) []float64 {
	out := make([]float64, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = buf[(h.head+i)%HistoryCap]
	}
	return out
}
