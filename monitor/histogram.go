package monitor

import (
	"time"

	"sync"

	"github.com/codahale/hdrhistogram"
)

const (
	HistogramMinValue = 0
	HistogramMaxValue = int64(time.Minute)
)

type ThreadSafeHistogram struct {
	rw        *sync.RWMutex
	histogram *hdrhistogram.WindowedHistogram
}

func NewThreadSafeHistogram(windowSize int, sigfigs int) *ThreadSafeHistogram {
	h := hdrhistogram.NewWindowed(windowSize, HistogramMinValue, HistogramMaxValue, sigfigs)

	return &ThreadSafeHistogram{
		rw:        &sync.RWMutex{},
		histogram: h,
	}
}

func (h *ThreadSafeHistogram) Max() int64 {
	h.rw.RLock()
	defer h.rw.RUnlock()

	return h.histogram.Merge().Max()
}

// Observe records a duration, so the histogram can serve as a
// recording.Recorder behind a recorded store.
func (h *ThreadSafeHistogram) Observe(d time.Duration) error {
	return h.RecordValue(int64(d))
}

func (h *ThreadSafeHistogram) RecordValue(v int64) error {
	h.rw.Lock()
	defer h.rw.Unlock()

	return h.histogram.Current.RecordValue(v)
}

func (h *ThreadSafeHistogram) ValueAtQuantile(q float64) int64 {
	h.rw.RLock()
	defer h.rw.RUnlock()

	return h.histogram.Merge().ValueAtQuantile(q)
}

func (h *ThreadSafeHistogram) Rotate() {
	h.rw.Lock()
	defer h.rw.Unlock()

	h.histogram.Rotate()
}
