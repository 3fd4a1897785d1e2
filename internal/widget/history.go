package widget

import (
	"sync"

	"github.com/rileyhilliard/widgetmon/internal/metrics"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
)

// DefaultHistorySize is the default number of data points to retain per metric.
const DefaultHistorySize = 60

// History keeps the recent raw values of every metric kind in ring buffers
// for sparkline rendering.
type History struct {
	mu     sync.RWMutex
	size   int
	series map[metrics.Kind]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a new history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:   size,
		series: make(map[metrics.Kind]*ringBuffer),
	}
}

// Push records one value for kind.
func (h *History) Push(kind metrics.Kind, value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rb, ok := h.series[kind]
	if !ok {
		rb = newRingBuffer(h.size)
		h.series[kind] = rb
	}
	rb.push(value)
}

// PushHardware records every hardware-driven kind from hw, reading disk
// kinds from disk.
func (h *History) PushHardware(hw telemetry.HardwareSnapshot, disk telemetry.DiskReading) {
	for _, k := range metrics.AllKinds() {
		if k.IsNetwork() {
			continue
		}
		h.Push(k, metrics.RawValue(k, hw, telemetry.NetworkSnapshot{}, disk))
	}
}

// PushNetwork records the two network kinds from net.
func (h *History) PushNetwork(net telemetry.NetworkSnapshot) {
	h.Push(metrics.KindUpload, net.UploadBytesPerSec)
	h.Push(metrics.KindDownload, net.DownloadBytesPerSec)
}

// Last returns up to count of the most recent values for kind, oldest first.
func (h *History) Last(kind metrics.Kind, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rb, ok := h.series[kind]
	if !ok {
		return nil
	}
	return rb.getLast(count)
}

// Count returns the number of values stored for kind.
func (h *History) Count(kind metrics.Kind) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rb, ok := h.series[kind]
	if !ok {
		return 0
	}
	return rb.count
}

// Reset drops the history of the given kinds. Used when the tracked disk changes.
func (h *History) Reset(kinds ...metrics.Kind) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, k := range kinds {
		delete(h.series, k)
	}
}

// newRingBuffer creates a new ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the newest value is at head-1.
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}

	return result
}
