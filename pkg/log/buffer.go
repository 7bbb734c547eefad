package log

import (
	"fmt"
	"io"
	"sync"
)

// CircularBuffer is an [io.Writer] that keeps the most recent writes, so log
// output can be held back while stdout is busy and flushed afterwards.
// Once full, each write replaces the oldest entry.
type CircularBuffer struct {
	entries  [][]byte
	capacity int
	next     int
	count    int
	mu       sync.Mutex
}

// NewCircularBuffer creates a new [CircularBuffer] holding up to capacity
// entries. A non-positive capacity defaults to 100.
func NewCircularBuffer(capacity int) *CircularBuffer {
	if capacity <= 0 {
		capacity = 100
	}

	return &CircularBuffer{
		entries:  make([][]byte, capacity),
		capacity: capacity,
	}
}

// Write implements [io.Writer]. The data is copied.
func (cb *CircularBuffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.entries[cb.next] = append([]byte(nil), p...)
	cb.next = (cb.next + 1) % cb.capacity

	if cb.count < cb.capacity {
		cb.count++
	}

	return len(p), nil
}

// Entries returns copies of the buffered entries, oldest first.
func (cb *CircularBuffer) Entries() [][]byte {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.count == 0 {
		return nil
	}

	start := 0
	if cb.count == cb.capacity {
		start = cb.next
	}

	result := make([][]byte, 0, cb.count)
	for i := range cb.count {
		entry := cb.entries[(start+i)%cb.capacity]
		result = append(result, append([]byte(nil), entry...))
	}

	return result
}

// Size returns the number of buffered entries.
func (cb *CircularBuffer) Size() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.count
}

// Capacity returns the maximum number of entries.
func (cb *CircularBuffer) Capacity() int {
	return cb.capacity
}

// IsFull reports whether older entries are being overwritten.
func (cb *CircularBuffer) IsFull() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.count == cb.capacity
}

// WriteTo writes all buffered entries to w, oldest first. It implements
// [io.WriterTo].
func (cb *CircularBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, entry := range cb.Entries() {
		n, err := w.Write(entry)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write entry: %w", err)
		}
	}

	return total, nil
}
