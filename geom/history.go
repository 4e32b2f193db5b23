package geom

import (
	"sync"
)

// DefaultHistoryCapacity bounds the crossing audit trail
const DefaultHistoryCapacity = 100

// History is a bounded, append-only record of intersections. When full,
// the oldest entry is evicted. Records are never mutated after insertion.
type History struct {
	mu       sync.Mutex
	entries  []Intersection
	capacity int
}

// NewHistory creates a history with the given capacity; zero or negative
// falls back to DefaultHistoryCapacity
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		entries:  make([]Intersection, 0, capacity),
		capacity: capacity,
	}
}

// Append records an intersection, evicting the oldest entry when full
func (h *History) Append(x Intersection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) >= h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, x)
}

// Recent returns up to max records, most recent first. max <= 0 returns all.
func (h *History) Recent(max int) []Intersection {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.entries)
	if max <= 0 || max > n {
		max = n
	}

	out := make([]Intersection, max)
	for i := 0; i < max; i++ {
		out[i] = h.entries[n-1-i]
	}
	return out
}

// Len returns the number of stored records
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
