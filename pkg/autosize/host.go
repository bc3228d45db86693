package autosize

import "sync"

// Host is the platform element the input renders into.
type Host interface {
	ScrollTop() float64
	SetScrollTop(v float64)
	SetHeight(h float64)
}

// MemoryHost is a Host that records what it is told. Like a browser it
// resets the scroll offset when the height changes.
type MemoryHost struct {
	mu        sync.Mutex
	scrollTop float64
	height    float64
	resizes   int
}

// NewMemoryHost creates a MemoryHost.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{}
}

// ScrollTop implements Host.
func (h *MemoryHost) ScrollTop() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.scrollTop
}

// SetScrollTop implements Host.
func (h *MemoryHost) SetScrollTop(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scrollTop = v
}

// SetHeight implements Host.
func (h *MemoryHost) SetHeight(height float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if height != h.height {
		h.scrollTop = 0
	}
	h.height = height
	h.resizes++
}

// Height returns the last applied height.
func (h *MemoryHost) Height() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.height
}

// Resizes returns how many times SetHeight was called.
func (h *MemoryHost) Resizes() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.resizes
}
