package dialog

import "sync"

// Modal is the platform's blocking modal surface.
type Modal interface {
	ShowModal() error
	Close() error
	IsOpen() bool
}

// MemoryModal is a Modal that only records its state. It backs server
// rendered previews and tests.
type MemoryModal struct {
	mu     sync.Mutex
	open   bool
	shows  int
	closes int
}

// NewMemoryModal creates a closed MemoryModal.
func NewMemoryModal() *MemoryModal {
	return &MemoryModal{}
}

// ShowModal implements Modal.
func (m *MemoryModal) ShowModal() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	m.shows++
	return nil
}

// Close implements Modal.
func (m *MemoryModal) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	m.closes++
	return nil
}

// IsOpen implements Modal.
func (m *MemoryModal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Calls returns how many times ShowModal and Close were called.
func (m *MemoryModal) Calls() (shows, closes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shows, m.closes
}
