package litkit

import (
	"sync"

	"github.com/vango-dev/litkit/pkg/bus"
)

// ViewType names a navigation mode of the page.
type ViewType string

// ViewTypeDefault is the initial view type.
const ViewTypeDefault ViewType = "default"

// ViewTypeChange is published on every SetViewType.
var ViewTypeChange = bus.NewTopic[ViewTypeChangeEvent]("viewTypeChange")

// ViewTypeChangeEvent is the payload of ViewTypeChange.
type ViewTypeChangeEvent struct {
	Previous ViewType
	Current  ViewType
}

// ViewTypeManager records the current and previous view type.
type ViewTypeManager struct {
	bus *bus.Bus

	mu       sync.Mutex
	current  ViewType
	previous ViewType
}

// NewViewTypeManager creates a manager that announces switches on b.
func NewViewTypeManager(b *bus.Bus) *ViewTypeManager {
	return &ViewTypeManager{
		bus:      b,
		current:  ViewTypeDefault,
		previous: ViewTypeDefault,
	}
}

// SetViewType switches to t and publishes ViewTypeChange. Setting the
// current view type again still publishes.
func (m *ViewTypeManager) SetViewType(t ViewType) {
	m.mu.Lock()
	m.previous = m.current
	m.current = t
	ev := ViewTypeChangeEvent{Previous: m.previous, Current: m.current}
	m.mu.Unlock()

	if m.bus != nil {
		bus.Publish(m.bus, ViewTypeChange, ev)
	}
}

// Current returns the current view type.
func (m *ViewTypeManager) Current() ViewType {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Previous returns the view type before the last switch.
func (m *ViewTypeManager) Previous() ViewType {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.previous
}
