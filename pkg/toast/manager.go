package toast

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/vango-dev/litkit/pkg/bus"
	"github.com/vango-dev/litkit/pkg/widget"
)

// ContainerID is the id of the root container element.
const ContainerID = "toast-manager-container"

// Observer is notified about toast lifecycle changes.
type Observer interface {
	ToastShown(t Type)
	ToastRemoved(t Type, reason Reason)
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used for lifecycle timers.
func WithClock(c widget.Clock) Option {
	return func(m *Manager) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithBus attaches a bus for EventShown and EventRemoved.
func WithBus(b *bus.Bus) Option {
	return func(m *Manager) { m.bus = b }
}

// WithSurface sets the surface the container renders into. The default
// is an in-memory surface.
func WithSurface(s widget.Surface) Option {
	return func(m *Manager) {
		if s != nil {
			m.surface = s
		}
	}
}

// WithLogger sets the logger for render failures.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithObserver attaches a lifecycle observer.
func WithObserver(o Observer) Option {
	return func(m *Manager) { m.observer = o }
}

type entry struct {
	toast   *Toast
	leaving bool

	enter  widget.Timer
	expire widget.Timer
	detach widget.Timer
}

func (e *entry) stopTimers() {
	for _, t := range []widget.Timer{e.enter, e.expire, e.detach} {
		if t != nil {
			t.Stop()
		}
	}
}

// Manager owns the active toasts and their rendered container.
type Manager struct {
	mu sync.Mutex
	// entries holds active and leaving toasts, newest first.
	entries []*entry

	renderMu sync.Mutex
	view     *widget.View

	clock    widget.Clock
	bus      *bus.Bus
	surface  widget.Surface
	logger   *slog.Logger
	observer Observer
}

// New creates a Manager. The container is not created until the first
// toast is shown.
func New(opts ...Option) *Manager {
	m := &Manager{
		clock:  widget.RealClock{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.surface == nil {
		m.surface = widget.NewMemorySurface()
	}
	return m
}

// Show creates a toast, prepends it to the active list, renders it and
// schedules its removal after Lifetime.
func (m *Manager) Show(opts Options) *Toast {
	typ := opts.Type
	if !typ.Valid() {
		typ = TypeSuccess
	}

	t := &Toast{
		ID:        uuid.NewString(),
		Message:   opts.Message,
		Type:      typ,
		CreatedAt: m.clock.Now(),
	}
	e := &entry{toast: t}

	m.mu.Lock()
	m.entries = append([]*entry{e}, m.entries...)
	e.enter = m.clock.AfterFunc(EnterDelay, func() { m.reveal(e) })
	e.expire = m.clock.AfterFunc(Lifetime, func() { m.remove(e, ReasonExpired) })
	m.mu.Unlock()

	m.render()
	if m.observer != nil {
		m.observer.ToastShown(typ)
	}
	if m.bus != nil {
		m.bus.Emit(EventShown, t)
	}
	return t
}

// Success shows a success toast.
//
//	m.Success("Changes saved!")
func (m *Manager) Success(message string) *Toast {
	return m.Show(Options{Message: message, Type: TypeSuccess})
}

// Error shows an error toast.
//
//	m.Error("Failed to send the form")
func (m *Manager) Error(message string) *Toast {
	return m.Show(Options{Message: message, Type: TypeError})
}

// Warning shows a warning toast.
//
//	m.Warning("This action cannot be undone")
func (m *Manager) Warning(message string) *Toast {
	return m.Show(Options{Message: message, Type: TypeWarning})
}

// Info shows an info toast.
//
//	m.Info("New events available")
func (m *Manager) Info(message string) *Toast {
	return m.Show(Options{Message: message, Type: TypeInfo})
}

// Remove dismisses t. Removing a toast that is not active is a no-op.
func (m *Manager) Remove(t *Toast) {
	if t == nil {
		return
	}
	m.mu.Lock()
	e := m.find(func(e *entry) bool { return e.toast == t })
	m.mu.Unlock()
	if e != nil {
		m.remove(e, ReasonDismissed)
	}
}

// RemoveByID dismisses the active toast with id, as the close button
// does. It reports whether a toast was removed.
func (m *Manager) RemoveByID(id string) bool {
	m.mu.Lock()
	e := m.find(func(e *entry) bool { return e.toast.ID == id })
	m.mu.Unlock()
	if e == nil {
		return false
	}
	return m.remove(e, ReasonDismissed)
}

// ClearAll removes every toast immediately, without the exit delay.
func (m *Manager) ClearAll() {
	m.mu.Lock()
	var removed []*entry
	for _, e := range m.entries {
		e.stopTimers()
		if !e.leaving {
			removed = append(removed, e)
		}
		e.toast.visible.Store(false)
	}
	m.entries = nil
	m.mu.Unlock()

	m.render()
	for _, e := range removed {
		m.notifyRemoved(e.toast, ReasonCleared)
	}
}

// Active returns the active toasts, newest first.
func (m *Manager) Active() []*Toast {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Toast, 0, len(m.entries))
	for _, e := range m.entries {
		if !e.leaving {
			out = append(out, e.toast)
		}
	}
	return out
}

// Len returns the number of active toasts.
func (m *Manager) Len() int {
	return len(m.Active())
}

// remove takes e out of the active list and schedules its detachment.
// It reports whether e was still active.
func (m *Manager) remove(e *entry, reason Reason) bool {
	m.mu.Lock()
	if e.leaving || !m.contains(e) {
		m.mu.Unlock()
		return false
	}
	e.leaving = true
	e.toast.visible.Store(false)
	if e.enter != nil {
		e.enter.Stop()
	}
	if e.expire != nil {
		e.expire.Stop()
	}
	e.detach = m.clock.AfterFunc(ExitDelay, func() { m.detach(e) })
	m.mu.Unlock()

	m.render()
	m.notifyRemoved(e.toast, reason)
	return true
}

func (m *Manager) reveal(e *entry) {
	m.mu.Lock()
	if e.leaving || !m.contains(e) {
		m.mu.Unlock()
		return
	}
	e.toast.visible.Store(true)
	m.mu.Unlock()

	m.render()
}

func (m *Manager) detach(e *entry) {
	m.mu.Lock()
	kept := m.entries[:0:0]
	for _, other := range m.entries {
		if other != e {
			kept = append(kept, other)
		}
	}
	found := len(kept) != len(m.entries)
	m.entries = kept
	m.mu.Unlock()

	if found {
		m.render()
	}
}

func (m *Manager) notifyRemoved(t *Toast, reason Reason) {
	if m.observer != nil {
		m.observer.ToastRemoved(t.Type, reason)
	}
	if m.bus != nil {
		m.bus.Emit(EventRemoved, Removal{Toast: t, Reason: reason})
	}
}

// find returns the first non-leaving entry matching. Caller holds m.mu.
func (m *Manager) find(match func(*entry) bool) *entry {
	for _, e := range m.entries {
		if !e.leaving && match(e) {
			return e
		}
	}
	return nil
}

// contains reports whether e is still tracked. Caller holds m.mu.
func (m *Manager) contains(e *entry) bool {
	for _, other := range m.entries {
		if other == e {
			return true
		}
	}
	return false
}
