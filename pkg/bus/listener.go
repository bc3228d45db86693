package bus

import "sync/atomic"

// Handler receives the payload passed to Emit.
type Handler func(payload any)

// Listener is a registered handler. It is owned by the Bus that created it.
type Listener struct {
	event   string
	owner   string
	handler Handler
	bus     *Bus

	destroyed atomic.Bool
}

// Event returns the event name the listener is registered for.
func (l *Listener) Event() string { return l.event }

// Owner returns the owner tag, or "" when untagged.
func (l *Listener) Owner() string { return l.owner }

// Destroyed reports whether the listener has been removed.
func (l *Listener) Destroyed() bool { return l.destroyed.Load() }

// Unregister removes the listener from its bus. Calling it more than once
// has no further effect.
func (l *Listener) Unregister() {
	if l == nil || l.bus == nil {
		return
	}
	l.bus.Off(l.event, l)
}

// destroy marks the listener dead and reports whether this call did it.
func (l *Listener) destroy() bool {
	return l.destroyed.CompareAndSwap(false, true)
}
