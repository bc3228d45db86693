package bus

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"github.com/vango-dev/litkit/internal/errors"
)

// ErrInvalidHandler is returned when a listener is registered without a
// handler. Match it with errors.Is.
var ErrInvalidHandler = errors.New("E001")

// EmitInfo describes one completed dispatch.
type EmitInfo struct {
	Event     string
	Listeners int // snapshot size
	Delivered int // handlers actually invoked
	Panics    int
	Start     time.Time
	Duration  time.Duration
}

// Observer is notified about dispatches. Implementations must not call
// back into the bus.
type Observer interface {
	ObserveEmit(info EmitInfo)
	ObservePanic(event string, recovered any)
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used for handler panics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithObserver attaches an observer. Passing nil removes it.
func WithObserver(o Observer) Option {
	return func(b *Bus) {
		b.observer = o
	}
}

// Bus maps event names to ordered listeners. The zero value is not usable;
// create one with New.
type Bus struct {
	mu        sync.Mutex
	listeners map[string][]*Listener

	logger   *slog.Logger
	observer Observer
}

// New creates an empty Bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		listeners: make(map[string][]*Listener),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// On registers handler for event.
func (b *Bus) On(event string, handler Handler) (*Listener, error) {
	return b.ListenBy("", event, handler)
}

// ListenBy registers handler for event, tagged with owner for removal
// through OffByOwner.
func (b *Bus) ListenBy(owner, event string, handler Handler) (*Listener, error) {
	if handler == nil {
		return nil, errors.New("E001").WithDetail(fmt.Sprintf("No handler given for event %q.", event))
	}
	l := &Listener{event: event, owner: owner, handler: handler, bus: b}
	b.add(l)
	return l, nil
}

// Once registers handler for a single delivery. The listener is removed
// before the handler runs.
func (b *Bus) Once(event string, handler Handler) (*Listener, error) {
	if handler == nil {
		return nil, errors.New("E001").WithDetail(fmt.Sprintf("No handler given for event %q.", event))
	}
	l := &Listener{event: event, bus: b}
	l.handler = func(payload any) {
		b.Off(event, l)
		handler(payload)
	}
	b.add(l)
	return l, nil
}

func (b *Bus) add(l *Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[l.event] = append(b.listeners[l.event], l)
}

// Emit invokes every live listener for event with payload, in registration
// order. It returns false when no listener is registered for event.
func (b *Bus) Emit(event string, payload any) bool {
	b.mu.Lock()
	registered := b.listeners[event]
	if len(registered) == 0 {
		b.mu.Unlock()
		return false
	}
	snapshot := make([]*Listener, len(registered))
	copy(snapshot, registered)
	observer := b.observer
	b.mu.Unlock()

	info := EmitInfo{Event: event, Listeners: len(snapshot), Start: time.Now()}
	for _, l := range snapshot {
		if l.Destroyed() {
			continue
		}
		info.Delivered++
		if !b.safeInvoke(l, payload) {
			info.Panics++
		}
	}
	info.Duration = time.Since(info.Start)

	if observer != nil {
		observer.ObserveEmit(info)
	}
	return true
}

// safeInvoke runs a handler with panic recovery. It reports whether the
// handler returned normally.
func (b *Bus) safeInvoke(l *Listener, payload any) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			b.logger.Error("listener panic",
				"event", l.event,
				"owner", l.owner,
				"panic", r,
				"stack", string(debug.Stack()))
			b.mu.Lock()
			observer := b.observer
			b.mu.Unlock()
			if observer != nil {
				observer.ObservePanic(l.event, r)
			}
		}
	}()

	l.handler(payload)
	return true
}

// Off removes listener from event and destroys it. With a nil listener
// every listener for event is removed. Removing an already removed
// listener, or one registered for another event, is a no-op.
func (b *Bus) Off(event string, listener *Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	registered := b.listeners[event]
	if listener == nil {
		for _, l := range registered {
			l.destroy()
		}
		delete(b.listeners, event)
		return
	}
	if listener.bus != b || listener.event != event {
		return
	}

	listener.destroy()
	for i, l := range registered {
		if l == listener {
			b.setListeners(event, append(registered[:i:i], registered[i+1:]...))
			return
		}
	}
}

// OffByOwner removes every listener tagged with owner, across all events.
// It returns the number of listeners removed.
func (b *Bus) OffByOwner(owner string) int {
	if owner == "" {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for event, registered := range b.listeners {
		kept := registered[:0:0]
		for _, l := range registered {
			if l.owner == owner {
				l.destroy()
				removed++
				continue
			}
			kept = append(kept, l)
		}
		b.setListeners(event, kept)
	}
	return removed
}

// DestroyAll destroys every listener and clears the bus.
func (b *Bus) DestroyAll() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, registered := range b.listeners {
		for _, l := range registered {
			l.destroy()
		}
	}
	b.listeners = make(map[string][]*Listener)
}

// ListenerCount returns the number of live listeners for event.
func (b *Bus) ListenerCount(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners[event])
}

// Events returns the names of events with at least one listener, sorted.
func (b *Bus) Events() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	names := make([]string, 0, len(b.listeners))
	for name := range b.listeners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// setListeners stores a listener list, dropping the entry when empty.
// Caller holds b.mu.
func (b *Bus) setListeners(event string, ls []*Listener) {
	if len(ls) == 0 {
		delete(b.listeners, event)
		return
	}
	b.listeners[event] = ls
}
