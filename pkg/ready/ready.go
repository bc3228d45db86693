// Package ready provides a one-shot readiness latch.
//
// Page glue marks the latch once its collaborators are in place; anything
// that needs them waits on it:
//
//	var l ready.Latch
//	go func() { _ = l.Wait(ctx); start() }()
//	l.MarkReady()
//
// Clear resets the latch and fails every pending waiter with ErrCleared.
package ready

import (
	"context"
	"errors"
	"sync"
)

// ErrCleared is returned to waiters whose latch was cleared before it
// became ready.
var ErrCleared = errors.New("ready: latch cleared")

// Latch is a resettable readiness flag. The zero value is an unready
// latch.
type Latch struct {
	mu      sync.Mutex
	ready   bool
	done    chan struct{}
	cleared chan struct{}
	hooks   []func()
}

// init prepares the channels for the current generation. Must be called
// with mu held.
func (l *Latch) init() {
	if l.done == nil {
		l.done = make(chan struct{})
		l.cleared = make(chan struct{})
	}
}

// MarkReady releases all waiters and runs pending OnReady callbacks.
// Calling it again before Clear is a no-op.
func (l *Latch) MarkReady() {
	l.mu.Lock()
	l.init()
	if l.ready {
		l.mu.Unlock()
		return
	}
	l.ready = true
	close(l.done)
	hooks := l.hooks
	l.hooks = nil
	l.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// Ready reports whether the latch is marked.
func (l *Latch) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ready
}

// Wait blocks until the latch is ready, the latch is cleared, or ctx is
// done.
func (l *Latch) Wait(ctx context.Context) error {
	l.mu.Lock()
	l.init()
	if l.ready {
		l.mu.Unlock()
		return nil
	}
	done, cleared := l.done, l.cleared
	l.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-cleared:
		return ErrCleared
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnReady runs fn once the latch is ready. If it already is, fn runs
// immediately on the calling goroutine. Callbacks pending at Clear are
// dropped.
func (l *Latch) OnReady(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.ready {
		l.mu.Unlock()
		fn()
		return
	}
	l.hooks = append(l.hooks, fn)
	l.mu.Unlock()
}

// Clear returns the latch to unready. Pending waiters get ErrCleared.
func (l *Latch) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cleared != nil && !l.ready {
		close(l.cleared)
	}
	l.ready = false
	l.done = nil
	l.cleared = nil
	l.hooks = nil
}
