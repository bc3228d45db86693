package toast

import (
	"sync/atomic"
	"time"
)

// Bus event names emitted by the Manager.
const (
	EventShown   = "toast:shown"
	EventRemoved = "toast:removed"
)

// Timing of the toast lifecycle.
const (
	Lifetime   = 3000 * time.Millisecond
	EnterDelay = 100 * time.Millisecond
	ExitDelay  = 300 * time.Millisecond
)

// Type represents the toast notification type.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	switch t {
	case TypeSuccess, TypeError, TypeWarning, TypeInfo:
		return true
	}
	return false
}

// Reason says why a toast left the active list.
type Reason string

const (
	ReasonExpired   Reason = "expired"
	ReasonDismissed Reason = "dismissed"
	ReasonCleared   Reason = "cleared"
)

// Options describes a toast to show.
type Options struct {
	Message string
	// Type defaults to TypeSuccess.
	Type Type
}

// Toast is one notification. Only the Manager mutates it.
type Toast struct {
	ID        string
	Message   string
	Type      Type
	CreatedAt time.Time

	visible atomic.Bool
}

// Visible reports whether the toast is past its enter delay and not yet
// being removed.
func (t *Toast) Visible() bool { return t.visible.Load() }

// Removal is the payload of EventRemoved.
type Removal struct {
	Toast  *Toast
	Reason Reason
}
