package dialog

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/vango-dev/litkit/internal/errors"
	"github.com/vango-dev/litkit/pkg/bus"
	"github.com/vango-dev/litkit/pkg/vdom"
	"github.com/vango-dev/litkit/pkg/widget"
)

// DefaultTitle is used when Props.Title is empty.
const DefaultTitle = "Dialog"

// Bus topics for dialog transitions.
var (
	Opened = bus.NewTopic[Event]("dialog:opened")
	Closed = bus.NewTopic[Event]("dialog:closed")
)

// Event is the payload of Opened and Closed.
type Event struct {
	ID string
}

// Reason names a user gesture asking the dialog to go away.
type Reason string

const (
	ReasonBackdrop    Reason = "backdrop"
	ReasonEscape      Reason = "escape"
	ReasonCloseButton Reason = "close-button"
)

// Props configures a Dialog.
type Props struct {
	Open  bool
	Title string
	// Closable defaults to true.
	Closable *bool
	// Width sets the dialog width as a CSS length. Nil keeps the
	// stylesheet default.
	Width *string

	Body   *vdom.VNode
	Footer *vdom.VNode
}

// State is the effective dialog state.
type State struct {
	Open     bool
	Title    string
	Closable bool
	Width    string
}

// Option configures a Dialog.
type Option func(*Dialog)

// WithID sets the dialog id. The default is a random UUID.
func WithID(id string) Option {
	return func(d *Dialog) {
		if id != "" {
			d.id = id
		}
	}
}

// WithBus attaches a bus for Opened and Closed.
func WithBus(b *bus.Bus) Option {
	return func(d *Dialog) { d.bus = b }
}

// WithSurface sets the surface the dialog chrome renders into. The
// default is an in-memory surface.
func WithSurface(s widget.Surface) Option {
	return func(d *Dialog) {
		if s != nil {
			d.surface = s
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dialog) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Dialog is a modal dialog widget.
type Dialog struct {
	mu      sync.Mutex
	id      string
	mounted bool
	state   State
	body    *vdom.VNode
	footer  *vdom.VNode

	onOpened []func()
	onClosed []func()

	modal   Modal
	bus     *bus.Bus
	surface widget.Surface
	view    *widget.View
	logger  *slog.Logger
}

var _ widget.Widget[Props] = (*Dialog)(nil)

// New creates a closed, unmounted Dialog backed by modal.
func New(modal Modal, opts ...Option) *Dialog {
	d := &Dialog{
		id:     uuid.NewString(),
		modal:  modal,
		logger: slog.Default(),
		state:  State{Title: DefaultTitle, Closable: true},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.modal == nil {
		d.modal = NewMemoryModal()
	}
	if d.surface == nil {
		d.surface = widget.NewMemorySurface()
	}
	d.view = widget.NewView(d.surface, "dlg")
	return d
}

// ID returns the dialog id.
func (d *Dialog) ID() string { return d.id }

// Mount renders the dialog and opens it when p.Open is set.
func (d *Dialog) Mount(p Props) error {
	d.mu.Lock()
	d.mounted = true
	d.mu.Unlock()

	return d.Update(p)
}

// Update applies p. Presentation changes re-render only when the effective
// state changed; a change of p.Open performs the transition.
func (d *Dialog) Update(p Props) error {
	d.mu.Lock()
	if !d.mounted {
		d.mu.Unlock()
		return errors.New("E002").WithDetail("dialog " + d.id + " is not mounted")
	}
	d.state.Title = widget.StringOr(nilIfEmpty(p.Title), DefaultTitle)
	d.state.Closable = widget.BoolOr(p.Closable, true)
	d.state.Width = widget.StringOr(p.Width, "")
	d.body, d.footer = p.Body, p.Footer
	d.mu.Unlock()

	if _, err := d.render(); err != nil {
		return err
	}
	if p.Open {
		return d.Show()
	}
	return d.Close()
}

// Unmount closes the dialog if open and detaches its surface.
func (d *Dialog) Unmount() {
	if err := d.Close(); err != nil {
		d.logger.Warn("dialog close on unmount failed", "dialog", d.id, "error", err)
	}

	d.mu.Lock()
	d.mounted = false
	d.mu.Unlock()

	if err := d.view.Clear(); err != nil {
		d.logger.Warn("dialog clear failed", "dialog", d.id, "error", err)
	}
	if d.bus != nil {
		d.bus.OffByOwner(d.id)
	}
}

// Show opens the dialog. Showing an open dialog is a no-op.
func (d *Dialog) Show() error {
	return d.transition(true)
}

// Close closes the dialog. Closing a closed dialog is a no-op.
func (d *Dialog) Close() error {
	return d.transition(false)
}

// RequestDismiss handles a user gesture asking the dialog to close. It is
// refused when the dialog is not closable. It reports whether the dialog
// closed.
func (d *Dialog) RequestDismiss(reason Reason) bool {
	d.mu.Lock()
	allowed := d.state.Open && d.state.Closable
	d.mu.Unlock()

	if !allowed {
		d.logger.Debug("dialog dismiss refused", "dialog", d.id, "reason", reason)
		return false
	}
	if err := d.Close(); err != nil {
		d.logger.Warn("dialog dismiss failed", "dialog", d.id, "reason", reason, "error", err)
		return false
	}
	return true
}

// OnNativeClose syncs state after the platform closed the modal on its
// own.
func (d *Dialog) OnNativeClose() {
	d.mu.Lock()
	if !d.state.Open {
		d.mu.Unlock()
		return
	}
	d.state.Open = false
	d.mu.Unlock()

	d.emit(false)
}

// OnOpened registers fn to run after every open transition.
func (d *Dialog) OnOpened(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onOpened = append(d.onOpened, fn)
}

// OnClosed registers fn to run after every close transition.
func (d *Dialog) OnClosed(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onClosed = append(d.onClosed, fn)
}

// IsOpen reports whether the dialog is open.
func (d *Dialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Open
}

// State returns the effective state.
func (d *Dialog) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Tree returns the rendered dialog chrome.
func (d *Dialog) Tree() *vdom.VNode {
	return d.view.Current()
}

func (d *Dialog) transition(open bool) error {
	d.mu.Lock()
	if d.state.Open == open {
		d.mu.Unlock()
		return d.settle(open)
	}
	d.state.Open = open
	d.mu.Unlock()

	var err error
	if open {
		err = d.modal.ShowModal()
	} else {
		err = d.modal.Close()
	}
	if err != nil {
		d.mu.Lock()
		d.state.Open = !open
		d.mu.Unlock()
		return errors.New("E041").Wrap(err)
	}

	d.emit(open)
	return nil
}

// settle brings the modal back in line with an unchanged state, without
// emitting anything.
func (d *Dialog) settle(open bool) error {
	if d.modal.IsOpen() == open {
		return nil
	}
	var err error
	if open {
		err = d.modal.ShowModal()
	} else {
		err = d.modal.Close()
	}
	if err != nil {
		return errors.New("E041").Wrap(err)
	}
	return nil
}

func (d *Dialog) emit(open bool) {
	d.mu.Lock()
	callbacks := d.onClosed
	if open {
		callbacks = d.onOpened
	}
	callbacks = append([]func(){}, callbacks...)
	d.mu.Unlock()

	d.logger.Debug("dialog transition", "dialog", d.id, "open", open)
	for _, fn := range callbacks {
		fn()
	}
	if d.bus == nil {
		return
	}
	topic := Closed
	if open {
		topic = Opened
	}
	bus.Publish(d.bus, topic, Event{ID: d.id})
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
