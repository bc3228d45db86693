package popup

import (
	"log/slog"
	"strconv"
	"sync"

	"github.com/vango-dev/litkit/internal/errors"
	"github.com/vango-dev/litkit/pkg/vdom"
	"github.com/vango-dev/litkit/pkg/widget"
)

// PointerEvent is the event that opened the popup.
type PointerEvent struct {
	X, Y float64
	// Target becomes the anchor when set.
	Target widget.Element
}

// Props configures a Popup.
type Props struct {
	Open   bool
	Anchor widget.Element
	// Class is added to the popup-content element.
	Class string
	// Size is the rendered size of the popup content.
	Size    widget.Size
	Content *vdom.VNode
}

// Option configures a Popup.
type Option func(*Popup)

// WithViewport sets the initial viewport.
func WithViewport(v widget.Viewport) Option {
	return func(p *Popup) { p.viewport = v }
}

// WithGap overrides DefaultGap. As in Input, zero selects DefaultGap; a
// popup cannot sit flush against its anchor.
func WithGap(gap float64) Option {
	return func(p *Popup) { p.gap = gap }
}

// WithMargin overrides DefaultMargin. As in Input, zero selects
// DefaultMargin.
func WithMargin(margin float64) Option {
	return func(p *Popup) { p.margin = margin }
}

// WithSurface sets the surface the popup renders into.
func WithSurface(s widget.Surface) Option {
	return func(p *Popup) {
		if s != nil {
			p.surface = s
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Popup) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Popup is an anchored floating panel.
type Popup struct {
	mu        sync.Mutex
	mounted   bool
	open      bool
	anchor    widget.Element
	pointer   *widget.Point
	class     string
	size      widget.Size
	content   *vdom.VNode
	placement Placement

	viewport widget.Viewport
	gap      float64
	margin   float64
	surface  widget.Surface
	view     *widget.View
	logger   *slog.Logger
}

var _ widget.Widget[Props] = (*Popup)(nil)

// New creates a closed, unmounted Popup.
func New(opts ...Option) *Popup {
	p := &Popup{
		viewport:  widget.Viewport{Width: 1280, Height: 800},
		gap:       DefaultGap,
		margin:    DefaultMargin,
		logger:    slog.Default(),
		placement: Placement{Side: SideBottom},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.surface == nil {
		p.surface = widget.NewMemorySurface()
	}
	p.view = widget.NewView(p.surface, "pop")
	return p
}

// Mount renders the popup with p.
func (p *Popup) Mount(props Props) error {
	p.mu.Lock()
	p.mounted = true
	p.mu.Unlock()
	return p.Update(props)
}

// Update applies props. Opening through props keeps any pointer recorded
// by Open.
func (p *Popup) Update(props Props) error {
	p.mu.Lock()
	if !p.mounted {
		p.mu.Unlock()
		return errors.New("E002").WithDetail("popup is not mounted")
	}
	if !props.Open {
		p.pointer = nil
	}
	p.open = props.Open
	p.anchor = props.Anchor
	p.class = props.Class
	p.size = props.Size
	p.content = props.Content
	p.mu.Unlock()

	return p.reposition()
}

// Unmount detaches the popup.
func (p *Popup) Unmount() {
	p.mu.Lock()
	p.mounted = false
	p.open = false
	p.pointer = nil
	p.mu.Unlock()

	if err := p.view.Clear(); err != nil {
		p.logger.Warn("popup clear failed", "error", err)
	}
}

// Open opens the popup. A pointer event records the pointer position and
// its target as the anchor; a nil event clears the pointer.
func (p *Popup) Open(ev *PointerEvent) error {
	p.mu.Lock()
	p.open = true
	if ev != nil {
		p.pointer = &widget.Point{X: ev.X, Y: ev.Y}
		if ev.Target != nil {
			p.anchor = ev.Target
		}
	} else {
		p.pointer = nil
	}
	p.mu.Unlock()

	return p.reposition()
}

// OpenAt opens the popup against anchor.
func (p *Popup) OpenAt(anchor widget.Element) error {
	p.mu.Lock()
	p.open = true
	p.pointer = nil
	p.anchor = anchor
	p.mu.Unlock()

	return p.reposition()
}

// Close closes the popup and forgets the pointer.
func (p *Popup) Close() error {
	p.mu.Lock()
	p.open = false
	p.pointer = nil
	p.mu.Unlock()

	return p.reposition()
}

// SetAnchor changes the anchor, repositioning when open.
func (p *Popup) SetAnchor(anchor widget.Element) error {
	p.mu.Lock()
	p.anchor = anchor
	open := p.open
	p.mu.Unlock()

	if !open {
		return nil
	}
	return p.reposition()
}

// SetSize records the measured content size, repositioning when open.
func (p *Popup) SetSize(size widget.Size) error {
	p.mu.Lock()
	p.size = size
	open := p.open
	p.mu.Unlock()

	if !open {
		return nil
	}
	return p.reposition()
}

// OnScroll repositions an open popup.
func (p *Popup) OnScroll() error {
	if !p.IsOpen() {
		return nil
	}
	return p.reposition()
}

// OnViewportResize records the new viewport and repositions an open popup.
func (p *Popup) OnViewportResize(v widget.Viewport) error {
	p.mu.Lock()
	p.viewport = v
	open := p.open
	p.mu.Unlock()

	if !open {
		return nil
	}
	return p.reposition()
}

// IsOpen reports whether the popup is open.
func (p *Popup) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// Placement returns the last computed placement.
func (p *Popup) Placement() Placement {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.placement
}

// Tree returns the rendered popup.
func (p *Popup) Tree() *vdom.VNode {
	return p.view.Current()
}

// reposition recomputes the placement when open and renders.
func (p *Popup) reposition() error {
	p.mu.Lock()
	if !p.mounted {
		p.mu.Unlock()
		return nil
	}
	if p.open {
		in := Input{
			Viewport: p.viewport,
			Size:     p.size,
			Pointer:  p.pointer,
			Gap:      p.gap,
			Margin:   p.margin,
		}
		if p.anchor != nil {
			r := p.anchor.BoundingRect()
			in.Anchor = &r
		}
		p.placement = Place(in)
	}
	tree := p.tree()
	p.mu.Unlock()

	_, err := p.view.Render(tree)
	return err
}

// tree builds the popup. Caller holds p.mu.
func (p *Popup) tree() *vdom.VNode {
	display := "none"
	if p.open {
		display = "block"
	}
	pl := p.placement
	return vdom.Div(
		vdom.Class("popup-content", p.class),
		vdom.Data("position", string(pl.Side)),
		vdom.StyleAttr(vdom.Styles(
			"display", display,
			"position", "fixed",
			"z-index", "1000",
			"top", px(pl.Top),
			"left", px(pl.Left),
		)),
		vdom.Slot(p.content),
	)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
