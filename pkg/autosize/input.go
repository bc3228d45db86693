package autosize

import (
	"log/slog"
	"math"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/vango-dev/litkit/internal/errors"
	"github.com/vango-dev/litkit/pkg/bus"
	"github.com/vango-dev/litkit/pkg/vdom"
	"github.com/vango-dev/litkit/pkg/widget"
)

// Bus topics emitted by Input.
var (
	InputChanged = bus.NewTopic[Change]("input-changed")
	Focused      = bus.NewTopic[Change]("focus")
	Blurred      = bus.NewTopic[Change]("blur")
)

// Change is the payload of the input topics.
type Change struct {
	ID    string
	Value string
}

// Props configures an Input.
type Props struct {
	Value       string
	AutoResize  bool
	Placeholder string
	Disabled    bool
	ReadOnly    bool
	// Rows defaults to 1 when AutoResize is set; zero leaves it unset
	// otherwise.
	Rows      int
	Cols      int
	AutoFocus bool
	AriaLabel string
	Class     string
	Style     Style
}

// Option configures an Input.
type Option func(*Input)

// WithID sets the input id. The default is a random UUID.
func WithID(id string) Option {
	return func(in *Input) {
		if id != "" {
			in.id = id
		}
	}
}

// WithMeasurer sets the height measurer. The default is a FontMeasurer
// with the bitmap face.
func WithMeasurer(m Measurer) Option {
	return func(in *Input) {
		if m != nil {
			in.measurer = m
		}
	}
}

// WithHost sets the platform element.
func WithHost(h Host) Option {
	return func(in *Input) {
		if h != nil {
			in.host = h
		}
	}
}

// WithBus attaches a bus for the input topics.
func WithBus(b *bus.Bus) Option {
	return func(in *Input) { in.bus = b }
}

// WithSurface sets the surface the textarea renders into.
func WithSurface(s widget.Surface) Option {
	return func(in *Input) {
		if s != nil {
			in.surface = s
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Input) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// Input is an autosizing multi-line text input.
type Input struct {
	mu      sync.Mutex
	id      string
	mounted bool
	props   Props
	height  float64
	focused bool

	onChange []func(string)

	measurer Measurer
	host     Host
	bus      *bus.Bus
	surface  widget.Surface
	view     *widget.View
	logger   *slog.Logger
}

var _ widget.Widget[Props] = (*Input)(nil)

// New creates an unmounted Input.
func New(opts ...Option) *Input {
	in := &Input{
		id:     uuid.NewString(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.measurer == nil {
		in.measurer = NewFontMeasurer(nil)
	}
	if in.host == nil {
		in.host = NewMemoryHost()
	}
	if in.surface == nil {
		in.surface = widget.NewMemorySurface()
	}
	in.view = widget.NewView(in.surface, "ta")
	return in
}

// ID returns the input id.
func (in *Input) ID() string { return in.id }

// Mount renders the input, sizes it when autosize is on and focuses it
// when AutoFocus is set.
func (in *Input) Mount(p Props) error {
	in.mu.Lock()
	in.mounted = true
	in.mu.Unlock()

	if err := in.Update(p); err != nil {
		return err
	}
	if p.AutoFocus {
		in.Focus()
	}
	return nil
}

// Update applies p and readjusts the height.
func (in *Input) Update(p Props) error {
	in.mu.Lock()
	if !in.mounted {
		in.mu.Unlock()
		return errors.New("E002").WithDetail("textarea " + in.id + " is not mounted")
	}
	in.props = p
	in.mu.Unlock()

	in.Adjust()
	return in.render()
}

// Unmount detaches the input.
func (in *Input) Unmount() {
	in.mu.Lock()
	in.mounted = false
	in.mu.Unlock()

	if err := in.view.Clear(); err != nil {
		in.logger.Warn("textarea clear failed", "textarea", in.id, "error", err)
	}
	if in.bus != nil {
		in.bus.OffByOwner(in.id)
	}
}

// Input handles a content change from the user.
func (in *Input) Input(value string) {
	in.mu.Lock()
	in.props.Value = value
	callbacks := append([]func(string){}, in.onChange...)
	in.mu.Unlock()

	in.Adjust()
	if err := in.render(); err != nil {
		in.logger.Warn("textarea render failed", "textarea", in.id, "error", err)
	}

	for _, fn := range callbacks {
		fn(value)
	}
	in.publish(InputChanged, value)
}

// OnChange registers fn to run after every user content change.
func (in *Input) OnChange(fn func(value string)) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.onChange = append(in.onChange, fn)
}

// OnViewportResize readjusts the height, since wrapping may have changed.
func (in *Input) OnViewportResize(width float64) {
	in.mu.Lock()
	if width > 0 {
		in.props.Style.Width = width
	}
	in.mu.Unlock()

	in.Adjust()
	if err := in.render(); err != nil {
		in.logger.Warn("textarea render failed", "textarea", in.id, "error", err)
	}
}

// Focus marks the input focused and publishes Focused.
func (in *Input) Focus() {
	in.mu.Lock()
	if in.focused {
		in.mu.Unlock()
		return
	}
	in.focused = true
	value := in.props.Value
	in.mu.Unlock()

	in.publish(Focused, value)
}

// Blur clears focus and publishes Blurred.
func (in *Input) Blur() {
	in.mu.Lock()
	if !in.focused {
		in.mu.Unlock()
		return
	}
	in.focused = false
	value := in.props.Value
	in.mu.Unlock()

	in.publish(Blurred, value)
}

// Adjust recomputes and applies the height. It is skipped when autosize
// is off or the input is disabled or read-only. It reports whether a
// height was applied.
func (in *Input) Adjust() bool {
	in.mu.Lock()
	p := in.props
	if !in.mounted || !p.AutoResize || p.Disabled || p.ReadOnly {
		in.mu.Unlock()
		return false
	}
	in.mu.Unlock()

	scroll := in.host.ScrollTop()
	height := ClampHeight(in.measurer.MeasureNaturalHeight(p.Value, p.Style), p.Style)
	in.host.SetHeight(height)
	in.host.SetScrollTop(scroll)

	in.mu.Lock()
	in.height = height
	in.mu.Unlock()
	return true
}

// ClampHeight turns a natural height into the applied height: borders are
// added unless style is border-box, then the result is bounded by
// MinHeight and MaxHeight.
func ClampHeight(natural float64, style Style) float64 {
	h := natural
	if !style.BorderBox {
		h += style.BorderTop + style.BorderBottom
	}
	ceiling := style.MaxHeight
	if ceiling == 0 {
		ceiling = math.Inf(1)
	}
	return math.Max(style.MinHeight, math.Min(h, ceiling))
}

// Height returns the last applied height, or zero.
func (in *Input) Height() float64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.height
}

// Value returns the current value.
func (in *Input) Value() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.props.Value
}

// Tree returns the rendered textarea.
func (in *Input) Tree() *vdom.VNode {
	return in.view.Current()
}

func (in *Input) publish(topic bus.Topic[Change], value string) {
	if in.bus == nil {
		return
	}
	bus.Publish(in.bus, topic, Change{ID: in.id, Value: value})
}

func (in *Input) render() error {
	in.mu.Lock()
	if !in.mounted {
		in.mu.Unlock()
		return nil
	}
	tree := in.tree()
	in.mu.Unlock()

	_, err := in.view.Render(tree)
	return err
}

// tree builds the textarea. Caller holds in.mu.
func (in *Input) tree() *vdom.VNode {
	p := in.props

	rows := p.Rows
	if rows == 0 && p.AutoResize {
		rows = 1
	}
	label := p.AriaLabel
	if label == "" {
		label = p.Placeholder
	}
	if label == "" {
		label = "textarea"
	}
	height := ""
	if p.AutoResize && in.height > 0 {
		height = strconv.FormatFloat(in.height, 'f', -1, 64) + "px"
	}

	return vdom.Textarea(
		vdom.ID(in.id),
		vdom.Part("textarea"),
		vdom.Class("internal-textarea", p.Class),
		vdom.AttrIf(p.Disabled, vdom.Disabled(true)),
		vdom.AttrIf(p.ReadOnly, vdom.ReadOnly(true)),
		vdom.AttrIf(p.AutoFocus, vdom.Autofocus(true)),
		vdom.AttrIf(p.Placeholder != "", vdom.Placeholder(p.Placeholder)),
		vdom.AttrIf(rows > 0, vdom.Rows(rows)),
		vdom.AttrIf(p.Cols > 0, vdom.Cols(p.Cols)),
		vdom.AriaLabel(label),
		vdom.AttrIf(height != "", vdom.StyleAttr(vdom.Styles("height", height))),
		vdom.Text(p.Value),
	)
}
