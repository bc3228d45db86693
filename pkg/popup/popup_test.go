package popup

import (
	"testing"

	"github.com/vango-dev/litkit/internal/errors"
	"github.com/vango-dev/litkit/pkg/vdom"
	"github.com/vango-dev/litkit/pkg/vtest"
	"github.com/vango-dev/litkit/pkg/widget"
)

// movable is an anchor whose rect the test can change, like an element
// moving under scroll.
type movable struct {
	r widget.Rect
}

func (m *movable) BoundingRect() widget.Rect { return m.r }

func mounted(t *testing.T, props Props) *Popup {
	t.Helper()
	p := New(WithViewport(viewport))
	if err := p.Mount(props); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestOpenAtAnchor(t *testing.T) {
	p := mounted(t, Props{Size: size})
	anchor := widget.StaticElement{X: 450, Y: 690, Width: 100, Height: 10}

	if err := p.OpenAt(anchor); err != nil {
		t.Fatal(err)
	}
	want := Placement{Top: 530, Left: 400, Side: SideTop}
	if got := p.Placement(); got != want {
		t.Errorf("Placement = %+v, want %+v", got, want)
	}
	vtest.ExpectAttribute(t, p.Tree(), "data-position", "top")
	vtest.ExpectContains(t, p.Tree(), "top:530px;left:400px")
	vtest.ExpectContains(t, p.Tree(), "display:block")
}

func TestOpenWithPointerEvent(t *testing.T) {
	p := mounted(t, Props{Size: size})
	target := widget.StaticElement{X: 280, Y: 190, Width: 40, Height: 20}

	if err := p.Open(&PointerEvent{X: 310, Y: 200, Target: target}); err != nil {
		t.Fatal(err)
	}
	// Anchor bottom (210) decides top, pointer x decides left.
	want := Placement{Top: 220, Left: 210, Side: SideBottom}
	if got := p.Placement(); got != want {
		t.Errorf("Placement = %+v, want %+v", got, want)
	}
}

func TestOpenWithoutPointerCenters(t *testing.T) {
	p := mounted(t, Props{Size: size})
	if err := p.Open(nil); err != nil {
		t.Fatal(err)
	}
	want := Placement{Top: 325, Left: 400, Side: SideBottom}
	if got := p.Placement(); got != want {
		t.Errorf("Placement = %+v, want %+v", got, want)
	}
}

func TestScrollRepositions(t *testing.T) {
	anchor := &movable{r: widget.Rect{X: 450, Y: 100, Width: 100, Height: 20}}
	p := mounted(t, Props{Size: size})
	_ = p.OpenAt(anchor)
	if p.Placement().Top != 130 {
		t.Fatalf("Top = %v", p.Placement().Top)
	}

	anchor.r.Y = 690
	anchor.r.Height = 10
	if err := p.OnScroll(); err != nil {
		t.Fatal(err)
	}
	if got := p.Placement(); got.Side != SideTop || got.Top != 530 {
		t.Errorf("after scroll Placement = %+v", got)
	}
}

func TestScrollWhileClosedIgnored(t *testing.T) {
	anchor := &movable{r: widget.Rect{X: 450, Y: 100, Width: 100, Height: 20}}
	p := mounted(t, Props{Size: size, Anchor: anchor})
	before := p.Placement()

	anchor.r.Y = 690
	_ = p.OnScroll()
	_ = p.SetAnchor(widget.StaticElement{X: 0, Y: 0, Width: 10, Height: 10})
	if p.Placement() != before {
		t.Error("closed popup must not reposition")
	}
}

func TestViewportResize(t *testing.T) {
	p := mounted(t, Props{Size: size})
	_ = p.Open(nil)
	if err := p.OnViewportResize(widget.Viewport{Width: 400, Height: 300}); err != nil {
		t.Fatal(err)
	}
	want := Placement{Top: 75, Left: 100, Side: SideBottom}
	if got := p.Placement(); got != want {
		t.Errorf("Placement = %+v, want %+v", got, want)
	}
}

func TestSetAnchorWhileOpen(t *testing.T) {
	p := mounted(t, Props{Size: size})
	_ = p.Open(nil)
	_ = p.SetAnchor(widget.StaticElement{X: 450, Y: 100, Width: 100, Height: 20})
	if got := p.Placement(); got.Top != 130 || got.Left != 400 {
		t.Errorf("Placement = %+v", got)
	}
}

func TestCloseForgetsPointer(t *testing.T) {
	p := mounted(t, Props{Size: size})
	_ = p.Open(&PointerEvent{X: 300, Y: 200})
	_ = p.Close()
	vtest.ExpectContains(t, p.Tree(), "display:none")

	// Reopening through props has no pointer to go by.
	_ = p.Update(Props{Open: true, Size: size})
	want := Placement{Top: 325, Left: 400, Side: SideBottom}
	if got := p.Placement(); got != want {
		t.Errorf("Placement = %+v, want %+v", got, want)
	}
}

func TestCustomClassAndContent(t *testing.T) {
	p := mounted(t, Props{Class: "menu", Content: vdom.Span(vdom.Text("Share"))})
	vtest.ExpectAttribute(t, p.Tree(), "class", "popup-content menu")
	vtest.ExpectContains(t, p.Tree(), "<slot><span>Share</span></slot>")
}

func TestUpdateBeforeMount(t *testing.T) {
	p := New()
	if err := p.Update(Props{Open: true}); errors.Code(err) != "E002" {
		t.Errorf("err = %v, want E002", err)
	}
}

func TestUnmount(t *testing.T) {
	s := widget.NewMemorySurface()
	p := New(WithSurface(s))
	_ = p.Mount(Props{Open: true, Size: size})
	p.Unmount()
	if p.IsOpen() || s.Root() != nil {
		t.Error("unmount should close and clear")
	}
}

func TestGapAndMarginOptions(t *testing.T) {
	p := New(WithViewport(viewport), WithGap(4), WithMargin(30))
	if err := p.Mount(Props{Size: size}); err != nil {
		t.Fatal(err)
	}

	// Centered on the anchor the popup would start at x=0; the margin
	// pushes it in.
	if err := p.OpenAt(widget.StaticElement{X: 0, Y: 100, Width: 20, Height: 20}); err != nil {
		t.Fatal(err)
	}
	want := Placement{Top: 124, Left: 30, Side: SideBottom}
	if got := p.Placement(); got != want {
		t.Errorf("Placement = %+v, want %+v", got, want)
	}
}

func TestZeroGapAndMarginSelectDefaults(t *testing.T) {
	p := New(WithViewport(viewport), WithGap(0), WithMargin(0))
	if err := p.Mount(Props{Size: size}); err != nil {
		t.Fatal(err)
	}
	if err := p.OpenAt(widget.StaticElement{X: 0, Y: 100, Width: 20, Height: 20}); err != nil {
		t.Fatal(err)
	}
	want := Placement{Top: 120 + DefaultGap, Left: DefaultMargin, Side: SideBottom}
	if got := p.Placement(); got != want {
		t.Errorf("Placement = %+v, want %+v", got, want)
	}
}
