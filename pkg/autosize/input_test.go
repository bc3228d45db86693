package autosize

import (
	"testing"

	"github.com/vango-dev/litkit/internal/errors"
	"github.com/vango-dev/litkit/pkg/bus"
	"github.com/vango-dev/litkit/pkg/vtest"
)

func fixed(h float64) Measurer {
	return MeasureFunc(func(string, Style) float64 { return h })
}

func TestAdjustClampsToMax(t *testing.T) {
	host := NewMemoryHost()
	in := New(WithMeasurer(fixed(240)), WithHost(host))
	if err := in.Mount(Props{AutoResize: true, Style: Style{MaxHeight: 200}}); err != nil {
		t.Fatal(err)
	}
	if in.Height() != 200 || host.Height() != 200 {
		t.Errorf("height = %v / host %v, want 200", in.Height(), host.Height())
	}
	vtest.ExpectAttribute(t, in.Tree(), "style", "height:200px")
}

func TestAdjustPreservesScroll(t *testing.T) {
	height := 100.0
	host := NewMemoryHost()
	in := New(WithHost(host), WithMeasurer(MeasureFunc(func(string, Style) float64 { return height })))
	_ = in.Mount(Props{AutoResize: true})

	host.SetScrollTop(37)
	height = 240
	in.Input("more text")

	if host.Height() != 240 {
		t.Fatalf("height = %v", host.Height())
	}
	if host.ScrollTop() != 37 {
		t.Errorf("scroll = %v, want 37", host.ScrollTop())
	}
}

func TestAdjustSkippedWhenDisabledOrReadOnly(t *testing.T) {
	for _, p := range []Props{
		{AutoResize: true, Disabled: true},
		{AutoResize: true, ReadOnly: true},
		{AutoResize: false},
	} {
		host := NewMemoryHost()
		in := New(WithMeasurer(fixed(80)), WithHost(host))
		_ = in.Mount(p)
		in.Input("x")

		if host.Resizes() != 0 {
			t.Errorf("%+v: host resized %d times", p, host.Resizes())
		}
		// Rendering still happens.
		vtest.ExpectContains(t, in.Tree(), ">x</textarea>")
	}
}

func TestInputEmitsChange(t *testing.T) {
	b := bus.New()
	rec := vtest.NewRecorder[string]()
	_, _ = bus.Subscribe(b, InputChanged, func(c Change) { rec.Record(c.Value) })

	in := New(WithBus(b), WithID("bio"), WithMeasurer(fixed(20)))
	var local []string
	in.OnChange(func(v string) { local = append(local, v) })
	_ = in.Mount(Props{AutoResize: true})

	in.Input("h")
	in.Input("hi")

	rec.Expect(t, "h", "hi")
	if len(local) != 2 || in.Value() != "hi" {
		t.Errorf("local = %v value = %q", local, in.Value())
	}
}

func TestFocusBlur(t *testing.T) {
	b := bus.New()
	rec := vtest.NewRecorder[string]()
	_, _ = b.On(Focused.Name, func(any) { rec.Record("focus") })
	_, _ = b.On(Blurred.Name, func(any) { rec.Record("blur") })

	in := New(WithBus(b))
	_ = in.Mount(Props{AutoFocus: true})
	in.Focus()
	in.Blur()
	in.Blur()

	rec.Expect(t, "focus", "blur")
	vtest.ExpectContains(t, in.Tree(), " autofocus")
}

func TestRenderAttributes(t *testing.T) {
	in := New(WithID("msg"))
	_ = in.Mount(Props{AutoResize: true, Placeholder: "Your message", Cols: 40, Disabled: true})

	tree := in.Tree()
	vtest.ExpectAttribute(t, tree, "rows", "1")
	vtest.ExpectAttribute(t, tree, "cols", "40")
	vtest.ExpectAttribute(t, tree, "aria-label", "Your message")
	vtest.ExpectAttribute(t, tree, "class", "internal-textarea")
	vtest.ExpectContains(t, tree, " disabled")

	_ = in.Update(Props{Rows: 4, AriaLabel: "Bio"})
	vtest.ExpectAttribute(t, in.Tree(), "rows", "4")
	vtest.ExpectAttribute(t, in.Tree(), "aria-label", "Bio")
	vtest.ExpectNotContains(t, in.Tree(), "disabled")
}

func TestDefaultAriaLabel(t *testing.T) {
	in := New()
	_ = in.Mount(Props{})
	vtest.ExpectAttribute(t, in.Tree(), "aria-label", "textarea")
	vtest.ExpectNotContains(t, in.Tree(), "rows=")
}

func TestViewportResizeRewraps(t *testing.T) {
	host := NewMemoryHost()
	in := New(WithHost(host))
	_ = in.Mount(Props{AutoResize: true, Value: "aaaa bbbb cccc", Style: Style{Width: 200}})
	if host.Height() != 13 {
		t.Fatalf("height = %v, want 13", host.Height())
	}

	in.OnViewportResize(70)
	if host.Height() != 26 {
		t.Errorf("height after resize = %v, want 26", host.Height())
	}
}

func TestUpdateBeforeMount(t *testing.T) {
	in := New()
	if err := in.Update(Props{}); errors.Code(err) != "E002" {
		t.Errorf("err = %v", err)
	}
}

func TestUnmountDropsListeners(t *testing.T) {
	b := bus.New()
	in := New(WithBus(b), WithID("bio"))
	_ = in.Mount(Props{})
	_, _ = b.ListenBy(in.ID(), InputChanged.Name, func(any) {})

	in.Unmount()
	if b.ListenerCount(InputChanged.Name) != 0 {
		t.Error("unmount should drop listeners owned by the input")
	}
	if in.Tree() != nil {
		t.Error("tree should be cleared")
	}
}
