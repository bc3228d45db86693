package widget

import (
	"errors"
	"strings"
	"testing"

	kiterrors "github.com/vango-dev/litkit/internal/errors"
	"github.com/vango-dev/litkit/pkg/vdom"
)

func TestBoolOrStringOr(t *testing.T) {
	if !BoolOr(nil, true) {
		t.Error("BoolOr(nil, true) should be true")
	}
	if BoolOr(Bool(false), true) {
		t.Error("BoolOr(false, true) should be false")
	}
	if got := StringOr(nil, "Dialog"); got != "Dialog" {
		t.Errorf("StringOr(nil) = %q", got)
	}
	if got := StringOr(String(""), "Dialog"); got != "" {
		t.Errorf("StringOr(\"\") = %q, want empty", got)
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 400, Y: 690, Width: 200, Height: 10}
	if r.Bottom() != 700 || r.CenterX() != 500 || r.Right() != 600 || r.CenterY() != 695 {
		t.Errorf("unexpected edges for %+v", r)
	}
	vp := Viewport{Width: 1000, Height: 800}
	if !vp.Contains(r) {
		t.Error("viewport should contain rect")
	}
	if vp.Contains(Rect{X: 900, Y: 0, Width: 200, Height: 10}) {
		t.Error("viewport should not contain overflowing rect")
	}
}

func counter(n int) *vdom.VNode {
	return vdom.Div(vdom.ID("c"), vdom.Span(vdom.Textf("%d", n)))
}

func TestViewFirstRenderReplaces(t *testing.T) {
	s := NewMemorySurface()
	v := NewView(s, "t")

	changed, err := v.Render(counter(1))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !changed {
		t.Error("first render should change the surface")
	}
	replaces, applies, _ := s.Stats()
	if replaces != 1 || applies != 0 {
		t.Errorf("stats = %d replaces, %d applies", replaces, applies)
	}
	if got := s.HTML(); !strings.Contains(got, "<span") || !strings.Contains(got, ">1</span>") {
		t.Errorf("HTML = %q", got)
	}
}

func TestViewSkipsUnchangedTree(t *testing.T) {
	s := NewMemorySurface()
	v := NewView(s, "t")

	_, _ = v.Render(counter(1))
	changed, err := v.Render(counter(1))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if changed {
		t.Error("identical tree should not touch the surface")
	}
	if _, applies, _ := s.Stats(); applies != 0 {
		t.Errorf("applies = %d, want 0", applies)
	}
}

func TestViewAppliesPatches(t *testing.T) {
	s := NewMemorySurface()
	v := NewView(s, "t")

	_, _ = v.Render(counter(1))
	changed, err := v.Render(counter(2))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !changed {
		t.Fatal("changed text should touch the surface")
	}
	if got := s.Root().TextContent(); got != "2" {
		t.Errorf("text = %q, want 2", got)
	}
	if _, applies, patches := s.Stats(); applies != 1 || patches != 1 {
		t.Errorf("applies=%d patches=%d, want 1/1", applies, patches)
	}
}

func TestViewKeyedInsertAndRemove(t *testing.T) {
	list := func(keys ...string) *vdom.VNode {
		children := make([]any, 0, len(keys)+1)
		children = append(children, vdom.ID("list"))
		for _, k := range keys {
			children = append(children, vdom.Div(vdom.Key(k), vdom.Text(k)))
		}
		return vdom.Div(children...)
	}

	s := NewMemorySurface()
	v := NewView(s, "t")
	if _, err := v.Render(list("a")); err != nil {
		t.Fatal(err)
	}
	if _, err := v.Render(list("b", "a")); err != nil {
		t.Fatal(err)
	}
	if got := s.Root().TextContent(); got != "ba" {
		t.Errorf("after prepend text = %q, want ba", got)
	}
	if _, err := v.Render(list("b")); err != nil {
		t.Fatal(err)
	}
	if got := s.Root().TextContent(); got != "b" {
		t.Errorf("after remove text = %q, want b", got)
	}
	if _, err := v.Render(list("c", "b")); err != nil {
		t.Fatal(err)
	}
	if got := s.Root().TextContent(); got != "cb" {
		t.Errorf("after second prepend text = %q, want cb", got)
	}
}

func TestViewBooleanAttr(t *testing.T) {
	s := NewMemorySurface()
	v := NewView(s, "t")

	_, _ = v.Render(vdom.Dialog(vdom.ID("d")))
	_, _ = v.Render(vdom.Dialog(vdom.ID("d"), vdom.Open(true)))
	if got := s.HTML(); !strings.Contains(got, " open") {
		t.Errorf("HTML = %q, want open attribute", got)
	}
	_, _ = v.Render(vdom.Dialog(vdom.ID("d")))
	if got := s.HTML(); strings.Contains(got, " open") {
		t.Errorf("HTML = %q, want no open attribute", got)
	}
}

type failingSurface struct {
	*MemorySurface
}

func (failingSurface) Apply([]vdom.Patch) error { return errors.New("detached") }

func TestViewApplyFailureKeepsPrevious(t *testing.T) {
	s := failingSurface{NewMemorySurface()}
	v := NewView(s, "t")

	_, _ = v.Render(counter(1))
	_, err := v.Render(counter(2))
	if err == nil {
		t.Fatal("expected error")
	}
	if kiterrors.Code(err) != "E040" {
		t.Errorf("code = %q, want E040", kiterrors.Code(err))
	}
	if got := v.Current().TextContent(); got != "1" {
		t.Errorf("current = %q, want previous tree", got)
	}
}

func TestViewWithoutSurface(t *testing.T) {
	v := NewView(nil, "t")
	if _, err := v.Render(counter(1)); kiterrors.Code(err) != "E002" {
		t.Errorf("err = %v, want E002", err)
	}
}

func TestViewClear(t *testing.T) {
	s := NewMemorySurface()
	v := NewView(s, "t")

	_, _ = v.Render(counter(1))
	if err := v.Clear(); err != nil {
		t.Fatal(err)
	}
	if s.Root() != nil || s.HTML() != "" {
		t.Error("surface should be empty after Clear")
	}
	changed, _ := v.Render(counter(1))
	if !changed {
		t.Error("render after Clear should replace")
	}
}

func TestMemorySurfaceApplyBeforeReplace(t *testing.T) {
	s := NewMemorySurface()
	if err := s.Apply(nil); err == nil {
		t.Error("expected error applying to an empty surface")
	}
}

func TestMemorySurfaceUnknownNode(t *testing.T) {
	s := NewMemorySurface()
	root := vdom.Div()
	root.HID = "r"
	_ = s.Replace(root)
	err := s.Apply([]vdom.Patch{{Op: vdom.PatchSetAttr, HID: "missing", Key: "id", Value: "x"}})
	if err == nil {
		t.Error("expected error for unknown node")
	}
}
