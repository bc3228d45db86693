package litkit

import (
	"testing"

	"github.com/vango-dev/litkit/pkg/bus"
	"github.com/vango-dev/litkit/pkg/vtest"
)

func TestSetViewType(t *testing.T) {
	b := bus.New()
	m := NewViewTypeManager(b)
	rec := vtest.NewRecorder[ViewTypeChangeEvent]()
	if _, err := bus.Subscribe(b, ViewTypeChange, rec.Func()); err != nil {
		t.Fatal(err)
	}

	m.SetViewType("compact")
	m.SetViewType("compact")
	m.SetViewType("focus")

	rec.Expect(t,
		ViewTypeChangeEvent{Previous: "default", Current: "compact"},
		ViewTypeChangeEvent{Previous: "compact", Current: "compact"},
		ViewTypeChangeEvent{Previous: "compact", Current: "focus"},
	)
	if m.Current() != "focus" || m.Previous() != "compact" {
		t.Errorf("Current/Previous = %q/%q", m.Current(), m.Previous())
	}
}

func TestSetViewTypeWithoutBus(t *testing.T) {
	m := NewViewTypeManager(nil)
	m.SetViewType("wide")
	if m.Current() != "wide" || m.Previous() != ViewTypeDefault {
		t.Errorf("Current/Previous = %q/%q", m.Current(), m.Previous())
	}
}
