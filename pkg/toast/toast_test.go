package toast_test

import (
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/litkit/pkg/bus"
	"github.com/vango-dev/litkit/pkg/toast"
	"github.com/vango-dev/litkit/pkg/vtest"
	"github.com/vango-dev/litkit/pkg/widget"
)

func newManager(opts ...toast.Option) (*toast.Manager, *vtest.FakeClock) {
	clock := vtest.NewFakeClock(time.Unix(1700000000, 0))
	return toast.New(append([]toast.Option{toast.WithClock(clock)}, opts...)...), clock
}

func TestShowDefaultsToSuccess(t *testing.T) {
	m, _ := newManager()
	tt := m.Show(toast.Options{Message: "Saved"})

	if tt.Type != toast.TypeSuccess {
		t.Errorf("Type = %q, want success", tt.Type)
	}
	if tt.ID == "" {
		t.Error("expected an ID")
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d", m.Len())
	}
}

func TestShowUnknownTypeFallsBackToSuccess(t *testing.T) {
	m, _ := newManager()
	tt := m.Show(toast.Options{Message: "Oops", Type: "fatal"})

	if tt.Type != toast.TypeSuccess {
		t.Errorf("Type = %q, want success", tt.Type)
	}
	vtest.ExpectNotContains(t, m.Tree(), "toast--fatal")
	vtest.ExpectContains(t, m.Tree(), "toast--success")
}

func TestActiveNewestFirst(t *testing.T) {
	m, _ := newManager()
	a := m.Success("first")
	b := m.Error("second")
	c := m.Info("third")

	got := m.Active()
	if len(got) != 3 || got[0] != c || got[1] != b || got[2] != a {
		t.Errorf("Active order wrong: %v", got)
	}
}

func TestLifetimeWindow(t *testing.T) {
	m, clock := newManager()
	tt := m.Warning("careful")

	clock.Advance(toast.Lifetime - time.Millisecond)
	if got := m.Active(); len(got) != 1 || got[0] != tt {
		t.Fatalf("toast should be active just before its lifetime ends")
	}

	clock.Advance(time.Millisecond)
	if m.Len() != 0 {
		t.Fatal("toast should be gone at T+3000ms")
	}

	clock.Advance(time.Hour)
	if m.Len() != 0 {
		t.Fatal("toast should stay gone")
	}
}

func TestLifetimeIndependentPerToast(t *testing.T) {
	m, clock := newManager()
	first := m.Success("first")
	clock.Advance(time.Second)
	second := m.Success("second")

	clock.Advance(2 * time.Second)
	if got := m.Active(); len(got) != 1 || got[0] != second {
		t.Fatalf("only the second toast should remain, got %d", len(got))
	}
	_ = first

	clock.Advance(time.Second)
	if m.Len() != 0 {
		t.Fatal("second toast should have expired")
	}
}

func TestEnterDelay(t *testing.T) {
	m, clock := newManager()
	tt := m.Success("hello")

	if tt.Visible() {
		t.Error("toast should start hidden")
	}
	vtest.ExpectNotContains(t, m.Tree(), "is-visible")

	clock.Advance(toast.EnterDelay)
	if !tt.Visible() {
		t.Error("toast should be visible after the enter delay")
	}
	vtest.ExpectContains(t, m.Tree(), "toast toast--success is-visible")
}

func TestRemoveHidesThenDetaches(t *testing.T) {
	m, clock := newManager()
	tt := m.Success("bye")
	clock.Advance(toast.EnterDelay)

	m.Remove(tt)
	if m.Len() != 0 {
		t.Error("removed toast must leave the active list immediately")
	}
	if tt.Visible() {
		t.Error("removed toast should be hidden")
	}
	vtest.ExpectContains(t, m.Tree(), "bye")
	vtest.ExpectNotContains(t, m.Tree(), "is-visible")

	clock.Advance(toast.ExitDelay)
	vtest.ExpectNotContains(t, m.Tree(), "bye")
	if clock.Pending() != 0 {
		t.Errorf("Pending timers = %d, want 0", clock.Pending())
	}
}

func TestRemoveIdempotent(t *testing.T) {
	rec := vtest.NewRecorder[toast.Reason]()
	b := bus.New()
	_, _ = b.On(toast.EventRemoved, func(p any) { rec.Record(p.(toast.Removal).Reason) })

	m, clock := newManager(toast.WithBus(b))
	tt := m.Success("x")
	m.Remove(tt)
	m.Remove(tt)
	m.Remove(nil)
	clock.Advance(toast.Lifetime)

	rec.Expect(t, toast.ReasonDismissed)
}

func TestRemoveByID(t *testing.T) {
	m, _ := newManager()
	tt := m.Info("x")
	if !m.RemoveByID(tt.ID) {
		t.Error("RemoveByID should report true")
	}
	if m.RemoveByID(tt.ID) {
		t.Error("second RemoveByID should report false")
	}
	if m.RemoveByID("missing") {
		t.Error("unknown id should report false")
	}
}

func TestClearAll(t *testing.T) {
	m, clock := newManager()
	m.Success("a")
	gone := m.Success("b")
	m.Remove(gone)
	m.Success("c")

	m.ClearAll()
	if m.Len() != 0 {
		t.Errorf("Len = %d after ClearAll", m.Len())
	}
	vtest.ExpectNotContains(t, m.Tree(), "toast__message")
	if clock.Pending() != 0 {
		t.Errorf("Pending timers = %d, want 0", clock.Pending())
	}
}

func TestBusEvents(t *testing.T) {
	b := bus.New()
	shown := vtest.NewRecorder[string]()
	removed := vtest.NewRecorder[toast.Reason]()
	_, _ = b.On(toast.EventShown, func(p any) { shown.Record(p.(*toast.Toast).Message) })
	_, _ = b.On(toast.EventRemoved, func(p any) { removed.Record(p.(toast.Removal).Reason) })

	m, clock := newManager(toast.WithBus(b))
	m.Success("one")
	m.Error("two")
	clock.Advance(toast.Lifetime)

	shown.Expect(t, "one", "two")
	removed.Expect(t, toast.ReasonExpired, toast.ReasonExpired)
}

func TestContainerCreatedLazily(t *testing.T) {
	surface := widget.NewMemorySurface()
	m, _ := newManager(toast.WithSurface(surface))

	if m.Tree() != nil {
		t.Error("no container before the first toast")
	}
	if surface.HTML() != "" {
		t.Error("surface should be empty before the first toast")
	}

	m.Error("failed")
	html := surface.HTML()
	for _, want := range []string{
		`id="toast-manager-container"`,
		"toast toast--error",
		`<div class="toast__message"`,
		"toast__close-button",
		"<svg",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("surface HTML missing %q:\n%s", want, html)
		}
	}
}

func TestRenderMessageEscaped(t *testing.T) {
	m, _ := newManager()
	m.Info("<script>")
	vtest.ExpectContains(t, m.Tree(), "&lt;script&gt;")
	vtest.ExpectNotContains(t, m.Tree(), "<svg")
}

type countingObserver struct {
	shown   map[toast.Type]int
	removed map[toast.Reason]int
}

func (o *countingObserver) ToastShown(t toast.Type) { o.shown[t]++ }
func (o *countingObserver) ToastRemoved(_ toast.Type, r toast.Reason) {
	o.removed[r]++
}

func TestObserver(t *testing.T) {
	obs := &countingObserver{shown: map[toast.Type]int{}, removed: map[toast.Reason]int{}}
	m, clock := newManager(toast.WithObserver(obs))

	a := m.Success("a")
	m.Error("b")
	m.Remove(a)
	clock.Advance(toast.Lifetime)
	m.Info("c")
	m.ClearAll()

	if obs.shown[toast.TypeSuccess] != 1 || obs.shown[toast.TypeError] != 1 || obs.shown[toast.TypeInfo] != 1 {
		t.Errorf("shown = %v", obs.shown)
	}
	if obs.removed[toast.ReasonDismissed] != 1 || obs.removed[toast.ReasonExpired] != 1 || obs.removed[toast.ReasonCleared] != 1 {
		t.Errorf("removed = %v", obs.removed)
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []toast.Type{toast.TypeSuccess, toast.TypeError, toast.TypeWarning, toast.TypeInfo} {
		if !typ.Valid() {
			t.Errorf("%q should be valid", typ)
		}
	}
	if toast.Type("fatal").Valid() {
		t.Error("unknown type should be invalid")
	}
}
