package bus

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestOnNilHandler(t *testing.T) {
	b := New()
	l, err := b.On("x", nil)
	if l != nil {
		t.Error("expected nil listener")
	}
	if !errors.Is(err, ErrInvalidHandler) {
		t.Fatalf("err = %v, want ErrInvalidHandler", err)
	}
	if b.ListenerCount("x") != 0 {
		t.Error("nil handler must not be registered")
	}
}

func TestEmitNoListeners(t *testing.T) {
	b := New()
	if b.Emit("nothing", nil) {
		t.Error("Emit with no listeners should return false")
	}
}

func TestEmitRegistrationOrder(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		b := New()
		var got []int
		for i := 0; i < n; i++ {
			i := i
			if _, err := b.On("tick", func(any) { got = append(got, i) }); err != nil {
				t.Fatal(err)
			}
		}
		if !b.Emit("tick", nil) {
			t.Fatal("Emit returned false")
		}
		if len(got) != n {
			t.Fatalf("n=%d: invoked %d handlers", n, len(got))
		}
		for i, v := range got {
			if v != i {
				t.Fatalf("n=%d: order %v", n, got)
			}
		}
	}
}

func TestEmitPassesPayload(t *testing.T) {
	b := New()
	var got any
	_, _ = b.On("change", func(p any) { got = p })
	b.Emit("change", "grid")
	if got != "grid" {
		t.Errorf("payload = %v", got)
	}
}

func TestOffIdempotent(t *testing.T) {
	b := New()
	calls := 0
	l1, _ := b.On("e", func(any) { calls++ })
	_, _ = b.On("e", func(any) { calls += 10 })

	b.Off("e", l1)
	b.Off("e", l1)
	l1.Unregister()

	if !l1.Destroyed() {
		t.Error("listener should be destroyed")
	}
	if b.ListenerCount("e") != 1 {
		t.Errorf("ListenerCount = %d, want 1", b.ListenerCount("e"))
	}
	b.Emit("e", nil)
	if calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}
}

func TestOffAllForEvent(t *testing.T) {
	b := New()
	l1, _ := b.On("e", func(any) {})
	l2, _ := b.On("e", func(any) {})
	l3, _ := b.On("other", func(any) {})

	b.Off("e", nil)
	if !l1.Destroyed() || !l2.Destroyed() {
		t.Error("all listeners for e should be destroyed")
	}
	if l3.Destroyed() {
		t.Error("listener for other event must survive")
	}
	if b.Emit("e", nil) {
		t.Error("Emit after Off(nil) should return false")
	}
}

func TestOffForeignListener(t *testing.T) {
	a, b := New(), New()
	l, _ := a.On("e", func(any) {})
	b.Off("e", l)
	if l.Destroyed() || a.ListenerCount("e") != 1 {
		t.Error("another bus must not remove the listener")
	}
}

func TestOffWrongEvent(t *testing.T) {
	b := New()
	delivered := 0
	l, _ := b.On("a", func(any) { delivered++ })

	b.Off("b", l)

	if l.Destroyed() {
		t.Error("Off with another event name must not destroy the listener")
	}
	if n := b.ListenerCount("a"); n != 1 {
		t.Errorf("ListenerCount(a) = %d, want 1", n)
	}
	if !b.Emit("a", nil) || delivered != 1 {
		t.Errorf("Emit(a) delivered %d, want 1", delivered)
	}
}

func TestOffByOwner(t *testing.T) {
	b := New()
	var got []string
	record := func(s string) Handler { return func(any) { got = append(got, s) } }

	d1, _ := b.ListenBy("dialog-1", "open", record("d1-open"))
	d2, _ := b.ListenBy("dialog-1", "close", record("d1-close"))
	_, _ = b.ListenBy("dialog-2", "open", record("d2-open"))
	_, _ = b.On("close", record("plain-close"))

	if n := b.OffByOwner("dialog-1"); n != 2 {
		t.Errorf("removed %d, want 2", n)
	}
	if !d1.Destroyed() || !d2.Destroyed() {
		t.Error("tagged listeners should be destroyed")
	}

	b.Emit("open", nil)
	b.Emit("close", nil)
	want := []string{"d2-open", "plain-close"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if n := b.OffByOwner(""); n != 0 {
		t.Errorf("empty owner removed %d", n)
	}
}

func TestDestroyAll(t *testing.T) {
	b := New()
	l1, _ := b.On("a", func(any) {})
	l2, _ := b.On("b", func(any) {})
	b.DestroyAll()

	if !l1.Destroyed() || !l2.Destroyed() {
		t.Error("all listeners should be destroyed")
	}
	if len(b.Events()) != 0 {
		t.Errorf("Events = %v", b.Events())
	}
}

func TestEmitSnapshotSkipsRemovedLater(t *testing.T) {
	b := New()
	var got []string
	var second *Listener
	_, _ = b.On("e", func(any) {
		got = append(got, "first")
		second.Unregister()
		_, _ = b.On("e", func(any) { got = append(got, "late") })
	})
	second, _ = b.On("e", func(any) { got = append(got, "second") })
	_, _ = b.On("e", func(any) { got = append(got, "third") })

	b.Emit("e", nil)
	want := []string{"first", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = nil
	b.Emit("e", nil)
	want = []string{"first", "third", "late"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("second pass got %v, want %v", got, want)
	}
}

func TestEmitSelfUnregister(t *testing.T) {
	b := New()
	calls := 0
	var l *Listener
	l, _ = b.On("e", func(any) {
		calls++
		l.Unregister()
	})
	b.Emit("e", nil)
	b.Emit("e", nil)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestOnce(t *testing.T) {
	b := New()
	calls := 0
	l, err := b.Once("ready", func(any) { calls++ })
	if err != nil {
		t.Fatal(err)
	}
	b.Emit("ready", nil)
	b.Emit("ready", nil)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if !l.Destroyed() {
		t.Error("once listener should be destroyed after delivery")
	}
	if _, err := b.Once("ready", nil); !errors.Is(err, ErrInvalidHandler) {
		t.Errorf("Once(nil) err = %v", err)
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	emits  []EmitInfo
	panics []string
}

func (o *recordingObserver) ObserveEmit(info EmitInfo) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.emits = append(o.emits, info)
}

func (o *recordingObserver) ObservePanic(event string, _ any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.panics = append(o.panics, event)
}

func TestHandlerPanicIsolated(t *testing.T) {
	var logs bytes.Buffer
	obs := &recordingObserver{}
	b := New(
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		WithObserver(obs),
	)

	var got []string
	_, _ = b.On("e", func(any) { got = append(got, "a") })
	_, _ = b.On("e", func(any) { panic("boom") })
	_, _ = b.On("e", func(any) { got = append(got, "c") })

	if !b.Emit("e", nil) {
		t.Fatal("Emit returned false")
	}
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("got %v", got)
	}
	if !strings.Contains(logs.String(), "listener panic") || !strings.Contains(logs.String(), "boom") {
		t.Errorf("panic not logged: %s", logs.String())
	}
	if len(obs.panics) != 1 || obs.panics[0] != "e" {
		t.Errorf("observed panics = %v", obs.panics)
	}
	if len(obs.emits) != 1 {
		t.Fatalf("observed emits = %d", len(obs.emits))
	}
	info := obs.emits[0]
	if info.Listeners != 3 || info.Delivered != 3 || info.Panics != 1 {
		t.Errorf("info = %+v", info)
	}
}

func TestEventsSorted(t *testing.T) {
	b := New()
	_, _ = b.On("toast:shown", func(any) {})
	_, _ = b.On("dialog:opened", func(any) {})
	_, _ = b.On("viewTypeChange", func(any) {})

	want := []string{"dialog:opened", "toast:shown", "viewTypeChange"}
	if got := b.Events(); !reflect.DeepEqual(got, want) {
		t.Errorf("Events = %v", got)
	}
}

func TestConcurrentEmit(t *testing.T) {
	b := New()
	var mu sync.Mutex
	count := 0
	_, _ = b.On("e", func(any) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Emit("e", nil)
			l, _ := b.On("noise", func(any) {})
			l.Unregister()
		}()
	}
	wg.Wait()
	if count != 50 {
		t.Errorf("count = %d, want 50", count)
	}
}
