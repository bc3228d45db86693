// Package vtest provides testing helpers for litkit widgets.
//
// The vtest package removes the timing and rendering boilerplate from
// widget tests: a fake clock that fires timers only when advanced, a
// recorder that captures emitted payloads, and render assertions.
//
// # Quick Start
//
//	func TestToastExpires(t *testing.T) {
//	    clock := vtest.NewFakeClock(time.Unix(0, 0))
//	    m := toast.New(toast.WithClock(clock))
//	    m.Show(toast.Options{Message: "Saved"})
//
//	    clock.Advance(3 * time.Second)
//	    if m.Len() != 0 {
//	        t.Error("toast should have expired")
//	    }
//	}
//
// # Fake Clock
//
// FakeClock implements widget.Clock. Timers scheduled with AfterFunc run
// synchronously inside Advance, in deadline order, on the calling
// goroutine:
//
//	clock.Advance(100 * time.Millisecond)
//
// # Recorder
//
// Recorder captures payloads handed to a callback so tests can assert on
// order and count:
//
//	rec := vtest.NewRecorder[string]()
//	b.On("ping", func(p any) { rec.Record(p.(string)) })
//	b.Emit("ping", "a")
//	rec.Expect(t, "a")
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, node, "toast--error")
//	vtest.ExpectNotContains(t, node, "is-visible")
package vtest
