// Package bus provides the synchronous publish/subscribe event bus that
// litkit widgets use to talk to each other.
//
// Listeners are registered per event name and invoked in registration
// order when the event is emitted:
//
//	b := bus.New()
//	l, err := b.On("viewTypeChange", func(payload any) {
//	    change := payload.(litkit.ViewTypeChange)
//	    ...
//	})
//	b.Emit("viewTypeChange", litkit.ViewTypeChange{Current: "grid"})
//	l.Unregister()
//
// # Owner Tags
//
// Listeners registered with ListenBy carry an owner tag. OffByOwner removes
// every listener with that tag across all events, which is how a widget
// drops its subscriptions on unmount.
//
// # Dispatch Semantics
//
// Emit takes a snapshot of the listener list when it starts. A listener
// added during dispatch is not called in that pass. A listener removed
// during dispatch is skipped if it has not been visited yet. A panicking
// handler is recovered and logged, and dispatch continues with the next
// listener.
//
// # Typed Topics
//
// Topic binds an event name to a payload type:
//
//	var Saved = bus.NewTopic[SaveResult]("form:saved")
//	bus.Subscribe(b, Saved, func(r SaveResult) { ... })
//	bus.Publish(b, Saved, SaveResult{OK: true})
package bus
