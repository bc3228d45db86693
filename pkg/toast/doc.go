// Package toast provides transient feedback notifications for litkit pages.
//
// A Manager owns the active toasts, newest first. Each toast removes
// itself after Lifetime unless it is dismissed earlier:
//
//	m := toast.New(toast.WithBus(app.Bus))
//	m.Success("Thanks for signing up!")
//	m.Error("Something went wrong")
//
// # Rendering
//
// The manager renders into a root container created on first use:
//
//	<div id="toast-manager-container" class="toast-manager-container">
//	    <div class="toast toast--success is-visible">
//	        <div class="toast__icon-wrapper">...</div>
//	        <div class="toast__message">Saved</div>
//	        <button class="toast__close-button">×</button>
//	    </div>
//	</div>
//
// A new toast is rendered hidden and gains the is-visible class after
// EnterDelay so the stylesheet can animate it in. A removed toast leaves
// the active list at once, loses is-visible, and is detached from the
// container after ExitDelay.
//
// # Events
//
// With a bus attached the manager emits EventShown and EventRemoved with
// the *Toast as payload.
package toast
