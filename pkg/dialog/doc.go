// Package dialog implements a modal dialog widget.
//
// A Dialog has two states, closed and open, and starts closed. The
// blocking presentation itself belongs to the platform and is reached
// through the Modal interface; the Dialog keeps its own open flag in step
// with Modal.IsOpen after every transition.
//
//	d := dialog.New(modal, dialog.WithBus(app.Bus))
//	d.Mount(dialog.Props{Title: "Join us"})
//	d.Show()  // opened
//	d.Show()  // no-op
//	d.Close() // closed
//
// Presentation props (title, closable, width) never cause a transition.
// They re-render the dialog chrome only when the effective value changes.
//
// When Closable is false, RequestDismiss refuses backdrop clicks, the
// escape gesture and the close button. Close always works.
package dialog
