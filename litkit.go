// Package litkit wires the litkit widgets into one application context.
//
// An App is constructed once per page and handed to the code that builds
// widgets. It owns the event bus, the toast manager, the view-type
// manager and the readiness latch, so independent widgets share them
// without package-level singletons:
//
//	app := litkit.New(litkit.Config{Logger: logger})
//	defer app.Close()
//
//	app.ViewTypes.SetViewType("compact")
//	app.Toasts.Success("Changes saved!")
//
//	d := app.NewDialog(modal)
//	_ = d.Mount(dialog.Props{Title: "Details"})
package litkit

// Version is the litkit release.
const Version = "0.3.0"
