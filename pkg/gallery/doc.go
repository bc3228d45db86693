// Package gallery builds a demo page that exercises every litkit widget.
//
// The page mounts a dialog, an anchored popup, an autosizing text input
// and a pair of toasts on one App, then renders the whole thing as a
// standalone HTML document:
//
//	app := litkit.New(litkit.Config{})
//	defer app.Close()
//
//	page, err := gallery.New(app, cfg)
//	if err != nil {
//	    return err
//	}
//	return page.Render(w)
package gallery
