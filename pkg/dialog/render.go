package dialog

import "github.com/vango-dev/litkit/pkg/vdom"

// render re-renders the chrome. It reports whether the surface changed.
func (d *Dialog) render() (bool, error) {
	d.mu.Lock()
	tree := d.chrome()
	d.mu.Unlock()

	return d.view.Render(tree)
}

// chrome builds the dialog tree from the presentation state. Caller holds
// d.mu.
func (d *Dialog) chrome() *vdom.VNode {
	s := d.state

	var closeButton *vdom.VNode
	if s.Closable {
		closeButton = vdom.Button(
			vdom.Type("button"),
			vdom.Class("dialog-close-button"),
			vdom.Part("close-button"),
			vdom.AriaLabel("Close dialog"),
			vdom.Text("✕"),
		)
	}

	return vdom.Dialog(
		vdom.ID(d.id),
		vdom.Class("dialog"),
		vdom.Part("dialog"),
		vdom.AriaModal(true),
		vdom.AttrIf(s.Width != "", vdom.StyleAttr(vdom.Styles("--dynamic-dialog-width", s.Width))),
		vdom.Div(vdom.Class("dialog-header"), vdom.Part("header"),
			vdom.Div(vdom.Class("dialog-title"), vdom.Part("title"), vdom.Text(s.Title)),
			closeButton,
		),
		vdom.Div(vdom.Class("dialog-body"), vdom.Part("body"),
			vdom.Slot(d.body),
		),
		vdom.Div(vdom.Class("dialog-footer"), vdom.Part("footer"),
			vdom.Slot(vdom.Name("footer"), d.footer),
		),
	)
}
