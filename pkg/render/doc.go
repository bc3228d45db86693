// Package render serializes litkit VNode trees to HTML.
//
// It handles escaping of text and attribute values, void elements, boolean
// attributes, deterministic attribute order and optional pretty printing.
// Elements carry a data-hid attribute when they have a surface address, so
// a page rendered on the server can be patched later.
//
//	r := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := r.RenderToString(node)
//
// RenderPage wraps a body in a complete HTML5 document.
package render
