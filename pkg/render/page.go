package render

import (
	"io"

	"github.com/vango-dev/litkit/pkg/vdom"
)

// PageData contains everything needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Description fills the description meta tag when set.
	Description string

	// Styles contains inline CSS blocks appended to the head.
	Styles []string

	// Lang is the language attribute for the html element.
	// Defaults to "en".
	Lang string
}

// RenderPage renders a complete HTML5 document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.MetaName("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.If(page.Description != "", vdom.Meta(vdom.MetaName("description"), vdom.Content(page.Description))),
		vdom.Title(vdom.Text(page.Title)),
		vdom.Range(page.Styles, func(css string, _ int) *vdom.VNode {
			return vdom.Style(vdom.Raw(css))
		}),
	)

	body := vdom.Body(page.Body)
	doc := vdom.Html(vdom.Attr{Key: "lang", Value: lang}, head, body)

	ew := &errWriter{w: w}
	ew.WriteString("<!DOCTYPE html>")
	if r.config.Pretty {
		ew.WriteString("\n")
	}
	if ew.err != nil {
		return ew.err
	}
	return r.RenderToWriter(w, doc)
}
