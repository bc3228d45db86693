package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Global attributes

// ID sets the element id.
func ID(id string) Attr { return attr("id", id) }

// Class joins the given class names. Empty names are dropped.
func Class(classes ...string) Attr {
	kept := classes[:0:0]
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			kept = append(kept, c)
		}
	}
	return attr("class", strings.Join(kept, " "))
}

// StyleAttr sets the inline style.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data sets a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Part sets the shadow part name.
func Part(name string) Attr { return attr("part", name) }

// Role sets the ARIA role.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets aria-label.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaModal sets aria-modal.
func AriaModal(modal bool) Attr { return attr("aria-modal", modal) }

// AriaLive sets aria-live.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// Hidden marks the element hidden.
func Hidden() Attr { return attr("hidden", true) }

// Form attributes

func Type(t string) Attr            { return attr("type", t) }
func Name(name string) Attr         { return attr("name", name) }
func Placeholder(text string) Attr  { return attr("placeholder", text) }
func Disabled(disabled bool) Attr   { return attr("disabled", disabled) }
func ReadOnly(readonly bool) Attr   { return attr("readonly", readonly) }
func Autofocus(autofocus bool) Attr { return attr("autofocus", autofocus) }
func Rows(n int) Attr               { return attr("rows", n) }
func Cols(n int) Attr               { return attr("cols", n) }
func Open(open bool) Attr           { return attr("open", open) }
func Charset(charset string) Attr   { return attr("charset", charset) }
func Content(content string) Attr   { return attr("content", content) }
func MetaName(name string) Attr     { return attr("name", name) }

// SVG attributes

func Width(w string) Attr       { return attr("width", w) }
func Height(h string) Attr      { return attr("height", h) }
func ViewBox(box string) Attr   { return attr("viewBox", box) }
func Fill(fill string) Attr     { return attr("fill", fill) }
func FillRule(rule string) Attr { return attr("fill-rule", rule) }
func D(path string) Attr        { return attr("d", path) }

// Key sets the reconciliation key.
func Key(key string) Attr { return attr("key", key) }

// AttrIf returns a when cond is true, otherwise an empty attribute.
func AttrIf(cond bool, a Attr) Attr {
	if !cond {
		return Attr{}
	}
	return a
}

// Styles builds an inline style string from ordered property/value pairs,
// skipping empty values.
func Styles(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(';')
		}
		b.WriteString(pairs[i])
		b.WriteByte(':')
		b.WriteString(pairs[i+1])
	}
	return b.String()
}
