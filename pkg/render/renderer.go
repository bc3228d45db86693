package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/vango-dev/litkit/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Textarea content is never reindented.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string

	// OmitHIDs suppresses data-hid attributes (static export).
	OmitHIDs bool
}

// Renderer serializes VNode trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	ew := &errWriter{w: w}
	r.renderNode(ew, node, 0)
	return ew.err
}

// errWriter remembers the first write error so the tree walk stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) WriteString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (r *Renderer) renderNode(w *errWriter, node *vdom.VNode, depth int) {
	if node == nil {
		return
	}

	switch node.Kind {
	case vdom.KindElement:
		r.renderElement(w, node, depth)
	case vdom.KindText:
		w.WriteString(EscapeHTML(node.Text))
	case vdom.KindFragment:
		for _, child := range node.Children {
			r.renderNode(w, child, depth)
		}
	case vdom.KindRaw:
		w.WriteString(node.Text)
	default:
		if w.err == nil {
			w.err = fmt.Errorf("unknown node kind: %d", node.Kind)
		}
	}
}

func (r *Renderer) renderElement(w *errWriter, node *vdom.VNode, depth int) {
	tag := node.Tag
	pretty := r.config.Pretty

	if pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	w.WriteString("<" + tag)
	r.renderAttributes(w, node)
	if node.HID != "" && !r.config.OmitHIDs {
		w.WriteString(` data-hid="` + EscapeAttr(node.HID) + `"`)
	}
	w.WriteString(">")

	if isVoidElement(tag) {
		if pretty {
			w.WriteString("\n")
		}
		return
	}

	block := pretty && hasElementChildren(node) && !isInlineElement(tag)
	if block {
		w.WriteString("\n")
	}
	for _, child := range node.Children {
		if pretty && tag == "textarea" {
			r.renderNode(w, child, 0)
			continue
		}
		r.renderNode(w, child, depth+1)
	}
	if block {
		r.writeIndent(w, depth)
	}

	w.WriteString("</" + tag + ">")
	if pretty {
		w.WriteString("\n")
	}
}

// renderAttributes renders attributes in sorted order for deterministic
// output.
func (r *Renderer) renderAttributes(w *errWriter, node *vdom.VNode) {
	if len(node.Props) == 0 {
		return
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]
		if value == nil {
			continue
		}

		if IsBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					w.WriteString(" " + key)
				}
				continue
			}
		}

		w.WriteString(" " + key + `="` + EscapeAttr(vdom.PropToString(value)) + `"`)
	}
}

func hasElementChildren(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c != nil && c.Kind == vdom.KindElement {
			return true
		}
	}
	return false
}

func (r *Renderer) writeIndent(w *errWriter, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString(r.config.Indent)
	}
}
