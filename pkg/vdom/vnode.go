package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (trusted markup only)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Key      string   // Reconciliation key
	Text     string   // For KindText and KindRaw
	HID      string   // Surface address (assigned before apply)
}

// Props holds element attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attr returns the value of an attribute and whether it is set.
func (v *VNode) Attr(key string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	val, ok := v.Props[key]
	return val, ok
}

// Find returns the first element in depth-first order for which match
// returns true.
func (v *VNode) Find(match func(*VNode) bool) *VNode {
	if v == nil {
		return nil
	}
	if v.Kind == KindElement && match(v) {
		return v
	}
	for _, c := range v.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// TextContent returns the concatenated text of the subtree.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	s := ""
	for _, c := range v.Children {
		s += c.TextContent()
	}
	return s
}
