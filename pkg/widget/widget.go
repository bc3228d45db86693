package widget

// Widget is the lifecycle capability implemented by every widget.
type Widget[P any] interface {
	// Mount attaches the widget with its initial properties.
	Mount(props P) error

	// Update applies new properties. Unchanged properties are no-ops.
	Update(props P) error

	// Unmount detaches the widget. It is safe to call more than once.
	Unmount()
}

// Bool returns a pointer to b. Optional boolean props use *bool so that an
// unset value can fall back to a default.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s.
func String(s string) *string { return &s }

// BoolOr dereferences p or returns def when p is nil.
func BoolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// StringOr dereferences p or returns def when p is nil.
func StringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
