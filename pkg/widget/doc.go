// Package widget defines the contracts shared by every litkit widget.
//
// A widget has an explicit lifecycle instead of implicit element callbacks:
//
//	Mount(props)   attach to a surface and render the initial tree
//	Update(props)  apply typed property changes
//	Unmount()      release timers and listeners, clear the surface
//
// Widgets never touch a concrete rendering technology. They build a
// vdom.VNode tree for their effective state and hand it to a View, which
// diffs it against the previous tree and forwards only the resulting patches
// to a Surface. When nothing changed, the surface is not touched at all.
//
// The package also holds the geometry types used by positioning code and
// the Clock abstraction used for timed behavior.
package widget
