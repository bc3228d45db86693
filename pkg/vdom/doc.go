// Package vdom provides the virtual DOM used by litkit widgets.
//
// A widget describes its rendered surface as a VNode tree. When the widget's
// effective state changes it builds a new tree, and Diff produces the
// minimal list of Patch operations that turn the previous tree into the new
// one. An empty patch list means the surface is already up to date, so
// widgets skip the re-render entirely.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("toast", "toast--success"), Key(id),
//	    Div(Class("toast__message"), Text(message)),
//	)
//
// # Diffing
//
// Diff compares two trees by position, or by key when children carry Key
// attributes. Patches address elements by HID; AssignMissingHIDs gives every
// element an HID before the tree is applied to a surface.
package vdom
