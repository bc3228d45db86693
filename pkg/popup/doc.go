// Package popup implements a floating panel anchored to an element or to
// the pointer.
//
// Placement is computed by Place, a pure function of the viewport, the
// popup size and the anchor or pointer position. The panel goes below its
// anchor when it fits, flips above when it would overflow the bottom edge,
// and falls back to the vertical center when neither fits:
//
//	p := popup.Place(popup.Input{
//	    Viewport: widget.Viewport{Width: 1000, Height: 800},
//	    Size:     widget.Size{Width: 200, Height: 150},
//	    Anchor:   &widget.Rect{X: 450, Y: 690, Width: 100, Height: 10},
//	})
//	// p == Placement{Top: 530, Left: 400, Side: SideTop}
//
// The Popup widget recomputes its placement on open, on anchor change,
// on scroll and on viewport resize while open.
package popup
