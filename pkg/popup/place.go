package popup

import "github.com/vango-dev/litkit/pkg/widget"

// Defaults for Input.Gap and Input.Margin.
const (
	DefaultGap    = 10.0
	DefaultMargin = 10.0
)

// Side is the edge of the anchor the popup is placed against.
type Side string

const (
	SideBottom Side = "bottom"
	SideTop    Side = "top"
)

// Input is everything Place needs.
type Input struct {
	Viewport widget.Viewport
	Size     widget.Size

	// Anchor is the anchor's bounding rect, if any.
	Anchor *widget.Rect
	// Pointer is the pointer position of the opening event, if any.
	Pointer *widget.Point

	// Gap separates the popup from its anchor. Zero means DefaultGap.
	Gap float64
	// Margin is the minimum horizontal distance to the viewport edges.
	// Zero means DefaultMargin.
	Margin float64
}

// Placement is the computed position in viewport coordinates.
type Placement struct {
	Top  float64
	Left float64
	Side Side
}

// Rect returns the popup's box at this placement.
func (p Placement) Rect(size widget.Size) widget.Rect {
	return widget.Rect{X: p.Left, Y: p.Top, Width: size.Width, Height: size.Height}
}

// Place computes where a popup goes. The anchor wins for vertical
// placement, the pointer wins for horizontal placement.
func Place(in Input) Placement {
	gap, margin := in.Gap, in.Margin
	if gap == 0 {
		gap = DefaultGap
	}
	if margin == 0 {
		margin = DefaultMargin
	}
	vw, vh := in.Viewport.Width, in.Viewport.Height
	w, h := in.Size.Width, in.Size.Height

	centerTop := vh/2 - h/2
	if in.Anchor == nil && in.Pointer == nil {
		return Placement{Top: centerTop, Left: vw/2 - w/2, Side: SideBottom}
	}

	var top float64
	if in.Anchor != nil {
		top = in.Anchor.Bottom() + gap
	} else {
		top = in.Pointer.Y + gap
	}

	var left float64
	if in.Pointer != nil {
		left = in.Pointer.X - w/2
	} else {
		left = in.Anchor.CenterX() - w/2
	}
	left = clamp(left, margin, vw-w-margin)

	side := SideBottom
	if top+h > vh {
		side = SideTop
		if in.Anchor != nil {
			top = in.Anchor.Top() - h - gap
		} else {
			top = in.Pointer.Y - h - gap
		}
		if top < 0 {
			return Placement{Top: centerTop, Left: left, Side: SideBottom}
		}
	}

	// An anchor scrolled past either edge leaves no side that fits.
	if top < 0 || top+h > vh {
		return Placement{Top: centerTop, Left: left, Side: SideBottom}
	}
	return Placement{Top: top, Left: left, Side: side}
}

// clamp bounds v to [lo, hi]. When the range is empty lo wins, keeping the
// popup's leading edge on screen.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
