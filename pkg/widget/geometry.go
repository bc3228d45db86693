package widget

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned box in viewport coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Viewport is the visible area of the host page.
type Viewport struct {
	Width, Height float64
}

// Contains reports whether r lies fully inside the viewport.
func (v Viewport) Contains(r Rect) bool {
	return r.Left() >= 0 && r.Top() >= 0 && r.Right() <= v.Width && r.Bottom() <= v.Height
}

// Element is anything with an on-screen bounding box: the anchor of a
// popup, the target of a pointer event.
type Element interface {
	BoundingRect() Rect
}

// StaticElement is an Element with a fixed box.
type StaticElement Rect

// BoundingRect implements Element.
func (e StaticElement) BoundingRect() Rect { return Rect(e) }
