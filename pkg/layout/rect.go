package layout

// Rect is an absolute rectangle in pixels. X and Y locate the top-left
// corner; W and H are non-negative spans.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Area returns the rectangle's area.
func (r Rect) Area() float64 { return r.W * r.H }

// Contains reports whether the point (x, y) lies within the rectangle.
// All four edges are inclusive, so a point exactly on a border counts
// as contained.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Viewport is the drawing surface dimensions in pixels. Changing the
// viewport invalidates all resolved geometry.
type Viewport struct {
	Width, Height float64
}

// Rect returns the viewport as a rectangle positioned at the origin.
func (v Viewport) Rect() Rect {
	return Rect{W: v.Width, H: v.Height}
}
