package layout

// Anchor identifies the edge of the reference rectangle an offset is
// measured from. Horizontal anchors are left/center/right, vertical
// anchors are top/center/bottom; center is shared between both axes.
type Anchor string

// Anchor tokens as they appear in persisted documents.
const (
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
	AnchorCenter Anchor = "center"
)

// ValidX reports whether a is a legal horizontal anchor.
func (a Anchor) ValidX() bool {
	return a == AnchorLeft || a == AnchorCenter || a == AnchorRight
}

// ValidY reports whether a is a legal vertical anchor.
func (a Anchor) ValidY() bool {
	return a == AnchorTop || a == AnchorCenter || a == AnchorBottom
}

// forward converts an anchored offset to an absolute coordinate along one
// axis. origin and span describe the reference rectangle on that axis,
// size is the element's own span. The offset carries sign: a negative
// offset moves outward past the anchored edge.
func forward(a Anchor, offset, size, origin, span float64) float64 {
	switch a {
	case AnchorRight, AnchorBottom:
		return origin + span - offset - size
	case AnchorCenter:
		return origin + span/2 + offset - size/2
	default: // left, top
		return origin + offset
	}
}

// inverse recovers the anchored pixel offset from an absolute coordinate.
// It is the algebraic inverse of forward for the same anchor, so
// forward(a, inverse(a, x, ...), ...) reproduces x.
func inverse(a Anchor, abs, size, origin, span float64) float64 {
	switch a {
	case AnchorRight, AnchorBottom:
		return origin + span - abs - size
	case AnchorCenter:
		return abs - origin - span/2 + size/2
	default: // left, top
		return abs - origin
	}
}

/// referenceRect selects the rectangle a value resolves against: the
// viewport at the origin for viewport-relative units, the parent
// rectangle otherwise.
func referenceRect(u Unit, vp Viewport, parent Rect) Rect {
	if u.ViewportRelative() {
		return vp.Rect()
	}
	return parent
}

// AbsoluteX converts a horizontal offset value to an absolute x
// coordinate for an element of the given pixel width.
func AbsoluteX(v Value, a Anchor, width float64, vp Viewport, parent Rect) float64 {
	ref := referenceRect(v.Unit, vp, parent)
	return forward(a, v.Pixels(vp, ref), width, ref.X, ref.W)
}

// AbsoluteY converts a vertical offset value to an absolute y coordinate
// for an element of the given pixel height.
func AbsoluteY(v Value, a Anchor, height float64, vp Viewport, parent Rect) float64 {
	ref := referenceRect(v.Unit, vp, parent)
	return forward(a, v.Pixels(vp, ref), height, ref.Y, ref.H)
}

// OffsetX converts an absolute x coordinate back into an offset value of
// the given unit and anchor. It is the exact inverse of [AbsoluteX], which
// is what allows switching a value's unit or anchor without the element
// visually moving.
func OffsetX(abs float64, a Anchor, u Unit, width float64, vp Viewport, parent Rect) Value {
	ref := referenceRect(u, vp, parent)
	return ValueForPixels(inverse(a, abs, width, ref.X, ref.W), u, vp, ref)
}

// OffsetY converts an absolute y coordinate back into an offset value of
// the given unit and anchor. Exact inverse of [AbsoluteY].
func OffsetY(abs float64, a Anchor, u Unit, height float64, vp Viewport, parent Rect) Value {
	ref := referenceRect(u, vp, parent)
	return ValueForPixels(inverse(a, abs, height, ref.Y, ref.H), u, vp, ref)
}
