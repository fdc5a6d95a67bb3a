package layout

// Unit selects the reference frame a magnitude is resolved against. The
// unit carries no positional meaning by itself; position comes from the
// anchor transform.
type Unit string

// Unit tokens as they appear in persisted documents.
const (
	// UnitPixel is an absolute pixel length.
	UnitPixel Unit = "px"

	// UnitParentWidth is a percentage of the parent rectangle's width.
	UnitParentWidth Unit = "pw"

	// UnitParentHeight is a percentage of the parent rectangle's height.
	UnitParentHeight Unit = "ph"

	// UnitViewportWidth is a percentage of the viewport width.
	UnitViewportWidth Unit = "vw"

	// UnitViewportHeight is a percentage of the viewport height.
	UnitViewportHeight Unit = "vh"
)

// Valid reports whether u is a known unit token.
func (u Unit) Valid() bool {
	switch u {
	case UnitPixel, UnitParentWidth, UnitParentHeight, UnitViewportWidth, UnitViewportHeight:
		return true
	}
	return false
}

// ViewportRelative reports whether u resolves against the viewport rather
// than the parent rectangle.
func (u Unit) ViewportRelative() bool {
	return u == UnitViewportWidth || u == UnitViewportHeight
}

// Value is a magnitude paired with the unit it is expressed in.
// Negative magnitudes are legal and shift inward from the anchored edge
// in the opposite direction.
type Value struct {
	Magnitude float64
	Unit      Unit
}

// Px returns a pixel-unit value. Convenience for tests and callers that
// build configs programmatically.
func Px(magnitude float64) Value {
	return Value{Magnitude: magnitude, Unit: UnitPixel}
}

// Pixels resolves the value to a pixel length given the viewport and the
// reference rectangle. Percent units divide the magnitude by 100 and
// multiply by the relevant reference dimension; an unknown unit falls back
// to pixel semantics.
func (v Value) Pixels(vp Viewport, ref Rect) float64 {
	switch v.Unit {
	case UnitParentWidth:
		return v.Magnitude / 100 * ref.W
	case UnitParentHeight:
		return v.Magnitude / 100 * ref.H
	case UnitViewportWidth:
		return v.Magnitude / 100 * vp.Width
	case UnitViewportHeight:
		return v.Magnitude / 100 * vp.Height
	default:
		return v.Magnitude
	}
}

// ValueForPixels converts a pixel length back into a value of the given
// unit. It is the inverse of [Value.Pixels] for the same viewport and
// reference rectangle. When the relevant reference dimension is zero the
// resulting magnitude is 0 rather than an arithmetic fault.
func ValueForPixels(px float64, u Unit, vp Viewport, ref Rect) Value {
	switch u {
	case UnitParentWidth:
		return Value{Magnitude: percentOf(px, ref.W), Unit: u}
	case UnitParentHeight:
		return Value{Magnitude: percentOf(px, ref.H), Unit: u}
	case UnitViewportWidth:
		return Value{Magnitude: percentOf(px, vp.Width), Unit: u}
	case UnitViewportHeight:
		return Value{Magnitude: percentOf(px, vp.Height), Unit: u}
	default:
		return Value{Magnitude: px, Unit: u}
	}
}

// percentOf converts a pixel length to a percentage of dim.
// A zero dimension yields 0 so that degenerate parents never fault.
func percentOf(px, dim float64) float64 {
	if dim == 0 {
		return 0
	}
	return px / dim * 100
}
