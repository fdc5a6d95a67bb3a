package layout

// Config is the persisted, authoritative description of an element's
// geometry. Absolute pixel positions are never stored; they are derived
// from the config on every resolution.
type Config struct {
	// X and Y are anchored offsets along each axis.
	X, Y Value

	// Width and Height are lengths; their units select the reference
	// dimension, never a position.
	Width, Height Value

	// AnchorX and AnchorY select which edge of the reference rectangle
	// each offset is measured from.
	AnchorX, AnchorY Anchor

	// Z is the stacking order. Higher values are visually on top and win
	// containment ties. Any sign is allowed; the default is 0.
	Z int

	// Container marks whether other elements may resolve this element as
	// their parent. Nil means true.
	Container *bool
}

// IsContainer reports whether the element may act as a parent.
// An absent flag defaults to true.
func (c Config) IsContainer() bool {
	return c.Container == nil || *c.Container
}

// Runtime is the ephemeral resolved state of an element: its absolute
// rectangle and derived parent. It is fully derivable from the configs of
// all elements plus the viewport, and must never be treated as
// authoritative or persisted.
type Runtime struct {
	// Rect is the final absolute geometry in pixels.
	Rect Rect

	// ParentID is the id of the containing element, or empty when the
	// element is parented to the viewport.
	ParentID string
}

// Element is a single item on the canvas.
type Element struct {
	// ID is a stable unique identifier.
	ID string

	// Name is the display name shown in the editor.
	Name string

	// Kind is the shape kind (e.g. "box", "ellipse", "text").
	Kind string

	// Config is the source of truth for geometry.
	Config Config

	// Runtime is populated by [Resolve] and overwritten on every call.
	Runtime Runtime
}

// resolveRect computes the absolute rectangle for cfg against a parent
// reference rectangle. Sizes resolve first because anchored positions
// depend on the element's own span.
func resolveRect(cfg Config, vp Viewport, parent Rect) Rect {
	w := cfg.Width.Pixels(vp, referenceRect(cfg.Width.Unit, vp, parent))
	h := cfg.Height.Pixels(vp, referenceRect(cfg.Height.Unit, vp, parent))
	x := AbsoluteX(cfg.X, cfg.AnchorX, w, vp, parent)
	y := AbsoluteY(cfg.Y, cfg.AnchorY, h, vp, parent)
	return Rect{X: x, Y: y, W: w, H: h}
}

// EstimateRect resolves cfg as if the viewport were the element's parent.
// This is the pass-1 geometry used for containment testing.
func EstimateRect(cfg Config, vp Viewport) Rect {
	return resolveRect(cfg, vp, vp.Rect())
}
