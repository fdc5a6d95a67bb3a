package layout

// Field names a single geometric component of a [Config].
type Field string

// Config fields addressable by the rewrite operations.
const (
	FieldX      Field = "x"
	FieldY      Field = "y"
	FieldWidth  Field = "width"
	FieldHeight Field = "height"
)

// Valid reports whether f is a known field name.
func (f Field) Valid() bool {
	switch f {
	case FieldX, FieldY, FieldWidth, FieldHeight:
		return true
	}
	return false
}

// ConvertUnit rewrites one field of cfg to a new unit, recomputing the
// magnitude so the element's absolute geometry is unchanged. parent must
// be the element's resolved parent rectangle under the current viewport.
func ConvertUnit(cfg Config, f Field, u Unit, vp Viewport, parent Rect) Config {
	r := resolveRect(cfg, vp, parent)
	switch f {
	case FieldX:
		cfg.X = OffsetX(r.X, cfg.AnchorX, u, r.W, vp, parent)
	case FieldY:
		cfg.Y = OffsetY(r.Y, cfg.AnchorY, u, r.H, vp, parent)
	case FieldWidth:
		cfg.Width = ValueForPixels(r.W, u, vp, referenceRect(u, vp, parent))
	case FieldHeight:
		cfg.Height = ValueForPixels(r.H, u, vp, referenceRect(u, vp, parent))
	}
	return cfg
}

// ConvertAnchorX switches the horizontal anchor, recomputing the stored x
// offset so the element's absolute position is unchanged.
func ConvertAnchorX(cfg Config, a Anchor, vp Viewport, parent Rect) Config {
	r := resolveRect(cfg, vp, parent)
	cfg.X = OffsetX(r.X, a, cfg.X.Unit, r.W, vp, parent)
	cfg.AnchorX = a
	return cfg
}

// ConvertAnchorY switches the vertical anchor, recomputing the stored y
// offset so the element's absolute position is unchanged.
func ConvertAnchorY(cfg Config, a Anchor, vp Viewport, parent Rect) Config {
	r := resolveRect(cfg, vp, parent)
	cfg.Y = OffsetY(r.Y, a, cfg.Y.Unit, r.H, vp, parent)
	cfg.AnchorY = a
	return cfg
}

// ConfigForRect back-calculates cfg so it resolves to the absolute
// rectangle r, preserving the existing units and anchors. This is the
// gesture-end operation for drag and resize: the editor tracks a
// transient rectangle during the pointer gesture and commits it to the
// config exactly once, here.
func ConfigForRect(cfg Config, r Rect, vp Viewport, parent Rect) Config {
	cfg.Width = ValueForPixels(r.W, cfg.Width.Unit, vp, referenceRect(cfg.Width.Unit, vp, parent))
	cfg.Height = ValueForPixels(r.H, cfg.Height.Unit, vp, referenceRect(cfg.Height.Unit, vp, parent))
	cfg.X = OffsetX(r.X, cfg.AnchorX, cfg.X.Unit, r.W, vp, parent)
	cfg.Y = OffsetY(r.Y, cfg.AnchorY, cfg.Y.Unit, r.H, vp, parent)
	return cfg
}
