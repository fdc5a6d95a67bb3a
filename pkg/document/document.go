// Package document defines the persisted layout document format.
//
// A document is the canonical serialization of a canvas: a named element
// list plus the viewport it was authored against. Only the relative
// description (unit values, anchors, z-order) is ever persisted - resolved
// absolute geometry is recomputed after load against whichever viewport is
// active, and is emitted separately as a [Resolved] artifact that is never
// read back as a source of truth.
//
// The format is human-readable JSON designed for round-trip fidelity:
// import → edit → export → re-import produces identical results. Types
// carry bson tags as well so the mongo-backed store can persist documents
// natively.
//
// Token validation lives here, at the deserialization boundary: the layout
// engine itself never rejects input, so unknown unit or anchor tokens must
// be caught before configs are handed over.
package document

import (
	"github.com/google/uuid"

	"github.com/anchorkit/anchorkit/pkg/errors"
	"github.com/anchorkit/anchorkit/pkg/layout"
)

// =============================================================================
// Wire Types
// =============================================================================

// Document is the canonical serialization format for a layout canvas.
type Document struct {
	ID       string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string    `json:"name" bson:"name"`
	Viewport Viewport  `json:"viewport" bson:"viewport"`
	Elements []Element `json:"elements" bson:"elements"`
}

// Viewport is the drawing surface the document was authored against.
type Viewport struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Element is the wire form of a single canvas element. Geometry fields
// are relative values; absolute positions are never stored.
type Element struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name,omitempty" bson:"name,omitempty"`
	Kind string `json:"kind,omitempty" bson:"kind,omitempty"` // defaults to "box"

	X      Value `json:"x" bson:"x"`
	Y      Value `json:"y" bson:"y"`
	Width  Value `json:"width" bson:"width"`
	Height Value `json:"height" bson:"height"`

	AnchorX string `json:"anchor_x,omitempty" bson:"anchor_x,omitempty"` // defaults to "left"
	AnchorY string `json:"anchor_y,omitempty" bson:"anchor_y,omitempty"` // defaults to "top"

	Z         int   `json:"z,omitempty" bson:"z,omitempty"`
	Container *bool `json:"container,omitempty" bson:"container,omitempty"` // defaults to true
}

// Value is a magnitude with its unit token.
type Value struct {
	Value float64 `json:"value" bson:"value"`
	Unit  string  `json:"unit" bson:"unit"`
}

// Resolved is the export form of a resolved element: wire element plus
// the derived absolute rectangle and parent. Output only - resolvers
// never trust these fields from storage.
type Resolved struct {
	Element  `bson:",inline"`
	Rect     ResolvedRect `json:"rect" bson:"rect"`
	ParentID string       `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
}

// ResolvedRect is an absolute rectangle in pixels.
type ResolvedRect struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// =============================================================================
// Construction
// =============================================================================

// New creates an empty document with a fresh id.
func New(name string, width, height float64) *Document {
	return &Document{
		ID:       uuid.NewString(),
		Name:     name,
		Viewport: Viewport{Width: width, Height: height},
	}
}

// NewElement creates a pixel-unit element with a fresh id and the default
// anchors. Callers adjust units and anchors afterwards as needed.
func NewElement(name, kind string, x, y, w, h float64) Element {
	return Element{
		ID:     uuid.NewString(),
		Name:   name,
		Kind:   kind,
		X:      Value{Value: x, Unit: string(layout.UnitPixel)},
		Y:      Value{Value: y, Unit: string(layout.UnitPixel)},
		Width:  Value{Value: w, Unit: string(layout.UnitPixel)},
		Height: Value{Value: h, Unit: string(layout.UnitPixel)},
	}
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks the document against the wire-format rules: valid
// tokens, unique non-empty element ids, sane viewport. It returns the
// first violation found as a structured error.
func (d *Document) Validate() error {
	if err := errors.ValidateViewport(d.Viewport.Width, d.Viewport.Height); err != nil {
		return err
	}

	seen := make(map[string]bool, len(d.Elements))
	for i := range d.Elements {
		e := &d.Elements[i]
		if err := errors.ValidateElementID(e.ID); err != nil {
			return err
		}
		if seen[e.ID] {
			return errors.New(errors.ErrCodeInvalidElement, "duplicate element id: %s", e.ID)
		}
		seen[e.ID] = true

		for _, v := range []Value{e.X, e.Y, e.Width, e.Height} {
			if !layout.Unit(v.Unit).Valid() {
				return errors.New(errors.ErrCodeInvalidUnit, "element %s: unknown unit token: %q", e.ID, v.Unit)
			}
		}
		if e.AnchorX != "" && !layout.Anchor(e.AnchorX).ValidX() {
			return errors.New(errors.ErrCodeInvalidAnchor, "element %s: invalid horizontal anchor: %q", e.ID, e.AnchorX)
		}
		if e.AnchorY != "" && !layout.Anchor(e.AnchorY).ValidY() {
			return errors.New(errors.ErrCodeInvalidAnchor, "element %s: invalid vertical anchor: %q", e.ID, e.AnchorY)
		}
	}
	return nil
}

// =============================================================================
// Engine Conversion
// =============================================================================

// LayoutViewport returns the document viewport as an engine viewport.
func (d *Document) LayoutViewport() layout.Viewport {
	return layout.Viewport{Width: d.Viewport.Width, Height: d.Viewport.Height}
}

// LayoutElements converts the wire elements into engine elements,
// applying wire defaults: anchors left/top, kind "box", z 0, container
// true. The document should be validated first; unknown tokens pass
// through here and fall back to the engine's defined fallbacks.
func (d *Document) LayoutElements() []layout.Element {
	elems := make([]layout.Element, len(d.Elements))
	for i, e := range d.Elements {
		elems[i] = layout.Element{
			ID:   e.ID,
			Name: e.Name,
			Kind: defaultString(e.Kind, "box"),
			Config: layout.Config{
				X:         layoutValue(e.X),
				Y:         layoutValue(e.Y),
				Width:     layoutValue(e.Width),
				Height:    layoutValue(e.Height),
				AnchorX:   layout.Anchor(defaultString(e.AnchorX, string(layout.AnchorLeft))),
				AnchorY:   layout.Anchor(defaultString(e.AnchorY, string(layout.AnchorTop))),
				Z:         e.Z,
				Container: e.Container,
			},
		}
	}
	return elems
}

// Resolve runs the layout engine over the document and returns the
// elements in export form, carrying both the persisted description and
// the derived geometry.
func (d *Document) Resolve() []Resolved {
	resolved := layout.Resolve(d.LayoutElements(), d.LayoutViewport())

	out := make([]Resolved, len(resolved))
	for i, r := range resolved {
		out[i] = Resolved{
			Element: d.Elements[i],
			Rect: ResolvedRect{
				X:      r.Runtime.Rect.X,
				Y:      r.Runtime.Rect.Y,
				Width:  r.Runtime.Rect.W,
				Height: r.Runtime.Rect.H,
			},
			ParentID: r.Runtime.ParentID,
		}
	}
	return out
}

// ApplyConfig writes an engine config back into the wire element with the
// given id, preserving identity and metadata. Used after drift-free
// rewrites such as unit or anchor conversion.
func (d *Document) ApplyConfig(id string, cfg layout.Config) error {
	for i := range d.Elements {
		if d.Elements[i].ID != id {
			continue
		}
		e := &d.Elements[i]
		e.X = wireValue(cfg.X)
		e.Y = wireValue(cfg.Y)
		e.Width = wireValue(cfg.Width)
		e.Height = wireValue(cfg.Height)
		e.AnchorX = string(cfg.AnchorX)
		e.AnchorY = string(cfg.AnchorY)
		e.Z = cfg.Z
		e.Container = cfg.Container
		return nil
	}
	return errors.New(errors.ErrCodeElementNotFound, "no element with id %s", id)
}

// Element returns a pointer to the wire element with the given id, or nil.
func (d *Document) Element(id string) *Element {
	for i := range d.Elements {
		if d.Elements[i].ID == id {
			return &d.Elements[i]
		}
	}
	return nil
}

func layoutValue(v Value) layout.Value {
	return layout.Value{Magnitude: v.Value, Unit: layout.Unit(v.Unit)}
}

func wireValue(v layout.Value) Value {
	return Value{Value: v.Magnitude, Unit: string(v.Unit)}
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
