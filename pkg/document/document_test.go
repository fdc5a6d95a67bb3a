package document

import (
	"testing"

	"github.com/anchorkit/anchorkit/pkg/errors"
	"github.com/anchorkit/anchorkit/pkg/layout"
)

func testDoc() *Document {
	return &Document{
		Name:     "test",
		Viewport: Viewport{Width: 1280, Height: 800},
		Elements: []Element{
			{
				ID:     "panel",
				Name:   "Panel",
				X:      Value{Value: 0, Unit: "px"},
				Y:      Value{Value: 0, Unit: "px"},
				Width:  Value{Value: 50, Unit: "pw"},
				Height: Value{Value: 50, Unit: "ph"},
				Z:      1,
			},
			{
				ID:     "child",
				Name:   "Child",
				X:      Value{Value: 10, Unit: "px"},
				Y:      Value{Value: 10, Unit: "px"},
				Width:  Value{Value: 50, Unit: "px"},
				Height: Value{Value: 50, Unit: "px"},
				Z:      2,
			},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Document)
		wantCode errors.Code
	}{
		{
			name:   "valid document",
			mutate: func(d *Document) {},
		},
		{
			name:     "unknown unit",
			mutate:   func(d *Document) { d.Elements[0].Width.Unit = "em" },
			wantCode: errors.ErrCodeInvalidUnit,
		},
		{
			name:     "vertical anchor on x axis",
			mutate:   func(d *Document) { d.Elements[0].AnchorX = "top" },
			wantCode: errors.ErrCodeInvalidAnchor,
		},
		{
			name:     "horizontal anchor on y axis",
			mutate:   func(d *Document) { d.Elements[0].AnchorY = "right" },
			wantCode: errors.ErrCodeInvalidAnchor,
		},
		{
			name:     "missing element id",
			mutate:   func(d *Document) { d.Elements[1].ID = "" },
			wantCode: errors.ErrCodeInvalidElement,
		},
		{
			name:     "duplicate element id",
			mutate:   func(d *Document) { d.Elements[1].ID = d.Elements[0].ID },
			wantCode: errors.ErrCodeInvalidElement,
		},
		{
			name:     "negative viewport",
			mutate:   func(d *Document) { d.Viewport.Width = -1 },
			wantCode: errors.ErrCodeInvalidViewport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDoc()
			tt.mutate(d)
			err := d.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestLayoutElementsDefaults(t *testing.T) {
	d := testDoc()
	elems := d.LayoutElements()

	cfg := elems[0].Config
	if cfg.AnchorX != layout.AnchorLeft || cfg.AnchorY != layout.AnchorTop {
		t.Errorf("anchors = %q/%q, want left/top", cfg.AnchorX, cfg.AnchorY)
	}
	if !cfg.IsContainer() {
		t.Error("container should default to true")
	}
	if elems[0].Kind != "box" {
		t.Errorf("kind = %q, want box default", elems[0].Kind)
	}
}

func TestResolve(t *testing.T) {
	d := testDoc()
	resolved := d.Resolve()

	if len(resolved) != 2 {
		t.Fatalf("len = %d, want 2", len(resolved))
	}
	panel := resolved[0]
	if panel.Rect != (ResolvedRect{X: 0, Y: 0, Width: 640, Height: 400}) {
		t.Errorf("panel rect = %+v", panel.Rect)
	}
	if panel.ParentID != "" {
		t.Errorf("panel parent = %q, want root", panel.ParentID)
	}
	child := resolved[1]
	if child.ParentID != "panel" {
		t.Errorf("child parent = %q, want panel", child.ParentID)
	}
	if child.Rect != (ResolvedRect{X: 10, Y: 10, Width: 50, Height: 50}) {
		t.Errorf("child rect = %+v", child.Rect)
	}
}

func TestApplyConfig(t *testing.T) {
	d := testDoc()
	vp := d.LayoutViewport()
	resolved := layout.Resolve(d.LayoutElements(), vp)

	// Switch the child's x to percent-of-parent-width without moving it.
	parent := layout.ParentRect(resolved, resolved[1].Runtime.ParentID, vp)
	cfg := layout.ConvertUnit(resolved[1].Config, layout.FieldX, layout.UnitParentWidth, vp, parent)

	if err := d.ApplyConfig("child", cfg); err != nil {
		t.Fatalf("ApplyConfig: %v", err)
	}

	got := d.Element("child")
	if got.X.Unit != "pw" {
		t.Errorf("unit = %q, want pw", got.X.Unit)
	}
	if got.X.Value != 1.5625 {
		t.Errorf("magnitude = %v, want 1.5625", got.X.Value)
	}

	// Re-resolving the mutated document reproduces the same geometry.
	after := d.Resolve()
	if after[1].Rect != (ResolvedRect{X: 10, Y: 10, Width: 50, Height: 50}) {
		t.Errorf("child rect after rewrite = %+v", after[1].Rect)
	}
}

func TestApplyConfigUnknownElement(t *testing.T) {
	d := testDoc()
	err := d.ApplyConfig("ghost", layout.Config{})
	if !errors.Is(err, errors.ErrCodeElementNotFound) {
		t.Errorf("error = %v, want ELEMENT_NOT_FOUND", err)
	}
}

func TestNewElementIDs(t *testing.T) {
	a := NewElement("A", "box", 0, 0, 10, 10)
	b := NewElement("B", "box", 0, 0, 10, 10)
	if a.ID == "" || b.ID == "" {
		t.Fatal("NewElement should assign ids")
	}
	if a.ID == b.ID {
		t.Error("ids should be unique")
	}
	if a.X.Unit != "px" {
		t.Errorf("default unit = %q, want px", a.X.Unit)
	}
}
