package layout

import "testing"

// TestConvertUnitParentPercent mirrors the unit-switch editing flow: a
// child at x=10px inside a 640px-wide parent becomes 1.5625pw, and
// resolving the rewritten config reproduces the original position.
func TestConvertUnitParentPercent(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	parent := Rect{X: 0, Y: 0, W: 640, H: 400}
	cfg := boxAt(10, 10, 50, 50)

	got := ConvertUnit(cfg, FieldX, UnitParentWidth, vp, parent)

	if got.X.Unit != UnitParentWidth {
		t.Fatalf("unit = %q, want %q", got.X.Unit, UnitParentWidth)
	}
	if !approx(got.X.Magnitude, 1.5625) {
		t.Errorf("magnitude = %v, want 1.5625", got.X.Magnitude)
	}
	if abs := AbsoluteX(got.X, got.AnchorX, 50, vp, parent); !approx(abs, 10) {
		t.Errorf("forward resolution = %v, want 10", abs)
	}
}

func TestConvertUnitAllFields(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	parent := Rect{X: 100, Y: 100, W: 400, H: 200}
	cfg := boxAt(40, 30, 80, 60)

	before := resolveRect(cfg, vp, parent)

	tests := []struct {
		field Field
		unit  Unit
	}{
		{FieldX, UnitViewportWidth},
		{FieldY, UnitParentHeight},
		{FieldWidth, UnitParentWidth},
		{FieldHeight, UnitViewportHeight},
	}

	for _, tt := range tests {
		t.Run(string(tt.field)+"/"+string(tt.unit), func(t *testing.T) {
			got := ConvertUnit(cfg, tt.field, tt.unit, vp, parent)
			after := resolveRect(got, vp, parent)
			if !approx(after.X, before.X) || !approx(after.Y, before.Y) ||
				!approx(after.W, before.W) || !approx(after.H, before.H) {
				t.Errorf("geometry drifted: before %+v, after %+v", before, after)
			}
		})
	}
}

// TestConvertAnchorX reproduces the anchor-switch example: absolute x
// fixed at 100 inside a 300px parent with a 50px element, left→right
// rewrites the magnitude from 100 to 150.
func TestConvertAnchorX(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	parent := Rect{X: 0, Y: 0, W: 300, H: 300}
	cfg := boxAt(100, 0, 50, 50)

	got := ConvertAnchorX(cfg, AnchorRight, vp, parent)

	if got.AnchorX != AnchorRight {
		t.Fatalf("anchor = %q, want %q", got.AnchorX, AnchorRight)
	}
	if !approx(got.X.Magnitude, 150) {
		t.Errorf("magnitude = %v, want 150", got.X.Magnitude)
	}
	if abs := AbsoluteX(got.X, got.AnchorX, 50, vp, parent); !approx(abs, 100) {
		t.Errorf("forward resolution = %v, want 100", abs)
	}
}

func TestConvertAnchorYNoDrift(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	parent := Rect{X: 50, Y: 50, W: 400, H: 300}
	cfg := boxAt(20, 35, 60, 40)

	before := resolveRect(cfg, vp, parent)
	for _, a := range []Anchor{AnchorTop, AnchorCenter, AnchorBottom} {
		t.Run(string(a), func(t *testing.T) {
			got := ConvertAnchorY(cfg, a, vp, parent)
			after := resolveRect(got, vp, parent)
			if !approx(after.Y, before.Y) {
				t.Errorf("y drifted: before %v, after %v", before.Y, after.Y)
			}
		})
	}
}

func TestConfigForRect(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	parent := Rect{X: 0, Y: 0, W: 640, H: 400}

	cfg := Config{
		X: Value{Magnitude: 5, Unit: UnitParentWidth}, Y: Px(10),
		Width:   Value{Magnitude: 25, Unit: UnitParentWidth},
		Height:  Px(50),
		AnchorX: AnchorRight, AnchorY: AnchorTop,
	}

	// The gesture ended with the element at this absolute rectangle;
	// commit it while keeping units and anchors.
	target := Rect{X: 100, Y: 60, W: 320, H: 80}
	got := ConfigForRect(cfg, target, vp, parent)

	if got.X.Unit != UnitParentWidth || got.AnchorX != AnchorRight {
		t.Fatalf("units/anchors changed: %+v", got)
	}
	if after := resolveRect(got, vp, parent); !approx(after.X, target.X) ||
		!approx(after.Y, target.Y) || !approx(after.W, target.W) || !approx(after.H, target.H) {
		t.Errorf("resolved %+v, want %+v", after, target)
	}
}

func TestFieldValid(t *testing.T) {
	for _, f := range []Field{FieldX, FieldY, FieldWidth, FieldHeight} {
		if !f.Valid() {
			t.Errorf("Valid(%q) = false", f)
		}
	}
	if Field("z").Valid() {
		t.Error("Valid(\"z\") = true, want false")
	}
}
