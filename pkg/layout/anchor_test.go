package layout

import "testing"

func TestAbsoluteX(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	parent := Rect{X: 100, Y: 0, W: 300, H: 200}

	tests := []struct {
		name   string
		value  Value
		anchor Anchor
		width  float64
		want   float64
	}{
		{
			name:   "left anchor",
			value:  Px(10),
			anchor: AnchorLeft,
			width:  50,
			want:   110,
		},
		{
			name:   "right anchor measures from far edge",
			value:  Px(10),
			anchor: AnchorRight,
			width:  50,
			want:   340, // 100 + 300 - 10 - 50
		},
		{
			name:   "center anchor",
			value:  Px(0),
			anchor: AnchorCenter,
			width:  50,
			want:   225, // 100 + 150 - 25
		},
		{
			name:   "negative offset shifts outward",
			value:  Px(-20),
			anchor: AnchorLeft,
			width:  50,
			want:   80,
		},
		{
			name:   "percent of parent width",
			value:  Value{Magnitude: 10, Unit: UnitParentWidth},
			anchor: AnchorLeft,
			width:  50,
			want:   130, // 100 + 30
		},
		{
			name:   "viewport unit ignores parent frame",
			value:  Value{Magnitude: 10, Unit: UnitViewportWidth},
			anchor: AnchorLeft,
			width:  50,
			want:   128, // measured from viewport origin, not parent
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AbsoluteX(tt.value, tt.anchor, tt.width, vp, parent)
			if !approx(got, tt.want) {
				t.Errorf("AbsoluteX() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAbsoluteY(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	parent := Rect{X: 0, Y: 50, W: 300, H: 200}

	tests := []struct {
		name   string
		value  Value
		anchor Anchor
		height float64
		want   float64
	}{
		{name: "top anchor", value: Px(10), anchor: AnchorTop, height: 40, want: 60},
		{name: "bottom anchor", value: Px(10), anchor: AnchorBottom, height: 40, want: 200}, // 50 + 200 - 10 - 40
		{name: "center anchor", value: Px(0), anchor: AnchorCenter, height: 40, want: 130},  // 50 + 100 - 20
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AbsoluteY(tt.value, tt.anchor, tt.height, vp, parent)
			if !approx(got, tt.want) {
				t.Errorf("AbsoluteY() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestAnchorRoundTrip exercises the inverse-of-forward guarantee for every
// anchor/unit combination on both axes. This invariant is what allows unit
// and anchor switching without visual drift.
func TestAnchorRoundTrip(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	parent := Rect{X: 37.5, Y: 81.25, W: 613, H: 377}

	xAnchors := []Anchor{AnchorLeft, AnchorCenter, AnchorRight}
	yAnchors := []Anchor{AnchorTop, AnchorCenter, AnchorBottom}
	units := []Unit{UnitPixel, UnitParentWidth, UnitParentHeight, UnitViewportWidth, UnitViewportHeight}
	positions := []float64{0, 100, -33.5, 512.75, 1280}

	for _, a := range xAnchors {
		for _, u := range units {
			t.Run("x/"+string(a)+"/"+string(u), func(t *testing.T) {
				for _, abs := range positions {
					v := OffsetX(abs, a, u, 50, vp, parent)
					if got := AbsoluteX(v, a, 50, vp, parent); !approx(got, abs) {
						t.Errorf("round trip of x=%v: got %v (offset %+v)", abs, got, v)
					}
				}
			})
		}
	}

	for _, a := range yAnchors {
		for _, u := range units {
			t.Run("y/"+string(a)+"/"+string(u), func(t *testing.T) {
				for _, abs := range positions {
					v := OffsetY(abs, a, u, 72, vp, parent)
					if got := AbsoluteY(v, a, 72, vp, parent); !approx(got, abs) {
						t.Errorf("round trip of y=%v: got %v (offset %+v)", abs, got, v)
					}
				}
			})
		}
	}
}

// TestAnchorRoundTripZeroParent verifies that degenerate reference
// rectangles stay fault-free: percent offsets collapse to 0 and forward
// resolution still yields a defined coordinate.
func TestAnchorRoundTripZeroParent(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	parent := Rect{X: 10, Y: 10}

	v := OffsetX(50, AnchorLeft, UnitParentWidth, 20, vp, parent)
	if v.Magnitude != 0 {
		t.Errorf("OffsetX() against zero-width parent = %v, want 0", v.Magnitude)
	}
	if got := AbsoluteX(v, AnchorLeft, 20, vp, parent); got != 10 {
		t.Errorf("AbsoluteX() = %v, want parent origin 10", got)
	}
}

func TestAnchorValidity(t *testing.T) {
	tests := []struct {
		anchor Anchor
		validX bool
		validY bool
	}{
		{AnchorLeft, true, false},
		{AnchorRight, true, false},
		{AnchorCenter, true, true},
		{AnchorTop, false, true},
		{AnchorBottom, false, true},
		{Anchor("middle"), false, false},
	}

	for _, tt := range tests {
		if got := tt.anchor.ValidX(); got != tt.validX {
			t.Errorf("ValidX(%q) = %v, want %v", tt.anchor, got, tt.validX)
		}
		if got := tt.anchor.ValidY(); got != tt.validY {
			t.Errorf("ValidY(%q) = %v, want %v", tt.anchor, got, tt.validY)
		}
	}
}
