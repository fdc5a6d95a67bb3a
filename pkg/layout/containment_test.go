package layout

import (
	"reflect"
	"testing"
)

// boxAt builds a pixel-unit config for a box at (x, y) with size w×h.
func boxAt(x, y, w, h float64) Config {
	return Config{
		X: Px(x), Y: Px(y), Width: Px(w), Height: Px(h),
		AnchorX: AnchorLeft, AnchorY: AnchorTop,
	}
}

func boolPtr(b bool) *bool { return &b }

func estimateAll(elems []Element, vp Viewport) []Rect {
	rects := make([]Rect, len(elems))
	for i := range elems {
		rects[i] = EstimateRect(elems[i].Config, vp)
	}
	return rects
}

func TestAssignParentsCenterContainment(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	elems := []Element{
		{ID: "container", Config: boxAt(0, 0, 400, 400)},
		{ID: "inside", Config: boxAt(10, 10, 50, 50)},
		{ID: "outside", Config: boxAt(600, 600, 50, 50)},
	}
	rects := estimateAll(elems, vp)

	got := AssignParents(elems, rects)
	want := []int{-1, 0, -1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AssignParents() = %v, want %v", got, want)
	}
}

func TestAssignParentsClosedBounds(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	// The child's center lands exactly on the container's right edge.
	elems := []Element{
		{ID: "container", Config: boxAt(0, 0, 100, 100)},
		{ID: "edge", Config: boxAt(75, 25, 50, 50)}, // center (100, 50)
	}
	rects := estimateAll(elems, vp)

	got := AssignParents(elems, rects)
	if got[1] != 0 {
		t.Errorf("center on border should count as contained, got parent %d", got[1])
	}
}

func TestAssignParentsZOrderWins(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	low := boxAt(0, 0, 300, 300)
	low.Z = 1
	high := boxAt(0, 0, 500, 500)
	high.Z = 5

	elems := []Element{
		{ID: "low", Config: low},
		{ID: "high", Config: high},
		{ID: "child", Config: boxAt(100, 100, 20, 20)},
	}
	rects := estimateAll(elems, vp)

	got := AssignParents(elems, rects)
	if got[2] != 1 {
		t.Errorf("topmost container should win, got parent %d", got[2])
	}
}

func TestAssignParentsAreaBreaksZTie(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	elems := []Element{
		{ID: "big", Config: boxAt(0, 0, 500, 500)},
		{ID: "small", Config: boxAt(0, 0, 300, 300)},
		{ID: "child", Config: boxAt(100, 100, 20, 20)},
	}
	rects := estimateAll(elems, vp)

	got := AssignParents(elems, rects)
	if got[2] != 1 {
		t.Errorf("tightest container should win the z tie, got parent %d", got[2])
	}
}

func TestAssignParentsInputOrderBreaksFullTie(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	// Identical geometry and z-order: the earlier element wins.
	elems := []Element{
		{ID: "first", Config: boxAt(0, 0, 300, 300)},
		{ID: "second", Config: boxAt(0, 0, 300, 300)},
		{ID: "child", Config: boxAt(100, 100, 20, 20)},
	}
	rects := estimateAll(elems, vp)

	got := AssignParents(elems, rects)
	if got[2] != 0 {
		t.Errorf("full tie should fall back to input order, got parent %d", got[2])
	}
}

func TestAssignParentsNonContainerExcluded(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	deco := boxAt(0, 0, 600, 600)
	deco.Container = boolPtr(false)

	elems := []Element{
		{ID: "deco", Config: deco},
		{ID: "child", Config: boxAt(100, 100, 20, 20)},
	}
	rects := estimateAll(elems, vp)

	got := AssignParents(elems, rects)
	if got[1] != -1 {
		t.Errorf("non-container must never be selected as parent, got %d", got[1])
	}
}

func TestAssignParentsDeterministic(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 800}
	elems := []Element{
		{ID: "a", Config: boxAt(0, 0, 500, 500)},
		{ID: "b", Config: boxAt(0, 0, 500, 500)},
		{ID: "c", Config: boxAt(50, 50, 400, 400)},
		{ID: "d", Config: boxAt(100, 100, 20, 20)},
	}
	rects := estimateAll(elems, vp)

	first := AssignParents(elems, rects)
	for i := 0; i < 50; i++ {
		if got := AssignParents(elems, rects); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
		}
	}
}
