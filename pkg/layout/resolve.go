package layout

import "slices"

// Resolve computes absolute geometry and a derived parent for every
// element. The input is never mutated; the returned slice holds copies in
// input order with Runtime populated.
//
// Resolution runs in three passes:
//
//  1. Estimate every element against the viewport, yielding comparable
//     absolute rectangles independent of nesting.
//  2. Assign parents by center-point containment over the estimates.
//  3. Finalize geometry in dependency order, so a child is positioned
//     against its container's true resolved rectangle rather than the
//     container's own estimate.
//
// The whole pipeline is pure and deterministic: identical (elements,
// viewport) inputs always produce identical output. Cost is quadratic in
// the element count for the containment test, which is acceptable at
// interactive editor scale.
//
// Callers running a continuous drag gesture should track the dragged
// rectangle locally and call Resolve (or [ConfigForRect]) once at gesture
// end; re-deriving parenting mid-gesture causes visual discontinuities.
func Resolve(elems []Element, vp Viewport) []Element {
	out := slices.Clone(elems)

	estimates := make([]Rect, len(out))
	for i := range out {
		estimates[i] = EstimateRect(out[i].Config, vp)
	}

	parents := AssignParents(out, estimates)
	final := finalizeRects(out, parents, estimates, vp)

	for i := range out {
		out[i].Runtime = Runtime{Rect: final[i], ParentID: idOf(out, parents[i])}
	}
	return out
}

// ParentRect returns the resolved rectangle of an element's parent within
// a resolved set, falling back to the viewport when the element is
// root-parented or the parent id is unknown.
func ParentRect(resolved []Element, parentID string, vp Viewport) Rect {
	if parentID == "" {
		return vp.Rect()
	}
	for i := range resolved {
		if resolved[i].ID == parentID {
			return resolved[i].Runtime.Rect
		}
	}
	return vp.Rect()
}

func idOf(elems []Element, i int) string {
	if i < 0 {
		return ""
	}
	return elems[i].ID
}
