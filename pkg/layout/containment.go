package layout

import (
	"cmp"
	"slices"
)

// candidate is a potential parent for one element during containment
// resolution. The index is the element's original input position, kept so
// ties have a total, deterministic order independent of sort stability.
type candidate struct {
	index int
	z     int
	area  float64
}

// AssignParents derives the parent of every element from estimated
// geometry. rects must be parallel to elems and hold pass-1 estimates.
// The result maps each element to the index of its parent, or -1 when the
// element is parented to the viewport.
//
// An element P is a candidate parent of E when P is a container and E's
// center point lies within P's rectangle (closed bounds). Candidates are
// ranked by z-order descending, then area ascending, then input order:
// the visually topmost container wins, a tighter fit breaks z ties, and
// original order settles anything left.
func AssignParents(elems []Element, rects []Rect) []int {
	parents := make([]int, len(elems))
	for i := range elems {
		parents[i] = bestParent(elems, rects, i)
	}
	return parents
}

// bestParent returns the parent index for element i, or -1.
func bestParent(elems []Element, rects []Rect, i int) int {
	cx, cy := rects[i].CenterX(), rects[i].CenterY()

	var cands []candidate
	for j := range elems {
		if j == i || !elems[j].Config.IsContainer() {
			continue
		}
		if !rects[j].Contains(cx, cy) {
			continue
		}
		cands = append(cands, candidate{index: j, z: elems[j].Config.Z, area: rects[j].Area()})
	}
	if len(cands) == 0 {
		return -1
	}

	slices.SortFunc(cands, func(a, b candidate) int {
		if c := cmp.Compare(b.z, a.z); c != 0 {
			return c
		}
		if c := cmp.Compare(a.area, b.area); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})
	return cands[0].index
}
