package layout

// Resolution states for the dependency-ordered finalize pass.
const (
	stateUnresolved = iota
	stateInProgress
	stateResolved
)

// finalizeRects computes the final rectangle for every element in
// dependency order. parents holds the pass-2 assignment (index or -1) and
// estimates the pass-1 geometry, which doubles as the cycle fallback.
//
// The traversal is an explicit parent-chain walk rather than recursion:
// for each unresolved element the chain of unresolved ancestors is
// collected bottom-up, then resolved top-down so every child sees its
// parent's final rectangle. If the walk re-encounters an element already
// on the active chain, the chain is cut there and that ancestor's
// estimated rectangle stands in for its final one. True cycles cannot
// arise from center-point containment alone, but the pass-2 assignment is
// an approximation and is not trusted unconditionally, so adversarial
// input degrades to a deterministic result instead of unbounded
// recursion.
func finalizeRects(elems []Element, parents []int, estimates []Rect, vp Viewport) []Rect {
	state := make([]int, len(elems))
	final := make([]Rect, len(elems))

	for i := range elems {
		if state[i] == stateResolved {
			continue
		}

		// Collect the chain of unresolved ancestors, innermost first.
		// The walk stops at the root, at a resolved ancestor, or at an
		// element already on this chain (a cycle).
		var chain []int
		for j := i; j != -1; j = parents[j] {
			if state[j] != stateUnresolved {
				break
			}
			state[j] = stateInProgress
			chain = append(chain, j)
		}

		// Resolve outermost first so children see final parent geometry.
		for k := len(chain) - 1; k >= 0; k-- {
			j := chain[k]
			ref := vp.Rect()
			if p := parents[j]; p != -1 {
				if state[p] == stateResolved {
					ref = final[p]
				} else {
					// Cycle guard: the parent is still on the active
					// chain, so substitute its estimated rectangle.
					ref = estimates[p]
				}
			}
			final[j] = resolveRect(elems[j].Config, vp, ref)
			state[j] = stateResolved
		}
	}
	return final
}
