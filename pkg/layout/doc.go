// Package layout resolves unit- and anchor-relative element descriptions
// into absolute pixel geometry with a derived containment hierarchy.
//
// Elements are described by a [Config]: an offset and size per axis, each a
// [Value] carrying a magnitude and a unit, plus an anchor edge per axis and
// a z-order. The persisted description never stores absolute positions or a
// parent tree; both are recomputed from scratch on every call to [Resolve].
//
// # Resolution Pipeline
//
// [Resolve] runs three passes over the element set:
//
//  1. Estimate: every element is resolved as if the viewport were its
//     parent, yielding comparable absolute rectangles.
//  2. Assign: each element's parent is derived from geometry - the topmost,
//     tightest container whose rectangle encloses the element's center.
//  3. Finalize: geometry is recomputed in dependency order, with each child
//     positioned against its parent's final rectangle.
//
// The pipeline is a pure function: identical inputs always produce
// identical output, and no state is carried between invocations. This makes
// it safe to call on every edit at interactive rates.
//
// # Round-Trip Guarantee
//
// The anchor transform is its own exact inverse: converting an absolute
// coordinate to a relative offset and back reproduces the coordinate for
// every anchor/unit combination. [ConvertUnit] and [ConvertAnchorX] build on
// this to rewrite a config without the element visually moving.
//
// # Error Model
//
// The package never returns errors. Malformed-but-structurally-valid input
// degrades to defined fallbacks: a zero-size reference yields 0 for percent
// conversions, a missing parent means viewport-parented, and a cycle in the
// derived parent graph is broken deterministically using estimated
// geometry. Token validation is the caller's concern (see pkg/document).
package layout
