// Package render turns resolved layouts into visual and data artifacts.
//
// # Overview
//
// This package contains the output side of the pipeline. A resolved
// document (see [pkg/document.Document.Resolve]) carries absolute pixel
// rectangles and containment parents; render converts those into:
//
//   - SVG box drawings via [SVG]
//   - Graphviz node-link diagrams of the containment tree via [ToDOT]
//     and [DOT]
//   - JSON artifacts for external tooling via [JSON]
//
// # SVG
//
// [SVG] draws each element as a rectangle at its resolved position,
// back to front by z-order so overlapping elements stack the way the
// editor shows them. Options control labels and the color palette:
//
//	svg := render.SVG(doc, render.WithLabels())
//
// # Containment Diagrams
//
// [ToDOT] emits the parent hierarchy as Graphviz DOT, with the viewport
// as the root node. [DOT] renders that through the embedded Graphviz
// engine to SVG or PNG:
//
//	dot := render.ToDOT(doc)
//	svg, err := render.DOT(ctx, dot, render.FormatSVG)
//
// [pkg/document.Document.Resolve]: github.com/anchorkit/anchorkit/pkg/document
package render
