package render

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/anchorkit/anchorkit/pkg/document"
)

// defaultPalette cycles across elements so sibling boxes stay
// distinguishable without per-element styling in the document.
var defaultPalette = []string{
	"#4C78A8", "#F58518", "#54A24B", "#E45756",
	"#72B7B2", "#EECA3B", "#B279A2", "#9D755D",
}

// SVGOption configures SVG rendering via [SVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels  bool
	palette []string
	scale   float64
}

// WithLabels draws each element's name (or id) at the center of its box.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithPalette overrides the fill color cycle. Colors are any SVG color
// strings and are assigned by element input order.
func WithPalette(colors []string) SVGOption {
	return func(r *svgRenderer) {
		if len(colors) > 0 {
			r.palette = colors
		}
	}
}

// WithScale multiplies the output width and height attributes while
// keeping the viewBox in document pixels. A scale of 2.0 produces a 2x
// image for high-DPI displays.
func WithScale(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// SVG draws resolved elements as rectangles on the viewport. Elements
// are painted back to front: ascending z, input order within equal z,
// so the result stacks the same way the containment pass reads overlaps.
func SVG(res []document.Resolved, vp document.Viewport, opts ...SVGOption) []byte {
	r := svgRenderer{palette: defaultPalette, scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	type item struct {
		index int
		res   document.Resolved
	}
	items := make([]item, len(res))
	for i, re := range res {
		items[i] = item{index: i, res: re}
	}
	slices.SortFunc(items, func(a, b item) int {
		if c := cmp.Compare(a.res.Z, b.res.Z); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vp.Width, vp.Height, vp.Width*r.scale, vp.Height*r.scale)
	fmt.Fprintf(&buf, "  <rect x=\"0\" y=\"0\" width=\"%.1f\" height=\"%.1f\" fill=\"#FFFFFF\" stroke=\"#CCCCCC\"/>\n",
		vp.Width, vp.Height)

	for _, it := range items {
		renderBox(&buf, &r, it.index, it.res)
	}

	if r.labels {
		for _, it := range items {
			renderLabel(&buf, it.res)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBox(buf *bytes.Buffer, r *svgRenderer, index int, re document.Resolved) {
	fill := r.palette[index%len(r.palette)]
	rect := re.Rect
	fmt.Fprintf(buf,
		"  <rect id=\"box-%s\" x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\" fill-opacity=\"0.85\" stroke=\"#333333\"/>\n",
		escape(re.ID), rect.X, rect.Y, rect.Width, rect.Height, fill)
}

func renderLabel(buf *bytes.Buffer, re document.Resolved) {
	label := re.Name
	if label == "" {
		label = re.ID
	}
	rect := re.Rect
	fmt.Fprintf(buf,
		"  <text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" dominant-baseline=\"middle\" font-family=\"sans-serif\" font-size=\"12\">%s</text>\n",
		rect.X+rect.Width/2, rect.Y+rect.Height/2, escape(label))
}

var svgEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return svgEscaper.Replace(s)
}
