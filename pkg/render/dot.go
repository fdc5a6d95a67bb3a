package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/anchorkit/anchorkit/pkg/document"
)

// viewportNodeID is the synthetic root node representing the viewport
// in containment diagrams. Element ids are uuids, so a fixed name
// cannot collide in practice.
const viewportNodeID = "viewport"

// Format selects the Graphviz output format for [DOT].
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// DOTOptions configures containment diagram generation.
type DOTOptions struct {
	// Detailed includes the resolved rectangle and z-order in node
	// labels. When false, only the element name is shown.
	Detailed bool
}

// ToDOT converts resolved elements to a Graphviz DOT digraph of the
// containment hierarchy. Edges point from parent to child; root
// elements hang off a synthetic viewport node. Render the result with
// [DOT].
func ToDOT(res []document.Resolved, vp document.Viewport, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph containment {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n",
		viewportNodeID, fmt.Sprintf("viewport\n%gx%g", vp.Width, vp.Height))
	for _, r := range res {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", r.ID, dotLabel(r, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, r := range res {
		parent := r.ParentID
		if parent == "" {
			parent = viewportNodeID
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", parent, r.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(r document.Resolved, detailed bool) string {
	label := r.Name
	if label == "" {
		label = r.ID
	}
	if !detailed {
		return label
	}
	parts := []string{
		fmt.Sprintf("rect: %g,%g %gx%g", r.Rect.X, r.Rect.Y, r.Rect.Width, r.Rect.Height),
		fmt.Sprintf("z: %d", r.Z),
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// DOT renders a DOT graph through the embedded Graphviz engine.
// SVG output has its viewBox normalized to a zero origin so diagrams
// compose cleanly with other artifacts.
func DOT(ctx context.Context, dot string, format Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	gvFormat := graphviz.SVG
	if format == FormatPNG {
		gvFormat = graphviz.PNG
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if format == FormatPNG {
		return buf.Bytes(), nil
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
