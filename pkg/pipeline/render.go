package pipeline

import (
	"context"
	"fmt"

	"github.com/anchorkit/anchorkit/pkg/document"
	"github.com/anchorkit/anchorkit/pkg/render"
)

// RenderArtifacts generates every requested format from a resolved
// document. The returned map is keyed by format name.
func RenderArtifacts(ctx context.Context, doc *document.Document, res []document.Resolved, vp document.Viewport, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, doc, res, vp, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, doc *document.Document, res []document.Resolved, vp document.Viewport, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.SVG(res, vp, svgOptions(opts)...), nil

	case FormatJSON:
		var jsonOpts []render.JSONOption
		if opts.Tree {
			jsonOpts = append(jsonOpts, render.WithJSONTree())
		}
		return render.JSON(doc, res, jsonOpts...)

	case FormatDOT:
		return []byte(render.ToDOT(res, vp, render.DOTOptions{Detailed: opts.Detailed})), nil

	case FormatTree:
		dot := render.ToDOT(res, vp, render.DOTOptions{Detailed: opts.Detailed})
		return render.DOT(ctx, dot, render.FormatSVG)

	case FormatTreePNG:
		dot := render.ToDOT(res, vp, render.DOTOptions{Detailed: opts.Detailed})
		return render.DOT(ctx, dot, render.FormatPNG)

	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

func svgOptions(opts Options) []render.SVGOption {
	var svgOpts []render.SVGOption
	if opts.Labels {
		svgOpts = append(svgOpts, render.WithLabels())
	}
	if opts.Scale > 0 && opts.Scale != 1 {
		svgOpts = append(svgOpts, render.WithScale(opts.Scale))
	}
	return svgOpts
}
