package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anchorkit/anchorkit/pkg/document"
	"github.com/anchorkit/anchorkit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single format) or base path (multiple)
	formats  []string // output formats: svg, json, dot, tree, tree-png
	labels   bool     // draw element names inside boxes
	detailed bool     // include geometry details in tree output
	tree     bool     // include the containment tree in JSON output
	scale    float64  // SVG output scale factor
	width    float64  // viewport width override
	height   float64  // viewport height override
	refresh  bool     // bypass the cache
	noCache  bool     // disable caching entirely
}

// renderCommand creates the render command for generating artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		labels: true,
		scale:  1,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a layout document to SVG, JSON, or Graphviz output",
		Long: `Render resolves a document and generates visual artifacts from the
result. Formats:

  svg       scaled drawing of the resolved boxes
  json      resolved elements plus metadata as JSON
  dot       containment hierarchy as Graphviz DOT source
  tree      containment hierarchy rendered as SVG via Graphviz
  tree-png  containment hierarchy rendered as PNG via Graphviz

Multiple formats can be requested comma-separated; each is written to
its own file next to the input (or under the --output base path).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, tree, tree-png (comma-separated)")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw element names inside boxes")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include geometry details in tree output")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "include the containment tree in JSON output")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "SVG scale factor")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width override")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "viewport height override")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached artifacts exist")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()

	logger := loggerFromContext(ctx)

	doc, err := document.ImportFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d elements", input, len(doc.Elements))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		ViewportWidth:  opts.width,
		ViewportHeight: opts.height,
		Refresh:        opts.refresh,
		Formats:        opts.formats,
		Labels:         opts.labels,
		Detailed:       opts.detailed,
		Tree:           opts.tree,
		Scale:          opts.scale,
		Logger:         c.Logger,
	}

	sp := newSpinnerWithContext(ctx, "Resolving and rendering...")
	sp.Start()
	result, err := runner.Execute(ctx, doc, popts)
	if sp.Cancelled() {
		sp.Stop()
		return ctx.Err()
	}
	if err != nil {
		sp.StopWithError("Rendering failed")
		return err
	}
	sp.Stop()

	base := renderBasePath(opts.output, input)
	for _, format := range opts.formats {
		path := fmt.Sprintf("%s.%s", base, formatExt(format))
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(result.Artifacts[format]); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		printFile(path)
	}

	printSuccess("Rendered %s against %gx%g viewport", docLabel(doc), result.Viewport.Width, result.Viewport.Height)
	printStats(result.Stats.ElementCount, countRoots(result.Resolved), result.CacheInfo.RenderHit)
	return nil
}

// formatExt maps a render format to its file extension.
func formatExt(format string) string {
	switch format {
	case pipeline.FormatTree:
		return "tree.svg"
	case pipeline.FormatTreePNG:
		return "tree.png"
	default:
		return format
	}
}

// renderBasePath derives the base output path from the output and input
// file paths. An empty output strips the extension from input; an output
// with a known artifact extension has that extension stripped.
func renderBasePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	switch strings.TrimPrefix(ext, ".") {
	case "svg", "json", "dot", "png":
		return strings.TrimSuffix(output, ext)
	}
	return output
}
