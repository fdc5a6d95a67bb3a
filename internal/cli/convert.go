package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anchorkit/anchorkit/pkg/document"
	"github.com/anchorkit/anchorkit/pkg/layout"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output  string // output file (default: rewrite in place)
	element string // id of the element to rewrite
	field   string // geometry field for unit conversion: x, y, width, height
	unit    string // target unit token: px, pw, ph, vw, vh
	anchorX string // target horizontal anchor: left, center, right
	anchorY string // target vertical anchor: top, center, bottom
}

// convertCommand creates the convert command for drift-free rewrites.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Rewrite element units and anchors without moving pixels",
		Long: `Convert rewrites how an element's geometry is described while keeping
its resolved position and size exactly where they are. A field can be
switched to a different unit, and the horizontal or vertical anchor can
be changed; in both cases the stored magnitudes are recomputed so the
element does not visually move.

Examples:

  anchorkit convert page.json --element hero --field width --unit pw
  anchorkit convert page.json --element hero --anchor-x center`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConvertOpts(&opts); err != nil {
				return err
			}
			return c.runConvert(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: rewrite the input in place)")
	cmd.Flags().StringVarP(&opts.element, "element", "e", "", "element id to rewrite (required)")
	cmd.Flags().StringVar(&opts.field, "field", "", "field to convert: x, y, width, height")
	cmd.Flags().StringVar(&opts.unit, "unit", "", "target unit: px, pw, ph, vw, vh")
	cmd.Flags().StringVar(&opts.anchorX, "anchor-x", "", "target horizontal anchor: left, center, right")
	cmd.Flags().StringVar(&opts.anchorY, "anchor-y", "", "target vertical anchor: top, center, bottom")
	_ = cmd.MarkFlagRequired("element")

	return cmd
}

// validateConvertOpts checks flag combinations and tokens before touching
// the document.
func validateConvertOpts(opts *convertOpts) error {
	if opts.field == "" && opts.unit == "" && opts.anchorX == "" && opts.anchorY == "" {
		return fmt.Errorf("nothing to convert: pass --field with --unit, or --anchor-x / --anchor-y")
	}
	if (opts.field == "") != (opts.unit == "") {
		return fmt.Errorf("--field and --unit must be used together")
	}
	if opts.field != "" && !layout.Field(opts.field).Valid() {
		return fmt.Errorf("invalid field: %s (must be 'x', 'y', 'width', or 'height')", opts.field)
	}
	if opts.unit != "" && !layout.Unit(opts.unit).Valid() {
		return fmt.Errorf("invalid unit: %s (must be 'px', 'pw', 'ph', 'vw', or 'vh')", opts.unit)
	}
	if opts.anchorX != "" && !layout.Anchor(opts.anchorX).ValidX() {
		return fmt.Errorf("invalid horizontal anchor: %s (must be 'left', 'center', or 'right')", opts.anchorX)
	}
	if opts.anchorY != "" && !layout.Anchor(opts.anchorY).ValidY() {
		return fmt.Errorf("invalid vertical anchor: %s (must be 'top', 'center', or 'bottom')", opts.anchorY)
	}
	return nil
}

func (c *CLI) runConvert(input string, opts *convertOpts) error {
	doc, err := document.ImportFile(input)
	if err != nil {
		return err
	}

	cfg, parent, err := elementContext(doc, opts.element)
	if err != nil {
		return err
	}
	vp := doc.LayoutViewport()

	if opts.unit != "" {
		cfg = layout.ConvertUnit(cfg, layout.Field(opts.field), layout.Unit(opts.unit), vp, parent)
		printInfo("Converted %s.%s to %s", opts.element, opts.field, opts.unit)
	}
	if opts.anchorX != "" {
		cfg = layout.ConvertAnchorX(cfg, layout.Anchor(opts.anchorX), vp, parent)
		printInfo("Re-anchored %s horizontally to %s", opts.element, opts.anchorX)
	}
	if opts.anchorY != "" {
		cfg = layout.ConvertAnchorY(cfg, layout.Anchor(opts.anchorY), vp, parent)
		printInfo("Re-anchored %s vertically to %s", opts.element, opts.anchorY)
	}

	if err := doc.ApplyConfig(opts.element, cfg); err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = input
	}
	if err := document.ExportFile(doc, output); err != nil {
		return err
	}
	printSuccess("Updated %s", docLabel(doc))
	printFile(output)
	return nil
}

// elementContext resolves the document and returns the engine config for
// the element with the given id plus the reference rectangle its values
// resolve against: the parent's resolved rectangle, or the viewport for
// root elements.
func elementContext(doc *document.Document, id string) (layout.Config, layout.Rect, error) {
	elems := doc.LayoutElements()
	idx := -1
	for i := range elems {
		if elems[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return layout.Config{}, layout.Rect{}, fmt.Errorf("no element with id %s", id)
	}

	resolved := doc.Resolve()
	rects := make(map[string]document.ResolvedRect, len(resolved))
	parentID := ""
	for _, r := range resolved {
		rects[r.ID] = r.Rect
		if r.ID == id {
			parentID = r.ParentID
		}
	}

	parent := doc.LayoutViewport().Rect()
	if pr, ok := rects[parentID]; parentID != "" && ok {
		parent = layout.Rect{X: pr.X, Y: pr.Y, W: pr.Width, H: pr.Height}
	}
	return elems[idx].Config, parent, nil
}
