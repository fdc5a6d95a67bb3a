package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anchorkit/anchorkit/pkg/document"
	"github.com/anchorkit/anchorkit/pkg/pipeline"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	output  string  // output file for resolved JSON (default stdout with -o "")
	width   float64 // viewport width override
	height  float64 // viewport height override
	refresh bool    // bypass the resolution cache
	noCache bool    // disable caching entirely
	quiet   bool    // suppress the summary, emit resolved JSON only
}

// resolveCommand creates the resolve command for running the layout engine.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Resolve a layout document to absolute pixel geometry",
		Long: `Resolve runs the layout engine over a document: element sizes and
positions are converted from their unit and anchor relative descriptions
into absolute pixel rectangles, and the containment hierarchy is derived
from the resolved geometry.

The resolved elements are written as JSON. Pass --width and --height to
resolve against a different viewport than the one stored in the document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file for resolved JSON (default stdout)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width override")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "viewport height override")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached resolution exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the summary output")

	return cmd
}

func (c *CLI) runResolve(cmd *cobra.Command, input string, opts *resolveOpts) error {
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
		Logger:         c.Logger,
	}

	res, vp, cached, err := runner.ResolveWithCacheInfo(ctx, doc, popts)
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := document.WriteResolved(res, out); err != nil {
		return err
	}

	// Keep stdout clean when the JSON itself goes there.
	if opts.quiet || opts.output == "" {
		return nil
	}
	printSuccess("Resolved %s against %gx%g viewport", docLabel(doc), vp.Width, vp.Height)
	printFile(opts.output)
	printStats(len(res), countRoots(res), cached)
	printNextStep("Render it", fmt.Sprintf("anchorkit render %s", input))
	return nil
}

// countRoots counts resolved elements with no containing parent.
func countRoots(res []document.Resolved) int {
	n := 0
	for _, r := range res {
		if r.ParentID == "" {
			n++
		}
	}
	return n
}

// docLabel returns a display name for a document.
func docLabel(doc *document.Document) string {
	if doc.Name != "" {
		return doc.Name
	}
	if doc.ID != "" {
		return doc.ID
	}
	return fmt.Sprintf("document (%d elements)", len(doc.Elements))
}
