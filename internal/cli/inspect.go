package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/anchorkit/anchorkit/pkg/document"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	width  float64 // viewport width override
	height float64 // viewport height override
	tree   bool    // show the containment tree instead of the element table
}

// inspectCommand creates the inspect command for examining documents.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show a document's resolved elements and containment tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width override")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "viewport height override")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "show the containment tree")

	return cmd
}

func (c *CLI) runInspect(input string, opts *inspectOpts) error {
	doc, err := document.ImportFile(input)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	if opts.width > 0 && opts.height > 0 {
		doc.Viewport = document.Viewport{Width: opts.width, Height: opts.height}
	}

	res := doc.Resolve()

	fmt.Println(StyleTitle.Render(docLabel(doc)))
	printKeyValue("viewport", fmt.Sprintf("%gx%g", doc.Viewport.Width, doc.Viewport.Height))
	printKeyValue("elements", fmt.Sprintf("%d", len(res)))
	printNewline()

	if opts.tree {
		printContainmentTree(res)
		return nil
	}
	fmt.Println(elementTable(res))
	return nil
}

// elementTable renders the resolved elements as a bordered table.
func elementTable(res []document.Resolved) string {
	rows := make([][]string, len(res))
	for i, r := range res {
		name := r.Name
		if name == "" {
			name = r.ID
		}
		parent := r.ParentID
		if parent == "" {
			parent = "—"
		}
		rows[i] = []string{
			name,
			defaultString(r.Kind, "box"),
			fmt.Sprintf("%.1f, %.1f", r.Rect.X, r.Rect.Y),
			fmt.Sprintf("%.1f × %.1f", r.Rect.Width, r.Rect.Height),
			fmt.Sprintf("%d", r.Z),
			parent,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Element", "Kind", "Position", "Size", "Z", "Parent").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 2 || col == 3 {
				return StyleNumber
			}
			if col == 5 {
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}

// printContainmentTree prints the parent hierarchy with indentation,
// children ordered by name under each parent.
func printContainmentTree(res []document.Resolved) {
	children := make(map[string][]document.Resolved)
	for _, r := range res {
		children[r.ParentID] = append(children[r.ParentID], r)
	}
	for _, kids := range children {
		sort.Slice(kids, func(i, j int) bool {
			return treeLabel(kids[i]) < treeLabel(kids[j])
		})
	}

	var walk func(parentID string, depth int)
	walk = func(parentID string, depth int) {
		for _, r := range children[parentID] {
			indent := strings.Repeat("  ", depth)
			label := treeLabel(r)
			geom := fmt.Sprintf("%.0f,%.0f %gx%g", r.Rect.X, r.Rect.Y, r.Rect.Width, r.Rect.Height)
			fmt.Println(indent + StyleValue.Render(label) + " " + StyleDim.Render(geom))
			walk(r.ID, depth+1)
		}
	}
	walk("", 0)
}

func treeLabel(r document.Resolved) string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
