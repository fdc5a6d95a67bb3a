package render

import (
	"encoding/json"

	"github.com/anchorkit/anchorkit/pkg/document"
)

// JSONOption configures JSON artifact rendering via [JSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	tree bool
}

// WithJSONTree includes a parent-to-children adjacency map in the
// output, so consumers can walk the containment hierarchy without
// re-deriving it from the parent fields. Root elements appear under
// the empty-string key.
func WithJSONTree() JSONOption { return func(r *jsonRenderer) { r.tree = true } }

type jsonOutput struct {
	Document string              `json:"document,omitempty"`
	Name     string              `json:"name,omitempty"`
	Viewport jsonViewport        `json:"viewport"`
	Elements []document.Resolved `json:"elements"`
	Tree     map[string][]string `json:"tree,omitempty"`
}

type jsonViewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// JSON exports a resolved document as a pretty-printed JSON artifact.
// This is the data interchange format for external tooling: each
// element carries both its persisted relative description and the
// derived absolute rectangle and parent.
//
// The resolved fields are derived output. Importing an artifact back
// as a document reads only the relative description; rectangles are
// always recomputed.
func JSON(doc *document.Document, res []document.Resolved, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Elements: res}
	if doc != nil {
		out.Document = doc.ID
		out.Name = doc.Name
		out.Viewport = jsonViewport{Width: doc.Viewport.Width, Height: doc.Viewport.Height}
	}
	if r.tree {
		out.Tree = buildTree(res)
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildTree(res []document.Resolved) map[string][]string {
	tree := make(map[string][]string)
	for _, r := range res {
		tree[r.ParentID] = append(tree[r.ParentID], r.ID)
	}
	return tree
}
