package pipeline

import (
	"fmt"

	"github.com/anchorkit/anchorkit/pkg/document"
)

// ResolveDocument validates the document and runs the layout engine
// against the effective viewport (the document's own, or the override
// from opts). The document itself is not modified.
func ResolveDocument(doc *document.Document, opts Options) ([]document.Resolved, document.Viewport, error) {
	if err := doc.Validate(); err != nil {
		return nil, document.Viewport{}, fmt.Errorf("validate document: %w", err)
	}

	vp := opts.Viewport(doc)
	work := *doc
	work.Viewport = vp
	return work.Resolve(), vp, nil
}
