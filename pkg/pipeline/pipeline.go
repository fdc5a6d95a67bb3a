// Package pipeline provides the core resolution pipeline for anchorkit.
//
// This package implements the complete load → resolve → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Resolve: Run the layout engine over a document, producing absolute
//     rectangles and the containment hierarchy
//  2. Render: Generate output in various formats (SVG, JSON, DOT,
//     Graphviz containment diagrams)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Formats: []string{"svg"},
//	    Labels:  true,
//	}
//	result, err := runner.Execute(ctx, doc, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Resolve only
//	res, err := runner.Resolve(ctx, doc, opts)
//
//	// Render with existing resolution
//	artifacts, err := runner.Render(ctx, doc, res, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anchorkit/anchorkit/pkg/cache"
	"github.com/anchorkit/anchorkit/pkg/document"
)

// Format constants for output formats.
const (
	// FormatSVG is the box drawing of the resolved layout.
	FormatSVG = "svg"

	// FormatJSON is the resolved-geometry data artifact.
	FormatJSON = "json"

	// FormatDOT is the containment hierarchy as Graphviz DOT source.
	FormatDOT = "dot"

	// FormatTree is the containment hierarchy rendered to SVG via Graphviz.
	FormatTree = "tree"

	// FormatTreePNG is the containment hierarchy rendered to PNG via Graphviz.
	FormatTreePNG = "tree-png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:     true,
	FormatJSON:    true,
	FormatDOT:     true,
	FormatTree:    true,
	FormatTreePNG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the resolution pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Resolve options. A non-zero viewport overrides the document's own,
	// re-resolving the same relative description against a different
	// surface.
	ViewportWidth  float64 `json:"viewport_width,omitempty"`
	ViewportHeight float64 `json:"viewport_height,omitempty"`
	Refresh        bool    `json:"refresh,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Labels   bool     `json:"labels,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`
	Tree     bool     `json:"tree,omitempty"`
	Scale    float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DocHash is the content hash of the document.
	DocHash string

	// Viewport is the viewport the document was resolved against.
	Viewport document.Viewport

	// Resolved contains the resolved elements in document order.
	Resolved []document.Resolved

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	ResolveTime  time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ResolveHit bool // Whether the resolution came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, json, dot, tree, tree-png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForResolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForResolve checks fields used by the resolve stage.
func (o *Options) ValidateForResolve() error {
	if o.ViewportWidth < 0 || o.ViewportHeight < 0 {
		return fmt.Errorf("viewport override cannot be negative (%gx%g)", o.ViewportWidth, o.ViewportHeight)
	}
	if (o.ViewportWidth > 0) != (o.ViewportHeight > 0) {
		return fmt.Errorf("viewport override requires both width and height")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidateFormats(o.Formats)
}

// HasOverride reports whether a viewport override is set.
func (o *Options) HasOverride() bool {
	return o.ViewportWidth > 0 && o.ViewportHeight > 0
}

// Viewport returns the effective viewport for a document: the override
// when set, the document's own otherwise.
func (o *Options) Viewport(doc *document.Document) document.Viewport {
	if o.HasOverride() {
		return document.Viewport{Width: o.ViewportWidth, Height: o.ViewportHeight}
	}
	return doc.Viewport
}

// ResolveKeyOpts returns cache key options for the resolve stage.
func (o *Options) ResolveKeyOpts(vp document.Viewport) cache.ResolveKeyOpts {
	return cache.ResolveKeyOpts{
		ViewportWidth:  vp.Width,
		ViewportHeight: vp.Height,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Labels:   o.Labels,
		Detailed: o.Detailed,
		Tree:     o.Tree,
		Scale:    o.Scale,
	}
}
