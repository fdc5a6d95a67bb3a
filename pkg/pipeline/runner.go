package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anchorkit/anchorkit/pkg/cache"
	"github.com/anchorkit/anchorkit/pkg/document"
	"github.com/anchorkit/anchorkit/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete resolve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, doc *document.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Compute document hash for cache keys and API responses
	if docData, err := document.Marshal(doc); err == nil {
		result.DocHash = cache.Hash(docData)
	}

	// Stage 1: Resolve
	resolveStart := time.Now()
	res, vp, resolveHit, err := r.ResolveWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Resolved = res
	result.Viewport = vp
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.Stats.ElementCount = len(res)
	result.CacheInfo.ResolveHit = resolveHit

	r.Logger.Info("resolved layout",
		"elements", len(res),
		"viewport", fmt.Sprintf("%gx%g", vp.Width, vp.Height),
		"duration", result.Stats.ResolveTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, res, vp, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ResolveWithCacheInfo resolves a document with caching and returns
// cache hit info.
func (r *Runner) ResolveWithCacheInfo(ctx context.Context, doc *document.Document, opts Options) ([]document.Resolved, document.Viewport, bool, error) {
	if err := opts.ValidateForResolve(); err != nil {
		return nil, document.Viewport{}, false, err
	}
	r.applyLogger(&opts)

	vp := opts.Viewport(doc)

	docData, err := document.Marshal(doc)
	if err != nil {
		return nil, vp, false, err
	}
	cacheKey := r.Keyer.ResolveKey(cache.Hash(docData), opts.ResolveKeyOpts(vp))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached []document.Resolved
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "resolve")
				return cached, vp, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "resolve")
	}

	// Resolve
	start := time.Now()
	observability.Pipeline().OnResolveStart(ctx, doc.Name, len(doc.Elements))
	res, vp, err := ResolveDocument(doc, opts)
	observability.Pipeline().OnResolveComplete(ctx, doc.Name, len(doc.Elements), time.Since(start), err)
	if err != nil {
		return nil, vp, false, err
	}

	// Cache the result
	if data, err := json.Marshal(res); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLResolve)
		observability.Cache().OnCacheSet(ctx, "resolve", len(data))
	}

	return res, vp, false, nil // Cache miss
}

// Resolve is a convenience wrapper that calls ResolveWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Resolve(ctx context.Context, doc *document.Document, opts Options) ([]document.Resolved, error) {
	res, _, _, err := r.ResolveWithCacheInfo(ctx, doc, opts)
	return res, err
}

// RenderWithCacheInfo generates artifacts with caching and returns
// cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc *document.Document, res []document.Resolved, vp document.Viewport, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from resolved geometry
	resData, err := json.Marshal(res)
	if err != nil {
		return nil, false, fmt.Errorf("serialize resolution for cache key: %w", err)
	}
	cacheKeyHash := cache.Hash(resData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(cacheKeyHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	start := time.Now()
	for _, format := range opts.Formats {
		observability.Pipeline().OnRenderStart(ctx, format)
	}
	rendered, err := RenderArtifacts(ctx, doc, res, vp, opts)
	for _, format := range opts.Formats {
		observability.Pipeline().OnRenderComplete(ctx, format, len(rendered[format]), time.Since(start), err)
	}
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(cacheKeyHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc *document.Document, res []document.Resolved, vp document.Viewport, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, res, vp, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
