// Package cache provides pluggable byte caching for pipeline artifacts.
//
// Resolution itself is cheap enough to run on every keystroke; what is
// worth caching are rendered artifacts (SVG, PNG via Graphviz) keyed by a
// content hash of the document plus the options that shaped the output.
// Keys are generated through a [Keyer] so CLI and server share one
// namespace scheme.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per content type. Resolved geometry is invalidated by any
// document or viewport change (the key embeds the content hash), so TTLs
// exist mainly to bound disk usage.
const (
	// TTLResolve is the lifetime of cached resolved geometry.
	TTLResolve = 24 * time.Hour

	// TTLArtifact is the lifetime of rendered artifacts.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// ResolveKeyOpts are the options that shape resolved geometry.
type ResolveKeyOpts struct {
	ViewportWidth  float64
	ViewportHeight float64
}

// ArtifactKeyOpts are the options that shape a rendered artifact.
type ArtifactKeyOpts struct {
	Format   string
	Labels   bool
	Detailed bool
	Tree     bool
	Scale    float64
}

// Keyer generates cache keys. Implementations must be deterministic:
// identical inputs always produce identical keys.
type Keyer interface {
	// ResolveKey generates a key for resolved geometry.
	ResolveKey(docHash string, opts ResolveKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a prefix per content type
// plus a SHA-256 over the identifying parts.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ResolveKey generates a key for resolved geometry.
func (k *DefaultKeyer) ResolveKey(docHash string, opts ResolveKeyOpts) string {
	return hashKey("resolve", docHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g.
// per-user caches when the server fronts a shared store.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ResolveKey generates a prefixed key for resolved geometry.
func (k *ScopedKeyer) ResolveKey(docHash string, opts ResolveKeyOpts) string {
	return k.prefix + k.inner.ResolveKey(docHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(docHash, opts)
}
