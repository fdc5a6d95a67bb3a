// Package store provides persistence for layout documents.
//
// This package defines a storage interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI applications
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable shared documents
//
// # Persistence Contract
//
// Only the relative description is stored: a document's resolved geometry
// is recomputed after every load and never written back. Backends treat
// documents as opaque validated values and make no attempt to merge
// concurrent writes - last write wins.
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.config/anchorkit/documents/
//
//	// Multi-instance
//	st, err := store.NewRedisStore(ctx, store.RedisConfig{Addr: "localhost:6379"})
//
// Manage documents:
//
//	doc := document.New("homepage", 1280, 800)
//	if err := st.Put(ctx, doc); err != nil {
//	    return err
//	}
//	doc, err := st.Get(ctx, doc.ID)
//	if errors.Is(err, store.ErrNotFound) {
//	    // No such document
//	}
package store

import (
	"context"
	"errors"

	"github.com/anchorkit/anchorkit/pkg/document"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Store is the interface for document storage backends.
type Store interface {
	// Get retrieves a document by id.
	// Returns ErrNotFound if the document doesn't exist.
	Get(ctx context.Context, id string) (*document.Document, error)

	// Put stores a document, overwriting any previous version.
	Put(ctx context.Context, doc *document.Document) error

	// Delete removes a document. Deleting a missing document returns
	// ErrNotFound.
	Delete(ctx context.Context, id string) error

	// List returns the ids of all stored documents, sorted.
	List(ctx context.Context) ([]string, error)

	// Close releases any resources held by the backend.
	Close(ctx context.Context) error
}
