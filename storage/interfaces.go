package storage

import (
	"context"

	"github.com/poiesic/docpipe/core"
)

// ManifestRepository persists ingestion manifest entries keyed by blob
// name. Implementations must be thread-safe and support concurrent
// access.
type ManifestRepository interface {
	// Get retrieves the manifest entry for a blob.
	// Returns ErrNotFound if the blob has never been ingested.
	Get(ctx context.Context, blob string) (*core.ManifestEntry, error)

	// Put stores or replaces the manifest entry for a blob.
	Put(ctx context.Context, entry *core.ManifestEntry) error

	// Delete removes the manifest entry for a blob.
	// Deleting a missing entry is not an error.
	Delete(ctx context.Context, blob string) error

	// Close closes the storage backend and releases resources.
	Close() error
}
