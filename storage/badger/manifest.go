package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/docpipe/core"
	"github.com/poiesic/docpipe/storage"
)

// manifestPrefix namespaces manifest keys inside the database.
const manifestPrefix = "manifest"

// makeManifestKey generates the key for a blob's manifest entry.
func makeManifestKey(blob string) []byte {
	return []byte(manifestPrefix + ":" + blob)
}

// ManifestRepository implements storage.ManifestRepository on BadgerDB.
type ManifestRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.ManifestRepository = (*ManifestRepository)(nil)

// NewManifestRepository creates a manifest repository over an open
// backend.
//
// Returns storage.ManifestRepository interface to enforce abstraction.
func NewManifestRepository(backend *Backend) (storage.ManifestRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &ManifestRepository{
		backend: backend,
		logger:  slog.Default().With("component", "manifest"),
	}, nil
}

// Get retrieves the manifest entry for a blob.
func (r *ManifestRepository) Get(ctx context.Context, blob string) (*core.ManifestEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if blob == "" {
		return nil, storage.ErrEmptyKey
	}

	var entry *core.ManifestEntry
	err := r.backend.View(func(txn *badger.Txn) error {
		item, err := txn.Get(makeManifestKey(blob))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = storage.UnmarshalManifestEntry(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Put stores or replaces the manifest entry for a blob.
func (r *ManifestRepository) Put(ctx context.Context, entry *core.ManifestEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if entry == nil || entry.Blob == "" {
		return storage.ErrEmptyKey
	}

	data := storage.MarshalManifestEntry(entry)
	return r.backend.Update(func(txn *badger.Txn) error {
		return txn.Set(makeManifestKey(entry.Blob), data)
	})
}

// Delete removes the manifest entry for a blob.
func (r *ManifestRepository) Delete(ctx context.Context, blob string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if blob == "" {
		return storage.ErrEmptyKey
	}

	return r.backend.Update(func(txn *badger.Txn) error {
		return txn.Delete(makeManifestKey(blob))
	})
}

// Close is a no-op for the repository itself; the shared backend owns
// the database handle.
func (r *ManifestRepository) Close() error {
	return nil
}
