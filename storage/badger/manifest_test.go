package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/docpipe/core"
	"github.com/poiesic/docpipe/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) storage.ManifestRepository {
	t.Helper()

	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	repo, err := NewManifestRepository(backend)
	require.NoError(t, err)
	return repo
}

func testEntry(blob string) *core.ManifestEntry {
	return &core.ManifestEntry{
		Blob:        blob,
		ETag:        `"0xABC"`,
		ContentHash: core.ContentHash(blob),
		Chunks:      3,
		IngestedAt:  time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestManifestPutGet(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	entry := testEntry("legal/contract.pdf")
	require.NoError(t, repo.Put(ctx, entry))

	got, err := repo.Get(ctx, "legal/contract.pdf")
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestManifestGetMissing(t *testing.T) {
	repo := setupTestRepository(t)

	_, err := repo.Get(context.Background(), "never-ingested.pdf")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestManifestPutReplaces(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	entry := testEntry("contract.pdf")
	require.NoError(t, repo.Put(ctx, entry))

	updated := testEntry("contract.pdf")
	updated.ETag = `"0xDEF"`
	updated.Chunks = 5
	require.NoError(t, repo.Put(ctx, updated))

	got, err := repo.Get(ctx, "contract.pdf")
	require.NoError(t, err)
	assert.Equal(t, `"0xDEF"`, got.ETag)
	assert.Equal(t, 5, got.Chunks)
}

func TestManifestDelete(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testEntry("contract.pdf")))
	require.NoError(t, repo.Delete(ctx, "contract.pdf"))

	_, err := repo.Get(ctx, "contract.pdf")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestManifestDeleteMissingIsNoError(t *testing.T) {
	repo := setupTestRepository(t)
	assert.NoError(t, repo.Delete(context.Background(), "missing.pdf"))
}

func TestManifestEmptyKey(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyKey)

	assert.ErrorIs(t, repo.Put(ctx, &core.ManifestEntry{}), storage.ErrEmptyKey)
	assert.ErrorIs(t, repo.Put(ctx, nil), storage.ErrEmptyKey)
	assert.ErrorIs(t, repo.Delete(ctx, ""), storage.ErrEmptyKey)
}

func TestManifestClosedBackend(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)

	repo, err := NewManifestRepository(backend)
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	_, err = repo.Get(context.Background(), "contract.pdf")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestManifestCancelledContext(t *testing.T) {
	repo := setupTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Get(ctx, "contract.pdf")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenBackendOnDisk(t *testing.T) {
	dir := t.TempDir()

	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)

	repo, err := NewManifestRepository(backend)
	require.NoError(t, err)
	require.NoError(t, repo.Put(context.Background(), testEntry("a.pdf")))
	require.NoError(t, backend.Close())

	// Reopen and confirm the entry survived.
	backend, err = OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()

	repo, err = NewManifestRepository(backend)
	require.NoError(t, err)

	got, err := repo.Get(context.Background(), "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", got.Blob)
}
