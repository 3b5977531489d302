package storage

import (
	"testing"
	"time"

	"github.com/poiesic/docpipe/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestEntryRoundTrip(t *testing.T) {
	entry := &core.ManifestEntry{
		Blob:        "legal/contract.pdf",
		ETag:        `"0x8DC1234ABCD"`,
		ContentHash: core.ContentHash("extracted text"),
		Chunks:      7,
		IngestedAt:  time.Date(2025, 11, 3, 14, 30, 0, 0, time.UTC),
	}

	data := MarshalManifestEntry(entry)
	require.NotEmpty(t, data)

	got, err := UnmarshalManifestEntry(data)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestManifestEntryRoundTripZeroValues(t *testing.T) {
	entry := &core.ManifestEntry{
		Blob:       "empty.pdf",
		IngestedAt: time.UnixMicro(0).UTC(),
	}

	got, err := UnmarshalManifestEntry(MarshalManifestEntry(entry))
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestUnmarshalManifestEntryTruncated(t *testing.T) {
	entry := &core.ManifestEntry{
		Blob:        "contract.pdf",
		ETag:        "etag",
		ContentHash: 42,
		Chunks:      3,
		IngestedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	data := MarshalManifestEntry(entry)

	_, err := UnmarshalManifestEntry(data[:len(data)/2])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestUnmarshalManifestEntryGarbage(t *testing.T) {
	_, err := UnmarshalManifestEntry([]byte{})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
