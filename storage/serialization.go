// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/docpipe/core"
)

// Manifest entries are stored in MUS format: blob name, etag, content
// hash, chunk count, ingestion time as Unix microseconds.

// MarshalManifestEntry serializes a ManifestEntry to bytes.
func MarshalManifestEntry(entry *core.ManifestEntry) []byte {
	size := ord.String.Size(entry.Blob) +
		ord.String.Size(entry.ETag) +
		varint.Uint64.Size(entry.ContentHash) +
		varint.Int.Size(entry.Chunks) +
		varint.Int64.Size(entry.IngestedAt.UnixMicro())

	buf := make([]byte, size)
	n := ord.String.Marshal(entry.Blob, buf)
	n += ord.String.Marshal(entry.ETag, buf[n:])
	n += varint.Uint64.Marshal(entry.ContentHash, buf[n:])
	n += varint.Int.Marshal(entry.Chunks, buf[n:])
	varint.Int64.Marshal(entry.IngestedAt.UnixMicro(), buf[n:])
	return buf
}

// UnmarshalManifestEntry deserializes a ManifestEntry from bytes.
func UnmarshalManifestEntry(data []byte) (*core.ManifestEntry, error) {
	blob, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: blob: %w", ErrSerializationFailed, err)
	}

	etag, n1, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: etag: %w", ErrSerializationFailed, err)
	}
	n += n1

	hash, n1, err := varint.Uint64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: content hash: %w", ErrSerializationFailed, err)
	}
	n += n1

	chunks, n1, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: chunk count: %w", ErrSerializationFailed, err)
	}
	n += n1

	ingestedAt, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: ingested at: %w", ErrSerializationFailed, err)
	}

	return &core.ManifestEntry{
		Blob:        blob,
		ETag:        etag,
		ContentHash: hash,
		Chunks:      chunks,
		IngestedAt:  time.UnixMicro(ingestedAt).UTC(),
	}, nil
}
