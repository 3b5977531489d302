package core

import "time"

// ManifestEntry records one successfully ingested blob. The ingestion
// pipeline consults the manifest on later runs and skips blobs whose
// ETag has not changed, keeping re-runs cheap without touching the
// search service.
type ManifestEntry struct {
	Blob        string // full blob name, manifest key
	ETag        string // blob version tag at ingestion time
	ContentHash uint64 // BLAKE2b hash of the cleaned extracted text
	Chunks      int    // number of index records written
	IngestedAt  time.Time
}
