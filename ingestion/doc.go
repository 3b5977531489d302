// Package ingestion provides pipeline orchestration for document
// ingestion.
//
// The Pipeline type manages the full workflow for each PDF blob:
//   - Downloading and extracting plain text
//   - Chunking with overlap and embedding each chunk
//   - Uploading index records to the search service
//   - Recording the result in the ingestion manifest
//
// Documents are processed concurrently on a bounded worker pool. One
// failing document is logged and counted without affecting the rest of
// the run; per-chunk ordering within a document is always preserved.
package ingestion
