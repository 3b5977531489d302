package ingestion

import "errors"

var (
	// ErrSourceRequired is returned when a blob source is not provided.
	ErrSourceRequired = errors.New("blob source required")

	// ErrExtractorRequired is returned when a text extractor is not provided.
	ErrExtractorRequired = errors.New("text extractor required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrIndexerRequired is returned when a search indexer is not provided.
	ErrIndexerRequired = errors.New("search indexer required")

	// ErrInvalidMaxAttempts is returned when a retry is configured with a
	// non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
)
