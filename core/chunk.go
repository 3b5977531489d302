package core

import (
	"fmt"
	"iter"
)

const (
	// DefaultChunkSize is the default target chunk length in runes.
	DefaultChunkSize = 1500

	// DefaultOverlap is the default number of runes shared between
	// consecutive chunks.
	DefaultOverlap = 200
)

// ChunkConfig controls how document text is split into chunks.
// Sizes are measured in runes, not bytes, so multi-byte text chunks the
// same way regardless of encoding width.
type ChunkConfig struct {
	// ChunkSize is the target maximum length of each chunk.
	ChunkSize int

	// Overlap is the number of trailing runes each chunk shares with the
	// start of its successor. Must be smaller than ChunkSize, otherwise
	// the split would never advance.
	Overlap int
}

// DefaultChunkConfig returns the standard ingestion parameters:
// 1500-rune chunks with a 200-rune overlap.
func DefaultChunkConfig() ChunkConfig {
	return ChunkConfig{ChunkSize: DefaultChunkSize, Overlap: DefaultOverlap}
}

// Validate checks that the configuration describes a terminating split.
//
// Rules:
//   - ChunkSize must be positive
//   - Overlap must not be negative
//   - Overlap must be strictly less than ChunkSize
func (c ChunkConfig) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidChunkConfig, c.ChunkSize)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("%w: overlap must not be negative, got %d", ErrInvalidChunkConfig, c.Overlap)
	}
	if c.Overlap >= c.ChunkSize {
		return fmt.Errorf("%w: overlap %d must be smaller than chunk size %d", ErrInvalidChunkConfig, c.Overlap, c.ChunkSize)
	}
	return nil
}

// SplitText splits text into overlapping chunks for the given document.
//
// The returned sequence is lazy and restartable: ranging over it again
// replays the same chunks. Starting at offset 0, each chunk covers up to
// ChunkSize runes and the offset advances by ChunkSize - Overlap, so
// every chunk except possibly the last shares its trailing Overlap runes
// with the start of the next. The final chunk may be shorter than
// ChunkSize. Empty text produces an empty sequence.
//
// The configuration is validated before the first chunk is produced;
// iteration itself cannot fail.
func SplitText(documentID, text string, cfg ChunkConfig) (iter.Seq[TextChunk], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runes := []rune(text)
	step := cfg.ChunkSize - cfg.Overlap

	return func(yield func(TextChunk) bool) {
		index := 0
		for start := 0; start < len(runes); start += step {
			end := start + cfg.ChunkSize
			if end > len(runes) {
				end = len(runes)
			}
			chunk := TextChunk{
				DocumentID: documentID,
				Index:      index,
				Content:    string(runes[start:end]),
			}
			if !yield(chunk) {
				return
			}
			if end == len(runes) {
				return
			}
			index++
		}
	}, nil
}

// ChunkDocument materializes the chunks of a document's cleaned text.
func ChunkDocument(doc Document, cfg ChunkConfig) ([]TextChunk, error) {
	seq, err := SplitText(doc.ID, doc.Text, cfg)
	if err != nil {
		return nil, err
	}
	var chunks []TextChunk
	for chunk := range seq {
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// ChunkCount returns the number of chunks SplitText will produce for a
// text of length n runes, without producing them.
func ChunkCount(n int, cfg ChunkConfig) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	if n <= cfg.ChunkSize {
		return 1, nil
	}
	step := cfg.ChunkSize - cfg.Overlap
	return (n - cfg.Overlap + step - 1) / step, nil
}
