package core

import (
	"encoding/binary"
	"path"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
	"github.com/google/uuid"
)

// Document is the extracted plain text of a single source blob.
type Document struct {
	ID     string // stable identifier derived from the blob name
	Source string // full blob name, kept on every index record
	Text   string
}

// TextChunk is a contiguous window of a document's text prepared for
// independent embedding. Index is zero-based and orders chunks within
// their document.
type TextChunk struct {
	DocumentID string
	Index      int
	Content    string
}

// IndexRecord is the shape uploaded to the search index. The record key
// combines the document ID and the chunk index, so re-uploading the same
// document overwrites its previous records in place.
type IndexRecord struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	ChunkID    string    `json:"chunk_id"`
	Content    string    `json:"content"`
	Embedding  []float32 `json:"embedding"`
	Source     string    `json:"source"`
}

// NewIndexRecord builds the index record for a chunk and its embedding.
func NewIndexRecord(chunk TextChunk, embedding []float32, source string) IndexRecord {
	return IndexRecord{
		ID:         chunk.DocumentID + "-" + strconv.Itoa(chunk.Index),
		DocumentID: chunk.DocumentID,
		ChunkID:    strconv.Itoa(chunk.Index),
		Content:    chunk.Content,
		Embedding:  embedding,
		Source:     source,
	}
}

// DocumentIDFromBlobName derives a document identifier from a blob name:
// the base name without its extension. A blob whose name reduces to an
// empty stem gets a random UUID instead.
func DocumentIDFromBlobName(name string) string {
	base := path.Base(name)
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "" || stem == "." || stem == "/" {
		return uuid.NewString()
	}
	return stem
}

// ContentHash returns a 64-bit BLAKE2b digest of text. Identical text
// always produces an identical hash, so the ingestion manifest can tell
// whether a document changed since its last upload.
func ContentHash(text string) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}

// CleanText normalizes extracted document text before chunking: carriage
// returns become newlines, tabs become spaces, and surrounding whitespace
// is trimmed.
func CleanText(text string) string {
	cleaned := strings.ReplaceAll(text, "\r", "\n")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	return strings.TrimSpace(cleaned)
}
