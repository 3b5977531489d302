package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
)

// PDFExtractor implements Extractor for PDF documents.
// Pages are extracted individually and joined with newlines, so page
// boundaries survive as line breaks in the chunked text.
type PDFExtractor struct{}

var _ Extractor = PDFExtractor{}

// NewPDFExtractor returns an extractor for PDF bytes.
func NewPDFExtractor() Extractor {
	return PDFExtractor{}
}

// ExtractText converts PDF bytes to plain text.
func (PDFExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	loader := documentloaders.NewPDF(bytes.NewReader(data), int64(len(data)))
	docs, err := loader.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	pages := make([]string, 0, len(docs))
	for _, doc := range docs {
		pages = append(pages, doc.PageContent)
	}
	return strings.Join(pages, "\n"), nil
}
