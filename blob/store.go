package blob

import (
	"context"
	"strings"
)

// Object identifies a single blob in the source container.
type Object struct {
	Name string
	ETag string // opaque version tag, changes whenever the blob content changes
}

// Source lists and fetches PDF blobs from a container.
// Implementations must be thread-safe for concurrent use.
type Source interface {
	// List returns the PDF objects in the container, already filtered by
	// extension. Order follows the underlying listing.
	List(ctx context.Context) ([]Object, error)

	// Download fetches the raw bytes of a blob by name.
	Download(ctx context.Context, name string) ([]byte, error)
}

// Extractor converts raw document bytes into plain text.
type Extractor interface {
	// ExtractText returns the plain text of a document. An empty result
	// means the document has no extractable text and should be skipped.
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// IsPDF reports whether a blob name carries a .pdf extension,
// case-insensitively.
func IsPDF(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

// FilterPDFs returns the subset of objects whose names end in .pdf,
// preserving order.
func FilterPDFs(objects []Object) []Object {
	var pdfs []Object
	for _, obj := range objects {
		if IsPDF(obj.Name) {
			pdfs = append(pdfs, obj)
		}
	}
	return pdfs
}
