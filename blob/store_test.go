package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want bool
	}{
		{name: "lowercase", blob: "contract.pdf", want: true},
		{name: "uppercase", blob: "CONTRACT.PDF", want: true},
		{name: "mixed case", blob: "Contract.Pdf", want: true},
		{name: "nested path", blob: "legal/2024/contract.pdf", want: true},
		{name: "text file", blob: "notes.txt", want: false},
		{name: "pdf in the middle", blob: "report.pdf.bak", want: false},
		{name: "no extension", blob: "contract", want: false},
		{name: "empty", blob: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPDF(tt.blob))
		})
	}
}

func TestFilterPDFs(t *testing.T) {
	objects := []Object{
		{Name: "a.pdf", ETag: "1"},
		{Name: "b.txt", ETag: "2"},
		{Name: "c.PDF", ETag: "3"},
		{Name: "d.docx", ETag: "4"},
	}

	pdfs := FilterPDFs(objects)

	assert.Len(t, pdfs, 2)
	assert.Equal(t, "a.pdf", pdfs[0].Name)
	assert.Equal(t, "c.PDF", pdfs[1].Name)
}

func TestFilterPDFsEmpty(t *testing.T) {
	assert.Empty(t, FilterPDFs(nil))
	assert.Empty(t, FilterPDFs([]Object{{Name: "a.txt"}}))
}
