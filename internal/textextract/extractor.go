// Package textextract converts uploaded claim documents to raw text.
package textextract

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"claimflow/internal/domain"
	"claimflow/internal/port"
)

// Extractor routes content to a format-specific extractor based on its
// detected MIME type. PDFs go to the PDF extractor, plain text passes through.
type Extractor struct {
	pdf port.TextExtractor
}

// New creates an Extractor backed by pdfcpu for PDFs.
func New() *Extractor {
	return NewWithPDF(NewPDFExtractor())
}

// NewWithPDF creates an Extractor with a custom PDF extractor.
func NewWithPDF(pdf port.TextExtractor) *Extractor {
	return &Extractor{pdf: pdf}
}

func (e *Extractor) ExtractText(ctx context.Context, content []byte) (string, error) {
	contentType := http.DetectContentType(content)
	switch {
	case contentType == "application/pdf":
		return e.pdf.ExtractText(ctx, content)
	case strings.HasPrefix(contentType, "text/plain"):
		return string(content), nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, contentType)
	}
}
