package port

import "context"

// TextExtractor converts an uploaded document's bytes to raw text.
// Implementations return an error when the content cannot be read; an empty
// string with a nil error means the document carried no text.
type TextExtractor interface {
	ExtractText(ctx context.Context, content []byte) (string, error)
}
