package port

import (
	"context"

	"sofdesk/internal/domain"
)

// TextExtractor converts an uploaded document to plain text. The parse
// core only ever sees the extracted text, never file bytes.
type TextExtractor interface {
	ExtractText(ctx context.Context, fileBytes []byte, fileType domain.FileType) (string, error)
}
