// Package extract converts uploaded SOF documents to plain text. The
// parse pipeline never sees file bytes; everything downstream of this
// package works on the extracted text only.
package extract

import (
	"context"
	"fmt"
	"log"
	"strings"

	"sofdesk/internal/domain"
)

// Extractor routes a document to the decoder for its file type.
type Extractor struct{}

// New creates a text extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractText converts fileBytes to plain text according to fileType.
// Returns domain.ErrEmptyDocument when the document contains no text.
func (e *Extractor) ExtractText(ctx context.Context, fileBytes []byte, fileType domain.FileType) (string, error) {
	var (
		text string
		err  error
	)
	switch fileType {
	case domain.FileTypePDF:
		text, err = extractPDF(fileBytes)
	case domain.FileTypeDOCX:
		text, err = extractDOCX(fileBytes)
	case domain.FileTypeTXT:
		text = strings.TrimPrefix(string(fileBytes), "\ufeff")
	default:
		return "", fmt.Errorf("extract.ExtractText: %w: %s", domain.ErrUnsupportedFileType, fileType)
	}
	if err != nil {
		return "", fmt.Errorf("extract.ExtractText: %s: %w", fileType, err)
	}
	if strings.TrimSpace(text) == "" {
		log.Printf("extract.ExtractText: %s document yielded no text", fileType)
		return "", domain.ErrEmptyDocument
	}
	return text, nil
}
