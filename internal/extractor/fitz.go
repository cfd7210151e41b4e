package extractor

import (
	"context"
	"errors"
	"os"
	"strings"

	"pdf-to-speech/internal/domain"
	apperrors "pdf-to-speech/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// FitzExtractor reads PDFs through MuPDF. It handles damaged files
// better than the native backend but needs the MuPDF shared library
// at runtime.
type FitzExtractor struct {
	logger domain.Logger
}

// NewFitzExtractor creates a MuPDF-backed text extractor
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{
		logger: logger,
	}
}

// Extract returns the concatenated text of every page, joined by
// newlines and trimmed.
func (e *FitzExtractor) Extract(ctx context.Context, pdfPath string) (string, error) {
	if _, statErr := os.Stat(pdfPath); statErr != nil {
		return "", apperrors.NewNotFound(pdfPath)
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		// MuPDF already tried the empty password before reporting this.
		if errors.Is(err, fitz.ErrNeedsPassword) {
			return "", apperrors.NewEncrypted(pdfPath, err)
		}
		return "", apperrors.NewCorrupted(pdfPath, err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for i := 0; i < numPages; i++ {
		select {
		case <-ctx.Done():
			return "", apperrors.NewUnknown("extraction cancelled", ctx.Err())
		default:
		}

		e.logger.Debug("Extracting page", "page", i+1, "total", numPages)
		text, textErr := doc.Text(i)
		if textErr != nil {
			e.logger.Warn("Failed to extract text from page", "page", i+1, "total", numPages, "error", textErr)
			continue
		}
		pages = append(pages, text)
	}

	full := strings.TrimSpace(strings.Join(pages, "\n"))
	if full == "" {
		return "", apperrors.NewEmpty(pdfPath)
	}
	return full, nil
}
