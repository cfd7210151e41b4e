package extractor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"pdf-to-speech/internal/domain"
	apperrors "pdf-to-speech/pkg/errors"

	"github.com/ledongthuc/pdf"
)

// NativeExtractor reads PDFs with the pure-Go pdf package. Encrypted
// documents are opened with an empty password only; anything stronger
// is reported as an encrypted failure.
type NativeExtractor struct {
	logger domain.Logger
}

// NewNativeExtractor creates the default text extractor
func NewNativeExtractor(logger domain.Logger) *NativeExtractor {
	return &NativeExtractor{
		logger: logger,
	}
}

// Extract returns the concatenated text of every page, joined by
// newlines and trimmed. It never panics; malformed input surfaces as
// a corrupted failure.
func (e *NativeExtractor) Extract(ctx context.Context, pdfPath string) (text string, err error) {
	if _, statErr := os.Stat(pdfPath); statErr != nil {
		return "", apperrors.NewNotFound(pdfPath)
	}

	f, openErr := os.Open(pdfPath)
	if openErr != nil {
		return "", apperrors.NewUnknown("failed to open PDF", openErr)
	}
	defer f.Close()

	info, statErr := f.Stat()
	if statErr != nil {
		return "", apperrors.NewUnknown("failed to stat PDF", statErr)
	}

	// The pdf package panics on some malformed inputs. Recover into a
	// corrupted failure so extraction never throws past this boundary.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apperrors.NewCorrupted(pdfPath, fmt.Errorf("%v", r))
		}
	}()

	// Returning "" from the password callback means only the empty
	// password is ever tried.
	reader, readErr := pdf.NewReaderEncrypted(f, info.Size(), func() string { return "" })
	if readErr != nil {
		if errors.Is(readErr, pdf.ErrInvalidPassword) {
			return "", apperrors.NewEncrypted(pdfPath, readErr)
		}
		return "", apperrors.NewCorrupted(pdfPath, readErr)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		select {
		case <-ctx.Done():
			return "", apperrors.NewUnknown("extraction cancelled", ctx.Err())
		default:
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, textErr := page.GetPlainText(nil)
		if textErr != nil {
			e.logger.Warn("Failed to extract text from page", "page", i, "total", numPages, "error", textErr)
			continue
		}
		pages = append(pages, pageText)
	}

	full := strings.TrimSpace(strings.Join(pages, "\n"))
	if full == "" {
		return "", apperrors.NewEmpty(pdfPath)
	}
	return full, nil
}
