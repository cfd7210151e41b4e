package extractor

import (
	"pdf-to-speech/internal/domain"
)

// Supported backend names for config's EXTRACTOR_BACKEND.
const (
	BackendNative = "native"
	BackendFitz   = "fitz"
)

// New returns the text extractor selected by backend. Unknown names
// fall back to the native backend.
func New(backend string, logger domain.Logger) domain.TextExtractor {
	switch backend {
	case BackendFitz:
		return NewFitzExtractor(logger)
	case BackendNative:
		return NewNativeExtractor(logger)
	default:
		logger.Warn("Unknown extractor backend, using native", "backend", backend)
		return NewNativeExtractor(logger)
	}
}
