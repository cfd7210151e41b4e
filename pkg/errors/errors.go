package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the category of a conversion failure
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindEncrypted          Kind = "encrypted"
	KindCorrupted          Kind = "corrupted"
	KindEmpty              Kind = "empty"
	KindNoAudio            Kind = "no_audio"
	KindBackendUnavailable Kind = "backend_unavailable"
	KindUnknown            Kind = "unknown"
)

// ConversionError represents a structured conversion failure
type ConversionError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *ConversionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// NewNotFound creates a failure for a PDF path that names no readable file
func NewNotFound(path string) *ConversionError {
	return &ConversionError{
		Kind:    KindNotFound,
		Message: "file not found",
		Path:    path,
	}
}

// NewEncrypted creates a failure for a PDF protected by more than an empty password
func NewEncrypted(path string, cause error) *ConversionError {
	return &ConversionError{
		Kind:    KindEncrypted,
		Message: "document is password-protected",
		Path:    path,
		Cause:   cause,
	}
}

// NewCorrupted creates a failure for a malformed or unreadable PDF structure
func NewCorrupted(path string, cause error) *ConversionError {
	return &ConversionError{
		Kind:    KindCorrupted,
		Message: "document is corrupted or not a valid PDF",
		Path:    path,
		Cause:   cause,
	}
}

// NewEmpty creates a failure for extraction or synthesis input that holds no text
func NewEmpty(path string) *ConversionError {
	return &ConversionError{
		Kind:    KindEmpty,
		Message: "no text to speak",
		Path:    path,
	}
}

// NewNoAudio creates a failure for a backend that produced no audio data
func NewNoAudio(message string) *ConversionError {
	return &ConversionError{
		Kind:    KindNoAudio,
		Message: message,
	}
}

// NewBackendUnavailable creates a failure for transport errors talking to the TTS backend
func NewBackendUnavailable(message string, cause error) *ConversionError {
	return &ConversionError{
		Kind:    KindBackendUnavailable,
		Message: message,
		Cause:   cause,
	}
}

// NewUnknown wraps an unexpected error, preserving its message
func NewUnknown(message string, cause error) *ConversionError {
	return &ConversionError{
		Kind:    KindUnknown,
		Message: message,
		Cause:   cause,
	}
}

// KindOf returns the failure kind of err, or KindUnknown for untagged errors
func KindOf(err error) Kind {
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return convErr.Kind
	}
	return KindUnknown
}

// IsKind checks if the error carries a specific failure kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// StatusCodeForKind returns the HTTP status code for a failure kind
func StatusCodeForKind(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindEncrypted, KindCorrupted, KindEmpty:
		return http.StatusUnprocessableEntity
	case KindNoAudio:
		return http.StatusBadGateway
	case KindBackendUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	return StatusCodeForKind(KindOf(err))
}
