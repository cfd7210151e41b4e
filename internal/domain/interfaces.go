package domain

import "context"

// TextExtractor extracts all text from a PDF file. Extraction is
// all-or-nothing: a failed call returns a tagged *errors.ConversionError
// and no partial text.
type TextExtractor interface {
	Extract(ctx context.Context, pdfPath string) (string, error)
}

// SpeechSynthesizer sends text to a TTS backend and writes the audio
// to outputPath, overwriting any existing file. A nil error means the
// audio was fully written.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voiceID, outputPath string) error

	// ListVoices queries the backend's voice catalog. An empty result
	// is not an error; callers render an unreachable catalog as an
	// empty list.
	ListVoices(ctx context.Context, filter VoiceFilter) ([]Voice, error)
}

// ConversionService sequences extraction and synthesis into a single
// terminal outcome.
type ConversionService interface {
	Convert(ctx context.Context, request ConversionRequest) ConversionOutcome
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetUploadPath() string
	GetMaxFileSize() int64
	GetDefaultVoice() string
	GetDefaultOutputPath() string
	GetExtractorBackend() string
	GetTTSBackend() string
	GetOpenAIKey() string
	GetOpenAIBaseURL() string
	GetOpenAITTSModel() string
}
