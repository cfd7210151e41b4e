package service

import (
	"context"
	"fmt"

	"pdf-to-speech/internal/domain"
	apperrors "pdf-to-speech/pkg/errors"
)

// ConversionService sequences text extraction and speech synthesis
// into a single terminal outcome. It holds no state across requests;
// defaults come from configuration at construction time.
type ConversionService struct {
	extractor     domain.TextExtractor
	synthesizer   domain.SpeechSynthesizer
	logger        domain.Logger
	defaultVoice  string
	defaultOutput string
}

// NewConversionService creates a new conversion service instance
func NewConversionService(
	extractor domain.TextExtractor,
	synthesizer domain.SpeechSynthesizer,
	logger domain.Logger,
	defaultVoice string,
	defaultOutput string,
) *ConversionService {
	return &ConversionService{
		extractor:     extractor,
		synthesizer:   synthesizer,
		logger:        logger,
		defaultVoice:  defaultVoice,
		defaultOutput: defaultOutput,
	}
}

// Convert runs extract then synthesize, exactly once each, and maps
// every failure to an outcome message. Nothing escapes this boundary
// as a fault; unexpected panics become an unknown-kind failure.
func (s *ConversionService) Convert(ctx context.Context, request domain.ConversionRequest) (outcome domain.ConversionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Conversion panicked", fmt.Errorf("%v", r), "pdf", request.PDFPath)
			outcome = domain.ConversionOutcome{
				Success: false,
				Message: fmt.Sprintf("an unexpected error occurred during conversion: %v", r),
				Kind:    string(apperrors.KindUnknown),
			}
		}
	}()

	req := request.WithDefaults(s.defaultVoice, s.defaultOutput)
	s.logger.Info("Starting PDF to speech conversion", "pdf", req.PDFPath, "voice", req.VoiceID, "output", req.OutputPath)

	text, err := s.extractor.Extract(ctx, req.PDFPath)
	if err != nil {
		s.logger.Warn("Text extraction failed", "pdf", req.PDFPath, "kind", apperrors.KindOf(err), "error", err)
		return domain.ConversionOutcome{
			Success: false,
			Message: extractionMessage(err, req.PDFPath),
			Kind:    string(apperrors.KindOf(err)),
		}
	}
	s.logger.Debug("Text extracted", "pdf", req.PDFPath, "chars", len(text))

	if err := s.synthesizer.Synthesize(ctx, text, req.VoiceID, req.OutputPath); err != nil {
		s.logger.Warn("Speech synthesis failed", "voice", req.VoiceID, "kind", apperrors.KindOf(err), "error", err)
		return domain.ConversionOutcome{
			Success: false,
			Message: fmt.Sprintf("speech synthesis failed: %s", err.Error()),
			Kind:    string(apperrors.KindOf(err)),
		}
	}

	s.logger.Info("Conversion finished", "output", req.OutputPath)
	return domain.ConversionOutcome{
		Success: true,
		Message: fmt.Sprintf("successfully converted PDF to speech; audio saved to %q", req.OutputPath),
	}
}

// extractionMessage renders an extraction failure as a user-facing
// message naming the failure kind and the offending path.
func extractionMessage(err error, path string) string {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return fmt.Sprintf("PDF file not found at %q", path)
	case apperrors.KindEncrypted:
		return fmt.Sprintf("could not decrypt PDF %q; it may be password-protected", path)
	case apperrors.KindCorrupted:
		return fmt.Sprintf("could not read PDF %q; it may be corrupted or not a valid PDF", path)
	case apperrors.KindEmpty:
		return fmt.Sprintf("no text could be extracted from %q or the PDF is empty", path)
	default:
		return fmt.Sprintf("text extraction failed for %q: %s", path, err.Error())
	}
}
