package synthesizer

import (
	"pdf-to-speech/internal/domain"
)

// Supported backend names for config's TTS_BACKEND.
const (
	BackendEdge   = "edge"
	BackendOpenAI = "openai"
)

// New returns the speech synthesizer selected by the configuration.
// Unknown names fall back to the Edge backend, which needs no API key.
func New(cfg domain.Config, logger domain.Logger) domain.SpeechSynthesizer {
	switch cfg.GetTTSBackend() {
	case BackendOpenAI:
		return NewOpenAISynthesizer(OpenAIConfig{
			APIKey:  cfg.GetOpenAIKey(),
			BaseURL: cfg.GetOpenAIBaseURL(),
			Model:   cfg.GetOpenAITTSModel(),
		}, logger)
	case BackendEdge:
		return NewEdgeSynthesizer(logger)
	default:
		logger.Warn("Unknown TTS backend, using edge", "backend", cfg.GetTTSBackend())
		return NewEdgeSynthesizer(logger)
	}
}
