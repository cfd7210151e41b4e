package synthesizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"pdf-to-speech/internal/domain"
	apperrors "pdf-to-speech/pkg/errors"
)

// OpenAIConfig holds configuration for the OpenAI speech backend.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // default: "https://api.openai.com/v1"
	Model   string // default: "tts-1"
}

// OpenAISynthesizer synthesizes speech through the OpenAI audio API.
// Used where the Edge service is not reachable or an API-keyed backend
// is preferred.
type OpenAISynthesizer struct {
	cfg        OpenAIConfig
	logger     domain.Logger
	httpClient *http.Client
}

// The speech endpoint exposes a fixed set of voices; there is no
// catalog endpoint to query.
var openAIVoices = []domain.Voice{
	{Name: "Alloy", ShortName: "alloy", Gender: "Neutral", Locale: "en-US"},
	{Name: "Echo", ShortName: "echo", Gender: "Male", Locale: "en-US"},
	{Name: "Fable", ShortName: "fable", Gender: "Neutral", Locale: "en-GB"},
	{Name: "Onyx", ShortName: "onyx", Gender: "Male", Locale: "en-US"},
	{Name: "Nova", ShortName: "nova", Gender: "Female", Locale: "en-US"},
	{Name: "Shimmer", ShortName: "shimmer", Gender: "Female", Locale: "en-US"},
}

// NewOpenAISynthesizer creates an OpenAISynthesizer with defaults applied.
func NewOpenAISynthesizer(cfg OpenAIConfig, logger domain.Logger) *OpenAISynthesizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "tts-1"
	}
	return &OpenAISynthesizer{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Synthesize converts text to speech and writes the MP3 response to
// outputPath, overwriting any existing file.
func (o *OpenAISynthesizer) Synthesize(ctx context.Context, text, voiceID, outputPath string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.NewEmpty("")
	}
	if voiceID == "" {
		voiceID = "alloy"
	}

	body := map[string]any{
		"model": o.cfg.Model,
		"input": text,
		"voice": voiceID,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewUnknown("failed to marshal synthesis request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.BaseURL+"/audio/speech", bytes.NewReader(data))
	if err != nil {
		return apperrors.NewUnknown("failed to build synthesis request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return apperrors.NewBackendUnavailable("speech request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		message := fmt.Sprintf("speech synthesis failed (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode >= http.StatusInternalServerError {
			return apperrors.NewBackendUnavailable(message, nil)
		}
		// 4xx covers invalid voices and rejected input.
		return apperrors.NewNoAudio(message)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return apperrors.NewUnknown("failed to create audio file", err)
	}
	written, err := io.Copy(out, resp.Body)
	if err != nil {
		out.Close()
		return apperrors.NewBackendUnavailable("failed to stream audio", err)
	}
	if err := out.Close(); err != nil {
		return apperrors.NewUnknown("failed to finalize audio file", err)
	}
	if written == 0 {
		return apperrors.NewNoAudio("speech backend returned an empty audio stream")
	}

	o.logger.Info("Speech synthesized", "output", outputPath, "voice", voiceID, "bytes", written)
	return nil
}

// ListVoices filters the fixed voice set.
func (o *OpenAISynthesizer) ListVoices(ctx context.Context, filter domain.VoiceFilter) ([]domain.Voice, error) {
	return domain.FilterVoices(openAIVoices, filter), nil
}
