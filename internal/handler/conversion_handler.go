package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pdf-to-speech/internal/domain"
	apperrors "pdf-to-speech/pkg/errors"

	"github.com/google/uuid"
)

// ConversionHandler handles HTTP requests for PDF-to-speech conversion
type ConversionHandler struct {
	conversionService domain.ConversionService
	synthesizer       domain.SpeechSynthesizer
	config            domain.Config
	logger            domain.Logger
}

// NewConversionHandler creates a new conversion handler instance
func NewConversionHandler(
	conversionService domain.ConversionService,
	synthesizer domain.SpeechSynthesizer,
	config domain.Config,
	logger domain.Logger,
) *ConversionHandler {
	return &ConversionHandler{
		conversionService: conversionService,
		synthesizer:       synthesizer,
		config:            config,
		logger:            logger,
	}
}

// Convert handles an uploaded PDF and responds with the synthesized
// audio. The upload is staged under the configured upload path with a
// request-unique name, so concurrent conversions never share files.
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "PDF file is required")
		return
	}
	defer file.Close()

	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." {
		originalName = "document.pdf"
	}
	if strings.ToLower(filepath.Ext(originalName)) != ".pdf" {
		writeError(w, http.StatusBadRequest, "Unsupported file type. Only PDF (.pdf) is accepted.")
		return
	}
	if header.Size > h.config.GetMaxFileSize() {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("File too large. Maximum size is %d bytes.", h.config.GetMaxFileSize()))
		return
	}

	uploadPath := h.config.GetUploadPath()
	if err := os.MkdirAll(uploadPath, 0o755); err != nil {
		h.logger.Error("Failed to create upload directory", err, "path", uploadPath)
		writeError(w, http.StatusInternalServerError, "Failed to stage upload")
		return
	}

	requestID := uuid.New().String()
	stagedPDF := filepath.Join(uploadPath, requestID+".pdf")
	outputPath := filepath.Join(uploadPath, requestID+".mp3")
	defer os.Remove(stagedPDF)
	defer os.Remove(outputPath)

	staged, err := os.Create(stagedPDF)
	if err != nil {
		h.logger.Error("Failed to stage upload", err, "path", stagedPDF)
		writeError(w, http.StatusInternalServerError, "Failed to stage upload")
		return
	}
	if err := stageUpload(staged, file); err != nil {
		h.logger.Error("Failed to write staged upload", err, "path", stagedPDF)
		writeError(w, http.StatusInternalServerError, "Failed to stage upload")
		return
	}

	outcome := h.conversionService.Convert(r.Context(), domain.ConversionRequest{
		PDFPath:    stagedPDF,
		OutputPath: outputPath,
		VoiceID:    r.FormValue("voice"),
	})
	if !outcome.Success {
		writeJSON(w, apperrors.StatusCodeForKind(apperrors.Kind(outcome.Kind)), outcome)
		return
	}

	audio, err := os.Open(outputPath)
	if err != nil {
		h.logger.Error("Converted audio missing", err, "path", outputPath)
		writeError(w, http.StatusInternalServerError, "Converted audio could not be read")
		return
	}
	defer audio.Close()

	audioName := strings.TrimSuffix(originalName, filepath.Ext(originalName)) + ".mp3"
	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", audioName))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, audio); err != nil {
		h.logger.Warn("Failed to stream audio to client", "error", err)
	}
}

// stageUpload copies the upload into dst and closes it, reporting
// both the copy and the close failure when either occurs.
func stageUpload(dst io.WriteCloser, src io.Reader) error {
	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	return errors.Join(copyErr, closeErr)
}

// ListVoices returns the backend's voice catalog, filtered by the
// language, gender and locale query parameters. An unreachable
// catalog yields an empty list, not an error.
func (h *ConversionHandler) ListVoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.VoiceFilter{
		Language: query.Get("language"),
		Gender:   query.Get("gender"),
		Locale:   query.Get("locale"),
	}

	voices, err := h.synthesizer.ListVoices(r.Context(), filter)
	if err != nil {
		h.logger.Warn("Voice catalog unavailable", "error", err)
		voices = nil
	}
	if voices == nil {
		voices = []domain.Voice{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"voices": voices})
}
