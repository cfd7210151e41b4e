package config

import (
	"os"
	"strconv"

	"pdf-to-speech/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort       string
	LogLevel         string
	UploadPath       string
	MaxFileSize      int64
	DefaultVoice     string
	DefaultOutput    string
	ExtractorBackend string
	TTSBackend       string
	OpenAIKey        string
	OpenAIBaseURL    string
	OpenAITTSModel   string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:       getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		UploadPath:       getEnvOrDefault("UPLOAD_PATH", "./uploads"),
		MaxFileSize:      getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		DefaultVoice:     getEnvOrDefault("DEFAULT_VOICE", domain.DefaultVoice),
		DefaultOutput:    getEnvOrDefault("DEFAULT_OUTPUT", domain.DefaultOutputFile),
		ExtractorBackend: getEnvOrDefault("EXTRACTOR_BACKEND", "native"),
		TTSBackend:       getEnvOrDefault("TTS_BACKEND", "edge"),
		OpenAIKey:        getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIBaseURL:    getEnvOrDefault("OPENAI_BASE_URL", ""),
		OpenAITTSModel:   getEnvOrDefault("OPENAI_TTS_MODEL", ""),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetUploadPath returns the upload staging directory path
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetDefaultVoice returns the voice used when a request names none
func (c *AppConfig) GetDefaultVoice() string {
	return c.DefaultVoice
}

// GetDefaultOutputPath returns the output path used when a request names none
func (c *AppConfig) GetDefaultOutputPath() string {
	return c.DefaultOutput
}

// GetExtractorBackend returns the configured text extraction backend
func (c *AppConfig) GetExtractorBackend() string {
	return c.ExtractorBackend
}

// GetTTSBackend returns the configured speech synthesis backend
func (c *AppConfig) GetTTSBackend() string {
	return c.TTSBackend
}

// GetOpenAIKey returns the OpenAI API key
func (c *AppConfig) GetOpenAIKey() string {
	return c.OpenAIKey
}

// GetOpenAIBaseURL returns the OpenAI API base URL override
func (c *AppConfig) GetOpenAIBaseURL() string {
	return c.OpenAIBaseURL
}

// GetOpenAITTSModel returns the OpenAI TTS model override
func (c *AppConfig) GetOpenAITTSModel() string {
	return c.OpenAITTSModel
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
