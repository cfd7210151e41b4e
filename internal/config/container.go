package config

import (
	"pdf-to-speech/internal/domain"
	"pdf-to-speech/internal/extractor"
	"pdf-to-speech/internal/service"
	"pdf-to-speech/internal/synthesizer"
	"pdf-to-speech/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	TextExtractor     domain.TextExtractor
	SpeechSynthesizer domain.SpeechSynthesizer
	ConversionService domain.ConversionService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	textExtractor := extractor.New(config.GetExtractorBackend(), appLogger)
	speechSynthesizer := synthesizer.New(config, appLogger)

	conversionService := service.NewConversionService(
		textExtractor,
		speechSynthesizer,
		appLogger,
		config.GetDefaultVoice(),
		config.GetDefaultOutputPath(),
	)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		TextExtractor:     textExtractor,
		SpeechSynthesizer: speechSynthesizer,
		ConversionService: conversionService,
	}
}
