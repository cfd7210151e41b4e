package domain

// Default values applied to a ConversionRequest when the caller leaves
// the fields blank. The voice list endpoint names other valid voices.
const (
	DefaultVoice      = "en-US-AriaNeural"
	DefaultOutputFile = "output.mp3"
)

// ConversionRequest describes a single PDF-to-speech conversion.
// Immutable once constructed; WithDefaults returns a filled copy.
type ConversionRequest struct {
	PDFPath    string `json:"pdf_path"`
	OutputPath string `json:"output_path"`
	VoiceID    string `json:"voice_id"`
}

// WithDefaults returns a copy of the request with the given fallback
// voice and output path applied to blank fields. Empty fallbacks fall
// through to the package defaults.
func (r ConversionRequest) WithDefaults(voice, outputPath string) ConversionRequest {
	if voice == "" {
		voice = DefaultVoice
	}
	if outputPath == "" {
		outputPath = DefaultOutputFile
	}
	if r.VoiceID == "" {
		r.VoiceID = voice
	}
	if r.OutputPath == "" {
		r.OutputPath = outputPath
	}
	return r
}

// ConversionOutcome is the terminal result of a conversion request.
// There is exactly one outcome per request; nothing is retried or
// persisted across calls. Kind names the failure category and is
// empty on success.
type ConversionOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}
