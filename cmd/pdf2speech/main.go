package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"pdf-to-speech/internal/config"
	"pdf-to-speech/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	voiceID    string
	outputPath string
	timeout    time.Duration

	voiceLanguage string
	voiceGender   string
	voiceLocale   string
)

var rootCmd = &cobra.Command{
	Use:   "pdf2speech",
	Short: "Convert PDF documents into spoken audio",
	Long: `pdf2speech extracts the text of a PDF document and synthesizes it
into an MP3 file using a text-to-speech backend. Use the voices
command to discover available voices.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <pdf>",
	Short: "Convert a PDF file to a speech audio file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container := config.NewContainer()

		// Cancellation is owned here, not by the conversion itself.
		ctx := cmd.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		outcome := container.ConversionService.Convert(ctx, domain.ConversionRequest{
			PDFPath:    args[0],
			OutputPath: outputPath,
			VoiceID:    voiceID,
		})
		if !outcome.Success {
			return fmt.Errorf("%s", outcome.Message)
		}

		fmt.Println(outcome.Message)
		return nil
	},
}

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List available voices, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		container := config.NewContainer()

		voices, err := container.SpeechSynthesizer.ListVoices(cmd.Context(), domain.VoiceFilter{
			Language: voiceLanguage,
			Gender:   voiceGender,
			Locale:   voiceLocale,
		})
		if err != nil {
			// An unreachable catalog is not fatal; show what we have.
			container.Logger.Warn("Voice catalog unavailable", "error", err)
		}
		if len(voices) == 0 {
			fmt.Println("No voices found.")
			return nil
		}

		for _, v := range voices {
			fmt.Printf("%-40s %-8s %s\n", v.ShortName, v.Gender, v.Locale)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&voiceID, "voice", "v", "", "voice to use (default from config)")
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output audio file path (default output.mp3)")
	convertCmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the conversion after this duration (0 = no timeout)")

	voicesCmd.Flags().StringVar(&voiceLanguage, "language", "", "filter by language prefix, e.g. en")
	voicesCmd.Flags().StringVar(&voiceGender, "gender", "", "filter by gender, e.g. Female")
	voicesCmd.Flags().StringVar(&voiceLocale, "locale", "", "filter by locale, e.g. en-US")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(voicesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
