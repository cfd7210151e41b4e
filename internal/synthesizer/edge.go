package synthesizer

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"pdf-to-speech/internal/domain"
	apperrors "pdf-to-speech/pkg/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Endpoints of the Edge read-aloud service. The trusted client token
// is the public one the Edge browser itself sends.
const (
	edgeTrustedToken = "6A5AA1D4EAFF4E9FB37E23D68491D6F4"
	edgeWSSURL       = "wss://speech.platform.bing.com/consumer/speech/synthesize/readaloud/edge/v1"
	edgeVoicesURL    = "https://speech.platform.bing.com/consumer/speech/synthesize/readaloud/voices/list"
	edgeOutputFormat = "audio-24khz-48kbitrate-mono-mp3"
	edgeOrigin       = "chrome-extension://jdiccldimpdaibmpdkjnbmckianbfold"
	edgeUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36 Edg/122.0.0.0"
)

// EdgeSynthesizer streams synthesized speech from the Edge read-aloud
// websocket service and saves it as MP3.
type EdgeSynthesizer struct {
	logger     domain.Logger
	dialer     *websocket.Dialer
	httpClient *http.Client
}

// NewEdgeSynthesizer creates the default speech synthesizer
func NewEdgeSynthesizer(logger domain.Logger) *EdgeSynthesizer {
	return &EdgeSynthesizer{
		logger: logger,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 15 * time.Second,
		},
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Synthesize converts text to speech and writes the MP3 stream to
// outputPath. The output file is created on the first audio chunk and
// overwrites any existing file; a partial file may remain on failure.
func (e *EdgeSynthesizer) Synthesize(ctx context.Context, text, voiceID, outputPath string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.NewEmpty("")
	}

	connID := strings.ReplaceAll(uuid.New().String(), "-", "")
	url := fmt.Sprintf("%s?TrustedClientToken=%s&ConnectionId=%s", edgeWSSURL, edgeTrustedToken, connID)

	header := http.Header{}
	header.Set("Origin", edgeOrigin)
	header.Set("User-Agent", edgeUserAgent)
	header.Set("Pragma", "no-cache")
	header.Set("Cache-Control", "no-cache")

	conn, _, err := e.dialer.DialContext(ctx, url, header)
	if err != nil {
		return apperrors.NewBackendUnavailable("failed to connect to the speech service", err)
	}
	defer conn.Close()

	// ReadMessage has no context support; closing the connection from a
	// watcher goroutine unblocks it on cancellation.
	watcherDone := make(chan struct{})
	defer close(watcherDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-watcherDone:
		}
	}()

	timestamp := edgeTimestamp()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(speechConfigMessage(timestamp))); err != nil {
		return apperrors.NewBackendUnavailable("failed to send speech configuration", err)
	}
	requestID := strings.ReplaceAll(uuid.New().String(), "-", "")
	if err := conn.WriteMessage(websocket.TextMessage, []byte(ssmlMessage(requestID, timestamp, voiceID, text))); err != nil {
		return apperrors.NewBackendUnavailable("failed to send synthesis request", err)
	}

	var out *os.File
	defer func() {
		if out != nil {
			out.Close()
		}
	}()

	audioReceived := false
	for {
		msgType, data, readErr := conn.ReadMessage()
		if readErr != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return apperrors.NewUnknown("synthesis cancelled", ctxErr)
			}
			return apperrors.NewBackendUnavailable("connection to the speech service lost", readErr)
		}

		switch msgType {
		case websocket.TextMessage:
			if strings.Contains(string(data), "Path:turn.end") {
				if !audioReceived {
					return apperrors.NewNoAudio(fmt.Sprintf("no audio received from the speech service; voice %q may be invalid", voiceID))
				}
				if err := out.Close(); err != nil {
					out = nil
					return apperrors.NewUnknown("failed to finalize audio file", err)
				}
				out = nil
				e.logger.Info("Speech synthesized", "output", outputPath, "voice", voiceID)
				return nil
			}
		case websocket.BinaryMessage:
			payload, ok := audioPayload(data)
			if !ok || len(payload) == 0 {
				continue
			}
			if out == nil {
				out, err = os.Create(outputPath)
				if err != nil {
					return apperrors.NewUnknown("failed to create audio file", err)
				}
			}
			if _, err := out.Write(payload); err != nil {
				return apperrors.NewUnknown("failed to write audio file", err)
			}
			audioReceived = true
		}
	}
}

// ListVoices fetches the read-aloud voice catalog and applies the
// filter locally.
func (e *EdgeSynthesizer) ListVoices(ctx context.Context, filter domain.VoiceFilter) ([]domain.Voice, error) {
	url := fmt.Sprintf("%s?trustedclienttoken=%s", edgeVoicesURL, edgeTrustedToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", edgeUserAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewBackendUnavailable("failed to fetch voice catalog", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.NewBackendUnavailable(
			fmt.Sprintf("voice catalog request failed (status %d): %s", resp.StatusCode, string(body)), nil)
	}

	var catalog []struct {
		Name      string `json:"Name"`
		ShortName string `json:"ShortName"`
		Gender    string `json:"Gender"`
		Locale    string `json:"Locale"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, apperrors.NewBackendUnavailable("failed to decode voice catalog", err)
	}

	voices := make([]domain.Voice, 0, len(catalog))
	for _, v := range catalog {
		voices = append(voices, domain.Voice{
			Name:      v.Name,
			ShortName: v.ShortName,
			Gender:    v.Gender,
			Locale:    v.Locale,
		})
	}
	return domain.FilterVoices(voices, filter), nil
}

// audioPayload extracts the audio bytes from a binary service frame.
// Frame layout: 2-byte big-endian header length, text headers, payload.
// Only frames whose headers carry Path:audio hold audio data.
func audioPayload(frame []byte) ([]byte, bool) {
	if len(frame) < 2 {
		return nil, false
	}
	headerLen := int(binary.BigEndian.Uint16(frame[:2]))
	if 2+headerLen > len(frame) {
		return nil, false
	}
	header := frame[2 : 2+headerLen]
	if !strings.Contains(string(header), "Path:audio") {
		return nil, false
	}
	return frame[2+headerLen:], true
}

func speechConfigMessage(timestamp string) string {
	config := `{"context":{"synthesis":{"audio":{"metadataoptions":{"sentenceBoundaryEnabled":"false","wordBoundaryEnabled":"false"},"outputFormat":"` + edgeOutputFormat + `"}}}}`
	return "X-Timestamp:" + timestamp + "\r\n" +
		"Content-Type:application/json; charset=utf-8\r\n" +
		"Path:speech.config\r\n\r\n" +
		config
}

func ssmlMessage(requestID, timestamp, voiceID, text string) string {
	ssml := fmt.Sprintf(
		"<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='en-US'>"+
			"<voice name='%s'>%s</voice></speak>",
		escapeXML(voiceID), escapeXML(text))
	return "X-RequestId:" + requestID + "\r\n" +
		"Content-Type:application/ssml+xml\r\n" +
		"X-Timestamp:" + timestamp + "Z\r\n" +
		"Path:ssml\r\n\r\n" +
		ssml
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

// edgeTimestamp formats the JavaScript-style timestamp the service expects.
func edgeTimestamp() string {
	return time.Now().UTC().Format("Mon Jan 02 2006 15:04:05") + " GMT+0000 (Coordinated Universal Time)"
}
