package synthesizer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"pdf-to-speech/internal/domain"
	apperrors "pdf-to-speech/pkg/errors"
)

// Mock logger shared by synthesizer package tests.
type mockLogger struct{}

func newMockLogger() *mockLogger { return &mockLogger{} }

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) (*OpenAISynthesizer, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	s := NewOpenAISynthesizer(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL}, newMockLogger())
	return s, &calls
}

func TestOpenAISynthesizer_WritesAudioFile(t *testing.T) {
	audio := []byte("fake-mp3-bytes")
	s, calls := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/speech" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write(audio)
	})

	out := filepath.Join(t.TempDir(), "speech.mp3")
	if err := s.Synthesize(context.Background(), "hello there", "alloy", out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if *calls != 1 {
		t.Fatalf("expected one backend call, got %d", *calls)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected audio file to exist: %v", err)
	}
	if string(got) != string(audio) {
		t.Fatalf("audio file content mismatch")
	}
}

func TestOpenAISynthesizer_EmptyTextSkipsBackend(t *testing.T) {
	s, calls := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {})

	out := filepath.Join(t.TempDir(), "speech.mp3")
	err := s.Synthesize(context.Background(), "   ", "alloy", out)
	if err == nil {
		t.Fatalf("expected an error for whitespace-only text")
	}
	if !apperrors.IsKind(err, apperrors.KindEmpty) {
		t.Fatalf("expected empty, got %v", err)
	}
	if *calls != 0 {
		t.Fatalf("expected zero backend calls, got %d", *calls)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("expected no audio file to be created")
	}
}

func TestOpenAISynthesizer_InvalidVoiceReportsNoAudio(t *testing.T) {
	s, _ := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid voice"}}`, http.StatusBadRequest)
	})

	out := filepath.Join(t.TempDir(), "speech.mp3")
	err := s.Synthesize(context.Background(), "hello", "no-such-voice", out)
	if err == nil {
		t.Fatalf("expected an error for an invalid voice")
	}
	if !apperrors.IsKind(err, apperrors.KindNoAudio) {
		t.Fatalf("expected no_audio, got %v", err)
	}
}

func TestOpenAISynthesizer_ServerErrorReportsBackendUnavailable(t *testing.T) {
	s, _ := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	})

	out := filepath.Join(t.TempDir(), "speech.mp3")
	err := s.Synthesize(context.Background(), "hello", "alloy", out)
	if !apperrors.IsKind(err, apperrors.KindBackendUnavailable) {
		t.Fatalf("expected backend_unavailable, got %v", err)
	}
}

func TestOpenAISynthesizer_ListVoicesFiltersGender(t *testing.T) {
	s := NewOpenAISynthesizer(OpenAIConfig{}, newMockLogger())

	voices, err := s.ListVoices(context.Background(), domain.VoiceFilter{Gender: "female"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(voices) != 2 {
		t.Fatalf("expected 2 female voices, got %d", len(voices))
	}
	for _, v := range voices {
		if v.Gender != "Female" {
			t.Fatalf("expected only female voices, got %s (%s)", v.ShortName, v.Gender)
		}
	}
}
