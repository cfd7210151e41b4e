package extractor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	apperrors "pdf-to-speech/pkg/errors"
)

func TestNativeExtractor_ExtractsKnownText(t *testing.T) {
	const want = "Hello world from the speech pipeline"
	path := writeTempPDF(t, "known.pdf", []string{want})

	e := NewNativeExtractor(newMockLogger())
	got, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNativeExtractor_JoinsPagesInOrder(t *testing.T) {
	path := writeTempPDF(t, "two-pages.pdf", []string{"First page text", "Second page text"})

	e := NewNativeExtractor(newMockLogger())
	got, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "First page text\nSecond page text" {
		t.Fatalf("unexpected page concatenation: %q", got)
	}
}

func TestNativeExtractor_MissingFileReturnsNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.pdf")

	e := NewNativeExtractor(newMockLogger())
	_, err := e.Extract(context.Background(), missing)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestNativeExtractor_EmptyPagesReturnEmpty(t *testing.T) {
	path := writeTempPDF(t, "empty.pdf", []string{"", ""})

	e := NewNativeExtractor(newMockLogger())
	_, err := e.Extract(context.Background(), path)
	if err == nil {
		t.Fatalf("expected an error for a PDF with no text")
	}
	if !apperrors.IsKind(err, apperrors.KindEmpty) {
		t.Fatalf("expected empty, got %v", err)
	}
}

func TestNativeExtractor_PasswordProtectedReturnsEncrypted(t *testing.T) {
	path := writeTempLockedPDF(t)

	e := NewNativeExtractor(newMockLogger())
	_, err := e.Extract(context.Background(), path)
	if err == nil {
		t.Fatalf("expected an error for a password-protected PDF")
	}
	if !apperrors.IsKind(err, apperrors.KindEncrypted) {
		t.Fatalf("expected encrypted, got %v", err)
	}
}

func TestNativeExtractor_GarbageReturnsCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf at all"), 0o644); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}

	e := NewNativeExtractor(newMockLogger())
	_, err := e.Extract(context.Background(), path)
	if err == nil {
		t.Fatalf("expected an error for a garbage file")
	}
	if !apperrors.IsKind(err, apperrors.KindCorrupted) {
		t.Fatalf("expected corrupted, got %v", err)
	}
}
