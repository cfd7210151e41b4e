package extractor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildPDF assembles a minimal but valid PDF with one Helvetica text
// line per page. Offsets for the xref table are computed while
// writing, so the fixture stays correct if the content changes.
func buildPDF(pageTexts []string) []byte {
	var buf bytes.Buffer
	offsets := make(map[int]int)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	numPages := len(pageTexts)
	kids := make([]string, 0, numPages)
	for i := 0; i < numPages; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), numPages))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, text := range pageTexts {
		pageID := 4 + 2*i
		contentID := 5 + 2*i

		writeObj(pageID, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentID))

		stream := ""
		if text != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		writeObj(contentID, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	size := 4 + 2*numPages
	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num < size; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefOffset)

	return buf.Bytes()
}

// buildLockedPDF assembles a one-page PDF carrying a standard
// security handler (RC4, 40-bit, revision 2) whose owner and user
// keys were not derived from the empty password. Readers trying only
// the empty credential must report the document as password-protected
// before touching any page content.
func buildLockedPDF() []byte {
	const (
		ownerKey = "<8063f66c9bf1e8452d36c441f5e8ab30aa3b9837570b601b7c61cb304d842a6e>"
		userKey  = "<13f4d1a9f8e04b26c7550a2be1309f3d62c85597ee4ac0d8441f7b20c6a9e5b1>"
		fileID   = "<d41d8cd98f0e0b204e9800998ecf8427>"
	)

	var buf bytes.Buffer
	offsets := make(map[int]int)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [4 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	writeObj(4, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents 5 0 R >>")

	stream := "BT /F1 12 Tf 72 720 Td (Locked) Tj ET"
	writeObj(5, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	writeObj(6, fmt.Sprintf("<< /Filter /Standard /V 1 /R 2 /Length 40 /P -44 /O %s /U %s >>", ownerKey, userKey))

	const size = 7
	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num < size; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf,
		"trailer\n<< /Size %d /Root 1 0 R /Encrypt 6 0 R /ID [%s %s] >>\nstartxref\n%d\n%%%%EOF\n",
		size, fileID, fileID, xrefOffset)

	return buf.Bytes()
}

// writeTempLockedPDF writes the password-protected fixture into a
// test temp dir.
func writeTempLockedPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locked.pdf")
	if err := os.WriteFile(path, buildLockedPDF(), 0o644); err != nil {
		t.Fatalf("failed to write locked fixture PDF: %v", err)
	}
	return path
}

// writeTempPDF writes a fixture PDF into a test temp dir.
func writeTempPDF(t *testing.T, name string, pageTexts []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buildPDF(pageTexts), 0o644); err != nil {
		t.Fatalf("failed to write fixture PDF: %v", err)
	}
	return path
}

// Mock logger shared by extractor package tests.
type mockLogger struct{}

func newMockLogger() *mockLogger { return &mockLogger{} }

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}
