package imports

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func docxBytes(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextDocxFromZipMime(t *testing.T) {
	doc := docxBytes(t, `<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p></w:body></w:document>`)

	text, err := Text(context.Background(), doc, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") {
		t.Fatalf("missing name in extracted text: %q", text)
	}
	if !strings.Contains(text, "\n") {
		t.Fatalf("paragraph break not preserved: %q", text)
	}
}

func TestTextPlainZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Text(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for plain zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextUnsupportedMime(t *testing.T) {
	_, err := Text(context.Background(), []byte("plain"), "text/plain", "resume.txt")
	if err == nil {
		t.Fatal("expected unsupported mime error")
	}
}

func TestTextBrokenPDF(t *testing.T) {
	if _, err := Text(context.Background(), []byte("not a pdf"), "application/pdf", "resume.pdf"); err == nil {
		t.Fatal("expected error for malformed pdf")
	}
}

func TestGuess(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"Platform Engineer",
		"jane.doe@example.com | +1 (555) 010-0199",
		"linkedin.com/in/janedoe",
		"github.com/janedoe",
	}, "\n")

	p := Guess(text)
	if p.FullName != "Jane Doe" {
		t.Fatalf("name guess = %q", p.FullName)
	}
	if p.Email != "jane.doe@example.com" {
		t.Fatalf("email guess = %q", p.Email)
	}
	if !strings.Contains(p.Phone, "555") {
		t.Fatalf("phone guess = %q", p.Phone)
	}
	if p.LinkedIn != "linkedin.com/in/janedoe" {
		t.Fatalf("linkedin guess = %q", p.LinkedIn)
	}
	if p.GitHub != "github.com/janedoe" {
		t.Fatalf("github guess = %q", p.GitHub)
	}
}

func TestGuessEmptyText(t *testing.T) {
	p := Guess("")
	if p != (Prefill{}) {
		t.Fatalf("expected zero prefill, got %+v", p)
	}
}
