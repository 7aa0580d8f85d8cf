// Package imports turns an uploaded resume document into plain text plus a
// handful of field guesses the form steps can be prefilled with.
package imports

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedType marks an upload that is neither PDF nor DOCX.
type ErrUnsupportedType struct {
	MimeType string
}

func (e ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported mime type: %s", e.MimeType)
}

// Text extracts plain text from an in-memory upload. The declared mime type
// is normalized first: DOCX often arrives as application/zip.
func Text(ctx context.Context, data []byte, mimeType, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch normalizeMimeType(mimeType, fileName, data) {
	case mimePDF:
		return textFromPDF(data)
	case mimeDOCX:
		return textFromDOCX(data)
	default:
		return "", ErrUnsupportedType{MimeType: normalizeMimeType(mimeType, fileName, data)}
	}
}

func textFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func textFromDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return stripDocxXML(string(raw)), nil
	}
	return "", errors.New("document.xml file not found")
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func normalizeMimeType(mimeType, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean != "application/zip" {
		return clean
	}
	if isDocxZip(data) {
		return mimeDOCX
	}
	if strings.ToLower(filepath.Ext(fileName)) == ".docx" {
		return mimeDOCX
	}
	return clean
}

func isDocxZip(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}

// Prefill is the best-effort field guesses scraped from extracted text.
// Absent guesses are empty strings; nothing here overwrites user input.
type Prefill struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

var (
	emailGuess    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneGuess    = regexp.MustCompile(`\+?[0-9][0-9 ().\-]{7,}[0-9]`)
	linkedinGuess = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/[^\s)]+`)
	githubGuess   = regexp.MustCompile(`(?:https?://)?(?:www\.)?github\.com/[^\s)]+`)
)

// Guess scans extracted text for contact details. The first non-empty line
// without digits or an @ is taken as the name; resumes overwhelmingly lead
// with it.
func Guess(text string) Prefill {
	p := Prefill{
		Email:    emailGuess.FindString(text),
		Phone:    strings.TrimSpace(phoneGuess.FindString(text)),
		LinkedIn: linkedinGuess.FindString(text),
		GitHub:   githubGuess.FindString(text),
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsAny(line, "@0123456789") || len(line) > 60 {
			continue
		}
		p.FullName = line
		break
	}
	return p
}
