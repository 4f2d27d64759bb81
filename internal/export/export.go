// Package export turns note text into downloadable Markdown and PDF files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/csheth/noteza/internal/notes"
)

// Format is an export file type.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
)

// ErrUnknownFormat is returned for anything other than md or pdf.
var ErrUnknownFormat = errors.New("unknown export format")

// PDF page layout. Markdown markup is written literally in a single font.
const (
	pdfFontFamily  = "Helvetica"
	pdfFontSize    = 12
	pdfMarginLeft  = 15
	pdfMarginRight = 15
	pdfMarginTop   = 10
	pdfLineHeight  = 6
)

// ParseFormat accepts "md", "markdown" or "pdf".
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

// MIMEType is the content type a download of this format carries.
func (f Format) MIMEType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/markdown"
	}
}

// FileName is "{topic} notes.{ext}". Path separators in the topic become dashes.
func FileName(topic string, f Format) string {
	topic = strings.NewReplacer("/", "-", `\`, "-").Replace(topic)
	return fmt.Sprintf("%s notes.%s", topic, f)
}

// Markdown returns the note text unchanged.
func Markdown(text string) []byte {
	return []byte(text)
}

// PDF lays the text out on A4 pages in one font with fixed margins.
func PDF(text string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()
	doc.SetFont(pdfFontFamily, "", pdfFontSize)

	// Core fonts are cp1252; runes outside it degrade instead of failing.
	translate := doc.UnicodeTranslatorFromDescriptor("")
	doc.MultiCell(0, pdfLineHeight, translate(text), "", "", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Render produces the bytes for text in the requested format.
func Render(text string, f Format) ([]byte, error) {
	switch f {
	case FormatMarkdown:
		return Markdown(text), nil
	case FormatPDF:
		return PDF(text)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Save writes the note into dir and returns the file path.
func Save(dir string, note notes.Note, f Format) (string, error) {
	data, err := Render(note.Text, f)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(note.Topic, f))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return path, nil
}
