package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// TextExtractor converts an uploaded binary document into plain text.
type TextExtractor interface {
	ExtractText(path, contentType string) (string, error)
}

// FileTextExtractor reads the document from disk. Supports PDF and DOCX,
// dispatched on file extension or declared content type. Extraction is
// atomic: either the full text or an error, never a partial result.
type FileTextExtractor struct{}

func (FileTextExtractor) ExtractText(path, contentType string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: file path is required", ErrInvalidInput)
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf" || contentType == mimePDF:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read resume file: %w", err)
		}
		return extractTextFromPDF(data)
	case ext == ".docx" || contentType == mimeDocx:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read resume file: %w", err)
		}
		return extractTextFromDocx(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("decode pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("decode docx: %w", err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("decode docx: %w", err)
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", fmt.Errorf("decode docx: %w", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Convert paragraph boundaries to newlines (very naive but effective).
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	// Remove all XML tags.
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

func normalizeWhitespace(s string) string {
	// Collapse excessive whitespace and trim
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ", " ")
	// Preserve newlines but collapse runs
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
