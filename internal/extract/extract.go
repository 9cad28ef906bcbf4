package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// ErrDocumentFormat matches every DocumentFormatError via errors.Is.
var ErrDocumentFormat = errors.New("document format")

// DocumentFormatError reports bytes that could not be parsed as a supported document.
type DocumentFormatError struct {
	MimeType string
	Err      error
}

func (e *DocumentFormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s document", e.MimeType)
	}
	return fmt.Sprintf("invalid %s document: %v", e.MimeType, e.Err)
}

func (e *DocumentFormatError) Unwrap() error { return e.Err }

func (e *DocumentFormatError) Is(target error) bool { return target == ErrDocumentFormat }

// Text extracts plain text from an in-memory upload. PDF and DOCX payloads are
// recognized by their magic bytes whatever their declared type; otherwise the
// declared type is used, then the file extension when it is missing or generic.
// Libraries used: github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
func Text(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch normalized := DetectMimeType(mimeType, fileName, data); normalized {
	case MimePDF:
		return PDF(data)
	case MimeDOCX:
		return DOCX(data)
	case MimePlain:
		return string(data), nil
	default:
		return "", &DocumentFormatError{MimeType: normalized, Err: fmt.Errorf("unsupported mime type: %s", normalized)}
	}
}

// PDF concatenates the plain text of every page in order, with no separator.
func PDF(data []byte) (text string, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = &DocumentFormatError{MimeType: MimePDF, Err: fmt.Errorf("parser panic: %v", rec)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentFormatError{MimeType: MimePDF, Err: err}
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &DocumentFormatError{MimeType: MimePDF, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}

// DOCX returns the paragraph text of a Word document, one paragraph per line.
func DOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &DocumentFormatError{MimeType: MimeDOCX, Err: errors.New("empty docx data")}
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentFormatError{MimeType: MimeDOCX, Err: err}
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
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

// pdfAliases are non-standard labels browsers and mail clients use for PDFs.
var pdfAliases = map[string]bool{
	"application/x-pdf":    true,
	"application/acrobat":  true,
	"applications/vnd.pdf": true,
	"text/pdf":             true,
	"text/x-pdf":           true,
}

// DetectMimeType resolves the effective document type of an upload. Magic
// bytes win over the declared type.
func DetectMimeType(mimeType string, fileName string, data []byte) string {
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return MimePDF
	}
	if isDOCX(data) {
		return MimeDOCX
	}

	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if pdfAliases[clean] {
		clean = MimePDF
	}
	switch clean {
	case MimePDF, MimeDOCX, MimePlain:
		return clean
	case "", "application/octet-stream", "application/zip", "binary/octet-stream":
	default:
		return clean
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".md":
		return MimePlain
	}

	sniffed := strings.Split(http.DetectContentType(data), ";")[0]
	if clean == "" || clean == "application/octet-stream" {
		return sniffed
	}
	return clean
}

func isDOCX(data []byte) bool {
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
