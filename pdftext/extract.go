// Package pdftext turns an uploaded PDF into word-window chunks
// suitable for prompting.
package pdftext

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/smartstudy/flashcards-api/apperr"
)

// ExtractPages returns the trimmed plain text of every non-empty page
// of the document, in page order. Pages whose text cannot be decoded
// are skipped.
func ExtractPages(data []byte) ([]string, error) {
	if err := pdfapi.Validate(bytes.NewReader(data), nil); err != nil {
		return nil, apperr.InvalidInput(err, "Invalid file type. Upload a PDF.")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperr.InvalidInput(err, "Invalid file type. Upload a PDF.")
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if t := strings.TrimSpace(text); t != "" {
			pages = append(pages, t)
		}
	}

	return pages, nil
}
