package pdfvalidation

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PageCount returns the number of pages in a PDF. Used for informational
// metadata on uploads only; a parse failure never rejects the file.
func PageCount(content []byte) (int, error) {
	if !bytes.HasPrefix(content, []byte("%PDF-")) {
		return 0, fmt.Errorf("missing PDF header")
	}

	content = sanitizePDF(content)
	reader := bytes.NewReader(content)

	pdfReader, err := pdf.NewReader(reader, int64(len(content)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse PDF: %w", err)
	}

	return pdfReader.NumPage(), nil
}

// sanitizePDF removes trailing garbage data after the last %%EOF marker
func sanitizePDF(content []byte) []byte {
	eofMarker := []byte("%%EOF")
	lastEOF := bytes.LastIndex(content, eofMarker)

	if lastEOF == -1 {
		return content
	}

	pdfEnd := lastEOF + len(eofMarker)

	for pdfEnd < len(content) && (content[pdfEnd] == '\n' || content[pdfEnd] == '\r') {
		pdfEnd++
	}

	if pdfEnd < len(content) {
		return content[:pdfEnd]
	}

	return content
}
