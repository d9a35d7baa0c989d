// Package uploadstore persists uploaded files in a process-local directory
// and hands out the relative URLs under which they are served back.
package uploadstore

import (
	"errors"
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

const (
	// MaxFileSize is the upload size limit (10 MiB)
	MaxFileSize = 10 * 1024 * 1024

	// PDFMediaType is the only declared media type accepted for PDF uploads
	PDFMediaType = "application/pdf"

	// URLPrefix is the public path files are served under
	URLPrefix = "/api/uploads"
)

var (
	ErrNotPDF   = errors.New("only PDF files are allowed")
	ErrTooLarge = errors.New("file exceeds the 10MB size limit")
)

// LocalStore stores uploads on the local filesystem
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory when missing and returns a store
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory files are stored in
func (s *LocalStore) Dir() string {
	return s.dir
}

// ValidatePDF checks the declared media type and the size of an incoming
// file. Only the declared type is inspected; the bytes are not sniffed.
func ValidatePDF(file *multipart.FileHeader) error {
	if file.Header.Get("Content-Type") != PDFMediaType {
		return ErrNotPDF
	}
	if file.Size > MaxFileSize {
		return ErrTooLarge
	}
	return nil
}

// GenerateFilename builds the stored name: millisecond timestamp, a random
// integer suffix, and the original file extension.
func GenerateFilename(originalName string) string {
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(originalName))
}

// PathFor returns the on-disk path for a stored filename
func (s *LocalStore) PathFor(filename string) string {
	return filepath.Join(s.dir, filename)
}

// URLFor returns the relative URL under which a stored file is served
func URLFor(filename string) string {
	return URLPrefix + "/" + filename
}

// List returns the names of all stored files
func (s *LocalStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
