package uploadstore

import (
	"mime/multipart"
	"net/textproto"
	"regexp"
	"strings"
	"testing"
)

var storedNamePattern = regexp.MustCompile(`^\d+-\d+\.pdf$`)

func fileHeader(contentType string, size int64) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: "notes.pdf",
		Header:   header,
		Size:     size,
	}
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename("lecture-01.pdf")
	if !storedNamePattern.MatchString(name) {
		t.Errorf("generated name %q does not match <millis>-<random>.pdf", name)
	}
}

func TestGenerateFilenameKeepsExtension(t *testing.T) {
	name := GenerateFilename("archive.PDF")
	if !strings.HasSuffix(name, ".PDF") {
		t.Errorf("expected original extension to be kept, got %q", name)
	}
}

func TestValidatePDFAccepts(t *testing.T) {
	if err := ValidatePDF(fileHeader("application/pdf", 1024)); err != nil {
		t.Errorf("expected small PDF to validate, got %v", err)
	}
}

func TestValidatePDFRejectsWrongType(t *testing.T) {
	if err := ValidatePDF(fileHeader("image/png", 1024)); err != ErrNotPDF {
		t.Errorf("expected ErrNotPDF, got %v", err)
	}
}

func TestValidatePDFRejectsOversize(t *testing.T) {
	if err := ValidatePDF(fileHeader("application/pdf", MaxFileSize+1)); err != ErrTooLarge {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestValidatePDFAcceptsExactLimit(t *testing.T) {
	if err := ValidatePDF(fileHeader("application/pdf", MaxFileSize)); err != nil {
		t.Errorf("expected file at exactly 10MB to validate, got %v", err)
	}
}

func TestURLFor(t *testing.T) {
	if got := URLFor("123-456.pdf"); got != "/api/uploads/123-456.pdf" {
		t.Errorf("unexpected url %q", got)
	}
}

func TestLocalStoreList(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty dir, got %v", names)
	}
}
