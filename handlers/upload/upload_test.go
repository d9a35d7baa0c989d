package upload

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/services/uploadstore"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store, err := uploadstore.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})
	handler := NewUploadHandler(store)
	app.Post("/api/teacher/upload-pdf-file", handler.UploadPDF)
	app.Static(uploadstore.URLPrefix, store.Dir())

	return app
}

func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("writing part failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	return body, writer.FormDataContentType()
}

func postUpload(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/teacher/upload-pdf-file", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestUploadPDFRoundTrip(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, "pdf", "notes.pdf", "application/pdf", samplePDF)
	resp := postUpload(t, app, body, contentType)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var parsed UploadPDFResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if parsed.Message != "PDF uploaded successfully" {
		t.Errorf("unexpected message %q", parsed.Message)
	}
	if !strings.HasPrefix(parsed.URL, uploadstore.URLPrefix+"/") {
		t.Errorf("url %q not under %s", parsed.URL, uploadstore.URLPrefix)
	}
	if !strings.HasSuffix(parsed.Filename, ".pdf") {
		t.Errorf("filename %q lost the extension", parsed.Filename)
	}

	// Stored bytes must come back unchanged through the static route
	getReq := httptest.NewRequest(http.MethodGet, parsed.URL, nil)
	getResp, err := app.Test(getReq)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	defer getResp.Body.Close()

	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 fetching %s, got %d", parsed.URL, getResp.StatusCode)
	}

	served, err := io.ReadAll(getResp.Body)
	if err != nil {
		t.Fatalf("failed to read served file: %v", err)
	}
	if !bytes.Equal(served, samplePDF) {
		t.Error("served bytes differ from uploaded bytes")
	}
}

func TestUploadPDFMissingFile(t *testing.T) {
	app := newTestApp(t)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	writer.WriteField("other", "value")
	writer.Close()

	resp := postUpload(t, app, body, writer.FormDataContentType())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}

	var parsed struct {
		Message string `json:"message"`
	}
	json.NewDecoder(resp.Body).Decode(&parsed)
	if parsed.Message != "No PDF file uploaded" {
		t.Errorf("unexpected message %q", parsed.Message)
	}
}

func TestUploadPDFRejectsWrongType(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, "pdf", "photo.png", "image/png", []byte("not a pdf"))
	resp := postUpload(t, app, body, contentType)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}

	var parsed struct {
		Message string `json:"message"`
	}
	json.NewDecoder(resp.Body).Decode(&parsed)
	if parsed.Message != "only PDF files are allowed" {
		t.Errorf("unexpected message %q", parsed.Message)
	}
}

func TestUploadPDFRejectsOversize(t *testing.T) {
	app := newTestApp(t)

	oversize := bytes.Repeat([]byte{'a'}, uploadstore.MaxFileSize+1)
	body, contentType := multipartBody(t, "pdf", "big.pdf", "application/pdf", oversize)
	resp := postUpload(t, app, body, contentType)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}

	var parsed struct {
		Message string `json:"message"`
	}
	json.NewDecoder(resp.Body).Decode(&parsed)
	if parsed.Message != "file exceeds the 10MB size limit" {
		t.Errorf("unexpected message %q", parsed.Message)
	}
}
