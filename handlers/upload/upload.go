package upload

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/services/uploadstore"
	"github.com/sahilchouksey/studystack-api/utils/pdfvalidation"
	"github.com/sahilchouksey/studystack-api/utils/response"
)

// UploadHandler handles teacher file uploads
type UploadHandler struct {
	store *uploadstore.LocalStore
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store *uploadstore.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadPDFResponse represents a successful upload
type UploadPDFResponse struct {
	Message   string `json:"message"`
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	PageCount int    `json:"pageCount,omitempty"`
}

// UploadPDF handles POST /api/teacher/upload-pdf-file. Only the declared
// media type and the size are checked; page counting is informational.
func (h *UploadHandler) UploadPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("pdf")
	if err != nil {
		return response.BadRequest(c, "No PDF file uploaded")
	}

	if err := uploadstore.ValidatePDF(file); err != nil {
		return response.BadRequest(c, err.Error())
	}

	filename := uploadstore.GenerateFilename(file.Filename)
	if err := c.SaveFile(file, h.store.PathFor(filename)); err != nil {
		log.Println("Upload error:", err)
		return response.InternalServerError(c, "Upload failed")
	}

	pageCount := 0
	if src, err := file.Open(); err == nil {
		if data, err := io.ReadAll(src); err == nil {
			if n, err := pdfvalidation.PageCount(data); err == nil {
				pageCount = n
			}
		}
		src.Close()
	}

	return response.OK(c, UploadPDFResponse{
		Message:   "PDF uploaded successfully",
		URL:       uploadstore.URLFor(filename),
		Filename:  filename,
		PageCount: pageCount,
	})
}
