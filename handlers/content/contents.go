package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/utils/response"
	"github.com/sahilchouksey/studystack-api/utils/validation"
	"gorm.io/gorm"
)

var (
	errTextRequired = errors.New("text is required for type=text")
	errURLRequired  = errors.New("url is required for pdf/image")
)

// ContentHandler handles content-related requests
type ContentHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewContentHandler creates a new content handler
func NewContentHandler(db *gorm.DB) *ContentHandler {
	return &ContentHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateContentRequest represents the request body for creating content
type CreateContentRequest struct {
	UnitID uint              `json:"unitId" validate:"required"`
	Type   model.ContentType `json:"type" validate:"required,oneof=pdf text image"`
	Title  string            `json:"title"`
	URL    string            `json:"url"`
	Text   string            `json:"text"`
}

// validatePayload enforces the conditional field rules: text rows carry a
// body, pdf/image rows carry a location.
func validatePayload(contentType model.ContentType, url, text string) error {
	switch contentType {
	case model.ContentTypeText:
		if text == "" {
			return errTextRequired
		}
	case model.ContentTypePDF, model.ContentTypeImage:
		if url == "" {
			return errURLRequired
		}
	}
	return nil
}

// CreateContent handles POST /api/teacher/content
func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	var req CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Title = validation.SanitizeString(req.Title)
	req.URL = validation.SanitizeString(req.URL)
	req.Text = validation.SanitizeString(req.Text)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	var unit model.Unit
	if err := h.db.First(&unit, req.UnitID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Unit not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	if err := validatePayload(req.Type, req.URL, req.Text); err != nil {
		return response.BadRequest(c, err.Error())
	}

	content := model.Content{
		UnitID: req.UnitID,
		Type:   req.Type,
		Title:  req.Title,
		URL:    req.URL,
		Text:   req.Text,
	}

	if err := h.db.Create(&content).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Created(c, content)
}

// ListByUnit handles GET /api/teacher/content/by-unit/:unitId
func (h *ContentHandler) ListByUnit(c *fiber.Ctx) error {
	var contents []model.Content
	if err := h.db.Where("unit_id = ?", c.Params("unitId")).
		Order("created_at DESC").
		Find(&contents).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.OK(c, contents)
}

// DeleteContent handles DELETE /api/teacher/content/:contentId
func (h *ContentHandler) DeleteContent(c *fiber.Ctx) error {
	id := c.Params("contentId")

	var content model.Content
	if err := h.db.First(&content, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Content not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	if err := h.db.Delete(&content).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Message(c, "Content deleted")
}
