package university

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/utils/response"
	"github.com/sahilchouksey/studystack-api/utils/validation"
	"gorm.io/gorm"
)

// UniversityHandler handles university-related requests
type UniversityHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewUniversityHandler creates a new university handler
func NewUniversityHandler(db *gorm.DB) *UniversityHandler {
	return &UniversityHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateUniversityRequest represents the request body for creating a university
type CreateUniversityRequest struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code"`
	LogoURL string `json:"logoUrl"`
}

// CreateUniversity handles POST /api/admin/universities
func (h *UniversityHandler) CreateUniversity(c *fiber.Ctx) error {
	var req CreateUniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Code = validation.SanitizeString(req.Code)
	req.LogoURL = validation.SanitizeString(req.LogoURL)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	// Duplicate check is an exact match on the trimmed name
	var existing model.University
	if err := h.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return response.BadRequest(c, "University already exists")
	}

	university := model.University{
		Name:    req.Name,
		Code:    req.Code,
		LogoURL: req.LogoURL,
	}

	if err := h.db.Create(&university).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Created(c, university)
}

// DeleteUniversity handles DELETE /api/admin/universities/:id.
// Children keep their foreign key; there is no cascade (see DESIGN.md).
func (h *UniversityHandler) DeleteUniversity(c *fiber.Ctx) error {
	id := c.Params("id")

	var university model.University
	if err := h.db.First(&university, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	if err := h.db.Delete(&university).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Message(c, "University deleted")
}

// ListUniversities handles GET /api/public/universities
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	var universities []model.University
	if err := h.db.Order("name ASC").Find(&universities).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.OK(c, universities)
}
