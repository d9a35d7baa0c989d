package regulation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/utils/response"
	"github.com/sahilchouksey/studystack-api/utils/validation"
	"gorm.io/gorm"
)

// RegulationHandler handles regulation-related requests
type RegulationHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewRegulationHandler creates a new regulation handler
func NewRegulationHandler(db *gorm.DB) *RegulationHandler {
	return &RegulationHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateRegulationRequest represents the request body for creating a regulation
type CreateRegulationRequest struct {
	Name         string `json:"name" validate:"required"`
	UniversityID uint   `json:"universityId" validate:"required"`
}

// CreateRegulation handles POST /api/admin/regulations
func (h *RegulationHandler) CreateRegulation(c *fiber.Ctx) error {
	var req CreateRegulationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	// Parent existence check. The check and the insert below are separate
	// statements: a concurrent parent delete between them can still leave
	// an orphan row. Known gap, kept for source compatibility.
	var university model.University
	if err := h.db.First(&university, req.UniversityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	regulation := model.Regulation{
		Name:         req.Name,
		UniversityID: req.UniversityID,
	}

	if err := h.db.Create(&regulation).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Created(c, regulation)
}

// DeleteRegulation handles DELETE /api/admin/regulations/:id
func (h *RegulationHandler) DeleteRegulation(c *fiber.Ctx) error {
	id := c.Params("id")

	var regulation model.Regulation
	if err := h.db.First(&regulation, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Regulation not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	if err := h.db.Delete(&regulation).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Message(c, "Regulation deleted")
}

// ListByUniversity handles GET /api/public/regulations/:universityId
func (h *RegulationHandler) ListByUniversity(c *fiber.Ctx) error {
	var regulations []model.Regulation
	if err := h.db.Where("university_id = ?", c.Params("universityId")).
		Order("name ASC").
		Find(&regulations).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.OK(c, regulations)
}
