package unit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/utils/response"
	"github.com/sahilchouksey/studystack-api/utils/validation"
	"gorm.io/gorm"
)

// UnitHandler handles unit-related requests
type UnitHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(db *gorm.DB) *UnitHandler {
	return &UnitHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateUnitRequest represents the request body for creating a unit
type CreateUnitRequest struct {
	Title     string `json:"title" validate:"required"`
	Order     *int   `json:"order"`
	SubjectID uint   `json:"subjectId" validate:"required"`
}

// UnitDetailsResponse is the composite student view of a unit
type UnitDetailsResponse struct {
	Unit     model.Unit      `json:"unit"`
	Contents []model.Content `json:"contents"`
}

// CreateUnit handles POST /api/admin/units
func (h *UnitHandler) CreateUnit(c *fiber.Ctx) error {
	var req CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Title = validation.SanitizeString(req.Title)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	var subject model.Subject
	if err := h.db.First(&subject, req.SubjectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Subject not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	order := 1
	if req.Order != nil {
		order = *req.Order
	}

	unit := model.Unit{
		Title:     req.Title,
		Order:     order,
		SubjectID: req.SubjectID,
	}

	if err := h.db.Create(&unit).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Created(c, unit)
}

// DeleteUnit handles DELETE /api/admin/units/:id
func (h *UnitHandler) DeleteUnit(c *fiber.Ctx) error {
	id := c.Params("id")

	var unit model.Unit
	if err := h.db.First(&unit, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Unit not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	if err := h.db.Delete(&unit).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Message(c, "Unit deleted")
}

// ListBySubject handles GET /api/public/units/:subjectId.
// Units sort by their order field; ties have no secondary ordering.
func (h *UnitHandler) ListBySubject(c *fiber.Ctx) error {
	var units []model.Unit
	if err := h.db.Where("subject_id = ?", c.Params("subjectId")).
		Order(`"order" ASC`).
		Find(&units).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.OK(c, units)
}

// GetUnitDetails handles GET /api/public/unit-details/:unitId.
// The unit lookup runs first; an unknown unit returns 404 without ever
// querying contents.
func (h *UnitHandler) GetUnitDetails(c *fiber.Ctx) error {
	unitID := c.Params("unitId")

	var unit model.Unit
	if err := h.db.Preload("Subject").First(&unit, "id = ?", unitID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Unit not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	var contents []model.Content
	if err := h.db.Where("unit_id = ?", unit.ID).
		Order("created_at DESC").
		Find(&contents).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.OK(c, UnitDetailsResponse{
		Unit:     unit,
		Contents: contents,
	})
}
