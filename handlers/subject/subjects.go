package subject

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/utils/response"
	"github.com/sahilchouksey/studystack-api/utils/validation"
	"gorm.io/gorm"
)

// SubjectHandler handles subject-related requests
type SubjectHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(db *gorm.DB) *SubjectHandler {
	return &SubjectHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateSubjectRequest represents the request body for creating a subject
type CreateSubjectRequest struct {
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code"`
	BranchID uint   `json:"branchId" validate:"required"`
}

// CreateSubject handles POST /api/admin/subjects
func (h *SubjectHandler) CreateSubject(c *fiber.Ctx) error {
	var req CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Code = validation.SanitizeString(req.Code)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	var branch model.Branch
	if err := h.db.First(&branch, req.BranchID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Branch not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	subject := model.Subject{
		Name:     req.Name,
		Code:     req.Code,
		BranchID: req.BranchID,
	}

	if err := h.db.Create(&subject).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Created(c, subject)
}

// DeleteSubject handles DELETE /api/admin/subjects/:id
func (h *SubjectHandler) DeleteSubject(c *fiber.Ctx) error {
	id := c.Params("id")

	var subject model.Subject
	if err := h.db.First(&subject, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Subject not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	if err := h.db.Delete(&subject).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Message(c, "Subject deleted")
}

// ListByBranch handles GET /api/public/subjects/:branchId
func (h *SubjectHandler) ListByBranch(c *fiber.Ctx) error {
	var subjects []model.Subject
	if err := h.db.Where("branch_id = ?", c.Params("branchId")).
		Order("name ASC").
		Find(&subjects).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.OK(c, subjects)
}
