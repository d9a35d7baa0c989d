package branch

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/utils/response"
	"github.com/sahilchouksey/studystack-api/utils/validation"
	"gorm.io/gorm"
)

// BranchHandler handles branch-related requests
type BranchHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(db *gorm.DB) *BranchHandler {
	return &BranchHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateBranchRequest represents the request body for creating a branch
type CreateBranchRequest struct {
	Name         string `json:"name" validate:"required"`
	Code         string `json:"code"`
	RegulationID uint   `json:"regulationId" validate:"required"`
}

// CreateBranch handles POST /api/admin/branches
func (h *BranchHandler) CreateBranch(c *fiber.Ctx) error {
	var req CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Code = validation.SanitizeString(req.Code)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	var regulation model.Regulation
	if err := h.db.First(&regulation, req.RegulationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Regulation not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	branch := model.Branch{
		Name:         req.Name,
		Code:         req.Code,
		RegulationID: req.RegulationID,
	}

	if err := h.db.Create(&branch).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Created(c, branch)
}

// DeleteBranch handles DELETE /api/admin/branches/:id
func (h *BranchHandler) DeleteBranch(c *fiber.Ctx) error {
	id := c.Params("id")

	var branch model.Branch
	if err := h.db.First(&branch, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Branch not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	if err := h.db.Delete(&branch).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Message(c, "Branch deleted")
}

// ListByRegulation handles GET /api/public/branches/:regulationId
func (h *BranchHandler) ListByRegulation(c *fiber.Ctx) error {
	var branches []model.Branch
	if err := h.db.Where("regulation_id = ?", c.Params("regulationId")).
		Order("name ASC").
		Find(&branches).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.OK(c, branches)
}
