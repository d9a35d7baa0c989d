package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/utils/auth"
	"github.com/sahilchouksey/studystack-api/utils/middleware"
	"github.com/sahilchouksey/studystack-api/utils/response"
	"github.com/sahilchouksey/studystack-api/utils/validation"
	"gorm.io/gorm"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *auth.JWTManager
	bruteForceProtection *middleware.BruteForceProtection
	validator            *validation.Validator
	tokenExpiry          time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *auth.JWTManager, bruteForceProtection *middleware.BruteForceProtection, tokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		bruteForceProtection: bruteForceProtection,
		validator:            validation.NewValidator(),
		tokenExpiry:          tokenExpiry,
	}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	User      model.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresIn int        `json:"expiresIn"` // in seconds
}

// Register handles POST /api/auth/register. Self-registration always yields
// a student account; privileged roles are seeded.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Email = validation.SanitizeString(req.Email)

	var existing model.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return response.BadRequest(c, "Email already registered")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         model.RoleStudent,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return response.Created(c, user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	ip := c.IP()

	// Find user by email
	var user model.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// Record failed attempt even if user not found
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid email or password")
	}

	// Verify password
	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid email or password")
	}

	// Clear failed attempts on successful login
	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Role)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token")
	}

	return response.OK(c, LoginResponse{
		User:      user,
		Token:     token,
		ExpiresIn: int(h.tokenExpiry.Seconds()),
	})
}
