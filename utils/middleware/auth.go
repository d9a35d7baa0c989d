package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/utils/auth"
	"github.com/sahilchouksey/studystack-api/utils/response"
)

const bearerPrefix = "Bearer "

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
	}
}

// Protect authenticates the request and, when roles are given, requires the
// verified identity to hold one of them. With no roles it only authenticates.
func (m *AuthMiddleware) Protect(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthorized(c, "No token, authorization denied")
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		// Malformed, tampered and expired tokens all surface the same way
		claims, err := m.jwtManager.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Token is not valid")
		}

		if len(roles) > 0 && !hasRole(claims.Role, roles) {
			return response.Forbidden(c, "Forbidden: insufficient role")
		}

		// Store the verified identity for downstream handlers
		c.Locals("claims", claims)
		c.Locals("user_id", claims.UserID)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}

func hasRole(role model.Role, allowed []model.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// GetClaims extracts the verified identity from context
func GetClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims := c.Locals("claims")
	if claims == nil {
		return nil, false
	}
	claimsData, ok := claims.(*auth.Claims)
	return claimsData, ok
}

// GetUserID extracts user ID from context
func GetUserID(c *fiber.Ctx) (uint, bool) {
	userID := c.Locals("user_id")
	if userID == nil {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// GetUserRole extracts user role from context
func GetUserRole(c *fiber.Ctx) (model.Role, bool) {
	role := c.Locals("user_role")
	if role == nil {
		return "", false
	}
	r, ok := role.(model.Role)
	return r, ok
}
