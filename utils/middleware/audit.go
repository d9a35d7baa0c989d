package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminAuditLog records an audit row for admin actions after the handler has
// run. Logging never blocks or fails the request itself.
func AdminAuditLog(db *gorm.DB, action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, ok := GetUserID(c)
		if !ok {
			return c.Next()
		}

		// Parse resource ID from params if available
		var resourceID uint
		if id := c.Params("id"); id != "" {
			if parsedID, err := strconv.ParseUint(id, 10, 32); err == nil {
				resourceID = uint(parsedID)
			}
		}

		// Capture request body for POST requests
		var requestBody datatypes.JSON
		if c.Method() == fiber.MethodPost {
			if body := c.Body(); len(body) > 0 {
				// Copy: fiber reuses the buffer after the handler returns
				requestBody = datatypes.JSON(append([]byte(nil), body...))
			}
		}

		ip := c.IP()
		userAgent := c.Get("User-Agent")
		description := c.Method() + " " + c.Path()

		// Execute the actual handler
		err := c.Next()

		go func() {
			auditLog := model.AdminAuditLog{
				AdminID:     adminID,
				Action:      action,
				Resource:    resource,
				ResourceID:  resourceID,
				RequestBody: requestBody,
				IPAddress:   ip,
				UserAgent:   userAgent,
				Description: description,
			}

			db.Create(&auditLog)
		}()

		return err
	}
}
