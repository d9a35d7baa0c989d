package response

import (
	"github.com/gofiber/fiber/v2"
)

// MessageBody is the uniform shape of every non-entity response: deletions,
// upload confirmations, and all errors.
type MessageBody struct {
	Message string `json:"message"`
}

// OK returns the entity/list as-is with 200
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created returns the freshly persisted entity as-is with 201
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message returns a 200 confirmation message
func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(MessageBody{Message: message})
}

// Error returns an error response with the given status code
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(MessageBody{Message: message})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized returns a 401 Unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized access"
	}
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden returns a 403 Forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Access forbidden"
	}
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound returns a 404 Not Found response
func NotFound(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return Error(c, fiber.StatusNotFound, message)
}

// TooManyRequests returns a 429 Too Many Requests response
func TooManyRequests(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Too many requests"
	}
	return Error(c, fiber.StatusTooManyRequests, message)
}

// InternalServerError returns a 500 Internal Server Error response. Handlers
// pass a generic message here; the real error stays in the server log.
func InternalServerError(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Server error"
	}
	return Error(c, fiber.StatusInternalServerError, message)
}
