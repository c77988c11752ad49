package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"landapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a JSON error response.
//
// Parameters:
// - status: HTTP status code to return
// - message: human-readable safe message (no internal details)
// - details: optional extra context; must not carry provider response bodies
func writeError(c *fiber.Ctx, status int, message, details string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     message,
		Details:   details,
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request", "")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found", "")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed", "")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "request body too large", "")
		default:
			return writeError(c, status, "internal server error", "")
		}
	}
}
