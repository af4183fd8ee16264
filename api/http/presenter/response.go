package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// ErrorWithCause attaches the underlying error text for diagnostics.
func ErrorWithCause(c *fiber.Ctx, status int, message string, cause error) error {
	resp := ErrorResponse{Message: message}
	if cause != nil {
		resp.Error = cause.Error()
	}
	return JSON(c, status, resp)
}
