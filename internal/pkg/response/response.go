package response

import (
	"vows-backend/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// SuccessBody is the standardized success JSON shape.
type SuccessBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorBody is the standardized error JSON shape.
type ErrorBody struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
}

// Success sends a 200 OK response with the standard success format.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	return c.Status(fiber.StatusOK).JSON(SuccessBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessCreated sends a 201 Created response with the standard success format.
func SuccessCreated(c *fiber.Ctx, message string, data interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	return c.Status(fiber.StatusCreated).JSON(SuccessBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a response with the standard error format.
func Error(c *fiber.Ctx, message string, statusCode int) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Success:    false,
		StatusCode: statusCode,
		Error:      message,
	})
}

// Unauthorized sends 401 with the standard error format. Use this in auth
// middleware so all errors share one shape.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusUnauthorized)
}

// FromError maps a service error to the standard error format. Tagged
// errors keep their status and message; anything else is downgraded to a
// generic 500 with no internal detail.
func FromError(c *fiber.Ctx, err error) error {
	if apperrors.IsClientError(err) {
		return Error(c, err.Error(), apperrors.StatusCode(err))
	}
	return Error(c, "Internal Server Error", fiber.StatusInternalServerError)
}
