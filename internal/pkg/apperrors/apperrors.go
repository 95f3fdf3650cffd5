package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a client-correctable failure tagged with the HTTP status it maps
// to. Anything that is not an *Error is treated as an internal error and
// surfaced as a generic 500 by the handlers.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func New(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusConflict, message)
}

// StatusCode returns the tagged status for err, or 500 when err carries none.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return fiber.StatusInternalServerError
}

// IsClientError reports whether err is a tagged, client-correctable error.
func IsClientError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
