package users

import "vows-backend/internal/pkg/apperrors"

var (
	ErrFullnameRequired = apperrors.BadRequest("A valid full name is required")
	ErrInvalidEmail     = apperrors.BadRequest("A valid email is required")
	ErrWeakPassword     = apperrors.BadRequest("Password must be at least 8 characters with a letter, a number and a special character")
	ErrEmailTaken       = apperrors.Conflict("Email is already registered")
	ErrUserNotFound     = apperrors.NotFound("User not found")
)
