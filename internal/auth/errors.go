package auth

import "vows-backend/internal/pkg/apperrors"

var (
	ErrEmailPasswordRequired = apperrors.BadRequest("Email and password are required")
	ErrInvalidEmail          = apperrors.Unauthorized("Invalid Email")
	ErrIncorrectPassword     = apperrors.Unauthorized("Incorrect Password")
	ErrNotAuthenticated      = apperrors.Unauthorized("Not authenticated")
	ErrInvalidRefreshToken   = apperrors.Unauthorized("Invalid refresh token")
	ErrRefreshTokenExpired   = apperrors.Unauthorized("Refresh token has expired")
	ErrInvalidAccessToken    = apperrors.Unauthorized("Invalid access token")
)
