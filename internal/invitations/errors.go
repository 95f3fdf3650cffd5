package invitations

import "vows-backend/internal/pkg/apperrors"

var (
	ErrRoleRequired       = apperrors.BadRequest("A valid role is required")
	ErrInvalidAction      = apperrors.BadRequest("Action must be accept or reject")
	ErrInvitationNotFound = apperrors.NotFound("Invitation not found")
	ErrReceiverNotFound   = apperrors.NotFound("No user found for that email")
	ErrInvitationExpired  = apperrors.BadRequest("Invitation has expired")
)
