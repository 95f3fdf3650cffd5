package memberships

import "vows-backend/internal/pkg/apperrors"

var (
	ErrAlreadyMember = apperrors.Conflict("User is already a member of this event")
	ErrNotMember     = apperrors.Forbidden("You are not a member of this event")
)
