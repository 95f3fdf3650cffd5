package events

import "vows-backend/internal/pkg/apperrors"

var (
	ErrNameRequired  = apperrors.BadRequest("Event name is required")
	ErrEventNotFound = apperrors.NotFound("Event not found")
	ErrUpdateRole    = apperrors.Forbidden("Only the owner or a planner can update this event")
	ErrDeleteRole    = apperrors.Forbidden("Only the owner can delete this event")
)
