package policies

import "vows-backend/internal/pkg/apperrors"

var (
	ErrRoleExceedsSender     = apperrors.Forbidden("You cannot invite at a role above your own")
	ErrSelfInvite            = apperrors.BadRequest("You cannot invite yourself")
	ErrReceiverAlreadyMember = apperrors.Forbidden("User is already a member of this event")
	ErrPendingInviteExists   = apperrors.Conflict("A pending invitation already exists for this user")
	ErrNotReceiver           = apperrors.Forbidden("This invitation was not sent to you")
	ErrAlreadyResponded      = apperrors.BadRequest("Invitation has already been responded to")
)
