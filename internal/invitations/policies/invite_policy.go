package policies

import (
	"vows-backend/internal/constants"
	"vows-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteCreationParams are the resolved facts checked before an invitation
// is created or overwritten.
type InviteCreationParams struct {
	EventID    uuid.UUID
	SenderID   uuid.UUID
	SenderRole string
	ReceiverID uuid.UUID
	TargetRole string
}

// ValidateInviteCreation checks the hierarchy and uniqueness preconditions
// for sending an invitation. A pending row for the same (event, receiver)
// blocks the send; a resolved row does not (it will be overwritten).
func ValidateInviteCreation(db *gorm.DB, p InviteCreationParams) error {
	if !constants.CanInviteTo(p.SenderRole, p.TargetRole) {
		return ErrRoleExceedsSender
	}
	if p.SenderID == p.ReceiverID {
		return ErrSelfInvite
	}

	var m domain.Membership
	if err := db.Where("user_id = ? AND event_id = ?", p.ReceiverID, p.EventID).First(&m).Error; err == nil {
		return ErrReceiverAlreadyMember
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	var inv domain.Invitation
	err := db.Where("event_id = ? AND receiver_id = ? AND status = ?",
		p.EventID, p.ReceiverID, domain.InviteStatusPending).First(&inv).Error
	if err == nil {
		return ErrPendingInviteExists
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	return nil
}

// ValidateInviteResponse checks that the caller is the receiver and the
// invitation is still pending. Expiry is the service's concern because it
// mutates state.
func ValidateInviteResponse(inv *domain.Invitation, receiverID uuid.UUID) error {
	if inv.ReceiverID != receiverID {
		return ErrNotReceiver
	}
	if inv.Status != domain.InviteStatusPending {
		return ErrAlreadyResponded
	}
	return nil
}
