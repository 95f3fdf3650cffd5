package invitations

import (
	"context"
	"strings"
	"time"

	"vows-backend/internal/constants"
	"vows-backend/internal/domain"
	"vows-backend/internal/invitations/policies"
	"vows-backend/internal/memberships"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const inviteExpiry = 7 * 24 * time.Hour

// Actions accepted by Respond.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type SendInput struct {
	ActorUserID   uuid.UUID
	EventID       uuid.UUID
	ReceiverEmail string
	Role          string
	Message       string
}

// Send creates or overwrites the invitation for (event, receiver). The row
// is keyed by that pair: a prior resolved invitation is replaced in place
// (role, message, expiry reset), a prior pending one blocks the send.
func (s *Service) Send(ctx context.Context, in SendInput) (*domain.Invitation, error) {
	if in.Role == "" || !constants.IsValidRole(in.Role) {
		return nil, ErrRoleRequired
	}

	var sender domain.Membership
	if err := s.DB.WithContext(ctx).Where("user_id = ? AND event_id = ?", in.ActorUserID, in.EventID).First(&sender).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, memberships.ErrNotMember
		}
		return nil, err
	}

	var receiver domain.User
	if err := s.DB.WithContext(ctx).Where("email = ?", strings.ToLower(in.ReceiverEmail)).First(&receiver).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrReceiverNotFound
		}
		return nil, err
	}

	if err := policies.ValidateInviteCreation(s.DB.WithContext(ctx), policies.InviteCreationParams{
		EventID:    in.EventID,
		SenderID:   in.ActorUserID,
		SenderRole: sender.Role,
		ReceiverID: receiver.UserID,
		TargetRole: in.Role,
	}); err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(inviteExpiry)

	var existing domain.Invitation
	err := s.DB.WithContext(ctx).Where("event_id = ? AND receiver_id = ?", in.EventID, receiver.UserID).First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		inv := &domain.Invitation{
			EventID:    in.EventID,
			SenderID:   in.ActorUserID,
			ReceiverID: receiver.UserID,
			Role:       in.Role,
			Message:    in.Message,
			Status:     domain.InviteStatusPending,
			ExpiresAt:  expiresAt,
		}
		if err := s.DB.WithContext(ctx).Create(inv).Error; err != nil {
			return nil, err
		}
		return inv, nil
	} else if err != nil {
		return nil, err
	}

	// Overwrite the resolved row rather than keeping history.
	existing.SenderID = in.ActorUserID
	existing.Role = in.Role
	existing.Message = in.Message
	existing.Status = domain.InviteStatusPending
	existing.ExpiresAt = expiresAt
	if err := s.DB.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

type RespondInput struct {
	InvitationID uuid.UUID
	ActorUserID  uuid.UUID
	Action       string
}

// RespondResult pairs the updated invitation with the membership created on
// accept (nil on reject).
type RespondResult struct {
	Invitation *domain.Invitation `json:"invitation"`
	Membership *domain.Membership `json:"membership,omitempty"`
}

// Respond resolves a pending invitation. Expiry is checked first and
// persisted even though the caller's request is then rejected. Accepting
// flips status and inserts the membership in one transaction; the
// conditional status update serializes concurrent responders so only one
// wins the pending-to-terminal transition.
func (s *Service) Respond(ctx context.Context, in RespondInput) (*RespondResult, error) {
	if in.Action != ActionAccept && in.Action != ActionReject {
		return nil, ErrInvalidAction
	}

	var inv domain.Invitation
	if err := s.DB.WithContext(ctx).Where("invite_id = ?", in.InvitationID).First(&inv).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	if err := policies.ValidateInviteResponse(&inv, in.ActorUserID); err != nil {
		return nil, err
	}

	if s.now().After(inv.ExpiresAt) {
		s.DB.WithContext(ctx).Model(&domain.Invitation{}).
			Where("invite_id = ? AND status = ?", inv.InviteID, domain.InviteStatusPending).
			Update("status", domain.InviteStatusExpired)
		return nil, ErrInvitationExpired
	}

	if in.Action == ActionReject {
		res := s.DB.WithContext(ctx).Model(&domain.Invitation{}).
			Where("invite_id = ? AND status = ?", inv.InviteID, domain.InviteStatusPending).
			Update("status", domain.InviteStatusRejected)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, policies.ErrAlreadyResponded
		}
		inv.Status = domain.InviteStatusRejected
		return &RespondResult{Invitation: &inv}, nil
	}

	var membership *domain.Membership
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Invitation{}).
			Where("invite_id = ? AND status = ?", inv.InviteID, domain.InviteStatusPending).
			Update("status", domain.InviteStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return policies.ErrAlreadyResponded
		}
		m, err := memberships.CreateTx(tx, inv.ReceiverID, inv.EventID, inv.Role, "")
		if err != nil {
			return err
		}
		membership = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	inv.Status = domain.InviteStatusAccepted
	return &RespondResult{Invitation: &inv, Membership: membership}, nil
}

// InvitationLists is the ListFor response: pending invitations the user
// sent, and pending non-expired ones they received.
type InvitationLists struct {
	Sent     []domain.Invitation `json:"sent"`
	Received []domain.Invitation `json:"received"`
}

// ListFor returns the caller's pending invitations. The received view
// filters rows past their expiry but does not mutate them; only Respond
// performs the lazy expiry write.
func (s *Service) ListFor(ctx context.Context, userID uuid.UUID) (*InvitationLists, error) {
	out := &InvitationLists{Sent: []domain.Invitation{}, Received: []domain.Invitation{}}

	if err := s.DB.WithContext(ctx).
		Where("sender_id = ? AND status = ?", userID, domain.InviteStatusPending).
		Order("created_at DESC").Find(&out.Sent).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).
		Where("receiver_id = ? AND status = ? AND expires_at > ?", userID, domain.InviteStatusPending, s.now()).
		Order("created_at DESC").Find(&out.Received).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// AvailableRolesResult is the available-roles response.
type AvailableRolesResult struct {
	UserRole       string   `json:"userRole"`
	AvailableRoles []string `json:"availableRoles"`
}

// AvailableRoles returns the caller's role in the event and the roles they
// may invite at.
func (s *Service) AvailableRoles(ctx context.Context, actorID, eventID uuid.UUID) (*AvailableRolesResult, error) {
	var m domain.Membership
	if err := s.DB.WithContext(ctx).Where("user_id = ? AND event_id = ?", actorID, eventID).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, memberships.ErrNotMember
		}
		return nil, err
	}
	return &AvailableRolesResult{
		UserRole:       m.Role,
		AvailableRoles: constants.AvailableRolesFor(m.Role),
	}, nil
}
