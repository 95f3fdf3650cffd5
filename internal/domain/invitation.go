package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invitation statuses. Pending is the only non-terminal state.
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusRejected = "rejected"
	InviteStatusExpired  = "expired"
)

// Invitation is a time-boxed offer of a Membership at a specific role.
// At most one row per (event_id, receiver_id); a later send overwrites
// the prior row rather than creating a duplicate.
type Invitation struct {
	InviteID   uuid.UUID `gorm:"column:invite_id;type:uuid;primaryKey" json:"invite_id"`
	EventID    uuid.UUID `gorm:"column:event_id;type:uuid;not null;uniqueIndex:idx_event_receiver" json:"event_id"`
	SenderID   uuid.UUID `gorm:"column:sender_id;type:uuid;not null" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"column:receiver_id;type:uuid;not null;uniqueIndex:idx_event_receiver" json:"receiver_id"`
	Role       string    `gorm:"column:role;not null" json:"role"`
	Message    string    `gorm:"column:message" json:"message"`
	Status     string    `gorm:"column:status;not null;default:'pending'" json:"status"`
	ExpiresAt  time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Invitation) TableName() string {
	return "Invitations"
}

func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.InviteID == uuid.Nil {
		i.InviteID = uuid.New()
	}
	return nil
}
