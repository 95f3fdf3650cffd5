package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership is the durable (user, event, role) relationship. At most one
// row per (user_id, event_id); the unique index backstops the application
// checks. Rows are hard-deleted only when the event is deleted.
type Membership struct {
	MembershipID uuid.UUID `gorm:"column:membership_id;type:uuid;primaryKey" json:"membership_id"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_user_event" json:"user_id"`
	EventID      uuid.UUID `gorm:"column:event_id;type:uuid;not null;uniqueIndex:idx_user_event" json:"event_id"`
	Role         string    `gorm:"column:role;not null" json:"role"`
	RoleLabel    string    `gorm:"column:role_label;not null" json:"role_label"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Membership) TableName() string {
	return "UserEvents"
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.MembershipID == uuid.Nil {
		m.MembershipID = uuid.New()
	}
	return nil
}
