package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshToken is one row per issued mobile refresh token, checked against
// expiry on refresh. No rotation: the same token is reused until it expires
// or logout deletes the row.
type RefreshToken struct {
	TokenID   uuid.UUID `gorm:"column:token_id;type:uuid;primaryKey" json:"token_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"column:token;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt time.Time `json:"createdAt"`
}

func (RefreshToken) TableName() string {
	return "RefreshTokens"
}

func (r *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if r.TokenID == uuid.Nil {
		r.TokenID = uuid.New()
	}
	return nil
}
