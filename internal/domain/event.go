package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event is a wedding event. Details holds free-form planning data
// (theme, budget, ceremony notes) as a JSON column.
type Event struct {
	EventID     uuid.UUID      `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	WeddingDate *time.Time     `gorm:"column:wedding_date" json:"wedding_date"`
	Venue       *string        `gorm:"column:venue" json:"venue"`
	Details     datatypes.JSON `gorm:"column:details" json:"details"`
	CreatedBy   uuid.UUID      `gorm:"column:created_by;type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Event) TableName() string {
	return "Events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	return nil
}
