package events

import (
	"context"
	"time"

	"vows-backend/internal/constants"
	"vows-backend/internal/domain"
	"vows-backend/internal/memberships"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	DB      *gorm.DB
	Members *memberships.Service
}

type CreateEventInput struct {
	ActorUserID uuid.UUID
	Name        string
	WeddingDate *time.Time
	Venue       *string
	Details     datatypes.JSON
	OwnerLabel  string
}

// Create inserts the event and the creator's owner membership in one
// transaction; a crash between the two cannot leave an ownerless event.
func (s *Service) Create(ctx context.Context, in CreateEventInput) (*domain.Event, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}

	event := &domain.Event{
		Name:        in.Name,
		WeddingDate: in.WeddingDate,
		Venue:       in.Venue,
		Details:     in.Details,
		CreatedBy:   in.ActorUserID,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		_, err := memberships.CreateTx(tx, in.ActorUserID, event.EventID, constants.Owner, in.OwnerLabel)
		return err
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Get returns an event; the caller must be a member.
func (s *Service) Get(ctx context.Context, actorID, eventID uuid.UUID) (*domain.Event, error) {
	m, err := s.Members.Find(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, memberships.ErrNotMember
	}

	var event domain.Event
	if err := s.DB.WithContext(ctx).Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// EventWithRole pairs an event with the caller's membership role in it.
type EventWithRole struct {
	domain.Event
	Role      string `json:"role"`
	RoleLabel string `json:"role_label"`
}

// ListMine returns all events the caller is a member of, newest first.
func (s *Service) ListMine(ctx context.Context, actorID uuid.UUID) ([]EventWithRole, error) {
	var out []EventWithRole
	err := s.DB.WithContext(ctx).
		Table("Events").
		Select(`"Events".*, "UserEvents".role, "UserEvents".role_label`).
		Joins(`JOIN "UserEvents" ON "UserEvents".event_id = "Events".event_id`).
		Where(`"UserEvents".user_id = ? AND "Events".deleted_at IS NULL`, actorID).
		Order(`"Events".created_at DESC`).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateEventInput struct {
	Name        *string        `json:"name"`
	WeddingDate *time.Time     `json:"wedding_date"`
	Venue       *string        `json:"venue"`
	Details     datatypes.JSON `json:"details"`
}

// Update edits event fields; owner or planner only.
func (s *Service) Update(ctx context.Context, actorID, eventID uuid.UUID, in UpdateEventInput) (*domain.Event, error) {
	m, err := s.Members.Find(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, memberships.ErrNotMember
	}
	if !constants.CanInviteTo(m.Role, constants.Planner) {
		return nil, ErrUpdateRole
	}

	var event domain.Event
	if err := s.DB.WithContext(ctx).Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrNameRequired
		}
		event.Name = *in.Name
	}
	if in.WeddingDate != nil {
		event.WeddingDate = in.WeddingDate
	}
	if in.Venue != nil {
		event.Venue = in.Venue
	}
	if in.Details != nil {
		event.Details = in.Details
	}
	if err := s.DB.WithContext(ctx).Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Delete removes an event; owner only. Memberships and invitations are
// hard-deleted in the same transaction, then the event is soft-deleted.
func (s *Service) Delete(ctx context.Context, actorID, eventID uuid.UUID) error {
	m, err := s.Members.Find(ctx, actorID, eventID)
	if err != nil {
		return err
	}
	if m == nil {
		return memberships.ErrNotMember
	}
	if m.Role != constants.Owner {
		return ErrDeleteRole
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&domain.Invitation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&domain.Membership{}).Error; err != nil {
			return err
		}
		res := tx.Where("event_id = ?", eventID).Delete(&domain.Event{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEventNotFound
		}
		return nil
	})
}
