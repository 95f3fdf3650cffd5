package memberships

import (
	"context"
	"strings"

	"vows-backend/internal/constants"
	"vows-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// Find returns the caller's membership for the event, or (nil, nil) when
// none exists.
func (s *Service) Find(ctx context.Context, userID, eventID uuid.UUID) (*domain.Membership, error) {
	var m domain.Membership
	err := s.DB.WithContext(ctx).Where("user_id = ? AND event_id = ?", userID, eventID).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a membership row. A duplicate (user, event) pair fails
// with a conflict; the DB unique index backstops the pre-check so a
// concurrent insert cannot silently overwrite.
func (s *Service) Create(ctx context.Context, userID, eventID uuid.UUID, role, roleLabel string) (*domain.Membership, error) {
	return CreateTx(s.DB.WithContext(ctx), userID, eventID, role, roleLabel)
}

// CreateTx is Create against a caller-supplied handle so the insert can
// join an enclosing transaction (invitation acceptance, event creation).
func CreateTx(tx *gorm.DB, userID, eventID uuid.UUID, role, roleLabel string) (*domain.Membership, error) {
	var existing domain.Membership
	if err := tx.Where("user_id = ? AND event_id = ?", userID, eventID).First(&existing).Error; err == nil {
		return nil, ErrAlreadyMember
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if roleLabel == "" {
		roleLabel = constants.DefaultRoleLabel(role)
	}
	m := &domain.Membership{
		UserID:    userID,
		EventID:   eventID,
		Role:      role,
		RoleLabel: roleLabel,
	}
	if err := tx.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyMember
		}
		return nil, err
	}
	return m, nil
}

// EventMember is the joined shape returned to clients for member lists.
type EventMember struct {
	UserID    uuid.UUID `json:"user_id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"role_label"`
}

// ListEventMembers returns all members of an event; the caller must be a
// member themselves.
func (s *Service) ListEventMembers(ctx context.Context, actorID, eventID uuid.UUID) ([]EventMember, error) {
	actor, err := s.Find(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrNotMember
	}

	var members []EventMember
	err = s.DB.WithContext(ctx).
		Table("UserEvents").
		Select(`"UserEvents".user_id, "Users".fullname, "Users".email, "UserEvents".role, "UserEvents".role_label`).
		Joins(`JOIN "Users" ON "Users".user_id = "UserEvents".user_id`).
		Where(`"UserEvents".event_id = ?`, eventID).
		Order(`"UserEvents".created_at ASC`).
		Scan(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
