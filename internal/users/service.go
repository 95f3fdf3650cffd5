package users

import (
	"context"
	"strings"

	"vows-backend/internal/domain"
	"vows-backend/internal/pkg/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type RegisterInput struct {
	Fullname string  `json:"fullname"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
}

// Register creates a new account. Email is stored lowercased; uniqueness is
// checked first and backstopped by the DB unique index.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if !validation.IsValidFullname(in.Fullname) {
		return nil, ErrFullnameRequired
	}
	if !validation.IsValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	if !validation.IsValidPassword(in.Password) {
		return nil, ErrWeakPassword
	}

	normalized := strings.ToLower(in.Email)
	var existing domain.User
	if err := s.DB.WithContext(ctx).Where("email = ?", normalized).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Fullname:     in.Fullname,
		Email:        normalized,
		PasswordHash: string(hash),
		Phone:        in.Phone,
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// FindByEmail resolves a user by email (identity resolution for invitations).
func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := s.DB.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

type UpdateProfileInput struct {
	Fullname *string `json:"fullname"`
	Phone    *string `json:"phone"`
}

// UpdateProfile updates the caller's own profile fields.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Fullname != nil {
		if !validation.IsValidFullname(*in.Fullname) {
			return nil, ErrFullnameRequired
		}
		u.Fullname = *in.Fullname
	}
	if in.Phone != nil {
		u.Phone = in.Phone
	}
	if err := s.DB.WithContext(ctx).Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}
