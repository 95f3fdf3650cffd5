package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"vows-backend/internal/domain"
	"vows-backend/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

// accessClaims is the internal claims type used for JWT parsing.
type accessClaims struct {
	jwt.RegisteredClaims
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// TokenService issues and verifies mobile access tokens (short-lived HS256
// JWTs) and opaque refresh tokens persisted one row per token.
type TokenService struct {
	DB     *gorm.DB
	Secret string
	Now    func() time.Time
}

func (t *TokenService) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// TokenPair is the mobile login response body.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// IssuePair signs a new access token and persists a fresh refresh token row.
func (t *TokenService) IssuePair(ctx context.Context, user *domain.User) (*TokenPair, error) {
	access, err := t.signAccess(user)
	if err != nil {
		return nil, err
	}
	refresh := randomHex(32)
	row := &domain.RefreshToken{
		UserID:    user.UserID,
		Token:     refresh,
		ExpiresAt: t.now().Add(refreshTokenTTL),
	}
	if err := t.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a refresh token row against expiry and issues a new
// access token. No rotation: the refresh token itself is unchanged. An
// expired row is deleted before the error is returned.
func (t *TokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var row domain.RefreshToken
	if err := t.DB.WithContext(ctx).Where("token = ?", refreshToken).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}
	if t.now().After(row.ExpiresAt) {
		t.DB.WithContext(ctx).Delete(&row)
		return "", ErrRefreshTokenExpired
	}
	var user domain.User
	if err := t.DB.WithContext(ctx).Where("user_id = ?", row.UserID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}
	return t.signAccess(&user)
}

// Revoke deletes the refresh token row (mobile logout). Missing rows are
// not an error.
func (t *TokenService) Revoke(ctx context.Context, refreshToken string) error {
	return t.DB.WithContext(ctx).Where("token = ?", refreshToken).Delete(&domain.RefreshToken{}).Error
}

// VerifyAccess parses and validates an access token, returning the caller
// identity for the auth middleware.
func (t *TokenService) VerifyAccess(token string) (*middleware.SessionUser, error) {
	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(tk *jwt.Token) (interface{}, error) {
		return []byte(t.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidAccessToken
	}
	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidAccessToken
	}
	return &middleware.SessionUser{
		UserID:   claims.Subject,
		Fullname: claims.Fullname,
		Email:    claims.Email,
	}, nil
}

func (t *TokenService) signAccess(user *domain.User) (string, error) {
	now := t.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			ID:        uuid.New().String(),
		},
		Fullname: user.Fullname,
		Email:    user.Email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.Secret))
}

func randomHex(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	return hex.EncodeToString(b)
}
