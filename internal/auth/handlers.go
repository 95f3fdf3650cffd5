package auth

import (
	"context"

	"vows-backend/internal/middleware"
	"vows-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handlers struct {
	DB     *gorm.DB
	Tokens *TokenService
	Rdb    *redis.Client
	Config middleware.SessionConfig
}

// POST /api/v1/auth/login — web login, Redis session + cookie.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var body LoginInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	user, err := LoginUser(c.Context(), h.DB, body)
	if err != nil {
		return response.FromError(c, err)
	}

	sid := middleware.RegenerateSessionID(c)
	sessionUser := middleware.SessionUser{
		UserID:   user.UserID.String(),
		Fullname: user.Fullname,
		Email:    user.Email,
	}
	middleware.SetSessionUser(c, sessionUser)
	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = "s:" + sid
	c.Cookie(&cookie)

	return response.Success(c, "Login successful", sessionUser)
}

// POST /api/v1/auth/login-mobile — token login, access + refresh pair.
func (h *Handlers) LoginMobile(c *fiber.Ctx) error {
	var body LoginInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	user, err := LoginUser(c.Context(), h.DB, body)
	if err != nil {
		return response.FromError(c, err)
	}

	pair, err := h.Tokens.IssuePair(c.Context(), user)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Login successful", pair)
}

// POST /api/v1/auth/refresh — new access token from a refresh token.
func (h *Handlers) Refresh(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err != nil || body.RefreshToken == "" {
		return response.Error(c, "Refresh token is required", fiber.StatusBadRequest)
	}

	access, err := h.Tokens.Refresh(c.Context(), body.RefreshToken)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Token refreshed", fiber.Map{"access_token": access})
}

// GET /api/v1/auth/me — current session user.
func (h *Handlers) Me(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return response.FromError(c, ErrNotAuthenticated)
	}
	return response.Success(c, "Authenticated", actor)
}

// DELETE /api/v1/auth/logout — destroy session and/or revoke refresh token.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = c.BodyParser(&body)
	if body.RefreshToken != "" {
		if err := h.Tokens.Revoke(c.Context(), body.RefreshToken); err != nil {
			return response.FromError(c, err)
		}
	}

	if sid := middleware.GetSessionID(c); sid != "" && h.Rdb != nil {
		h.Rdb.Del(context.Background(), middleware.SessionRedisPrefix+sid)
	}
	middleware.DestroySession(c)
	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.MaxAge = -1
	c.Cookie(&cookie)

	return response.Success(c, "Logged out successfully", nil)
}
