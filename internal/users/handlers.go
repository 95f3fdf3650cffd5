package users

import (
	"vows-backend/internal/middleware"
	"vows-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/users/register (public)
func (h *Handlers) Register(c *fiber.Ctx) error {
	var body RegisterInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	u, err := h.Service.Register(c.Context(), body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "User registered successfully", u)
}

// GET /api/v1/users/me (auth)
func (h *Handlers) Me(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	u, err := h.Service.Get(c.Context(), actor.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Profile fetched successfully", u)
}

// PATCH /api/v1/users/me (auth)
func (h *Handlers) UpdateMe(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var body UpdateProfileInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	u, err := h.Service.UpdateProfile(c.Context(), actor.UserID, body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Profile updated successfully", u)
}
