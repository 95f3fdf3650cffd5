package memberships

import (
	"vows-backend/internal/middleware"
	"vows-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/events/:event_id/members (auth, member-only)
func (h *Handlers) ListEventMembers(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return response.Error(c, "A valid event id is required", fiber.StatusBadRequest)
	}
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	members, err := h.Service.ListEventMembers(c.Context(), actorID, eventID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Members fetched successfully", members)
}
