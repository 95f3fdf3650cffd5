package invitations

import (
	"vows-backend/internal/middleware"
	"vows-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

type sendInviteBody struct {
	EventID       string `json:"eventId"`
	ReceiverEmail string `json:"receiverEmail"`
	Role          string `json:"role"`
	Message       string `json:"message"`
}

// POST /api/v1/invitations/send (auth)
func (h *Handlers) SendInvite(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var body sendInviteBody
	if err := c.BodyParser(&body); err != nil || body.EventID == "" || body.ReceiverEmail == "" {
		return response.Error(c, "Event id and receiver email are required", fiber.StatusBadRequest)
	}
	if body.Role == "" {
		return response.Error(c, "A valid role is required", fiber.StatusBadRequest)
	}
	eventID, err := uuid.Parse(body.EventID)
	if err != nil {
		return response.Error(c, "A valid event id is required", fiber.StatusBadRequest)
	}

	inv, err := h.Service.Send(c.Context(), SendInput{
		ActorUserID:   actorID,
		EventID:       eventID,
		ReceiverEmail: body.ReceiverEmail,
		Role:          body.Role,
		Message:       body.Message,
	})
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Invitation sent successfully", inv)
}

// GET /api/v1/invitations/list (auth)
func (h *Handlers) ListInvitations(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	lists, err := h.Service.ListFor(c.Context(), actorID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Invitations fetched successfully", lists)
}

// POST /api/v1/invitations/:invitation_id/:action (auth), action accept|reject
func (h *Handlers) RespondInvitation(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	invitationID, err := uuid.Parse(c.Params("invitation_id"))
	if err != nil {
		return response.Error(c, "A valid invitation id is required", fiber.StatusBadRequest)
	}

	result, err := h.Service.Respond(c.Context(), RespondInput{
		InvitationID: invitationID,
		ActorUserID:  actorID,
		Action:       c.Params("action"),
	})
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Invitation "+result.Invitation.Status, result)
}

// GET /api/v1/invitations/available-roles/:event_id (auth, member-only)
func (h *Handlers) AvailableRoles(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return response.Error(c, "A valid event id is required", fiber.StatusBadRequest)
	}

	result, err := h.Service.AvailableRoles(c.Context(), actorID, eventID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Available roles fetched successfully", result)
}
