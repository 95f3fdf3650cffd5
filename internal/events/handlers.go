package events

import (
	"time"

	"vows-backend/internal/middleware"
	"vows-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Handlers struct {
	Service *Service
}

type createEventBody struct {
	Name        string         `json:"name"`
	WeddingDate *time.Time     `json:"wedding_date"`
	Venue       *string        `json:"venue"`
	Details     datatypes.JSON `json:"details"`
	OwnerLabel  string         `json:"owner_label"`
}

// POST /api/v1/events/create-event (auth)
func (h *Handlers) CreateEvent(c *fiber.Ctx) error {
	actor, actorID, errResp := requireActor(c)
	if actor == nil {
		return errResp
	}

	var body createEventBody
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return response.Error(c, "Event name is required", fiber.StatusBadRequest)
	}

	event, err := h.Service.Create(c.Context(), CreateEventInput{
		ActorUserID: actorID,
		Name:        body.Name,
		WeddingDate: body.WeddingDate,
		Venue:       body.Venue,
		Details:     body.Details,
		OwnerLabel:  body.OwnerLabel,
	})
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Event created successfully", event)
}

// GET /api/v1/events/my-events (auth)
func (h *Handlers) MyEvents(c *fiber.Ctx) error {
	actor, actorID, errResp := requireActor(c)
	if actor == nil {
		return errResp
	}

	events, err := h.Service.ListMine(c.Context(), actorID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Events fetched successfully", events)
}

// GET /api/v1/events/:event_id (auth, member-only)
func (h *Handlers) ViewEvent(c *fiber.Ctx) error {
	actor, actorID, errResp := requireActor(c)
	if actor == nil {
		return errResp
	}

	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return response.Error(c, "A valid event id is required", fiber.StatusBadRequest)
	}

	event, err := h.Service.Get(c.Context(), actorID, eventID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Event fetched successfully", event)
}

// PATCH /api/v1/events/:event_id (auth, owner/planner)
func (h *Handlers) UpdateEvent(c *fiber.Ctx) error {
	actor, actorID, errResp := requireActor(c)
	if actor == nil {
		return errResp
	}

	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return response.Error(c, "A valid event id is required", fiber.StatusBadRequest)
	}

	var body UpdateEventInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	event, err := h.Service.Update(c.Context(), actorID, eventID, body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Event updated successfully", event)
}

// DELETE /api/v1/events/:event_id (auth, owner)
func (h *Handlers) DeleteEvent(c *fiber.Ctx) error {
	actor, actorID, errResp := requireActor(c)
	if actor == nil {
		return errResp
	}

	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return response.Error(c, "A valid event id is required", fiber.StatusBadRequest)
	}

	if err := h.Service.Delete(c.Context(), actorID, eventID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Event deleted successfully", nil)
}

// requireActor extracts the authenticated caller and parses its id. The
// third return value is the error response to send when actor is nil.
func requireActor(c *fiber.Ctx) (*middleware.SessionUser, uuid.UUID, error) {
	actor := middleware.Actor(c)
	if actor == nil {
		return nil, uuid.Nil, response.Unauthorized(c, "Unauthorized")
	}
	id, err := uuid.Parse(actor.UserID)
	if err != nil {
		return nil, uuid.Nil, response.Unauthorized(c, "Unauthorized")
	}
	return actor, id, nil
}
