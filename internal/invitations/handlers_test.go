package invitations

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"vows-backend/internal/constants"
	"vows-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendInvite_Unauthorized(t *testing.T) {
	svc, _ := setupInvitationsTest(t)
	h := &Handlers{Service: svc}
	app := fiber.New()
	app.Post("/send", h.SendInvite)

	body, _ := json.Marshal(map[string]string{"eventId": "x", "receiverEmail": "a@b.c", "role": "guest"})
	req := httptest.NewRequest("POST", "/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestSendInvite_MissingFields(t *testing.T) {
	svc, db := setupInvitationsTest(t)
	actor := seedUser(t, db, "owner@test.com")
	h := &Handlers{Service: svc}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"user_id": actor.UserID.String(), "fullname": actor.Fullname, "email": actor.Email,
		})
		return c.Next()
	})
	app.Post("/send", h.SendInvite)

	body, _ := json.Marshal(map[string]string{"receiverEmail": "guest@test.com"})
	req := httptest.NewRequest("POST", "/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestSendInvite_FullFlow(t *testing.T) {
	svc, db := setupInvitationsTest(t)
	owner := seedUser(t, db, "owner@test.com")
	receiver := seedUser(t, db, "guest@test.com")
	event := seedEvent(t, db, owner)

	h := &Handlers{Service: svc}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"user_id": owner.UserID.String(), "fullname": owner.Fullname, "email": owner.Email,
		})
		return c.Next()
	})
	app.Post("/send", h.SendInvite)

	body, _ := json.Marshal(map[string]string{
		"eventId":       event.EventID.String(),
		"receiverEmail": "guest@test.com",
		"role":          constants.Guest,
		"message":       "Come celebrate with us",
	})
	req := httptest.NewRequest("POST", "/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Success bool              `json:"success"`
		Data    domain.Invitation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, parsed.Success)
	assert.Equal(t, receiver.UserID, parsed.Data.ReceiverID)
	assert.Equal(t, domain.InviteStatusPending, parsed.Data.Status)
}

func TestRespondInvitation_InvalidID(t *testing.T) {
	svc, db := setupInvitationsTest(t)
	actor := seedUser(t, db, "guest@test.com")
	h := &Handlers{Service: svc}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"user_id": actor.UserID.String(), "fullname": actor.Fullname, "email": actor.Email,
		})
		return c.Next()
	})
	app.Post("/:invitation_id/:action", h.RespondInvitation)

	req := httptest.NewRequest("POST", "/not-a-uuid/accept", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRespondInvitation_AcceptOverHTTP(t *testing.T) {
	svc, db := setupInvitationsTest(t)
	owner := seedUser(t, db, "owner@test.com")
	receiver := seedUser(t, db, "guest@test.com")
	event := seedEvent(t, db, owner)

	inv, err := svc.Send(context.Background(), SendInput{
		ActorUserID: owner.UserID, EventID: event.EventID,
		ReceiverEmail: "guest@test.com", Role: constants.Guest,
	})
	require.NoError(t, err)

	h := &Handlers{Service: svc}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"user_id": receiver.UserID.String(), "fullname": receiver.Fullname, "email": receiver.Email,
		})
		return c.Next()
	})
	app.Post("/:invitation_id/:action", h.RespondInvitation)

	req := httptest.NewRequest("POST", "/"+inv.InviteID.String()+"/accept", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var m domain.Membership
	require.NoError(t, db.Where("user_id = ? AND event_id = ?", receiver.UserID, event.EventID).First(&m).Error)
}

func TestAvailableRoles_NotMember(t *testing.T) {
	svc, db := setupInvitationsTest(t)
	owner := seedUser(t, db, "owner@test.com")
	outsider := seedUser(t, db, "outsider@test.com")
	event := seedEvent(t, db, owner)

	h := &Handlers{Service: svc}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"user_id": outsider.UserID.String(), "fullname": outsider.Fullname, "email": outsider.Email,
		})
		return c.Next()
	})
	app.Get("/available-roles/:event_id", h.AvailableRoles)

	req := httptest.NewRequest("GET", "/available-roles/"+event.EventID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}
