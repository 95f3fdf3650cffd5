package middleware

import (
	"strings"

	"vows-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// TokenVerifier resolves a bearer access token to a session user. Wired to
// the auth token service in app setup; kept as a func type to avoid an
// import cycle with the auth package.
type TokenVerifier func(token string) (*SessionUser, error)

// RequireAuth ensures a caller identity: either a session user (web) or a
// valid bearer access token (mobile). Returns 401 with the standard error
// format otherwise.
func RequireAuth(verify TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user := c.Locals(userLocal); user != nil {
			c.Locals("auth", user)
			return c.Next()
		}
		header := c.Get("Authorization")
		if verify != nil && strings.HasPrefix(header, "Bearer ") {
			u, err := verify(strings.TrimPrefix(header, "Bearer "))
			if err == nil && u != nil {
				m := map[string]interface{}{
					"user_id":  u.UserID,
					"fullname": u.Fullname,
					"email":    u.Email,
				}
				c.Locals(userLocal, m)
				c.Locals("auth", m)
				return c.Next()
			}
		}
		return response.Unauthorized(c, "Unauthorized")
	}
}

// GetUser returns the session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}

// Actor returns the authenticated caller identity, or nil when the request
// carries no user. Handlers treat nil as Unauthorized.
func Actor(c *fiber.Ctx) *SessionUser {
	m, ok := GetUser(c).(map[string]interface{})
	if !ok {
		return nil
	}
	userID, _ := m["user_id"].(string)
	if userID == "" {
		return nil
	}
	fullname, _ := m["fullname"].(string)
	email, _ := m["email"].(string)
	return &SessionUser{UserID: userID, Fullname: fullname, Email: email}
}
