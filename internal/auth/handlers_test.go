package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vows-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthApp(t *testing.T) (*fiber.App, *Handlers) {
	db := setupAuthTest(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	h := &Handlers{
		DB:     db,
		Tokens: &TokenService{DB: db, Secret: "test-secret"},
		Rdb:    rdb,
		Config: middleware.SessionConfig{},
	}
	app := fiber.New()
	app.Use(middleware.SessionWithClient(rdb))
	app.Post("/login", h.Login)
	app.Post("/login-mobile", h.LoginMobile)
	app.Post("/refresh", h.Refresh)
	app.Get("/me", h.Me)
	app.Delete("/logout", h.Logout)
	return app, h
}

func postLogin(t *testing.T, app *fiber.App, path, email, password string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(LoginInput{Email: email, Password: password})
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	app, h := setupAuthApp(t)
	seedUser(t, h.DB, "ama@example.com", "Str0ng!pass")

	resp := postLogin(t, app, "/login", "ama@example.com", "Str0ng!pass")
	assert.Equal(t, 200, resp.StatusCode)

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, strings.HasPrefix(sessionCookie.Value, "s:"))

	// session cookie authenticates subsequent requests
	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(sessionCookie)
	meResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, meResp.StatusCode)

	raw, _ := io.ReadAll(meResp.Body)
	var me struct {
		Data middleware.SessionUser `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &me))
	assert.Equal(t, "ama@example.com", me.Data.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	app, h := setupAuthApp(t)
	seedUser(t, h.DB, "ama@example.com", "Str0ng!pass")

	resp := postLogin(t, app, "/login", "ama@example.com", "wrong-pass")
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMe_Unauthenticated(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLoginMobile_ReturnsTokenPair(t *testing.T) {
	app, h := setupAuthApp(t)
	u := seedUser(t, h.DB, "ama@example.com", "Str0ng!pass")

	resp := postLogin(t, app, "/login-mobile", "ama@example.com", "Str0ng!pass")
	assert.Equal(t, 200, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Data TokenPair `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.NotEmpty(t, body.Data.AccessToken)
	require.NotEmpty(t, body.Data.RefreshToken)

	actor, err := h.Tokens.VerifyAccess(body.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.UserID.String(), actor.UserID)

	// refresh yields a fresh usable access token
	refreshBody, _ := json.Marshal(map[string]string{"refresh_token": body.Data.RefreshToken})
	req := httptest.NewRequest("POST", "/refresh", bytes.NewReader(refreshBody))
	req.Header.Set("Content-Type", "application/json")
	refreshResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, refreshResp.StatusCode)
}

func TestRefresh_MissingToken(t *testing.T) {
	app, _ := setupAuthApp(t)

	req := httptest.NewRequest("POST", "/refresh", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	app, h := setupAuthApp(t)
	seedUser(t, h.DB, "ama@example.com", "Str0ng!pass")

	resp := postLogin(t, app, "/login-mobile", "ama@example.com", "Str0ng!pass")
	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Data TokenPair `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))

	logoutBody, _ := json.Marshal(map[string]string{"refresh_token": body.Data.RefreshToken})
	req := httptest.NewRequest("DELETE", "/logout", bytes.NewReader(logoutBody))
	req.Header.Set("Content-Type", "application/json")
	logoutResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, logoutResp.StatusCode)

	_, err = h.Tokens.Refresh(req.Context(), body.Data.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
