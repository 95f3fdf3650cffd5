package health

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"vows-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping() error { return f.err }

func setupHealthTest(t *testing.T) (*fiber.App, *redis.Client, *Handlers) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	h := &Handlers{Rdb: rdb, DB: fakePinger{}, HealthAdminKey: "admin-key"}
	app := fiber.New()
	app.Get("/health/json", h.JSON)
	app.Get("/health/reset", h.Reset)
	return app, rdb, h
}

func TestJSON_ReportsConnectedDeps(t *testing.T) {
	app, rdb, _ := setupHealthTest(t)

	ctx := context.Background()
	require.NoError(t, rdb.Set(ctx, middleware.KeyReqTotal, "10", 0).Err())
	require.NoError(t, rdb.Set(ctx, middleware.KeyReqErrors, "2", 0).Err())

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Service      string               `json:"service"`
		Status       string               `json:"status"`
		Traffic      TrafficInfo          `json:"traffic"`
		Dependencies map[string]DepStatus `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "vows-api", body.Service)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "connected", body.Dependencies["redis"].Status)
	assert.Equal(t, "connected", body.Dependencies["database"].Status)
	assert.Equal(t, 10, body.Traffic.TotalRequests)
	assert.Equal(t, 8, body.Traffic.SuccessCount)
	assert.Equal(t, "80.0", body.Traffic.SuccessRate)
}

func TestJSON_DegradedOnDBError(t *testing.T) {
	app, _, h := setupHealthTest(t)
	h.DB = fakePinger{err: errors.New("connection refused")}

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Status       string               `json:"status"`
		Dependencies map[string]DepStatus `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "error", body.Dependencies["database"].Status)
}

func TestReset_RequiresAdminKey(t *testing.T) {
	app, _, _ := setupHealthTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/health/reset?key=wrong", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestReset_ClearsStats(t *testing.T) {
	app, rdb, _ := setupHealthTest(t)

	ctx := context.Background()
	require.NoError(t, rdb.Set(ctx, middleware.KeyReqTotal, "10", 0).Err())
	require.NoError(t, rdb.Set(ctx, middleware.KeyReqErrors, "2", 0).Err())

	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset?key=admin-key", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	n, err := rdb.Exists(ctx, middleware.KeyReqTotal, middleware.KeyReqErrors).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	start, err := rdb.Get(ctx, middleware.KeyStartTime).Result()
	require.NoError(t, err)
	assert.NotEmpty(t, start)
}
