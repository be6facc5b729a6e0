package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"logistics-tracker/internal/features/status/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	NewStatusHandler(nil).Register(app)
	return app
}

func TestStatusHandler_ListStatuses(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/statuses", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var infos []StatusInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
	known := domain.Known()
	require.Len(t, infos, len(known))

	for i, info := range infos {
		assert.Equal(t, string(known[i]), info.Status)
		assert.True(t, info.Known)
		assert.NotEqual(t, domain.ColorGray, info.Descriptor.Color)
	}
}

func TestStatusHandler_GetStatus_Known(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/statuses/IN_TRANSIT", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var info StatusInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))

	assert.True(t, info.Known)
	assert.Equal(t, "En transit", info.Descriptor.Label)
	assert.Equal(t, domain.ColorOrange, info.Descriptor.Color)
	assert.Equal(t, 2, info.Descriptor.Progress)
	assert.True(t, info.Active)
	assert.False(t, info.Completed)
	assert.Equal(t, domain.PhaseActive, info.Phase)
	assert.Equal(t, []domain.Status{domain.StatusDelivered, domain.StatusAwaitingRelay}, info.NextStatuses)
}

func TestStatusHandler_GetStatus_Unknown(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/statuses/delivered", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var info StatusInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))

	assert.False(t, info.Known)
	assert.Equal(t, "delivered", info.Descriptor.Label)
	assert.Equal(t, domain.ColorGray, info.Descriptor.Color)
	assert.Equal(t, 0, info.Descriptor.Progress)
	assert.False(t, info.Active)
	assert.False(t, info.Completed)
	assert.Empty(t, info.NextStatuses)
}

func TestStatusHandler_GetStatus_EscapedValue(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/statuses/EN%20COURS", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var info StatusInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "EN COURS", info.Status)
	assert.Equal(t, "EN COURS", info.Descriptor.Label)
	assert.False(t, info.Known)
}

func TestStatusHandler_GetStatus_TerminalHasEmptyNextStatuses(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/statuses/DELIVERED", nil))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, `[]`, string(raw["next_statuses"]))
}

func TestStatusHandler_Summarize(t *testing.T) {
	app := setupApp()

	body := `{"items":[{"status":"DELIVERED"},{"status":"PENDING"},{"status":"IN_TRANSIT"},{"status":"ACCEPTED_BY_CARRIER"}]}`
	req := httptest.NewRequest("POST", "/statuses/summary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var counts domain.Counts
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&counts))
	assert.Equal(t, domain.Counts{Total: 4, DeliveredCount: 1, InTransitCount: 2, PendingCount: 1}, counts)
}

func TestStatusHandler_Summarize_InvalidBody(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("POST", "/statuses/summary", strings.NewReader(`{"items":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "invalid request body", errResp.Message)
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

func TestStatusHandler_Timeline(t *testing.T) {
	app := setupApp()

	body := `{"status":"IN_TRANSIT","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-02T00:00:00Z"}`
	req := httptest.NewRequest("POST", "/statuses/timeline", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var steps []domain.Step
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&steps))
	require.Len(t, steps, 5)

	assert.Equal(t, domain.MilestoneCreated, steps[0].Step)
	require.NotNil(t, steps[0].Timestamp)
	assert.Equal(t, "2024-01-01T00:00:00Z", steps[0].Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"))
	assert.True(t, steps[3].Completed)
	assert.False(t, steps[4].Completed)
	assert.Nil(t, steps[4].Timestamp)
}

func TestStatusHandler_Timeline_InvalidBody(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("POST", "/statuses/timeline", strings.NewReader(`{"created_at":"yesterday"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
