package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"logistics-tracker/internal/features/deliveries/domain"
	"logistics-tracker/internal/features/deliveries/service"
	status "logistics-tracker/internal/features/status/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider is a stub implementation of DeliveryProvider for testing.
type stubProvider struct {
	delivery   *domain.Delivery
	deliveries []domain.Delivery
	err        error
}

// GetDelivery implements DeliveryProvider.
func (s *stubProvider) GetDelivery(ctx context.Context, id string) (*domain.Delivery, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.delivery, nil
}

// ListDeliveries implements DeliveryProvider.
func (s *stubProvider) ListDeliveries(ctx context.Context, role domain.Role, userID string) ([]domain.Delivery, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.deliveries, nil
}

func setupApp(p *stubProvider) *fiber.App {
	h := NewDeliveryHandler(service.NewDeliveryService(p, status.NewDescriber(nil), nil))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	h.Register(app)
	return app
}

func decodeError(t *testing.T, app *fiber.App, target string, wantStatus int) ErrorResponse {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	assert.Equal(t, wantStatus, resp.StatusCode)

	var e ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "test-ray-id", e.RayID)
	return e
}

// TestDeliveryHandler_GetTracking_Success verifies the tracking view.
func TestDeliveryHandler_GetTracking_Success(t *testing.T) {
	app := setupApp(&stubProvider{delivery: &domain.Delivery{ID: "d-1", Status: "IN_TRANSIT"}})

	resp, err := app.Test(httptest.NewRequest("GET", "/deliveries/d-1/tracking", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tr domain.Tracking
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tr))
	assert.Equal(t, "d-1", tr.Delivery.ID)
	assert.Equal(t, status.ColorOrange, tr.Descriptor.Color)
	assert.Equal(t, "bg-orange-100", tr.Descriptor.Badge.Light.Background)
	assert.True(t, tr.Active)
	assert.Len(t, tr.Timeline, 5)
}

// TestDeliveryHandler_GetTracking_NotFound verifies 404 mapping.
func TestDeliveryHandler_GetTracking_NotFound(t *testing.T) {
	app := setupApp(&stubProvider{err: domain.ErrDeliveryNotFound})

	e := decodeError(t, app, "/deliveries/missing/tracking", fiber.StatusNotFound)
	assert.Equal(t, "Delivery not found", e.Message)
}

// TestDeliveryHandler_GetTracking_BackendError verifies 502 mapping.
func TestDeliveryHandler_GetTracking_BackendError(t *testing.T) {
	app := setupApp(&stubProvider{err: errors.New("connection refused")})

	e := decodeError(t, app, "/deliveries/d-1/tracking", fiber.StatusBadGateway)
	assert.Equal(t, "Backend unavailable", e.Message)
}

// TestDeliveryHandler_GetDashboard_Success verifies grouping and summary.
func TestDeliveryHandler_GetDashboard_Success(t *testing.T) {
	app := setupApp(&stubProvider{deliveries: []domain.Delivery{
		{ID: "1", Status: "DELIVERED"},
		{ID: "2", Status: "PENDING"},
		{ID: "3", Status: "IN_TRANSIT"},
		{ID: "4", Status: "ACCEPTED_BY_CARRIER"},
	}})

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboards/merchant?user_id=m-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var dash domain.Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dash))
	assert.Equal(t, domain.RoleMerchant, dash.Role)
	assert.Equal(t, "m-1", dash.UserID)
	assert.Equal(t, status.Counts{Total: 4, DeliveredCount: 1, InTransitCount: 2, PendingCount: 1}, dash.Summary)
	assert.Len(t, dash.Pending, 1)
	assert.Len(t, dash.Active, 2)
	assert.Len(t, dash.Completed, 1)
}

// TestDeliveryHandler_GetDashboard_EmptyTabs verifies tabs are arrays, never null.
func TestDeliveryHandler_GetDashboard_EmptyTabs(t *testing.T) {
	app := setupApp(&stubProvider{deliveries: []domain.Delivery{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboards/customer?user_id=u-1", nil))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, `[]`, string(raw["pending"]))
	assert.JSONEq(t, `[]`, string(raw["active"]))
	assert.JSONEq(t, `[]`, string(raw["completed"]))
}

// TestDeliveryHandler_GetDashboard_InvalidRole verifies 400 on unknown roles.
func TestDeliveryHandler_GetDashboard_InvalidRole(t *testing.T) {
	app := setupApp(&stubProvider{})

	decodeError(t, app, "/dashboards/admin?user_id=u-1", fiber.StatusBadRequest)
}

// TestDeliveryHandler_GetDashboard_MissingUser verifies 400 without user_id.
func TestDeliveryHandler_GetDashboard_MissingUser(t *testing.T) {
	app := setupApp(&stubProvider{})

	e := decodeError(t, app, "/dashboards/carrier", fiber.StatusBadRequest)
	assert.Equal(t, "user_id is required", e.Message)
}

// TestDeliveryHandler_GetDashboard_BackendError verifies 502 mapping.
func TestDeliveryHandler_GetDashboard_BackendError(t *testing.T) {
	app := setupApp(&stubProvider{err: errors.New("backend API returned status: 500")})

	decodeError(t, app, "/dashboards/provider?user_id=p-1", fiber.StatusBadGateway)
}
