package handler

import (
	"errors"
	"net/http"

	"logistics-tracker/internal/core/logger"
	"logistics-tracker/internal/core/server"
	"logistics-tracker/internal/features/deliveries/domain"
	"logistics-tracker/internal/features/deliveries/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeliveryHandler handles HTTP requests for delivery tracking and dashboards.
type DeliveryHandler struct {
	// service is the DeliveryService instance.
	service *service.DeliveryService
}

// NewDeliveryHandler creates a new instance of DeliveryHandler.
func NewDeliveryHandler(s *service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// GetTracking handles the request for the tracking view of one delivery.
// @Summary Get delivery tracking
// @Description Returns the delivery with its status badge, progress, advisory next statuses and timeline.
// @Tags deliveries
// @Produce json
// @Param id path string true "Delivery ID"
// @Success 200 {object} domain.Tracking
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /deliveries/{id}/tracking [get]
func (h *DeliveryHandler) GetTracking(c *fiber.Ctx) error {
	id := server.Param(c, "id")
	rayID := server.RayID(c)

	tracking, err := h.service.GetTracking(c.UserContext(), id)
	if err != nil {
		logger.Get().Error("Failed to fetch delivery tracking",
			zap.String("delivery_id", id),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return h.fail(c, err, rayID)
	}

	return c.Status(http.StatusOK).JSON(tracking)
}

// GetDashboard handles the request for a role dashboard.
// @Summary Get role dashboard
// @Description Returns summary counts and the user's deliveries grouped into pending, active and completed tabs.
// @Tags dashboards
// @Produce json
// @Param role path string true "Role" Enums(carrier, merchant, customer, provider)
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboards/{role} [get]
func (h *DeliveryHandler) GetDashboard(c *fiber.Ctx) error {
	role := server.Param(c, "role")
	userID := c.Query("user_id")
	rayID := server.RayID(c)

	dashboard, err := h.service.GetDashboard(c.UserContext(), role, userID)
	if err != nil {
		logger.Get().Error("Failed to build dashboard",
			zap.String("role", role),
			zap.String("user_id", userID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return h.fail(c, err, rayID)
	}

	return c.Status(http.StatusOK).JSON(dashboard)
}

func (h *DeliveryHandler) fail(c *fiber.Ctx, err error, rayID string) error {
	status := http.StatusBadGateway
	msg := "Backend unavailable"

	switch {
	case errors.Is(err, domain.ErrDeliveryNotFound):
		status = http.StatusNotFound
		msg = "Delivery not found"
	case errors.Is(err, domain.ErrInvalidRole):
		status = http.StatusBadRequest
		msg = "Role must be one of carrier, merchant, customer, provider"
	case errors.Is(err, domain.ErrUserRequired):
		status = http.StatusBadRequest
		msg = "user_id is required"
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID,
	})
}

// Register mounts the delivery routes on router.
func (h *DeliveryHandler) Register(router fiber.Router) {
	router.Get("/deliveries/:id/tracking", h.GetTracking)
	router.Get("/dashboards/:role", h.GetDashboard)
}
