package service

import (
	"context"
	"fmt"

	"logistics-tracker/internal/core/logger"
	"logistics-tracker/internal/core/metrics"
	"logistics-tracker/internal/features/deliveries/domain"
	"logistics-tracker/internal/features/deliveries/ports"
	status "logistics-tracker/internal/features/status/domain"

	"go.uber.org/zap"
)

// Metric sources for unknown statuses.
const (
	sourceTracking  = "tracking"
	sourceDashboard = "dashboard"
)

// DeliveryService builds the tracking and dashboard views from backend deliveries.
type DeliveryService struct {
	// provider is the interface for fetching deliveries.
	provider ports.DeliveryProvider
	// describer resolves display metadata for statuses.
	describer status.Describer
	// metrics counts unknown statuses. May be nil.
	metrics *metrics.Metrics
}

// NewDeliveryService creates a new instance of DeliveryService.
func NewDeliveryService(provider ports.DeliveryProvider, describer status.Describer, m *metrics.Metrics) *DeliveryService {
	return &DeliveryService{
		provider:  provider,
		describer: describer,
		metrics:   m,
	}
}

// GetTracking returns the detail view of one delivery.
func (s *DeliveryService) GetTracking(ctx context.Context, id string) (*domain.Tracking, error) {
	if id == "" {
		return nil, domain.ErrDeliveryNotFound
	}

	delivery, err := s.provider.GetDelivery(ctx, id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrDeliveryNotFound
	}

	s.checkStatus(sourceTracking, delivery)
	return domain.NewTracking(delivery, s.describer), nil
}

// GetDashboard returns the deliveries of userID grouped into dashboard tabs.
func (s *DeliveryService) GetDashboard(ctx context.Context, rawRole, userID string) (*domain.Dashboard, error) {
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, rawRole)
	}
	if userID == "" {
		return nil, domain.ErrUserRequired
	}

	deliveries, err := s.provider.ListDeliveries(ctx, role, userID)
	if err != nil {
		return nil, err
	}

	for i := range deliveries {
		s.checkStatus(sourceDashboard, &deliveries[i])
	}
	return domain.NewDashboard(role, userID, deliveries, s.describer), nil
}

// checkStatus records statuses the model does not know. They still render with the fallback descriptor.
func (s *DeliveryService) checkStatus(source string, d *domain.Delivery) {
	if _, ok := status.Parse(d.Status); ok {
		return
	}
	s.metrics.UnknownStatus(source)
	logger.Get().Warn("Unknown delivery status",
		zap.String("source", source),
		zap.String("delivery_id", d.ID),
		zap.String("status", d.Status),
	)
}
