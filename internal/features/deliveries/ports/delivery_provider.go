package ports

import (
	"context"

	"logistics-tracker/internal/features/deliveries/domain"
)

// DeliveryProvider defines the interface for reading deliveries from the marketplace backend.
// This is a Secondary Port (Driven Port).
type DeliveryProvider interface {
	// GetDelivery retrieves one delivery. Returns domain.ErrDeliveryNotFound when it does not exist.
	GetDelivery(ctx context.Context, id string) (*domain.Delivery, error)
	// ListDeliveries retrieves the deliveries visible to userID acting as role.
	ListDeliveries(ctx context.Context, role domain.Role, userID string) ([]domain.Delivery, error)
}
