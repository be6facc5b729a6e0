package domain

import (
	"errors"
	"time"

	status "logistics-tracker/internal/features/status/domain"
)

var (
	// ErrDeliveryNotFound is returned when the backend has no delivery with the given ID.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrInvalidRole is returned when the dashboard role is not one of the supported roles.
	ErrInvalidRole = errors.New("invalid role")
	// ErrUserRequired is returned when a dashboard is requested without a user.
	ErrUserRequired = errors.New("user is required")
)

// Role selects which dashboard a user is looking at.
type Role string

const (
	RoleCarrier  Role = "carrier"
	RoleMerchant Role = "merchant"
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// ParseRole accepts only the exact lowercase role names.
func ParseRole(raw string) (Role, error) {
	switch r := Role(raw); r {
	case RoleCarrier, RoleMerchant, RoleCustomer, RoleProvider:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

// Address is a pickup or dropoff location.
type Address struct {
	Street    string  `json:"street"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Delivery is the read-side view of one delivery as the backend returns it.
type Delivery struct {
	// ID is the backend identifier.
	ID string `json:"id"`
	// Status is the raw status string, kept even when it is not recognized.
	Status string `json:"status"`
	// Pickup is where the parcel is collected.
	Pickup Address `json:"pickup"`
	// Dropoff is where the parcel is delivered.
	Dropoff Address `json:"dropoff"`
	// CarrierID is empty until a carrier accepts the delivery.
	CarrierID  string  `json:"carrier_id,omitempty"`
	MerchantID string  `json:"merchant_id,omitempty"`
	CustomerID string  `json:"customer_id,omitempty"`
	Price      float64 `json:"price"`
	// CreatedAt and UpdatedAt are nil when the backend omits them.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Entity adapts the delivery to the timeline input.
func (d *Delivery) Entity() status.Entity {
	return status.Entity{
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Tracking is the detail view rendered for a single delivery.
type Tracking struct {
	Delivery     *Delivery         `json:"delivery"`
	Descriptor   status.Descriptor `json:"descriptor"`
	Active       bool              `json:"active"`
	Completed    bool              `json:"completed"`
	NextStatuses []status.Status   `json:"next_statuses"`
	Timeline     []status.Step     `json:"timeline"`
}

// DashboardItem is one row of a dashboard tab.
type DashboardItem struct {
	Delivery     Delivery          `json:"delivery"`
	Badge        status.Descriptor `json:"badge"`
	NextStatuses []status.Status   `json:"next_statuses"`
}

// Dashboard groups a user's deliveries into tabs by phase.
type Dashboard struct {
	Role      Role            `json:"role"`
	UserID    string          `json:"user_id"`
	Summary   status.Counts   `json:"summary"`
	Pending   []DashboardItem `json:"pending"`
	Active    []DashboardItem `json:"active"`
	Completed []DashboardItem `json:"completed"`
}

// NewDashboard builds tabs and summary counts from deliveries.
// Statuses that are not recognized land in the pending tab.
func NewDashboard(role Role, userID string, deliveries []Delivery, d status.Describer) *Dashboard {
	dash := &Dashboard{
		Role:      role,
		UserID:    userID,
		Summary:   status.AggregateBy(deliveries, func(del Delivery) string { return del.Status }),
		Pending:   []DashboardItem{},
		Active:    []DashboardItem{},
		Completed: []DashboardItem{},
	}

	for _, del := range deliveries {
		item := DashboardItem{
			Delivery:     del,
			Badge:        d.Describe(del.Status),
			NextStatuses: status.AllowedNext(del.Status),
		}

		switch status.PhaseOf(del.Status) {
		case status.PhaseActive:
			dash.Active = append(dash.Active, item)
		case status.PhaseCompleted:
			dash.Completed = append(dash.Completed, item)
		default:
			dash.Pending = append(dash.Pending, item)
		}
	}

	return dash
}

// NewTracking builds the detail view of a delivery.
func NewTracking(del *Delivery, d status.Describer) *Tracking {
	return &Tracking{
		Delivery:     del,
		Descriptor:   d.Describe(del.Status),
		Active:       status.IsActive(del.Status),
		Completed:    status.IsCompleted(del.Status),
		NextStatuses: status.AllowedNext(del.Status),
		Timeline:     status.Timeline(del.Entity()),
	}
}
