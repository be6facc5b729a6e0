package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"logistics-tracker/internal/core/config"
	"logistics-tracker/internal/core/httpclient"
	"logistics-tracker/internal/core/metrics"
	"logistics-tracker/internal/features/deliveries/domain"
)

// errNotFound marks a 404 from the backend; callers translate it.
var errNotFound = errors.New("backend resource not found")

// BackendAdapter implements the DeliveryProvider interface using the marketplace REST API.
type BackendAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the backend connection details.
	config config.BackendConfig
}

// NewBackendAdapter creates a new instance of BackendAdapter.
func NewBackendAdapter(cfg config.BackendConfig, m *metrics.Metrics) *BackendAdapter {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return &BackendAdapter{
		client: httpclient.NewClient(cfg.Timeout(), m),
		config: cfg,
	}
}

// GetDelivery fetches a delivery and maps it to the domain entity.
func (a *BackendAdapter) GetDelivery(ctx context.Context, id string) (*domain.Delivery, error) {
	endpoint := fmt.Sprintf("%s/api/deliveries/%s", a.config.URL, url.PathEscape(id))

	var raw backendDelivery
	if err := a.get(ctx, endpoint, &raw); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDeliveryNotFound, id)
		}
		return nil, err
	}

	return mapToDomain(raw), nil
}

// ListDeliveries fetches the deliveries of userID for the given role.
// A 404 means the user has no deliveries yet.
func (a *BackendAdapter) ListDeliveries(ctx context.Context, role domain.Role, userID string) ([]domain.Delivery, error) {
	endpoint := fmt.Sprintf("%s/api/%s/deliveries?userId=%s", a.config.URL, role, url.QueryEscape(userID))

	var raw []backendDelivery
	if err := a.get(ctx, endpoint, &raw); err != nil {
		if errors.Is(err, errNotFound) {
			return []domain.Delivery{}, nil
		}
		return nil, err
	}

	deliveries := make([]domain.Delivery, 0, len(raw))
	for _, r := range raw {
		deliveries = append(deliveries, *mapToDomain(r))
	}
	return deliveries, nil
}

// HealthCheck verifies that the backend is reachable and the token is accepted.
func (a *BackendAdapter) HealthCheck(ctx context.Context) error {
	req, err := a.newRequest(ctx, a.config.URL+"/api/health")
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

func (a *BackendAdapter) newRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if a.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.config.Token)
	}
	return req, nil
}

func (a *BackendAdapter) get(ctx context.Context, endpoint string, out any) error {
	req, err := a.newRequest(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("backend API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// mapToDomain converts a raw backend delivery into a domain Delivery.
// The status string is kept as received.
func mapToDomain(raw backendDelivery) *domain.Delivery {
	return &domain.Delivery{
		ID:         raw.ID,
		Status:     raw.Status,
		Pickup:     raw.PickupAddress.toDomain(),
		Dropoff:    raw.DropoffAddress.toDomain(),
		CarrierID:  raw.CarrierID,
		MerchantID: raw.MerchantID,
		CustomerID: raw.CustomerID,
		Price:      raw.Price,
		CreatedAt:  raw.CreatedAt,
		UpdatedAt:  raw.UpdatedAt,
	}
}

type backendDelivery struct {
	ID             string         `json:"id"`
	Status         string         `json:"status"`
	PickupAddress  backendAddress `json:"pickupAddress"`
	DropoffAddress backendAddress `json:"dropoffAddress"`
	CarrierID      string         `json:"carrierId"`
	MerchantID     string         `json:"merchantId"`
	CustomerID     string         `json:"customerId"`
	Price          float64        `json:"price"`
	CreatedAt      *time.Time     `json:"createdAt"`
	UpdatedAt      *time.Time     `json:"updatedAt"`
}

type backendAddress struct {
	Street string  `json:"street"`
	City   string  `json:"city"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

func (b backendAddress) toDomain() domain.Address {
	return domain.Address{
		Street:    b.Street,
		City:      b.City,
		Latitude:  b.Lat,
		Longitude: b.Lng,
	}
}
