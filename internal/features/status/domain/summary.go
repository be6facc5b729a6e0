package domain

// Counts summarizes a list of deliveries for dashboard headers.
type Counts struct {
	Total          int `json:"total"`
	InTransitCount int `json:"in_transit_count"`
	DeliveredCount int `json:"delivered_count"`
	PendingCount   int `json:"pending_count"`
}

func (c *Counts) add(raw string) {
	c.Total++
	s, _ := Parse(raw)
	switch s {
	case StatusAcceptedByCarrier, StatusInTransit:
		c.InTransitCount++
	case StatusDelivered:
		c.DeliveredCount++
	case StatusPending, StatusConfirmed, StatusAcceptedBySender:
		c.PendingCount++
	}
}

// Aggregate counts raw statuses in a single pass.
func Aggregate(statuses []string) Counts {
	var c Counts
	for _, raw := range statuses {
		c.add(raw)
	}
	return c
}

// AggregateBy counts items in a single pass, reading each status with statusOf.
func AggregateBy[T any](items []T, statusOf func(T) string) Counts {
	var c Counts
	for _, item := range items {
		c.add(statusOf(item))
	}
	return c
}
