// Package domain holds the delivery status model shared by every dashboard
// and tracking view: the closed set of statuses, their display metadata,
// classification predicates and the advisory transition table.
//
// Everything here is a pure function over immutable package-level tables.
// Raw strings coming from the backend are normalized with Parse; anything
// outside the nine known values becomes StatusUnknown and degrades to the
// neutral fallback descriptor instead of failing.
package domain

// Status is the lifecycle state of a delivery or order.
type Status string

const (
	// StatusUnknown is the zero value, used for any string the backend sends
	// that is not one of the known statuses.
	StatusUnknown Status = ""
	// StatusPending indicates the request exists but nobody confirmed it yet.
	StatusPending Status = "PENDING"
	// StatusConfirmed indicates a carrier or merchant confirmed the request.
	StatusConfirmed Status = "CONFIRMED"
	// StatusAcceptedBySender indicates the sender accepted and paid.
	StatusAcceptedBySender Status = "ACCEPTED_BY_SENDER"
	// StatusAcceptedByCarrier indicates the carrier took the parcel in charge.
	StatusAcceptedByCarrier Status = "ACCEPTED_BY_CARRIER"
	// StatusInTransit indicates the parcel is moving.
	StatusInTransit Status = "IN_TRANSIT"
	// StatusDelivered is terminal: the parcel reached its destination.
	StatusDelivered Status = "DELIVERED"
	// StatusCancelled is terminal: the delivery will not happen.
	StatusCancelled Status = "CANCELLED"
	// StatusAwaitingRelay indicates the parcel waits for the next carrier of a relay.
	StatusAwaitingRelay Status = "AWAITING_RELAY"
	// StatusRelayInProgress indicates a relay carrier is moving the parcel.
	StatusRelayInProgress Status = "RELAY_IN_PROGRESS"
)

// known lists every valid status in lifecycle order.
var known = []Status{
	StatusPending,
	StatusConfirmed,
	StatusAcceptedBySender,
	StatusAcceptedByCarrier,
	StatusInTransit,
	StatusDelivered,
	StatusCancelled,
	StatusAwaitingRelay,
	StatusRelayInProgress,
}

var knownSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(known))
	for _, s := range known {
		set[s] = struct{}{}
	}
	return set
}()

// Known returns every valid status in lifecycle order. The slice is a copy.
func Known() []Status {
	out := make([]Status, len(known))
	copy(out, known)
	return out
}

// Parse normalizes a raw status string. Matching is exact and case-sensitive:
// "delivered" is not DELIVERED. Unrecognized input yields (StatusUnknown, false).
func Parse(raw string) (Status, bool) {
	s := Status(raw)
	if _, ok := knownSet[s]; !ok {
		return StatusUnknown, false
	}
	return s, true
}

// IsKnown reports whether s is one of the nine valid statuses.
func (s Status) IsKnown() bool {
	_, ok := knownSet[s]
	return ok
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == StatusUnknown {
		return "UNKNOWN"
	}
	return string(s)
}

// IsActive reports whether work on the delivery is in motion.
func (s Status) IsActive() bool {
	switch s {
	case StatusConfirmed, StatusAcceptedBySender, StatusAcceptedByCarrier,
		StatusInTransit, StatusAwaitingRelay, StatusRelayInProgress:
		return true
	default:
		return false
	}
}

// IsCompleted reports whether s is terminal.
func (s Status) IsCompleted() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Phase groups statuses the way dashboard tabs do.
type Phase string

const (
	// PhaseNotStarted covers PENDING and any unknown status.
	PhaseNotStarted Phase = "not_started"
	// PhaseActive covers every status for which IsActive is true.
	PhaseActive Phase = "active"
	// PhaseCompleted covers DELIVERED and CANCELLED.
	PhaseCompleted Phase = "completed"
)

// Phase returns the dashboard grouping of s.
func (s Status) Phase() Phase {
	switch {
	case s.IsCompleted():
		return PhaseCompleted
	case s.IsActive():
		return PhaseActive
	default:
		return PhaseNotStarted
	}
}

// IsActive reports whether raw is an active status. Unknown strings are not active.
func IsActive(raw string) bool {
	s, _ := Parse(raw)
	return s.IsActive()
}

// IsCompleted reports whether raw is a terminal status. Unknown strings are not completed.
func IsCompleted(raw string) bool {
	s, _ := Parse(raw)
	return s.IsCompleted()
}

// PhaseOf returns the dashboard grouping of raw.
func PhaseOf(raw string) Phase {
	s, _ := Parse(raw)
	return s.Phase()
}
