package domain

// transitions lists, per status, the next statuses the UI may offer as
// actions. The backend owns enforcement; nothing here rejects a transition.
var transitions = map[Status][]Status{
	StatusPending:           {StatusConfirmed, StatusCancelled},
	StatusConfirmed:         {StatusAcceptedBySender, StatusCancelled},
	StatusAcceptedBySender:  {StatusAcceptedByCarrier, StatusCancelled},
	StatusAcceptedByCarrier: {StatusInTransit, StatusAwaitingRelay},
	StatusInTransit:         {StatusDelivered, StatusAwaitingRelay},
	StatusAwaitingRelay:     {StatusRelayInProgress},
	StatusRelayInProgress:   {StatusDelivered, StatusAwaitingRelay},
	StatusDelivered:         {},
	StatusCancelled:         {},
}

// AllowedNext returns a copy of the advisory next statuses of s, in table
// order. Terminal and unknown statuses yield an empty slice.
func (s Status) AllowedNext() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// AllowedNext returns the advisory next statuses of raw.
func AllowedNext(raw string) []Status {
	s, _ := Parse(raw)
	return s.AllowedNext()
}
