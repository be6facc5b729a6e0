package domain

import "time"

// Milestone identifies a fixed step of the delivery timeline.
type Milestone string

const (
	MilestoneCreated           Milestone = "CREATED"
	MilestoneConfirmed         Milestone = "CONFIRMED"
	MilestoneAcceptedByCarrier Milestone = "ACCEPTED_BY_CARRIER"
	MilestoneInTransit         Milestone = "IN_TRANSIT"
	MilestoneDelivered         Milestone = "DELIVERED"
)

// Entity is the subset of a backend record the timeline needs.
type Entity struct {
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Step is one entry of a timeline. Timestamp is nil when unknown.
type Step struct {
	Step      Milestone  `json:"step"`
	Label     string     `json:"label"`
	Timestamp *time.Time `json:"timestamp"`
	Completed bool       `json:"completed"`
}

// reachedBy lists the statuses that mark each milestone as completed.
// Relay statuses never complete CONFIRMED.
var reachedBy = map[Milestone][]Status{
	MilestoneConfirmed: {
		StatusConfirmed, StatusAcceptedBySender, StatusAcceptedByCarrier,
		StatusInTransit, StatusDelivered,
	},
	MilestoneAcceptedByCarrier: {StatusAcceptedByCarrier, StatusInTransit, StatusDelivered},
	MilestoneInTransit:         {StatusInTransit, StatusDelivered},
	MilestoneDelivered:         {StatusDelivered},
}

func reached(m Milestone, s Status) bool {
	for _, candidate := range reachedBy[m] {
		if candidate == s {
			return true
		}
	}
	return false
}

// Timeline returns the five fixed steps for e, fully materialized.
// CREATED is always completed.
func Timeline(e Entity) []Step {
	s, _ := Parse(e.Status)

	return []Step{
		{
			Step:      MilestoneCreated,
			Label:     milestoneLabelsFR[MilestoneCreated],
			Timestamp: copyTime(e.CreatedAt),
			Completed: true,
		},
		{
			Step:      MilestoneConfirmed,
			Label:     milestoneLabelsFR[MilestoneConfirmed],
			Timestamp: copyTime(e.UpdatedAt),
			Completed: reached(MilestoneConfirmed, s),
		},
		{
			Step:      MilestoneAcceptedByCarrier,
			Label:     milestoneLabelsFR[MilestoneAcceptedByCarrier],
			Completed: reached(MilestoneAcceptedByCarrier, s),
		},
		{
			Step:      MilestoneInTransit,
			Label:     milestoneLabelsFR[MilestoneInTransit],
			Completed: reached(MilestoneInTransit, s),
		},
		{
			Step:      MilestoneDelivered,
			Label:     milestoneLabelsFR[MilestoneDelivered],
			Completed: reached(MilestoneDelivered, s),
		},
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
