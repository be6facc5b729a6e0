package domain

// LabelSet maps statuses to human-readable labels for one locale.
type LabelSet map[Status]string

// labelsFR is the default French label set. It is never handed out.
var labelsFR = LabelSet{
	StatusPending:           "En attente",
	StatusConfirmed:         "Confirmé",
	StatusAcceptedBySender:  "Accepté et payé",
	StatusAcceptedByCarrier: "Pris en charge",
	StatusInTransit:         "En transit",
	StatusDelivered:         "Livré",
	StatusCancelled:         "Annulé",
	StatusAwaitingRelay:     "En attente de relais",
	StatusRelayInProgress:   "Relais en cours",
}

// LabelsFR returns a copy of the default French label set.
func LabelsFR() LabelSet {
	return labelsFR.clone()
}

func (l LabelSet) clone() LabelSet {
	out := make(LabelSet, len(l))
	for s, label := range l {
		out[s] = label
	}
	return out
}

// milestoneLabelsFR labels the fixed timeline steps.
var milestoneLabelsFR = map[Milestone]string{
	MilestoneCreated:           "Commande créée",
	MilestoneConfirmed:         "Confirmé",
	MilestoneAcceptedByCarrier: "Pris en charge",
	MilestoneInTransit:         "En transit",
	MilestoneDelivered:         "Livré",
}

// label returns the entry for s, falling back to raw when the set has none.
func (l LabelSet) label(s Status, raw string) string {
	if text, ok := l[s]; ok && text != "" {
		return text
	}
	return raw
}
