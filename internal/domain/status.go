package domain

// Status is the lifecycle state shared by services and the events that own them.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// DeriveEventStatus aggregates the status of an event from its services.
// The rules look only at which statuses are present, never at their order.
func DeriveEventStatus(services []Service) Status {
	if len(services) == 0 {
		return StatusScheduled
	}

	allCancelled := true
	allClosed := true
	anyOpen := false
	for _, s := range services {
		switch s.Status {
		case StatusCancelled:
		case StatusCompleted:
			allCancelled = false
		case StatusScheduled, StatusInProgress:
			allCancelled = false
			allClosed = false
			anyOpen = true
		default:
			allCancelled = false
			allClosed = false
		}
	}

	switch {
	case allCancelled:
		return StatusCancelled
	case allClosed:
		return StatusCompleted
	case anyOpen:
		return StatusScheduled
	default:
		return StatusScheduled
	}
}

// NormalizeEvent returns a copy of e with every derived field recomputed.
func NormalizeEvent(e Event) Event {
	out := e.Clone()
	out.Status = DeriveEventStatus(out.Services)
	return out
}
