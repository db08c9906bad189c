package domain

import "time"

type MemberRef struct {
	MemberID string `json:"member_id" validate:"required"`
	Role     string `json:"role,omitempty"`
}

// Event groups the services booked for one client. Status is derived from
// Services and is never stored.
type Event struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Client    string      `json:"client"`
	Services  []Service   `json:"services"`
	Team      []MemberRef `json:"team"`
	Status    Status      `json:"status"`
	Version   int64       `json:"version"`
	CreatedAt time.Time   `json:"created_at"`
}

func (e Event) Key() string { return e.ID }

func (e Event) Clone() Event {
	out := e
	if e.Services != nil {
		out.Services = append([]Service(nil), e.Services...)
	}
	if e.Team != nil {
		out.Team = append([]MemberRef(nil), e.Team...)
	}
	return out
}

// ServiceIndex returns the position of the service with the given id, or -1.
func (e Event) ServiceIndex(serviceID string) int {
	for i, s := range e.Services {
		if s.ID == serviceID {
			return i
		}
	}
	return -1
}

type CreateEventInput struct {
	Name     string         `validate:"required,max=200"`
	Client   string         `validate:"max=200"`
	Services []ServiceInput `validate:"dive"`
	Team     []MemberRef    `validate:"dive"`
}

type UpdateEventInput struct {
	Name   string      `validate:"required,max=200"`
	Client string      `validate:"max=200"`
	Team   []MemberRef `validate:"dive"`
}
