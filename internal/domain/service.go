package domain

// Service is a single booked service inside an event. Its status is the only
// field that changes in place after creation.
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
	Status   Status `json:"status"`
}

type ServiceInput struct {
	Name     string `json:"name"     validate:"required,max=200"`
	Date     string `json:"date"     validate:"required,datetime=2006-01-02"`
	Time     string `json:"time"     validate:"omitempty,datetime=15:04"`
	Location string `json:"location" validate:"max=300"`
	Status   Status `json:"status"   validate:"omitempty,oneof=scheduled in-progress completed cancelled"`
}
