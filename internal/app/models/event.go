package models

import "time"

type AvailabilityEventType string

const (
	EventAvailabilityReplaced   AvailabilityEventType = "availability.replaced"
	EventUnavailabilityUpserted AvailabilityEventType = "unavailability.upserted"
	EventUnavailabilityRemoved  AvailabilityEventType = "unavailability.removed"
)

// AvailabilityEvent is published after a doctor's schedule changes.
// Date is only set for the date-scoped unavailability events.
type AvailabilityEvent struct {
	EventID    string                `json:"eventId"`
	Type       AvailabilityEventType `json:"type"`
	DoctorID   string                `json:"doctorId"`
	Date       string                `json:"date,omitempty"`
	OccurredAt time.Time             `json:"occurredAt"`
}
