package responses

import "carelink-service/internal/app/models"

// DayAvailability is one doctor's open slots on one calendar date.
// DoctorID and DoctorName are only set when several doctors are resolved together.
type DayAvailability struct {
	Date       string                `json:"date"`
	Slots      []models.TimeInterval `json:"slots"`
	DoctorID   string                `json:"doctorId,omitempty"`
	DoctorName string                `json:"doctorName,omitempty"`
}
